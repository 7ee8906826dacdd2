package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResumeExtractorService talks to the document-extraction microservice that
// performs OCR/structural analysis on an uploaded resume before the LLM
// structuring call. It is inherently unreliable and every caller must treat
// a failure here as non-fatal.
type ResumeExtractorService interface {
	Health(ctx context.Context) error
	AnalyzeResume(ctx context.Context, filePath, originalName string) (string, error)
}

type resumeExtractorService struct {
	baseURL       string
	client        *http.Client
	healthTimeout time.Duration
}

func NewResumeExtractorService(baseURL string, callTimeout, healthTimeout time.Duration) ResumeExtractorService {
	return &resumeExtractorService{
		baseURL:       strings.TrimRight(baseURL, "/"),
		client:        &http.Client{Timeout: callTimeout},
		healthTimeout: healthTimeout,
	}
}

type extractorResponse struct {
	Success  bool           `json:"success"`
	Analysis string         `json:"analysis"`
	Metadata map[string]any `json:"metadata"`
	Error    string         `json:"error"`
}

// Health implements ResumeExtractorService with a short probe timeout.
func (s *resumeExtractorService) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("extractor service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("extractor service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// AnalyzeResume uploads the staged file as multipart form data and returns
// the extracted analysis text.
func (s *resumeExtractorService) AnalyzeResume(ctx context.Context, filePath, originalName string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open staged file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	name := originalName
	if name == "" {
		name = filepath.Base(filePath)
	}
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("failed to copy file into request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/analyze", &body)
	if err != nil {
		return "", fmt.Errorf("failed to build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("extractor call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("extractor returned status %d", resp.StatusCode)
	}

	var parsed extractorResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode extractor response: %w", err)
	}

	if !parsed.Success {
		return "", fmt.Errorf("extractor reported failure: %s", parsed.Error)
	}
	if strings.TrimSpace(parsed.Analysis) == "" {
		return "", fmt.Errorf("extractor returned empty analysis")
	}

	return parsed.Analysis, nil
}
