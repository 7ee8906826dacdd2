package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

// LeetCodeService fetches solved-problem counts through LeetCode's public
// GraphQL endpoint. There is no official SDK; this is a thin client over it.
type LeetCodeService interface {
	FetchStats(ctx context.Context, username string) (*models.LeetCodeStats, error)
}

type leetCodeService struct {
	endpoint string
	client   *http.Client
}

func NewLeetCodeService(endpoint string) LeetCodeService {
	if endpoint == "" {
		endpoint = "https://leetcode.com/graphql"
	}
	return &leetCodeService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

const leetCodeStatsQuery = `query userStats($username: String!) {
  matchedUser(username: $username) {
    profile { ranking }
    submitStats {
      acSubmissionNum { difficulty count }
    }
  }
}`

type leetCodeResponse struct {
	Data struct {
		MatchedUser *struct {
			Profile struct {
				Ranking int `json:"ranking"`
			} `json:"profile"`
			SubmitStats struct {
				ACSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStats"`
		} `json:"matchedUser"`
	} `json:"data"`
}

// FetchStats implements LeetCodeService.
func (l *leetCodeService) FetchStats(ctx context.Context, username string) (*models.LeetCodeStats, error) {
	payload := map[string]any{
		"query":     leetCodeStatsQuery,
		"variables": map[string]string{"username": username},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build leetcode request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leetcode call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leetcode returned status %d", resp.StatusCode)
	}

	var parsed leetCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode leetcode response: %w", err)
	}

	matched := parsed.Data.MatchedUser
	if matched == nil {
		return nil, fmt.Errorf("leetcode user %s not found", username)
	}

	stats := &models.LeetCodeStats{Ranking: matched.Profile.Ranking}
	for _, entry := range matched.SubmitStats.ACSubmissionNum {
		switch entry.Difficulty {
		case "All":
			stats.TotalSolved = entry.Count
		case "Easy":
			stats.EasySolved = entry.Count
		case "Medium":
			stats.MediumSolved = entry.Count
		case "Hard":
			stats.HardSolved = entry.Count
		}
	}

	return stats, nil
}
