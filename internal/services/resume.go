package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

// AnalyzeResume implements AnalyzerService. The primary tier sends the
// staged file to the extraction microservice; when that fails the ladder
// falls back to locally-read PDF text with a simpler prompt.
func (a *analyzerService) AnalyzeResume(ctx context.Context, student *models.Student, filePath, originalName string) (models.ResumeAnalysis, Tier) {
	log.Printf("🤖 Analyzing resume for student %s\n", student.RegistrationNumber)

	result, tier := RunEnrichment(ctx, a.gemini, EnrichmentPlan[models.ResumeAnalysis]{
		Preprocess: func(ctx context.Context) (string, error) {
			return a.extractor.AnalyzeResume(ctx, filePath, originalName)
		},
		LocalContent: func(ctx context.Context) (string, error) {
			text, err := a.pdfParser.ExtractText(filePath)
			if err != nil {
				// the filename alone still gives the model something to work with
				return fmt.Sprintf("Resume file name: %s (file text could not be read)", originalName), nil
			}
			return text, nil
		},
		Prompt:         a.promptBuilder.BuildResumeStructuringPrompt,
		FallbackPrompt: a.promptBuilder.BuildResumeRawPrompt,
		Schema:         models.ResumeSchema,
		Fallback: func(t Tier) models.ResumeAnalysis {
			return models.DefaultResumeAnalysis(string(t))
		},
		Temperature: 0.2,
		CallTimeout: a.callTimeout,
	})

	a.persist(student.ID, "resume analysis", func(ctx context.Context) error {
		return a.studentRepo.AttachResumeAnalysis(ctx, student.ID, &result)
	})

	a.indexResumeProfile(student, result)

	return result, tier
}

// indexResumeProfile upserts the resume summary embedding into the vector
// store. Best effort: indexing failures never affect the analysis result.
func (a *analyzerService) indexResumeProfile(student *models.Student, result models.ResumeAnalysis) {
	if a.vector == nil {
		return
	}

	summary := result.Summary
	if len(result.Skills) > 0 {
		summary = summary + "\nSkills: " + strings.Join(result.Skills, ", ")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	embedding, err := a.gemini.GenerateEmbedding(ctx, summary)
	if err != nil {
		log.Printf("⚠️  Failed to embed resume profile for %s: %v\n", student.RegistrationNumber, err)
		return
	}

	if err := a.vector.UpsertProfile(ctx, student.ID.Hex(), student.RegistrationNumber, summary, embedding); err != nil {
		log.Printf("⚠️  Failed to index resume profile for %s: %v\n", student.RegistrationNumber, err)
	}
}
