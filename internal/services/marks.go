package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

// AnalyzeMarks implements AnalyzerService.
func (a *analyzerService) AnalyzeMarks(ctx context.Context, student *models.Student, marks []models.SemesterMark) (models.MarksAnalysis, Tier, error) {
	if len(marks) == 0 {
		return models.MarksAnalysis{}, "", ErrNoMarks
	}

	payload, err := json.Marshal(marks)
	if err != nil {
		return models.MarksAnalysis{}, "", fmt.Errorf("failed to encode marks: %w", err)
	}

	log.Printf("🤖 Analyzing marks for student %s\n", student.RegistrationNumber)

	result, tier := RunEnrichment(ctx, a.gemini, EnrichmentPlan[models.MarksAnalysis]{
		LocalContent: func(context.Context) (string, error) {
			return string(payload), nil
		},
		Prompt: a.promptBuilder.BuildMarksAnalysisPrompt,
		Schema: models.MarksSchema,
		Fallback: func(t Tier) models.MarksAnalysis {
			return models.DefaultMarksAnalysis(string(t))
		},
		Temperature: 0.2,
		CallTimeout: a.callTimeout,
	})

	a.persist(student.ID, "marks analysis", func(ctx context.Context) error {
		return a.studentRepo.AttachMarksAnalysis(ctx, student.ID, &result)
	})

	return result, tier, nil
}
