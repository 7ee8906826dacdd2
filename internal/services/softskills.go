package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

const softSkillResponseCount = 5

// AnalyzeSoftSkills implements AnalyzerService.
func (a *analyzerService) AnalyzeSoftSkills(ctx context.Context, student *models.Student, responses []string) (models.SoftSkillsAssessment, Tier, error) {
	if len(responses) != softSkillResponseCount {
		return models.SoftSkillsAssessment{}, "", fmt.Errorf("%w (got %d)", ErrResponseCount, len(responses))
	}

	payload, err := json.Marshal(responses)
	if err != nil {
		return models.SoftSkillsAssessment{}, "", fmt.Errorf("failed to encode responses: %w", err)
	}

	log.Printf("🤖 Analyzing soft skills for student %s\n", student.RegistrationNumber)

	result, tier := RunEnrichment(ctx, a.gemini, EnrichmentPlan[models.SoftSkillsAssessment]{
		LocalContent: func(context.Context) (string, error) {
			return string(payload), nil
		},
		Prompt: a.promptBuilder.BuildSoftSkillsPrompt,
		Schema: models.SoftSkillsSchema,
		Fallback: func(t Tier) models.SoftSkillsAssessment {
			return models.DefaultSoftSkills(string(t))
		},
		Temperature: 0.3,
		CallTimeout: a.callTimeout,
	})

	a.persist(student.ID, "soft skills assessment", func(ctx context.Context) error {
		return a.studentRepo.AttachSoftSkills(ctx, student.ID, &result)
	})

	return result, tier, nil
}
