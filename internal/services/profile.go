package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

// AnalyzeProfile implements AnalyzerService. It aggregates everything known
// about the student into one payload, optionally enriched with similar peer
// profiles from the vector store.
func (a *analyzerService) AnalyzeProfile(ctx context.Context, student *models.Student) (models.ProfileAnalysis, Tier) {
	log.Printf("🤖 Analyzing full profile for student %s\n", student.RegistrationNumber)

	aggregate := map[string]any{
		"name":            student.Name,
		"department":      student.Department,
		"semester":        student.Semester,
		"marks":           student.Marks,
		"coding_profiles": student.CodingProfiles,
	}
	if student.SoftSkills != nil {
		aggregate["soft_skills"] = student.SoftSkills
	}
	if student.ResumeAnalysis != nil {
		aggregate["resume_analysis"] = student.ResumeAnalysis
	}
	if student.MarksAnalysis != nil {
		aggregate["marks_analysis"] = student.MarksAnalysis
	}

	peerContext := a.retrievePeerContext(ctx, student)

	result, tier := RunEnrichment(ctx, a.gemini, EnrichmentPlan[models.ProfileAnalysis]{
		LocalContent: func(context.Context) (string, error) {
			payload, err := json.Marshal(aggregate)
			if err != nil {
				return "", err
			}
			return string(payload), nil
		},
		Prompt: func(content string) string {
			return a.promptBuilder.BuildProfileAnalysisPrompt(content, peerContext)
		},
		Schema: models.ProfileSchema,
		Fallback: func(t Tier) models.ProfileAnalysis {
			return models.DefaultProfileAnalysis(string(t))
		},
		Temperature: 0.3,
		CallTimeout: a.callTimeout,
	})

	a.persist(student.ID, "profile analysis", func(ctx context.Context) error {
		return a.studentRepo.AttachProfileAnalysis(ctx, student.ID, &result)
	})

	return result, tier
}

// retrievePeerContext looks up similar resume profiles for calibration.
// Any failure degrades to an empty context.
func (a *analyzerService) retrievePeerContext(ctx context.Context, student *models.Student) string {
	if a.vector == nil || student.ResumeAnalysis == nil {
		return ""
	}

	embedding, err := a.gemini.GenerateEmbedding(ctx, student.ResumeAnalysis.Summary)
	if err != nil {
		log.Printf("⚠️  Failed to embed profile query for %s: %v\n", student.RegistrationNumber, err)
		return ""
	}

	matches, err := a.vector.SearchSimilar(ctx, embedding, student.ID.Hex(), 3)
	if err != nil {
		log.Printf("⚠️  Failed to search similar profiles for %s: %v\n", student.RegistrationNumber, err)
		return ""
	}

	return FormatPeerContext(matches)
}
