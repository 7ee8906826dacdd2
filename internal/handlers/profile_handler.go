package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/services"
)

type ProfileHandler struct {
	studentRepo repositories.StudentRepository
	analyzer    services.AnalyzerService
}

func NewProfileHandler(studentRepo repositories.StudentRepository, analyzer services.AnalyzerService) *ProfileHandler {
	return &ProfileHandler{
		studentRepo: studentRepo,
		analyzer:    analyzer,
	}
}

// HandleAnalyze handles GET /students/:id/profile-analysis
func (h *ProfileHandler) HandleAnalyze(c *fiber.Ctx) error {
	student, err := findStudent(c, h.studentRepo)
	if student == nil {
		return err
	}

	result, tier := h.analyzer.AnalyzeProfile(c.Context(), student)

	return c.JSON(models.EnrichmentResponse{
		StudentID: student.ID.Hex(),
		Tier:      string(tier),
		Result:    result,
	})
}
