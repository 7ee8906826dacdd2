package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/services"
)

type SoftSkillsHandler struct {
	studentRepo repositories.StudentRepository
	analyzer    services.AnalyzerService
}

func NewSoftSkillsHandler(studentRepo repositories.StudentRepository, analyzer services.AnalyzerService) *SoftSkillsHandler {
	return &SoftSkillsHandler{
		studentRepo: studentRepo,
		analyzer:    analyzer,
	}
}

// HandleAnalyze handles POST /students/:id/soft-skills. Validation failures
// are client errors; AI faults never are — the response then carries a
// degraded tier instead.
func (h *SoftSkillsHandler) HandleAnalyze(c *fiber.Ctx) error {
	student, err := findStudent(c, h.studentRepo)
	if student == nil {
		return err
	}

	var req models.SoftSkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result, tier, err := h.analyzer.AnalyzeSoftSkills(c.Context(), student, req.Responses)
	if err != nil {
		if errors.Is(err, services.ErrResponseCount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze soft skills",
		})
	}

	return c.JSON(models.EnrichmentResponse{
		StudentID: student.ID.Hex(),
		Tier:      string(tier),
		Result:    result,
	})
}
