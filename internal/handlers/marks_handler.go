package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/services"
)

type MarksHandler struct {
	studentRepo repositories.StudentRepository
	analyzer    services.AnalyzerService
}

func NewMarksHandler(studentRepo repositories.StudentRepository, analyzer services.AnalyzerService) *MarksHandler {
	return &MarksHandler{
		studentRepo: studentRepo,
		analyzer:    analyzer,
	}
}

// HandleAnalyze handles POST /students/:id/marks-analysis. The marks write
// must succeed before any enrichment is attempted; the analysis itself can
// only degrade, not fail.
func (h *MarksHandler) HandleAnalyze(c *fiber.Ctx) error {
	student, err := findStudent(c, h.studentRepo)
	if student == nil {
		return err
	}

	var req models.MarksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Marks) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "marks must not be empty",
		})
	}

	if err := h.studentRepo.ReplaceMarks(c.Context(), student.ID, req.Marks); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store marks",
		})
	}

	result, tier, err := h.analyzer.AnalyzeMarks(c.Context(), student, req.Marks)
	if err != nil {
		if errors.Is(err, services.ErrNoMarks) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze marks",
		})
	}

	return c.JSON(models.EnrichmentResponse{
		StudentID: student.ID.Hex(),
		Tier:      string(tier),
		Result:    result,
	})
}
