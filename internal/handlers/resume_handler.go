package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/services"
)

type ResumeHandler struct {
	studentRepo    repositories.StudentRepository
	storageService services.StorageService
	analyzer       services.AnalyzerService
	maxFileSize    int64
}

func NewResumeHandler(
	studentRepo repositories.StudentRepository,
	storageService services.StorageService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		studentRepo:    studentRepo,
		storageService: storageService,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /students/:id/resume. The staged file is a
// scoped resource: it is removed on every exit path once the analysis has
// run, whatever tier it ended on.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	student, err := findStudent(c, h.studentRepo)
	if student == nil {
		return err
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A 'resume' file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to stage resume: %v", err),
		})
	}
	defer h.storageService.RemoveQuietly(filePath)

	result, tier := h.analyzer.AnalyzeResume(c.Context(), student, filePath, file.Filename)

	return c.JSON(models.ResumeUploadResponse{
		StudentID: student.ID.Hex(),
		Filename:  filename,
		Tier:      string(tier),
		Result:    &result,
	})
}
