package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
)

type StudentHandler struct {
	studentRepo repositories.StudentRepository
}

func NewStudentHandler(studentRepo repositories.StudentRepository) *StudentHandler {
	return &StudentHandler{
		studentRepo: studentRepo,
	}
}

// HandleCreate handles POST /students
func (h *StudentHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateStudentRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.RegistrationNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "registration_number is required",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	student := &models.Student{
		RegistrationNumber: req.RegistrationNumber,
		Name:               req.Name,
		Email:              req.Email,
		Department:         req.Department,
		Semester:           req.Semester,
		CodingProfiles: models.CodingProfiles{
			LeetCodeUsername: req.LeetCodeUsername,
			GitHubUsername:   req.GitHubUsername,
		},
	}

	if err := h.studentRepo.Create(c.Context(), student); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Failed to create student: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

// HandleGet handles GET /students/:id
func (h *StudentHandler) HandleGet(c *fiber.Ctx) error {
	student, err := findStudent(c, h.studentRepo)
	if student == nil {
		return err
	}
	return c.JSON(student)
}

// HandleGetByRegistration handles GET /students/by-registration/:regno
func (h *StudentHandler) HandleGetByRegistration(c *fiber.Ctx) error {
	student, err := h.studentRepo.FindByRegistration(c.Context(), c.Params("regno"))
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Student not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student",
		})
	}
	return c.JSON(student)
}

// HandleList handles GET /students
func (h *StudentHandler) HandleList(c *fiber.Ctx) error {
	students, err := h.studentRepo.List(c.Context(), int64(c.QueryInt("limit", 100)))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list students",
		})
	}
	return c.JSON(fiber.Map{
		"count":    len(students),
		"students": students,
	})
}

// HandleDelete handles DELETE /students/:id
func (h *StudentHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	if err := h.studentRepo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Student not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete student",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// findStudent resolves the :id path param to a student document. On failure
// it writes the error response itself and returns a nil student; callers
// must return the accompanying error without writing anything further.
func findStudent(c *fiber.Ctx, repo repositories.StudentRepository) (*models.Student, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	student, err := repo.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Student not found",
			})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student",
		})
	}

	return student, nil
}
