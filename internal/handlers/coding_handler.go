package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/services"
)

type CodingHandler struct {
	studentRepo repositories.StudentRepository
	github      services.GitHubService
	leetcode    services.LeetCodeService
}

func NewCodingHandler(
	studentRepo repositories.StudentRepository,
	github services.GitHubService,
	leetcode services.LeetCodeService,
) *CodingHandler {
	return &CodingHandler{
		studentRepo: studentRepo,
		github:      github,
		leetcode:    leetcode,
	}
}

// HandleRefresh handles POST /students/:id/coding-profiles/refresh. Each
// platform fetch is independent; one failing does not block the other.
func (h *CodingHandler) HandleRefresh(c *fiber.Ctx) error {
	student, err := findStudent(c, h.studentRepo)
	if student == nil {
		return err
	}

	profiles := student.CodingProfiles
	if profiles.LeetCodeUsername == "" && profiles.GitHubUsername == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No coding platform usernames on record",
		})
	}

	var fetchErrors []string
	fetched := 0

	if profiles.GitHubUsername != "" {
		stats, err := h.github.FetchStats(c.Context(), profiles.GitHubUsername)
		if err != nil {
			log.Printf("⚠️  GitHub fetch failed for %s: %v\n", profiles.GitHubUsername, err)
			fetchErrors = append(fetchErrors, "github: "+err.Error())
		} else {
			profiles.GitHub = stats
			fetched++
		}
	}

	if profiles.LeetCodeUsername != "" {
		stats, err := h.leetcode.FetchStats(c.Context(), profiles.LeetCodeUsername)
		if err != nil {
			log.Printf("⚠️  LeetCode fetch failed for %s: %v\n", profiles.LeetCodeUsername, err)
			fetchErrors = append(fetchErrors, "leetcode: "+err.Error())
		} else {
			profiles.LeetCode = stats
			fetched++
		}
	}

	// Stats kept from an earlier refresh must not mask a failed one: only a
	// fetch that succeeded in this request counts.
	if fetched == 0 {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  "All coding platform fetches failed",
			"errors": fetchErrors,
		})
	}

	profiles.RefreshedAt = time.Now()
	if err := h.studentRepo.UpdateCodingProfiles(c.Context(), student.ID, profiles); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store coding profiles",
		})
	}

	return c.JSON(fiber.Map{
		"student_id":      student.ID.Hex(),
		"coding_profiles": profiles,
		"errors":          fetchErrors,
	})
}
