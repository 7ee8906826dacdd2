package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

type fakeStudentRepo struct {
	student          *models.Student
	updatedProfiles  *models.CodingProfiles
	profilesReplaced bool
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error { return nil }
func (f *fakeStudentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	return f.student, nil
}
func (f *fakeStudentRepo) FindByRegistration(ctx context.Context, registrationNumber string) (*models.Student, error) {
	return f.student, nil
}
func (f *fakeStudentRepo) List(ctx context.Context, limit int64) ([]models.Student, error) {
	return nil, nil
}
func (f *fakeStudentRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeStudentRepo) ReplaceMarks(ctx context.Context, id primitive.ObjectID, marks []models.SemesterMark) error {
	return nil
}
func (f *fakeStudentRepo) UpdateCodingProfiles(ctx context.Context, id primitive.ObjectID, profiles models.CodingProfiles) error {
	f.updatedProfiles = &profiles
	f.profilesReplaced = true
	return nil
}
func (f *fakeStudentRepo) AttachSoftSkills(ctx context.Context, id primitive.ObjectID, result *models.SoftSkillsAssessment) error {
	return nil
}
func (f *fakeStudentRepo) AttachResumeAnalysis(ctx context.Context, id primitive.ObjectID, result *models.ResumeAnalysis) error {
	return nil
}
func (f *fakeStudentRepo) AttachMarksAnalysis(ctx context.Context, id primitive.ObjectID, result *models.MarksAnalysis) error {
	return nil
}
func (f *fakeStudentRepo) AttachProfileAnalysis(ctx context.Context, id primitive.ObjectID, result *models.ProfileAnalysis) error {
	return nil
}

type fakeGitHubService struct {
	stats *models.GitHubStats
	err   error
}

func (f *fakeGitHubService) FetchStats(ctx context.Context, username string) (*models.GitHubStats, error) {
	return f.stats, f.err
}

type fakeLeetCodeService struct {
	stats *models.LeetCodeStats
	err   error
}

func (f *fakeLeetCodeService) FetchStats(ctx context.Context, username string) (*models.LeetCodeStats, error) {
	return f.stats, f.err
}

func newRefreshApp(repo *fakeStudentRepo, gh *fakeGitHubService, lc *fakeLeetCodeService) *fiber.App {
	app := fiber.New()
	handler := NewCodingHandler(repo, gh, lc)
	app.Post("/students/:id/coding-profiles/refresh", handler.HandleRefresh)
	return app
}

// Stats stored by an earlier refresh must not disguise a refresh where every
// attempted fetch failed: no 200, no write, no new refresh timestamp.
func TestHandleRefreshAllFetchesFailedKeepsStoredStats(t *testing.T) {
	staleRefresh := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeStudentRepo{student: &models.Student{
		ID:                 primitive.NewObjectID(),
		RegistrationNumber: "RA2111003010001",
		CodingProfiles: models.CodingProfiles{
			GitHubUsername: "octocat",
			GitHub:         &models.GitHubStats{PublicRepos: 7, Followers: 3},
			RefreshedAt:    staleRefresh,
		},
	}}
	gh := &fakeGitHubService{err: errors.New("api rate limit exceeded")}
	app := newRefreshApp(repo, gh, &fakeLeetCodeService{})

	req := httptest.NewRequest(http.MethodPost, "/students/"+repo.student.ID.Hex()+"/coding-profiles/refresh", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	require.False(t, repo.profilesReplaced, "a fully failed refresh must not persist anything")
}

func TestHandleRefreshPartialFailurePersistsWhatSucceeded(t *testing.T) {
	repo := &fakeStudentRepo{student: &models.Student{
		ID: primitive.NewObjectID(),
		CodingProfiles: models.CodingProfiles{
			GitHubUsername:   "octocat",
			LeetCodeUsername: "octocat_lc",
			GitHub:           &models.GitHubStats{PublicRepos: 7},
		},
	}}
	gh := &fakeGitHubService{err: errors.New("connection reset")}
	lc := &fakeLeetCodeService{stats: &models.LeetCodeStats{TotalSolved: 142, Ranking: 88000}}
	app := newRefreshApp(repo, gh, lc)

	req := httptest.NewRequest(http.MethodPost, "/students/"+repo.student.ID.Hex()+"/coding-profiles/refresh", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)

	require.True(t, repo.profilesReplaced)
	require.Equal(t, 142, repo.updatedProfiles.LeetCode.TotalSolved)
	// the stored GitHub stats ride along untouched
	require.Equal(t, 7, repo.updatedProfiles.GitHub.PublicRepos)
	require.False(t, repo.updatedProfiles.RefreshedAt.IsZero())
}

func TestHandleRefreshNoUsernamesIsBadRequest(t *testing.T) {
	repo := &fakeStudentRepo{student: &models.Student{ID: primitive.NewObjectID()}}
	app := newRefreshApp(repo, &fakeGitHubService{}, &fakeLeetCodeService{})

	req := httptest.NewRequest(http.MethodPost, "/students/"+repo.student.ID.Hex()+"/coding-profiles/refresh", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.False(t, repo.profilesReplaced)
}
