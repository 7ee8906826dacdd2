package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

type stubStudentRepo struct {
	attachErr       error
	softSkills      *models.SoftSkillsAssessment
	resumeAnalysis  *models.ResumeAnalysis
	marksAnalysis   *models.MarksAnalysis
	profileAnalysis *models.ProfileAnalysis
}

func (s *stubStudentRepo) Create(ctx context.Context, student *models.Student) error { return nil }
func (s *stubStudentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	return nil, errors.New("not implemented")
}
func (s *stubStudentRepo) FindByRegistration(ctx context.Context, registrationNumber string) (*models.Student, error) {
	return nil, errors.New("not implemented")
}
func (s *stubStudentRepo) List(ctx context.Context, limit int64) ([]models.Student, error) {
	return nil, nil
}
func (s *stubStudentRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (s *stubStudentRepo) ReplaceMarks(ctx context.Context, id primitive.ObjectID, marks []models.SemesterMark) error {
	return nil
}
func (s *stubStudentRepo) UpdateCodingProfiles(ctx context.Context, id primitive.ObjectID, profiles models.CodingProfiles) error {
	return nil
}
func (s *stubStudentRepo) AttachSoftSkills(ctx context.Context, id primitive.ObjectID, result *models.SoftSkillsAssessment) error {
	s.softSkills = result
	return s.attachErr
}
func (s *stubStudentRepo) AttachResumeAnalysis(ctx context.Context, id primitive.ObjectID, result *models.ResumeAnalysis) error {
	s.resumeAnalysis = result
	return s.attachErr
}
func (s *stubStudentRepo) AttachMarksAnalysis(ctx context.Context, id primitive.ObjectID, result *models.MarksAnalysis) error {
	s.marksAnalysis = result
	return s.attachErr
}
func (s *stubStudentRepo) AttachProfileAnalysis(ctx context.Context, id primitive.ObjectID, result *models.ProfileAnalysis) error {
	s.profileAnalysis = result
	return s.attachErr
}

type fakeExtractor struct {
	analysis string
	err      error
	calls    int
}

func (f *fakeExtractor) Health(ctx context.Context) error { return f.err }
func (f *fakeExtractor) AnalyzeResume(ctx context.Context, filePath, originalName string) (string, error) {
	f.calls++
	return f.analysis, f.err
}

type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(filePath string) (string, error) {
	return f.text, f.err
}

func testStudent() *models.Student {
	return &models.Student{
		ID:                 primitive.NewObjectID(),
		RegistrationNumber: "RA2111003010001",
		Name:               "Asha Verma",
		Department:         "CSE",
		Semester:           5,
	}
}

func newTestAnalyzer(repo *stubStudentRepo, llm *fakeLLM, extractor *fakeExtractor, parser *fakePDFParser) AnalyzerService {
	return NewAnalyzerService(repo, llm, extractor, parser, nil, 5*time.Second)
}

func fiveResponses() []string {
	return []string{
		"I led a four-person team project last semester.",
		"I prefer resolving conflicts by talking one on one.",
		"I plan my week every Sunday evening.",
		"When my approach fails I ask a senior for a review.",
		"I volunteered to present our final demo.",
	}
}

func TestAnalyzeSoftSkillsRejectsWrongResponseCount(t *testing.T) {
	repo := &stubStudentRepo{}
	llm := &fakeLLM{}
	analyzer := newTestAnalyzer(repo, llm, &fakeExtractor{}, &fakePDFParser{})

	for _, n := range []int{0, 4, 6} {
		responses := make([]string, n)
		for i := range responses {
			responses[i] = "answer"
		}

		_, _, err := analyzer.AnalyzeSoftSkills(context.Background(), testStudent(), responses)
		require.ErrorIs(t, err, ErrResponseCount, "count %d", n)
	}

	// validation fails before anything external is touched
	require.Zero(t, llm.calls)
	require.Nil(t, repo.softSkills)
}

func TestAnalyzeSoftSkillsPrimary(t *testing.T) {
	repo := &stubStudentRepo{}
	llm := &fakeLLM{response: "Here is my assessment:\n```json\n{\n" +
		`  "overallSoftSkillsScore": 85,` + "\n" +
		`  "skillBreakdown": {"communication": 90, "teamwork": 88, "leadership": 80, "problemSolving": 84, "adaptability": 82, "timeManagement": 78, "criticalThinking": 86, "creativity": 81},` + "\n" +
		`  "strengths": ["clear communicator"],` + "\n" +
		`  "areasForImprovement": ["delegation"],` + "\n" +
		`  "summary": "Strong collaborator."` + "\n}\n```"}
	analyzer := newTestAnalyzer(repo, llm, &fakeExtractor{}, &fakePDFParser{})

	result, tier, err := analyzer.AnalyzeSoftSkills(context.Background(), testStudent(), fiveResponses())

	require.NoError(t, err)
	require.Equal(t, TierPrimary, tier)
	require.Equal(t, float64(85), result.OverallSoftSkillsScore)
	require.Equal(t, float64(90), result.SkillBreakdown.Communication)
	require.Equal(t, float64(81), result.SkillBreakdown.Creativity)
	require.Equal(t, []string{"clear communicator"}, result.Strengths)
	require.Equal(t, string(TierPrimary), result.Source)

	require.NotNil(t, repo.softSkills)
	require.Equal(t, result, *repo.softSkills)
}

func TestAnalyzeSoftSkillsProseOutputFallsBack(t *testing.T) {
	repo := &stubStudentRepo{}
	llm := &fakeLLM{response: "The student communicates well and shows initiative."}
	analyzer := newTestAnalyzer(repo, llm, &fakeExtractor{}, &fakePDFParser{})

	result, tier, err := analyzer.AnalyzeSoftSkills(context.Background(), testStudent(), fiveResponses())

	require.NoError(t, err)
	require.Equal(t, TierBasicFallback, tier)
	require.Equal(t, float64(70), result.OverallSoftSkillsScore)
	require.Equal(t, float64(70), result.SkillBreakdown.Teamwork)
	require.Equal(t, string(TierBasicFallback), result.Source)
}

func TestAnalyzeSoftSkillsPersistFailureIsSwallowed(t *testing.T) {
	repo := &stubStudentRepo{attachErr: errors.New("write conflict")}
	llm := &fakeLLM{response: `{"overallSoftSkillsScore": 75, "summary": "ok"}`}
	analyzer := newTestAnalyzer(repo, llm, &fakeExtractor{}, &fakePDFParser{})

	result, tier, err := analyzer.AnalyzeSoftSkills(context.Background(), testStudent(), fiveResponses())

	require.NoError(t, err)
	require.Equal(t, TierPrimary, tier)
	require.Equal(t, float64(75), result.OverallSoftSkillsScore)
}

func TestAnalyzeMarksRejectsEmptyMarks(t *testing.T) {
	repo := &stubStudentRepo{}
	llm := &fakeLLM{}
	analyzer := newTestAnalyzer(repo, llm, &fakeExtractor{}, &fakePDFParser{})

	_, _, err := analyzer.AnalyzeMarks(context.Background(), testStudent(), nil)

	require.ErrorIs(t, err, ErrNoMarks)
	require.Zero(t, llm.calls)
}

func TestAnalyzeMarksPrimary(t *testing.T) {
	repo := &stubStudentRepo{}
	llm := &fakeLLM{response: `{"overallAcademicScore": 82, "trend": "improving", "strongSubjects": ["Algorithms"], "weakSubjects": [], "recommendations": ["Keep pace"], "summary": "Upward trajectory."}`}
	analyzer := newTestAnalyzer(repo, llm, &fakeExtractor{}, &fakePDFParser{})

	marks := []models.SemesterMark{
		{Subject: "Algorithms", Semester: 4, Score: 88, MaxScore: 100},
		{Subject: "Databases", Semester: 4, Score: 79, MaxScore: 100},
	}
	result, tier, err := analyzer.AnalyzeMarks(context.Background(), testStudent(), marks)

	require.NoError(t, err)
	require.Equal(t, TierPrimary, tier)
	require.Equal(t, "improving", result.Trend)
	require.Equal(t, []string{"Algorithms"}, result.StrongSubjects)
	require.NotNil(t, repo.marksAnalysis)
}

func TestAnalyzeResumeExtractorDownUsesLocalText(t *testing.T) {
	repo := &stubStudentRepo{}
	llm := &fakeLLM{response: `{"skills": ["Go", "SQL"], "overallResumeScore": 72, "summary": "Backend-leaning resume."}`}
	extractor := &fakeExtractor{err: errors.New("context deadline exceeded")}
	parser := &fakePDFParser{text: "Asha Verma. Projects: URL shortener in Go. Skills: Go, SQL."}
	analyzer := newTestAnalyzer(repo, llm, extractor, parser)

	result, tier := analyzer.AnalyzeResume(context.Background(), testStudent(), "/tmp/resume.pdf", "resume.pdf")

	require.Equal(t, TierLLMFallback, tier)
	require.Equal(t, 1, extractor.calls)
	require.Equal(t, []string{"Go", "SQL"}, result.Skills)
	require.Equal(t, float64(72), result.OverallResumeScore)
	require.Equal(t, string(TierLLMFallback), result.Source)
	require.NotNil(t, repo.resumeAnalysis)
}

func TestAnalyzeResumeEverythingDown(t *testing.T) {
	repo := &stubStudentRepo{}
	llm := &fakeLLM{err: errors.New("model unavailable")}
	extractor := &fakeExtractor{err: errors.New("connection refused")}
	parser := &fakePDFParser{err: errors.New("not a PDF")}
	analyzer := newTestAnalyzer(repo, llm, extractor, parser)

	result, tier := analyzer.AnalyzeResume(context.Background(), testStudent(), "/tmp/resume.pdf", "resume.pdf")

	require.Equal(t, TierErrorFallback, tier)
	require.Equal(t, float64(60), result.OverallResumeScore)
	require.Equal(t, string(TierErrorFallback), result.Source)
}

func TestAnalyzeProfileAggregatesWithoutEnrichments(t *testing.T) {
	repo := &stubStudentRepo{}
	llm := &fakeLLM{response: `{"overallScore": 68, "academicStanding": "average", "codingReadiness": "developing", "strengths": ["steady"], "weaknesses": [], "careerSuggestions": ["Backend Engineer"], "summary": "Solid base."}`}
	analyzer := newTestAnalyzer(repo, llm, &fakeExtractor{}, &fakePDFParser{})

	result, tier := analyzer.AnalyzeProfile(context.Background(), testStudent())

	require.Equal(t, TierPrimary, tier)
	require.Equal(t, float64(68), result.OverallScore)
	require.Equal(t, "average", result.AcademicStanding)
	require.NotNil(t, repo.profileAnalysis)
}
