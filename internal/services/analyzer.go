package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
)

// ErrResponseCount is the validation failure for soft-skill submissions.
// It is surfaced to the caller immediately; no fallback ladder is entered.
var ErrResponseCount = errors.New("exactly 5 soft skill responses are required")

// ErrNoMarks is the validation failure for an empty marks submission.
var ErrNoMarks = errors.New("at least one semester mark is required")

// AnalyzerService runs the enrichment orchestrators. Apart from validation
// errors, its methods are total: AI-related faults only degrade the fallback
// tier, never the call.
type AnalyzerService interface {
	AnalyzeSoftSkills(ctx context.Context, student *models.Student, responses []string) (models.SoftSkillsAssessment, Tier, error)
	AnalyzeResume(ctx context.Context, student *models.Student, filePath, originalName string) (models.ResumeAnalysis, Tier)
	AnalyzeMarks(ctx context.Context, student *models.Student, marks []models.SemesterMark) (models.MarksAnalysis, Tier, error)
	AnalyzeProfile(ctx context.Context, student *models.Student) (models.ProfileAnalysis, Tier)
}

type analyzerService struct {
	studentRepo   repositories.StudentRepository
	gemini        GeminiService
	extractor     ResumeExtractorService
	pdfParser     PDFParserService
	vector        ProfileVectorService
	promptBuilder *PromptBuilder
	callTimeout   time.Duration
}

func NewAnalyzerService(
	studentRepo repositories.StudentRepository,
	gemini GeminiService,
	extractor ResumeExtractorService,
	pdfParser PDFParserService,
	vector ProfileVectorService,
	callTimeout time.Duration,
) AnalyzerService {
	return &analyzerService{
		studentRepo:   studentRepo,
		gemini:        gemini,
		extractor:     extractor,
		pdfParser:     pdfParser,
		vector:        vector,
		promptBuilder: NewPromptBuilder(),
		callTimeout:   callTimeout,
	}
}

// persist runs a repository write after a successful enrichment. A failure
// here is logged and swallowed; the response being prepared is unaffected.
// It uses a detached context so a client disconnect cannot abort the write.
func (a *analyzerService) persist(studentID primitive.ObjectID, what string, write func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := write(ctx); err != nil {
		log.Printf("⚠️  Failed to persist %s for student %s: %v\n", what, studentID.Hex(), err)
	}
}
