package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSoftSkillsPrompt creates the structuring prompt for the five
// situational soft-skill responses.
func (pb *PromptBuilder) BuildSoftSkillsPrompt(responsesJSON string) string {
	return fmt.Sprintf(`You are an expert behavioral assessor evaluating a student's soft skills from their written responses to five situational questions.

STUDENT RESPONSES (JSON array, in question order):
%s

Assess the responses for communication clarity, collaboration, leadership potential, problem solving, adaptability, time management, critical thinking and creativity. Score each on a 0-100 scale.

Return your response in the following JSON format:
{
  "overallSoftSkillsScore": <0-100>,
  "skillBreakdown": {
    "communication": <0-100>,
    "teamwork": <0-100>,
    "leadership": <0-100>,
    "problemSolving": <0-100>,
    "adaptability": <0-100>,
    "timeManagement": <0-100>,
    "criticalThinking": <0-100>,
    "creativity": <0-100>
  },
  "strengths": ["<strength>", ...],
  "areasForImprovement": ["<area>", ...],
  "summary": "<2-3 sentence overall assessment>"
}

Be objective. Quote specific phrasing from the responses to justify scores where possible.`, responsesJSON)
}

// BuildResumeStructuringPrompt turns the extraction service's analysis text
// into the strict resume schema.
func (pb *PromptBuilder) BuildResumeStructuringPrompt(analysisText string) string {
	return fmt.Sprintf(`You are an expert resume reviewer. A document analysis service has already extracted the following analysis of a student's resume:

EXTRACTED ANALYSIS:
%s

Structure this into the exact JSON schema below. Score the resume overall on a 0-100 scale considering skills relevance, project depth and presentation.

Return your response in the following JSON format:
{
  "skills": ["<skill>", ...],
  "education": ["<degree / institution / year>", ...],
  "experience": ["<role summary>", ...],
  "projects": ["<project summary>", ...],
  "certifications": ["<certification>", ...],
  "overallResumeScore": <0-100>,
  "summary": "<2-3 sentence assessment>"
}`, analysisText)
}

// BuildResumeRawPrompt is the simpler prompt used on the LLM-only path when
// the extraction service is unavailable and only locally-read text exists.
func (pb *PromptBuilder) BuildResumeRawPrompt(rawText string) string {
	return fmt.Sprintf(`You are an expert resume reviewer. Below is the raw text of a student's resume. It may be poorly formatted.

RESUME TEXT:
%s

Return your response in the following JSON format:
{
  "skills": ["<skill>", ...],
  "education": ["<entry>", ...],
  "experience": ["<entry>", ...],
  "projects": ["<entry>", ...],
  "certifications": ["<entry>", ...],
  "overallResumeScore": <0-100>,
  "summary": "<2-3 sentence assessment>"
}`, rawText)
}

// BuildMarksAnalysisPrompt creates the structuring prompt for semester marks.
func (pb *PromptBuilder) BuildMarksAnalysisPrompt(marksJSON string) string {
	return fmt.Sprintf(`You are an academic advisor analyzing a student's semester marks.

MARKS (JSON):
%s

Identify the performance trend across semesters, the strongest and weakest subjects, and concrete recommendations.

Return your response in the following JSON format:
{
  "overallAcademicScore": <0-100>,
  "trend": "<improving|declining|stable>",
  "strongSubjects": ["<subject>", ...],
  "weakSubjects": ["<subject>", ...],
  "recommendations": ["<recommendation>", ...],
  "summary": "<2-3 sentence assessment>"
}`, marksJSON)
}

// BuildProfileAnalysisPrompt creates the holistic profile prompt combining
// everything known about the student plus optional peer context.
func (pb *PromptBuilder) BuildProfileAnalysisPrompt(profileJSON, peerContext string) string {
	if strings.TrimSpace(peerContext) == "" {
		peerContext = "No peer context available."
	}

	return fmt.Sprintf(`You are a career counselor producing a holistic assessment of a student from their aggregated academic, coding-platform, resume and soft-skills data.

STUDENT PROFILE (JSON):
%s

SIMILAR PEER PROFILES (for calibration only, do not copy):
%s

Return your response in the following JSON format:
{
  "overallScore": <0-100>,
  "academicStanding": "<excellent|good|average|below average>",
  "codingReadiness": "<industry ready|developing|beginner>",
  "strengths": ["<strength>", ...],
  "weaknesses": ["<weakness>", ...],
  "careerSuggestions": ["<career path>", ...],
  "summary": "<3-4 sentence assessment>"
}`, profileJSON, peerContext)
}

// FormatPeerContext renders similar-profile matches for prompt injection.
func FormatPeerContext(matches []ProfileMatch) string {
	if len(matches) == 0 {
		return ""
	}

	var parts []string
	for i, m := range matches {
		parts = append(parts, fmt.Sprintf("--- Peer %d (similarity %.2f) ---\n%s",
			i+1, m.Score, strings.TrimSpace(m.Summary)))
	}
	return strings.Join(parts, "\n\n")
}
