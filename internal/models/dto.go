package models

type CreateStudentRequest struct {
	RegistrationNumber string `json:"registration_number"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Department         string `json:"department"`
	Semester           int    `json:"semester"`
	LeetCodeUsername   string `json:"leetcode_username"`
	GitHubUsername     string `json:"github_username"`
}

type SoftSkillsRequest struct {
	Responses []string `json:"responses"`
}

type MarksRequest struct {
	Marks []SemesterMark `json:"marks"`
}

// EnrichmentResponse wraps an analysis result together with the fallback
// tier that produced it.
type EnrichmentResponse struct {
	StudentID string `json:"student_id"`
	Tier      string `json:"tier"`
	Result    any    `json:"result"`
}

type ResumeUploadResponse struct {
	StudentID string          `json:"student_id"`
	Filename  string          `json:"filename"`
	Tier      string          `json:"tier"`
	Result    *ResumeAnalysis `json:"result"`
}
