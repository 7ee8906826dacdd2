package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegistrationNumber string             `bson:"registration_number" json:"registration_number"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Department         string             `bson:"department" json:"department"`
	Semester           int                `bson:"semester" json:"semester"`
	Marks              []SemesterMark     `bson:"marks,omitempty" json:"marks,omitempty"`
	CodingProfiles     CodingProfiles     `bson:"coding_profiles" json:"coding_profiles"`

	// Enrichment results. Each one is fully populated when present and
	// carries a provenance tag identifying the fallback tier that produced it.
	SoftSkills      *SoftSkillsAssessment `bson:"soft_skills,omitempty" json:"soft_skills,omitempty"`
	ResumeAnalysis  *ResumeAnalysis       `bson:"resume_analysis,omitempty" json:"resume_analysis,omitempty"`
	MarksAnalysis   *MarksAnalysis        `bson:"marks_analysis,omitempty" json:"marks_analysis,omitempty"`
	ProfileAnalysis *ProfileAnalysis      `bson:"profile_analysis,omitempty" json:"profile_analysis,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type SemesterMark struct {
	Subject  string  `bson:"subject" json:"subject"`
	Semester int     `bson:"semester" json:"semester"`
	Score    float64 `bson:"score" json:"score"`
	MaxScore float64 `bson:"max_score" json:"max_score"`
}

type CodingProfiles struct {
	LeetCodeUsername string         `bson:"leetcode_username,omitempty" json:"leetcode_username,omitempty"`
	GitHubUsername   string         `bson:"github_username,omitempty" json:"github_username,omitempty"`
	LeetCode         *LeetCodeStats `bson:"leetcode,omitempty" json:"leetcode,omitempty"`
	GitHub           *GitHubStats   `bson:"github,omitempty" json:"github,omitempty"`
	RefreshedAt      time.Time      `bson:"refreshed_at,omitempty" json:"refreshed_at,omitempty"`
}

type LeetCodeStats struct {
	TotalSolved  int `bson:"total_solved" json:"total_solved"`
	EasySolved   int `bson:"easy_solved" json:"easy_solved"`
	MediumSolved int `bson:"medium_solved" json:"medium_solved"`
	HardSolved   int `bson:"hard_solved" json:"hard_solved"`
	Ranking      int `bson:"ranking" json:"ranking"`
}

type GitHubStats struct {
	PublicRepos  int      `bson:"public_repos" json:"public_repos"`
	Followers    int      `bson:"followers" json:"followers"`
	TotalStars   int      `bson:"total_stars" json:"total_stars"`
	RecentPushes int      `bson:"recent_pushes" json:"recent_pushes"`
	TopLanguages []string `bson:"top_languages,omitempty" json:"top_languages,omitempty"`
}

func (Student) CollectionName() string {
	return "students"
}
