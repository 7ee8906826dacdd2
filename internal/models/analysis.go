package models

// The analysis schemas below mirror the JSON the model is asked to emit
// (camelCase keys). Every field has a declared default so a result can
// always be fully populated no matter how malformed the model output was.

type SkillBreakdown struct {
	Communication    float64 `bson:"communication" json:"communication"`
	Teamwork         float64 `bson:"teamwork" json:"teamwork"`
	Leadership       float64 `bson:"leadership" json:"leadership"`
	ProblemSolving   float64 `bson:"problem_solving" json:"problemSolving"`
	Adaptability     float64 `bson:"adaptability" json:"adaptability"`
	TimeManagement   float64 `bson:"time_management" json:"timeManagement"`
	CriticalThinking float64 `bson:"critical_thinking" json:"criticalThinking"`
	Creativity       float64 `bson:"creativity" json:"creativity"`
}

type SoftSkillsAssessment struct {
	OverallSoftSkillsScore float64        `bson:"overall_soft_skills_score" json:"overallSoftSkillsScore"`
	SkillBreakdown         SkillBreakdown `bson:"skill_breakdown" json:"skillBreakdown"`
	Strengths              []string       `bson:"strengths" json:"strengths"`
	AreasForImprovement    []string       `bson:"areas_for_improvement" json:"areasForImprovement"`
	Summary                string         `bson:"summary" json:"summary"`
	Source                 string         `bson:"source" json:"source"`
}

type ResumeAnalysis struct {
	Skills             []string `bson:"skills" json:"skills"`
	Education          []string `bson:"education" json:"education"`
	Experience         []string `bson:"experience" json:"experience"`
	Projects           []string `bson:"projects" json:"projects"`
	Certifications     []string `bson:"certifications" json:"certifications"`
	OverallResumeScore float64  `bson:"overall_resume_score" json:"overallResumeScore"`
	Summary            string   `bson:"summary" json:"summary"`
	Source             string   `bson:"source" json:"source"`
}

type MarksAnalysis struct {
	OverallAcademicScore float64  `bson:"overall_academic_score" json:"overallAcademicScore"`
	Trend                string   `bson:"trend" json:"trend"`
	StrongSubjects       []string `bson:"strong_subjects" json:"strongSubjects"`
	WeakSubjects         []string `bson:"weak_subjects" json:"weakSubjects"`
	Recommendations      []string `bson:"recommendations" json:"recommendations"`
	Summary              string   `bson:"summary" json:"summary"`
	Source               string   `bson:"source" json:"source"`
}

type ProfileAnalysis struct {
	OverallScore      float64  `bson:"overall_score" json:"overallScore"`
	AcademicStanding  string   `bson:"academic_standing" json:"academicStanding"`
	CodingReadiness   string   `bson:"coding_readiness" json:"codingReadiness"`
	Strengths         []string `bson:"strengths" json:"strengths"`
	Weaknesses        []string `bson:"weaknesses" json:"weaknesses"`
	CareerSuggestions []string `bson:"career_suggestions" json:"careerSuggestions"`
	Summary           string   `bson:"summary" json:"summary"`
	Source            string   `bson:"source" json:"source"`
}

// DefaultSoftSkills is the low-information payload returned when every
// analysis tier has been exhausted.
func DefaultSoftSkills(source string) SoftSkillsAssessment {
	return SoftSkillsAssessment{
		OverallSoftSkillsScore: 70,
		SkillBreakdown: SkillBreakdown{
			Communication:    70,
			Teamwork:         70,
			Leadership:       70,
			ProblemSolving:   70,
			Adaptability:     70,
			TimeManagement:   70,
			CriticalThinking: 70,
			Creativity:       70,
		},
		Strengths:           []string{"Consistent participation"},
		AreasForImprovement: []string{"Detailed assessment unavailable"},
		Summary:             "Soft skills assessment could not be completed. Baseline scores applied.",
		Source:              source,
	}
}

func DefaultResumeAnalysis(source string) ResumeAnalysis {
	return ResumeAnalysis{
		Skills:             []string{},
		Education:          []string{},
		Experience:         []string{},
		Projects:           []string{},
		Certifications:     []string{},
		OverallResumeScore: 60,
		Summary:            "Resume analysis could not be completed. The resume was stored but not evaluated.",
		Source:             source,
	}
}

func DefaultMarksAnalysis(source string) MarksAnalysis {
	return MarksAnalysis{
		OverallAcademicScore: 65,
		Trend:                "stable",
		StrongSubjects:       []string{},
		WeakSubjects:         []string{},
		Recommendations:      []string{"Maintain consistent study habits"},
		Summary:              "Academic analysis could not be completed. Baseline assessment applied.",
		Source:               source,
	}
}

func DefaultProfileAnalysis(source string) ProfileAnalysis {
	return ProfileAnalysis{
		OverallScore:      65,
		AcademicStanding:  "average",
		CodingReadiness:   "developing",
		Strengths:         []string{},
		Weaknesses:        []string{},
		CareerSuggestions: []string{"Software Engineer"},
		Summary:           "Profile analysis could not be completed. Baseline assessment applied.",
		Source:            source,
	}
}
