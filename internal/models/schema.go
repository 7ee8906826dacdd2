package models

// A Schema describes the shape the normalizer must guarantee: every
// declared field present, correctly typed, with the declared default
// substituted for anything absent or malformed in the model output.

type FieldKind int

const (
	KindNumber FieldKind = iota
	KindString
	KindStringList
	KindObject
)

type Field struct {
	Name    string
	Kind    FieldKind
	Default any
	Fields  []Field // object fields, only when Kind is KindObject
}

type Schema struct {
	Fields []Field
}

func numField(name string, def float64) Field {
	return Field{Name: name, Kind: KindNumber, Default: def}
}

func strField(name, def string) Field {
	return Field{Name: name, Kind: KindString, Default: def}
}

func listField(name string) Field {
	return Field{Name: name, Kind: KindStringList, Default: []string{}}
}

var SoftSkillsSchema = Schema{Fields: []Field{
	numField("overallSoftSkillsScore", 70),
	{Name: "skillBreakdown", Kind: KindObject, Fields: []Field{
		numField("communication", 70),
		numField("teamwork", 70),
		numField("leadership", 70),
		numField("problemSolving", 70),
		numField("adaptability", 70),
		numField("timeManagement", 70),
		numField("criticalThinking", 70),
		numField("creativity", 70),
	}},
	listField("strengths"),
	listField("areasForImprovement"),
	strField("summary", "No summary available."),
}}

var ResumeSchema = Schema{Fields: []Field{
	listField("skills"),
	listField("education"),
	listField("experience"),
	listField("projects"),
	listField("certifications"),
	numField("overallResumeScore", 60),
	strField("summary", "No summary available."),
}}

var MarksSchema = Schema{Fields: []Field{
	numField("overallAcademicScore", 65),
	strField("trend", "stable"),
	listField("strongSubjects"),
	listField("weakSubjects"),
	listField("recommendations"),
	strField("summary", "No summary available."),
}}

var ProfileSchema = Schema{Fields: []Field{
	numField("overallScore", 65),
	strField("academicStanding", "average"),
	strField("codingReadiness", "developing"),
	listField("strengths"),
	listField("weaknesses"),
	listField("careerSuggestions"),
	strField("summary", "No summary available."),
}}
