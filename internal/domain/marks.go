package domain

import "strconv"

// Subject names accepted by the marks endpoint.
const (
	SubjectMath     = "math"
	SubjectScience  = "science"
	SubjectEnglish  = "english"
	SubjectHistory  = "history"
	SubjectComputer = "computer"
)

// Subjects lists every MarksRecord key in display order.
var Subjects = []string{
	SubjectMath,
	SubjectScience,
	SubjectEnglish,
	SubjectHistory,
	SubjectComputer,
}

// MarksRecord is the fixed-shape subject to score mapping submitted for
// grading. Scores stay strings exactly as typed.
type MarksRecord struct {
	Math     string `json:"math" form:"math"`
	Science  string `json:"science" form:"science"`
	English  string `json:"english" form:"english"`
	History  string `json:"history" form:"history"`
	Computer string `json:"computer" form:"computer"`
}

// field returns a pointer to the value stored under subject, or nil for an
// unknown subject.
func (m *MarksRecord) field(subject string) *string {
	switch subject {
	case SubjectMath:
		return &m.Math
	case SubjectScience:
		return &m.Science
	case SubjectEnglish:
		return &m.English
	case SubjectHistory:
		return &m.History
	case SubjectComputer:
		return &m.Computer
	}
	return nil
}

// Get returns the score typed for subject.
func (m MarksRecord) Get(subject string) string {
	if f := m.field(subject); f != nil {
		return *f
	}
	return ""
}

// Set updates a single subject. It reports false for subjects outside the
// fixed key set.
func (m *MarksRecord) Set(subject, value string) bool {
	f := m.field(subject)
	if f == nil {
		return false
	}
	*f = value
	return true
}

// MarksResult is the summary computed by the grading service.
type MarksResult struct {
	Average float64 `json:"average"`
	Grade   string  `json:"grade"`
}

// FormatScore renders a score without trailing zeros, so 80 prints as "80"
// and 82.5 as "82.5".
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
