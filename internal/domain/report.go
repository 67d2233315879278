package domain

// SubjectMark is one row of a student report.
type SubjectMark struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
	Grade   string  `json:"grade"`
}

// Report is the student's own report card. When no marks exist yet the
// service only fills Message.
type Report struct {
	StudentName  string        `json:"student_name"`
	Marks        []SubjectMark `json:"marks"`
	TotalScore   float64       `json:"total_score"`
	Percentage   float64       `json:"percentage"`
	OverallGrade string        `json:"overall_grade"`
	Message      string        `json:"message,omitempty"`
}

// Empty reports whether the report carries no marks.
func (r *Report) Empty() bool {
	return r == nil || len(r.Marks) == 0
}
