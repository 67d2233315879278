package grades

import "github.com/nfrund/marksweb/internal/domain"

// MarksData is the view-local state of the marks entry page: the record as
// typed, and either the computed result or an error notice.
type MarksData struct {
	Record domain.MarksRecord
	Result *domain.MarksResult
	Error  string
}

// ReportData is the view model for the report page.
type ReportData struct {
	Report *domain.Report
	Error  string
}
