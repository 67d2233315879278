package pages

import (
	"github.com/nfrund/marksweb/internal/domain"
	"github.com/nfrund/marksweb/internal/view/dto/grades"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// MarksResultID is the element htmx swaps after a submit.
const MarksResultID = "marks-result"

// SubjectLabel turns a subject key into its form label. Casers keep state, so
// each call gets its own.
func SubjectLabel(subject string) string {
	return cases.Title(language.English).String(subject)
}

// Marks is the marks entry form followed by the result area. Without htmx the
// form posts normally and the whole page comes back.
func Marks(data grades.MarksData) g.Node {
	return h.Div(
		h.Class("card"),
		h.H2(g.Text("Enter Marks")),
		h.Form(
			h.Method("post"), h.Action("/marks"),
			hx.Post("/marks"), hx.Target("#"+MarksResultID), hx.Swap("outerHTML"),
			g.Map(domain.Subjects, func(subject string) g.Node {
				return h.Div(
					h.Label(h.For(subject), g.Text(SubjectLabel(subject)+": ")),
					h.Input(
						h.Type("number"), h.ID(subject), h.Name(subject),
						g.Attr("step", "any"),
						h.Value(data.Record.Get(subject)),
					),
				)
			}),
			h.Button(h.Type("submit"), g.Text("Submit")),
		),
		MarksResult(data),
	)
}

// MarksResult renders the outcome of the last submit. It is always present
// (possibly empty) so htmx has a target to replace.
func MarksResult(data grades.MarksData) g.Node {
	return h.Div(
		h.ID(MarksResultID),
		g.If(data.Error != "", h.Div(h.Class("notice notice-error"), g.Attr("role", "alert"), g.Text(data.Error))),
		g.If(data.Result != nil && data.Error == "", g.Group{
			h.H3(g.Text("Average: "+averageText(data.Result))),
			h.H3(g.Text("Grade: "+gradeText(data.Result))),
		}),
	)
}

func averageText(r *domain.MarksResult) string {
	if r == nil {
		return ""
	}
	return domain.FormatScore(r.Average)
}

func gradeText(r *domain.MarksResult) string {
	if r == nil {
		return ""
	}
	return r.Grade
}

// Report lists the student's marks with the totals computed by the service.
func Report(data grades.ReportData) g.Node {
	return h.Div(
		h.Class("card"),
		h.H2(g.Text("Report")),
		g.If(data.Error != "", h.Div(h.Class("notice notice-error"), g.Attr("role", "alert"), g.Text(data.Error))),
		g.If(data.Error == "", reportBody(data.Report)),
	)
}

func reportBody(r *domain.Report) g.Node {
	if r.Empty() {
		msg := "No marks have been entered for you yet."
		if r != nil && r.Message != "" {
			msg = r.Message
		}
		return h.P(h.Class("empty"), g.Text(msg))
	}

	return g.Group{
		g.If(r.StudentName != "", h.H3(g.Text(r.StudentName))),
		h.Table(
			h.THead(h.Tr(h.Th(g.Text("Subject")), h.Th(g.Text("Score")), h.Th(g.Text("Grade")))),
			h.TBody(
				g.Map(r.Marks, func(m domain.SubjectMark) g.Node {
					return h.Tr(
						h.Td(g.Text(SubjectLabel(m.Subject))),
						h.Td(g.Text(domain.FormatScore(m.Score))),
						h.Td(g.Text(m.Grade)),
					)
				}),
			),
		),
		h.P(g.Text("Total: "+domain.FormatScore(r.TotalScore))),
		h.P(g.Text("Percentage: "+domain.FormatScore(r.Percentage)+"%")),
		h.P(g.Text("Overall grade: "+r.OverallGrade)),
		h.P(h.A(h.Href("/report/export.xlsx"), g.Text("Download as Excel"))),
	}
}
