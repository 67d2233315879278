package layouts

import (
	"github.com/nfrund/marksweb/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base is the document shell shared by every page: head, navigation, flash
// notices and the page content.
func Base(title string, nav view.NavData, flashes view.FlashData, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Script(h.Src(htmxSrc)),
			),
			h.Body(
				navBar(nav),
				h.Main(
					h.Class("container"),
					Flashes(flashes),
					content,
				),
			),
		),
	)
}

func navBar(nav view.NavData) g.Node {
	return h.Nav(
		h.Class("nav"),
		g.If(!nav.Authenticated, g.Group{
			h.A(h.Href("/login"), g.Text("Login")),
			g.Text(" "),
			h.A(h.Href("/register"), g.Text("Register")),
		}),
		g.If(nav.Authenticated, g.Group{
			h.A(h.Href("/marks"), g.Text("Marks")),
			g.Text(" "),
			h.A(h.Href("/report"), g.Text("Report")),
			g.If(nav.Username != "", h.Span(h.Class("nav-user"), g.Textf(" Signed in as %s", nav.Username))),
		}),
	)
}

// Flashes renders one notice per flash message. Errors use role=alert so
// they are announced immediately.
func Flashes(flashes view.FlashData) g.Node {
	if flashes.Empty() {
		return nil
	}
	return h.Div(
		h.ID("flashes"),
		g.Map(flashes.Success, func(msg string) g.Node {
			return h.Div(h.Class("notice notice-success"), g.Attr("role", "status"), g.Text(msg))
		}),
		g.Map(flashes.Error, func(msg string) g.Node {
			return h.Div(h.Class("notice notice-error"), g.Attr("role", "alert"), g.Text(msg))
		}),
	)
}
