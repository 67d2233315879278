package pages

import (
	"github.com/nfrund/marksweb/internal/view/dto/auth"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Login is the credentials form. It posts back to /login.
func Login(data auth.LoginData) g.Node {
	return h.Div(
		h.Class("card"),
		h.H2(g.Text("Login")),
		h.Form(
			h.Method("post"), h.Action("/login"),
			h.Input(h.Type("text"), h.Name("username"), h.Placeholder("Username"), h.Value(data.Username), h.Required()),
			h.Br(),
			h.Input(h.Type("password"), h.Name("password"), h.Placeholder("Password"), h.Required()),
			h.Button(h.Type("submit"), g.Text("Login")),
		),
		h.P(g.Text("Don't have an account? "), h.A(h.Href("/register"), g.Text("Register"))),
	)
}

// Register is the new-account form. Each input carries its own name so it
// binds to its own field.
func Register(data auth.RegisterData) g.Node {
	return h.Div(
		h.Class("card"),
		h.H2(g.Text("Register")),
		h.Form(
			h.Method("post"), h.Action("/register"),
			h.Input(h.Type("text"), h.Name("username"), h.Placeholder("Username"), h.Value(data.Username), h.Required()),
			h.Br(),
			h.Input(h.Type("email"), h.Name("email"), h.Placeholder("Email"), h.Value(data.Email), h.Required()),
			h.Br(),
			h.Input(h.Type("password"), h.Name("password"), h.Placeholder("Password"), h.Required()),
			h.Button(h.Type("submit"), g.Text("Register")),
		),
		h.P(g.Text("Already have an account? "), h.A(h.Href("/login"), g.Text("Login"))),
	)
}
