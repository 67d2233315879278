package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marksweb/internal/apiclient"
)

// LoginPath is where anonymous visitors of protected pages are sent.
const LoginPath = "/login"

// AuthState is the position of a visitor in the auth gate.
type AuthState int

const (
	Anonymous AuthState = iota
	Authenticated
)

func (s AuthState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// StateOf derives the gate state from the stored token. A visitor is
// authenticated exactly while a non-empty token is stored, so the state
// survives page reloads.
func StateOf(tokens apiclient.TokenSource) AuthState {
	if tokens != nil && tokens.Token() != "" {
		return Authenticated
	}
	return Anonymous
}

// HTMX request and response headers.
const (
	HeaderHXRequest  = "HX-Request"
	HeaderHXRedirect = "HX-Redirect"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// TokensFunc returns the token store of the current request.
type TokensFunc func(c echo.Context) apiclient.TokenSource

// RequireAuth redirects anonymous visitors to the login page. htmx requests
// get an HX-Redirect instead, so the login page is loaded as a whole page
// rather than swapped into the target element.
func RequireAuth(tokensFor TokensFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if StateOf(tokensFor(c)) != Authenticated {
				FromContext(c.Request().Context()).Debug("anonymous access to protected page", "path", c.Request().URL.Path)
				if IsHTMX(c) {
					c.Response().Header().Set(HeaderHXRedirect, LoginPath)
					return c.NoContent(http.StatusOK)
				}
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}
			return next(c)
		}
	}
}
