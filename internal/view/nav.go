package view

import "github.com/labstack/echo/v4"

// NavData drives the shared header on every page.
type NavData struct {
	Authenticated bool
	Username      string
}

// Nav builds the header data for the current request from the stored token.
func Nav(c echo.Context) NavData {
	tokens := Tokens(c)
	if tokens.Token() == "" {
		return NavData{}
	}
	return NavData{Authenticated: true, Username: tokens.Username()}
}
