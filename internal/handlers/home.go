package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeGet sends every visitor of / to the login page.
func HomeGet(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/login")
}

// HealthGet answers liveness probes.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
