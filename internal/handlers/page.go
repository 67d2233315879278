package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marksweb/internal/middleware"
	"github.com/nfrund/marksweb/internal/view"
	"github.com/nfrund/marksweb/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// renderPage wraps content in the base layout with the pending flash notices
// and writes it with status 200.
func renderPage(c echo.Context, title string, content g.Node) error {
	flashes := view.GetFlashData(c)
	page := layouts.Base(title, view.Nav(c), flashes, content)
	return c.Render(http.StatusOK, "", view.Page(page))
}

// renderFragment writes a bare component, used for htmx swaps.
func renderFragment(c echo.Context, fragment g.Node) error {
	return c.Render(http.StatusOK, "", fragment)
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c echo.Context) bool {
	return middleware.IsHTMX(c)
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
