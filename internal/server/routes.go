package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/marksweb/internal/apiclient"
	"github.com/nfrund/marksweb/internal/handlers"
	"github.com/nfrund/marksweb/internal/middleware"
	"github.com/nfrund/marksweb/internal/view"
)

func sessionTokens(c echo.Context) apiclient.TokenSource {
	return view.Tokens(c)
}

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(s.formRate)
	requireAuth := middleware.RequireAuth(sessionTokens)

	s.E.GET("/", handlers.HomeGet)
	s.E.GET("/health", handlers.HealthGet)

	s.E.GET("/login", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost, rateLimiter)

	s.E.GET("/register", s.authHandler.RegisterGet)
	s.E.POST("/register", s.authHandler.RegisterPost, rateLimiter)

	protected := s.E.Group("", requireAuth)
	protected.GET("/marks", s.gradesHandler.MarksGet)
	protected.POST("/marks", s.gradesHandler.MarksPost)
	protected.GET("/report", s.gradesHandler.ReportGet)
	protected.GET("/report/export.xlsx", s.gradesHandler.ReportExport)
}
