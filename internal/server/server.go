package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/marksweb/internal/activity"
	"github.com/nfrund/marksweb/internal/app"
	"github.com/nfrund/marksweb/internal/config"
	"github.com/nfrund/marksweb/internal/handlers"
	"github.com/nfrund/marksweb/internal/middleware"
	"github.com/nfrund/marksweb/internal/pubsub"
	"github.com/nfrund/marksweb/internal/rendering"
	"github.com/samber/do/v2"
	"golang.org/x/time/rate"
)

// sessionMaxAge keeps the token cookie for a week.
const sessionMaxAge = 86400 * 7

// Server holds the dependencies for the HTTP server.
type Server struct {
	E             *echo.Echo
	Cfg           config.Provider
	bus           *pubsub.WatermillBridge
	authHandler   *handlers.AuthHandler
	gradesHandler *handlers.GradesHandler
	formRate      rate.Limit
	stopActivity  context.CancelFunc
}

// Option adjusts a Server before routes are registered.
type Option func(*Server)

// WithFormRate overrides the per-IP limit on login and register posts.
func WithFormRate(limit rate.Limit) Option {
	return func(s *Server) { s.formRate = limit }
}

// New creates a new Server instance from cfg.
func New(cfg config.Provider, opts ...Option) (*Server, error) {
	injector := app.NewContainer(cfg)

	authHandler, err := do.Invoke[*handlers.AuthHandler](injector)
	if err != nil {
		return nil, fmt.Errorf("build auth handler: %w", err)
	}
	gradesHandler, err := do.Invoke[*handlers.GradesHandler](injector)
	if err != nil {
		return nil, fmt.Errorf("build grades handler: %w", err)
	}
	bus := do.MustInvoke[*pubsub.WatermillBridge](injector)

	activityCtx, stopActivity := context.WithCancel(context.Background())
	if err := bus.Subscribe(activityCtx, activity.Topic, activity.LogSubscriber(slog.Default())); err != nil {
		stopActivity()
		return nil, fmt.Errorf("subscribe activity log: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	s := &Server{
		E:             e,
		Cfg:           cfg,
		bus:           bus,
		authHandler:   authHandler,
		gradesHandler: gradesHandler,
		formRate:      middleware.DefaultFormRate,
		stopActivity:  stopActivity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close stops the activity subscriber and the bus.
func (s *Server) Close() error {
	s.stopActivity()
	return s.bus.Close()
}
