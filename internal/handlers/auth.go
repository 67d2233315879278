package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marksweb/internal/activity"
	"github.com/nfrund/marksweb/internal/apiclient"
	"github.com/nfrund/marksweb/internal/domain"
	"github.com/nfrund/marksweb/internal/middleware"
	"github.com/nfrund/marksweb/internal/view"
	"github.com/nfrund/marksweb/internal/view/dto/auth"
	"github.com/nfrund/marksweb/web/src/templates/pages"
)

// User-facing notices. They never carry error details.
const (
	msgLoginSuccess    = "Login successful!"
	msgLoginFailed     = "Login failed."
	msgRegisterSuccess = "Registration successful! Please log in."
	msgRegisterFailed  = "Registration failed."
)

// AuthHandler serves the login and registration pages.
type AuthHandler struct {
	api  *apiclient.Client
	feed *activity.Feed
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(api *apiclient.Client, feed *activity.Feed) *AuthHandler {
	return &AuthHandler{api: api, feed: feed}
}

// LoginGet renders the login page (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	kept := view.TakeFormValues(c, "username")
	data := auth.LoginData{Username: kept["username"]}
	return renderPage(c, "Login", pages.Login(data))
}

// LoginPost exchanges the submitted credentials for a token. On success the
// token is stored, which moves the visitor through the auth gate.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var creds domain.Credentials
	if err := bindForm(c, &creds); err != nil {
		logger.Warn("Rejected login form", "error", err)
		return h.loginFailed(c, creds.Username)
	}

	tokens := view.Tokens(c)
	resp, err := h.api.WithTokens(tokens).Login(ctx, creds)
	if err != nil {
		logger.Warn("Failed login attempt", "username", creds.Username, "error", err)
		return h.loginFailed(c, creds.Username)
	}

	if err := tokens.SaveLogin(resp.Token, resp.User); err != nil {
		logger.Error("Failed to save session token", "error", err)
		return h.loginFailed(c, creds.Username)
	}

	logger.Info("User logged in", "username", creds.Username)
	h.feed.Record(ctx, activity.Event{Kind: activity.KindLogin, Username: creds.Username, Success: true, RequestID: requestID(c)})
	view.SetFlashSuccess(c, msgLoginSuccess)
	return c.Redirect(http.StatusSeeOther, "/marks")
}

func (h *AuthHandler) loginFailed(c echo.Context, username string) error {
	h.feed.Record(c.Request().Context(), activity.Event{Kind: activity.KindLogin, Username: username, RequestID: requestID(c)})
	view.SetFlashError(c, msgLoginFailed)
	view.KeepFormValues(c, map[string]string{"username": username})
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// RegisterGet renders the registration page (GET /register).
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	kept := view.TakeFormValues(c, "username", "email")
	data := auth.RegisterData{Username: kept["username"], Email: kept["email"]}
	return renderPage(c, "Register", pages.Register(data))
}

// RegisterPost creates an account with the grading service and sends the
// visitor to the login page.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req domain.RegistrationRequest
	err := bindForm(c, &req)
	if err == nil {
		err = h.api.WithTokens(view.Tokens(c)).Register(ctx, req)
	}

	h.feed.Record(ctx, activity.Event{Kind: activity.KindRegister, Username: req.Username, Success: err == nil, RequestID: requestID(c)})

	if err != nil {
		logger.Warn("Registration failed", "username", req.Username, "error", err)
		view.SetFlashError(c, msgRegisterFailed)
		view.KeepFormValues(c, map[string]string{"username": req.Username, "email": req.Email})
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	logger.Info("User registered", "username", req.Username)
	view.SetFlashSuccess(c, msgRegisterSuccess)
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
