package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/marksweb/internal/domain"
)

const (
	authSessionName = "auth-session"
	usernameKey     = "username"
)

// SessionTokens is the browser's persistent token storage, kept in a signed
// cookie session. It satisfies domain.TokenStore.
type SessionTokens struct {
	c echo.Context
}

// Tokens returns the token store for the current request.
func Tokens(c echo.Context) *SessionTokens {
	return &SessionTokens{c: c}
}

// Token returns the stored token, or "" when none is stored.
func (s *SessionTokens) Token() string {
	sess, err := session.Get(authSessionName, s.c)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[domain.TokenKey].(string)
	return token
}

// SaveToken writes the token under the canonical key.
func (s *SessionTokens) SaveToken(token string) error {
	return s.SaveLogin(token, nil)
}

// SaveLogin writes the token and, when known, the display name of the signed
// in account, in a single session save.
func (s *SessionTokens) SaveLogin(token string, account *domain.Account) error {
	sess, err := session.Get(authSessionName, s.c)
	if err != nil {
		return err
	}
	sess.Values[domain.TokenKey] = token
	if account != nil && account.Username != "" {
		sess.Values[usernameKey] = account.Username
	}
	return sess.Save(s.c.Request(), s.c.Response())
}

// Username returns the display name saved by SaveLogin.
func (s *SessionTokens) Username() string {
	sess, err := session.Get(authSessionName, s.c)
	if err != nil {
		return ""
	}
	name, _ := sess.Values[usernameKey].(string)
	return name
}
