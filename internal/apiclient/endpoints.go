package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nfrund/marksweb/internal/domain"
)

const (
	loginPath    = "login/"
	registerPath = "register/"
	marksPath    = "marks/"
	reportPath   = "student/report/"
)

// Login exchanges credentials for a session token. A 2xx response without a
// token still counts as a failure.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResponse, error) {
	var out domain.LoginResponse
	if err := c.Do(ctx, http.MethodPost, loginPath, creds, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", domain.ErrRequestFailed)
	}
	return &out, nil
}

// Register creates a new account. The success payload is ignored.
func (c *Client) Register(ctx context.Context, req domain.RegistrationRequest) error {
	return c.Do(ctx, http.MethodPost, registerPath, req, nil)
}

// SubmitMarks sends the whole record for grading.
func (c *Client) SubmitMarks(ctx context.Context, marks domain.MarksRecord) (*domain.MarksResult, error) {
	var out domain.MarksResult
	if err := c.Do(ctx, http.MethodPost, marksPath, marks, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentReport fetches the caller's own report card.
func (c *Client) StudentReport(ctx context.Context) (*domain.Report, error) {
	var out domain.Report
	if err := c.Do(ctx, http.MethodGet, reportPath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
