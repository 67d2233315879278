package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/marksweb/internal/activity"
	"github.com/nfrund/marksweb/internal/apiclient"
	"github.com/nfrund/marksweb/internal/handlers"
	"github.com/nfrund/marksweb/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// stubCall is one request seen by the stub grading service.
type stubCall struct {
	Path string
	Auth string
	Body map[string]string
}

// stubAPI is a programmable grading service.
type stubAPI struct {
	*httptest.Server
	mu        sync.Mutex
	calls     []stubCall
	responses map[string]stubResponse
}

type stubResponse struct {
	status int
	body   string
}

func newStubAPI(t *testing.T) *stubAPI {
	t.Helper()
	s := &stubAPI{responses: map[string]stubResponse{}}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := stubCall{Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
		_ = json.NewDecoder(r.Body).Decode(&call.Body)

		s.mu.Lock()
		s.calls = append(s.calls, call)
		resp, ok := s.responses[r.URL.Path]
		s.mu.Unlock()

		if !ok {
			resp = stubResponse{status: http.StatusNotFound, body: `{"error": "not stubbed"}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubAPI) respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = stubResponse{status: status, body: body}
}

func (s *stubAPI) lastCall(t *testing.T) stubCall {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.calls, "grading service was never called")
	return s.calls[len(s.calls)-1]
}

func (s *stubAPI) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func setupTest(t *testing.T) (*echo.Echo, *stubAPI) {
	t.Helper()
	stub := newStubAPI(t)

	api, err := apiclient.New(stub.URL + "/api/")
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	feed := activity.NewFeed(nil)
	authHandler := handlers.NewAuthHandler(api, feed)
	gradesHandler := handlers.NewGradesHandler(api, feed)

	e.GET("/login", authHandler.LoginGet)
	e.POST("/login", authHandler.LoginPost)
	e.GET("/register", authHandler.RegisterGet)
	e.POST("/register", authHandler.RegisterPost)
	e.GET("/marks", gradesHandler.MarksGet)
	e.POST("/marks", gradesHandler.MarksPost)
	e.GET("/report", gradesHandler.ReportGet)
	e.GET("/report/export.xlsx", gradesHandler.ReportExport)
	e.GET("/", handlers.HomeGet)

	return e, stub
}

// postForm sends form values, carrying cookies from an earlier response.
func postForm(e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// latestCookies keeps only the last Set-Cookie per name, as a browser would.
func latestCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, c := range rec.Result().Cookies() {
		if _, seen := byName[c.Name]; !seen {
			order = append(order, c.Name)
		}
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

// sessionFrom decodes a named session from the cookies a response set.
func sessionFrom(t *testing.T, rec *httptest.ResponseRecorder, name string) *sessions.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range latestCookies(rec) {
		req.AddCookie(c)
	}
	sess, err := sessions.NewCookieStore([]byte(testSessionSecret)).Get(req, name)
	require.NoError(t, err)
	return sess
}

// assertFlashMessage checks for a specific flash message in the response's session.
func assertFlashMessage(t *testing.T, rec *httptest.ResponseRecorder, key, expectedMessage string) {
	t.Helper()
	flashes := sessionFrom(t, rec, "flash-session").Flashes(key)
	require.NotEmpty(t, flashes, "expected flash message but found none for key: %s", key)
	assert.Equal(t, expectedMessage, flashes[0])
}

// loggedInCookies produces session cookies holding token, as a prior
// successful login would.
func loggedInCookies(t *testing.T, token string) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sess, err := store.Get(req, "auth-session")
	require.NoError(t, err)
	sess.Values["access"] = token
	sess.Values["username"] = "alice"
	require.NoError(t, sess.Save(req, rec))
	return rec.Result().Cookies()
}
