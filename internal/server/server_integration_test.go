package server_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nfrund/marksweb/internal/config"
	"github.com/nfrund/marksweb/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// gradingStub stands in for the remote grading service. It only accepts
// marks carrying the token it handed out.
func gradingStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"password":"right"`) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "Incorrect password."}`))
			return
		}
		_, _ = w.Write([]byte(`{"token": "tok-int", "user": {"id": 1, "username": "alice", "role": "STUDENT"}}`))
	})
	mux.HandleFunc("/api/register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/api/marks/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-int" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"average": 80, "grade": "B"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupIntegrationTest(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	api := gradingStub(t)

	cfg := &config.Config{
		ServerAddr:    ":0",
		APIBaseURL:    api.URL + "/api/",
		SessionSecret: "integration-test-session-secret",
		AppEnv:        "test",
	}
	s, err := server.New(cfg, server.WithFormRate(rate.Limit(1000)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	s.RegisterRoutes()

	testServer := httptest.NewServer(s.E)
	t.Cleanup(testServer.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return testServer, client
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	res, err := client.Post(target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func get(t *testing.T, client *http.Client, target string) (*http.Response, string) {
	t.Helper()
	res, err := client.Get(target)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestAuthGate_Integration(t *testing.T) {
	testServer, client := setupIntegrationTest(t)

	t.Run("root redirects to login", func(t *testing.T) {
		res, _ := get(t, client, testServer.URL+"/")
		assert.Equal(t, http.StatusSeeOther, res.StatusCode)
		assert.Equal(t, "/login", res.Header.Get("Location"))
	})

	t.Run("login and register are always reachable", func(t *testing.T) {
		for _, path := range []string{"/login", "/register"} {
			res, _ := get(t, client, testServer.URL+path)
			assert.Equal(t, http.StatusOK, res.StatusCode, path)
		}
	})

	t.Run("anonymous visitor cannot reach marks", func(t *testing.T) {
		for _, path := range []string{"/marks", "/report"} {
			res, _ := get(t, client, testServer.URL+path)
			assert.Equal(t, http.StatusSeeOther, res.StatusCode, path)
			assert.Equal(t, "/login", res.Header.Get("Location"), path)
		}
	})

	t.Run("failed login keeps the gate closed", func(t *testing.T) {
		res := postForm(t, client, testServer.URL+"/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
		assert.Equal(t, "/login", res.Header.Get("Location"))

		_, body := get(t, client, testServer.URL+"/login")
		assert.Contains(t, body, "Login failed.")

		res, _ = get(t, client, testServer.URL+"/marks")
		assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	})

	t.Run("successful login opens marks", func(t *testing.T) {
		res := postForm(t, client, testServer.URL+"/login", url.Values{"username": {"alice"}, "password": {"right"}})
		assert.Equal(t, http.StatusSeeOther, res.StatusCode)
		assert.Equal(t, "/marks", res.Header.Get("Location"))

		res, body := get(t, client, testServer.URL+"/marks")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, "Enter Marks")
		assert.Contains(t, body, "Login successful!")
		assert.Contains(t, body, "Signed in as alice")
	})

	t.Run("marks submission uses the stored token", func(t *testing.T) {
		res := postForm(t, client, testServer.URL+"/marks", url.Values{
			"math": {"90"}, "science": {"80"}, "english": {"70"}, "history": {"60"}, "computer": {"100"},
		})
		require.Equal(t, http.StatusOK, res.StatusCode)
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Average: 80")
		assert.Contains(t, string(body), "Grade: B")
	})
}

func TestRegisterFlow_Integration(t *testing.T) {
	testServer, client := setupIntegrationTest(t)

	res := postForm(t, client, testServer.URL+"/register", url.Values{
		"username": {"alice"}, "email": {"a@x.com"}, "password": {"p"},
	})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))

	_, body := get(t, client, testServer.URL+"/login")
	assert.Contains(t, body, "Registration successful! Please log in.")
}

func TestHealth(t *testing.T) {
	testServer, client := setupIntegrationTest(t)

	res, body := get(t, client, testServer.URL+"/health")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "OK", body)
	assert.NotEmpty(t, res.Header.Get("X-Request-Id"))
}
