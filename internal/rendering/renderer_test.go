package rendering_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marksweb/internal/rendering"
	"github.com/nfrund/marksweb/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := rendering.New()
	node := h.P(g.Text("hello"))

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), node)
		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), view.Page(node))
		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", string(out))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.Error(t, err)
	})
}

func TestRender_ThroughEcho(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.New()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusTeapot, "", view.Page(h.P(g.Text("tea"))))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "<p>tea</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}
