package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// Page wraps a gomponents tree as a templ.Component so full pages stream
// through the same renderer as any templ component would.
func Page(node gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return node.Render(w)
	})
}
