package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html writes markup and keeps the first write error, the way generated
// templ code threads its buffer.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s HTML-escaped.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) component(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// render adapts fn into a templ.Component.
func render(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}
