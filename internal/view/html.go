// Package view renders the site's pages as templ components.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/boisserenc/atelier/internal/i18n"
)

// Page carries the per-request state every page needs.
type Page struct {
	Lang  i18n.Lang
	Path  string
	Query string
}

// T returns the UI string for key in the page's language.
func (p Page) T(key string) string {
	return i18n.T(p.Lang, key)
}

// htmlWriter writes markup and remembers the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

// attr escapes s for use inside a double-quoted attribute.
func attr(s string) string {
	return templ.EscapeString(s)
}

// href sanitizes and escapes a URL attribute value.
func href(u string) string {
	return templ.EscapeString(string(templ.URL(u)))
}
