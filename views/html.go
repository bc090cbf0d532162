package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/goodfields/site/markdown"
)

// blockedURL replaces an href that fails sanitization.
const blockedURL = "about:invalid#blocked"

// htmlWriter writes markup and remembers the first write error, so
// components can emit a sequence of pieces and check once at the end.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) attr(name, val string) {
	hw.raw(" ", name, `="`, templ.EscapeString(val), `"`)
}

func (hw *htmlWriter) href(u string) {
	safe := markdown.SafeURL(u)
	if safe == "" {
		safe = blockedURL
	}
	hw.attr("href", safe)
}

// link writes <a class=... href=...>label</a>.
func (hw *htmlWriter) link(class, u, label string) {
	hw.raw("<a")
	if class != "" {
		hw.attr("class", class)
	}
	hw.href(u)
	hw.raw(">")
	hw.text(label)
	hw.raw("</a>")
}

// externalLink is link with target=_blank and a safe rel.
func (hw *htmlWriter) externalLink(class, u, label string) {
	hw.raw("<a")
	if class != "" {
		hw.attr("class", class)
	}
	hw.href(u)
	hw.raw(` target="_blank" rel="noopener noreferrer">`)
	hw.text(label)
	hw.raw("</a>")
}

func (hw *htmlWriter) render(c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}

func (hw *htmlWriter) markdown(md string) {
	hw.render(markdown.Markdown(md))
}

// component adapts a writer function to templ.Component.
func component(fn func(hw *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{ctx: ctx, w: w}
		fn(hw)
		return hw.err
	})
}
