package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup to w and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// attr writes a quoted attribute. Empty values are skipped.
func (hw *htmlWriter) attr(name, value string) {
	if value == "" {
		return
	}
	hw.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (hw *htmlWriter) flag(name string, on bool) {
	if on {
		hw.raw(" " + name)
	}
}

// open writes a start tag with attribute name/value pairs. Pair it with close.
func (hw *htmlWriter) open(tag string, attrs ...string) {
	hw.startTag(tag, attrs)
}

// void writes a void element such as input or link. It has no end tag.
func (hw *htmlWriter) void(tag string, attrs ...string) {
	hw.startTag(tag, attrs)
}

func (hw *htmlWriter) startTag(tag string, attrs []string) {
	hw.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		hw.attr(attrs[i], attrs[i+1])
	}
	hw.raw(">")
}

func (hw *htmlWriter) close(tag string) {
	hw.raw("</" + tag + ">")
}

// element writes a start tag, escaped text, and the end tag.
func (hw *htmlWriter) element(tag string, text string, attrs ...string) {
	hw.open(tag, attrs...)
	hw.text(text)
	hw.close(tag)
}

// component renders c inline.
func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}
