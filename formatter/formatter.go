// Package formatter renders a captured assertion context as plain text.
//
// The output lists the asserted expression followed by every captured
// sub-expression in evaluation order:
//
//	user.Age === 4 (at user_test.go:12:5)
//	  member 12:5  => 3
//	  binary 12:14 => false
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/alexshd/empower"
)

const defaultMaxValueLength = 200

type renderer struct {
	indent         string
	maxValueLength int
}

// Option customizes the rendering.
type Option func(*renderer)

// WithIndent sets the prefix for capture lines. Default two spaces.
func WithIndent(indent string) Option {
	return func(r *renderer) {
		r.indent = indent
	}
}

// WithMaxValueLength truncates rendered values longer than n. n <= 0 disables truncation.
func WithMaxValueLength(n int) Option {
	return func(r *renderer) {
		r.maxValueLength = n
	}
}

// New returns a Formatter suitable for empower.Enhance.
func New(opts ...Option) empower.Formatter {
	r := &renderer{indent: "  ", maxValueLength: defaultMaxValueLength}
	for _, opt := range opts {
		opt(r)
	}
	return r.render
}

func (r *renderer) render(ctx *empower.Context) string {
	if ctx == nil {
		return ""
	}

	var b strings.Builder
	content := ctx.Content
	if content == "" {
		content = "<expression>"
	}
	b.WriteString(content)
	if loc := ctx.Location.String(); loc != "" {
		b.WriteString(" (at " + loc + ")")
	}

	kindWidth, locWidth := 0, 0
	for _, ev := range ctx.Events {
		kindWidth = max(kindWidth, len(ev.Kind))
		locWidth = max(locWidth, len(ev.Location.String()))
	}

	for _, ev := range ctx.Events {
		fmt.Fprintf(&b, "\n%s%-*s %-*s => %s",
			r.indent, kindWidth, ev.Kind, locWidth, ev.Location.String(), r.value(ev.Value))
	}

	return b.String()
}

func (r *renderer) value(v any) string {
	s, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(v)
	if err != nil {
		s = fmt.Sprintf("%#v", v)
	}
	if r.maxValueLength <= 0 || len(s) <= r.maxValueLength {
		return s
	}
	return s[:r.maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-r.maxValueLength) + " chars)"
}
