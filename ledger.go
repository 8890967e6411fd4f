package empower

import "fmt"

// Location identifies where an expression appears in source code.
// The core never interprets it; it is carried through to the formatter.
type Location struct {
	Path   string
	Line   int
	Column int
}

// String renders the location as path:line:column, omitting the parts that are unset.
func (l Location) String() string {
	switch {
	case l == (Location{}):
		return ""
	case l.Path == "":
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	default:
		return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
	}
}

// CaptureEvent is one sub-expression value recorded while an asserted
// expression was being evaluated.
type CaptureEvent struct {
	Value    any
	Kind     string // e.g. "ident", "member", "binary", "call"
	Location Location
}

// Context describes one evaluated top-level expression: its final value,
// where it occurred, its source form, and the captures recorded while
// evaluating it (in evaluation order).
//
// A Context is not modified after Finalize returns it. Merging two contexts
// produces a new one.
type Context struct {
	Value    any
	Location Location
	Content  string
	Events   []CaptureEvent
}

// clone returns a shallow copy. Events are shared; nothing appends to them.
func (c *Context) clone() *Context {
	copied := *c
	return &copied
}

// merge returns a new context holding c's value, location and content with
// other's events appended after c's own.
func (c *Context) merge(other *Context) *Context {
	merged := *c
	merged.Events = make([]CaptureEvent, 0, len(c.Events)+len(other.Events))
	merged.Events = append(merged.Events, c.Events...)
	merged.Events = append(merged.Events, other.Events...)
	return &merged
}

// Carrier moves a Context from an instrumented call site into a decorated
// assertion method within the same expression.
type Carrier struct {
	context *Context
}

// PowerAssertContext returns the carried context. It is nil-safe.
func (c *Carrier) PowerAssertContext() *Context {
	if c == nil {
		return nil
	}
	return c.context
}

// carried reports whether v is a context carrier and returns its context.
// nil, typed nil carriers and empty carriers are not carriers.
func carried(v any) (*Context, bool) {
	c, ok := v.(*Carrier)
	if !ok || c == nil || c.context == nil {
		return nil, false
	}
	return c.context, true
}

// Ledger accumulates capture events for the expression currently being
// evaluated. A Ledger is owned by exactly one enhancement and is not safe for
// concurrent or interleaved evaluation.
type Ledger struct {
	events []CaptureEvent
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Capture records value and returns it unchanged.
func (l *Ledger) Capture(value any, kind string, loc Location) any {
	l.events = append(l.events, CaptureEvent{Value: value, Kind: kind, Location: loc})
	return value
}

// Finalize detaches the pending captures, leaves the ledger empty, and
// returns a carrier for the context built from them.
func (l *Ledger) Finalize(value any, loc Location, content string) *Carrier {
	captured := l.events
	l.events = nil
	if captured == nil {
		captured = []CaptureEvent{}
	}

	return &Carrier{context: &Context{
		Value:    value,
		Location: loc,
		Content:  content,
		Events:   captured,
	}}
}

// Len returns the number of captures waiting for the next Finalize.
func (l *Ledger) Len() int {
	return len(l.events)
}
