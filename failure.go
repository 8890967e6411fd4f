package empower

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrAssertionFailed is the sentinel every *AssertionError unwraps to.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError is the standard failure kind. Lazy enhancement only
// re-synthesizes failures of this kind.
type AssertionError struct {
	Actual   any
	Expected any
	Operator string
	Message  string

	// GeneratedMessage is true when Message was produced from the operands
	// rather than supplied by the caller.
	GeneratedMessage bool

	// PowerAssertContext is set when the failure was re-synthesized with
	// SaveContextOnFail.
	PowerAssertContext *Context
}

// Error returns the failure message.
func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}
	return e.Message
}

// Unwrap returns ErrAssertionFailed so errors.Is works on any assertion failure.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// AssertionErrorOptions are the fields carried over when a failure is built
// or rebuilt.
type AssertionErrorOptions struct {
	Actual   any
	Expected any
	Operator string
	Message  string
}

// FailureConstructor builds a target's standard failure. Targets without one
// have their failures passed through untouched.
type FailureConstructor func(AssertionErrorOptions) *AssertionError

// NewAssertionError builds an *AssertionError. When no message is given one
// is generated from the operands and GeneratedMessage is set.
func NewAssertionError(opts AssertionErrorOptions) *AssertionError {
	e := &AssertionError{
		Actual:   opts.Actual,
		Expected: opts.Expected,
		Operator: opts.Operator,
		Message:  opts.Message,
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("%#v %s %#v", opts.Actual, opts.Operator, opts.Expected)
		e.GeneratedMessage = true
	}
	return e
}

// Formatter renders a context into diagnostic text. It must not panic for
// any well-formed context, including one without events.
type Formatter func(*Context) string

// synthesizer runs an underlying assertion for a call that carried context.
type synthesizer struct {
	formatter Formatter
	config    Config
	failures  FailureConstructor
	logger    *slog.Logger
}

func (s *synthesizer) text(message string, ctx *Context) string {
	diagnostic := s.formatter(ctx)
	if message == "" {
		return diagnostic
	}
	return message + " " + diagnostic
}

// run invokes call with the message the current mode requires. call receives
// the message to hand to the underlying assertion.
func (s *synthesizer) run(call func(message string) error, message string, ctx *Context) error {
	if !s.config.Lazy() {
		return call(s.text(message, ctx))
	}

	err := call(message)
	if err == nil {
		return nil
	}

	var original *AssertionError
	if !errors.As(err, &original) || original == nil {
		s.logger.Debug("passing through foreign failure", "error_type", fmt.Sprintf("%T", err))
		return err
	}
	if s.failures == nil {
		s.logger.Debug("target defines no failure kind, passing failure through")
		return err
	}

	rebuilt := s.failures(AssertionErrorOptions{
		Actual:   original.Actual,
		Expected: original.Expected,
		Operator: original.Operator,
		Message:  original.Message,
	})
	if rebuilt == nil {
		return err
	}
	rebuilt.GeneratedMessage = original.GeneratedMessage

	if s.config.ModifyMessageOnFail {
		rebuilt.Message = s.text(message, ctx)
		rebuilt.GeneratedMessage = false
	}
	if s.config.SaveContextOnFail {
		rebuilt.PowerAssertContext = ctx
	}

	s.logger.Debug("re-synthesized assertion failure",
		"operator", rebuilt.Operator,
		"events", len(ctx.Events),
		"message_modified", s.config.ModifyMessageOnFail,
		"context_saved", s.config.SaveContextOnFail)

	return rebuilt
}
