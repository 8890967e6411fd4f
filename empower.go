package empower

import (
	"maps"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Target is an enhanced (or enhanceable) assertion target: an *Object or a *Func.
type Target interface {
	Method(name string) (any, bool)
	Enhanced() bool
	Capture(value any, kind string, loc Location) any
	Expr(value any, loc Location, content string) *Carrier
}

var (
	_ Target = (*Object)(nil)
	_ Target = (*Func)(nil)
)

// enhancement is the state private to one Enhance call.
type enhancement struct {
	id     string
	ledger *Ledger
	synth  *synthesizer
}

// Enhance returns target with its configured assertion methods decorated and
// the capture API (Capture, Expr) installed.
//
// target may be an *Object, a *Func, a OneArgFunc or a func(any, string) error.
// A target that is already enhanced is returned unchanged.
//
// Function targets always produce a new *Func; the original is untouched.
// Object targets produce a clone that delegates to the original unless
// WithDestructive(true) is given, in which case the object itself is
// enhanced and returned.
func Enhance(target any, formatter Formatter, opts ...Option) (Target, error) {
	switch t := target.(type) {
	case *Object:
		if t == nil {
			return nil, invalidTarget(target)
		}
		if t.Enhanced() {
			return t, nil
		}
		if formatter == nil {
			return nil, ErrNilFormatter
		}
		return enhanceObject(t, formatter, Resolve(opts...)), nil

	case *Func:
		if t == nil || t.call == nil {
			return nil, invalidTarget(target)
		}
		if t.Enhanced() {
			return t, nil
		}
		if formatter == nil {
			return nil, ErrNilFormatter
		}
		return enhanceFunc(t, formatter, Resolve(opts...))

	case OneArgFunc:
		if t == nil {
			return nil, invalidTarget(target)
		}
		return Enhance(NewFunc(t), formatter, opts...)

	case func(any, string) error:
		if t == nil {
			return nil, invalidTarget(target)
		}
		return Enhance(NewFunc(t), formatter, opts...)

	default:
		return nil, invalidTarget(target)
	}
}

// IsEnhanced reports whether target already carries the capture API.
func IsEnhanced(target any) bool {
	t, ok := target.(Target)
	return ok && t.Enhanced()
}

func invalidTarget(target any) error {
	return errors.WithHint(
		errors.Wrapf(ErrInvalidTarget, "got %T", target),
		"pass an *empower.Object, an *empower.Func or a func(any, string) error")
}

func enhanceObject(original *Object, formatter Formatter, cfg Config) *Object {
	power := newEnhancement(formatter, cfg, original.failures)

	target := original
	if target.methods == nil {
		target.methods = make(map[string]any)
	}
	if !cfg.Destructive {
		target = &Object{
			methods:  make(map[string]any),
			base:     original,
			failures: original.failures,
		}
	}

	decorated := power.decorate(original)
	maps.Copy(target.methods, decorated)
	target.power = power

	cfg.Logger.Debug("enhanced assertion object",
		"enhancement", power.id,
		"destructive", cfg.Destructive,
		"lazy", cfg.Lazy(),
		"methods", len(decorated))

	return target
}

func enhanceFunc(original *Func, formatter Formatter, cfg Config) (*Func, error) {
	if cfg.Destructive {
		return nil, errors.WithHint(ErrDestructiveFunc,
			"wrap the function in an *empower.Object to enhance it in place")
	}

	power := newEnhancement(formatter, cfg, original.failures)

	methods := maps.Clone(original.methods)
	if methods == nil {
		methods = make(map[string]any)
	}
	wrapper := &Func{
		Object: Object{
			methods:  methods,
			base:     original.base,
			failures: original.failures,
			power:    power,
		},
		call: decorateOneArg(original.call, power.synth),
	}
	decorated := power.decorate(&original.Object)
	maps.Copy(wrapper.methods, decorated)

	cfg.Logger.Debug("enhanced assertion function",
		"enhancement", power.id,
		"lazy", cfg.Lazy(),
		"methods", len(decorated))

	return wrapper, nil
}

func newEnhancement(formatter Formatter, cfg Config, failures FailureConstructor) *enhancement {
	id := uuid.NewString()
	return &enhancement{
		id:     id,
		ledger: NewLedger(),
		synth: &synthesizer{
			formatter: formatter,
			config:    cfg,
			failures:  failures,
			logger:    cfg.Logger.With("enhancement", id),
		},
	}
}

// decorate wraps every configured method source defines with the matching
// shape. Names that are missing or shaped for the other arity are skipped.
func (e *enhancement) decorate(source *Object) map[string]any {
	decorated := make(map[string]any)
	for _, name := range e.synth.config.TargetMethods.OneArg {
		m, _ := source.Method(name)
		if fn, ok := m.(OneArgFunc); ok {
			decorated[name] = decorateOneArg(fn, e.synth)
		}
	}
	for _, name := range e.synth.config.TargetMethods.TwoArgs {
		m, _ := source.Method(name)
		if fn, ok := m.(TwoArgsFunc); ok {
			decorated[name] = decorateTwoArgs(fn, e.synth)
		}
	}
	return decorated
}

// Capture is a type-preserving form of target.Capture for instrumented code:
//
//	x := empower.Capture(power, user.Age, "member", loc)
func Capture[T any](target Target, value T, kind string, loc Location) T {
	target.Capture(value, kind, loc)
	return value
}
