package empower

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Object is an assertion object: a table of named assertion methods. A
// non-destructively enhanced Object overlays decorated methods on top of the
// original, and lookups fall back to the original for everything else.
type Object struct {
	methods  map[string]any // OneArgFunc or TwoArgsFunc
	base     *Object
	failures FailureConstructor
	power    *enhancement
}

// ObjectOption configures an Object or Func at construction.
type ObjectOption func(*Object)

// WithFailures declares the target's standard failure kind. Without it,
// lazy enhancement passes every failure through unchanged.
func WithFailures(fc FailureConstructor) ObjectOption {
	return func(o *Object) {
		o.failures = fc
	}
}

func WithOneArg(name string, fn OneArgFunc) ObjectOption {
	return func(o *Object) {
		o.methods[name] = fn
	}
}

func WithTwoArgs(name string, fn TwoArgsFunc) ObjectOption {
	return func(o *Object) {
		o.methods[name] = fn
	}
}

// NewObject creates an assertion object.
func NewObject(opts ...ObjectOption) *Object {
	o := &Object{methods: make(map[string]any)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Define adds or replaces a method. fn must be a OneArgFunc, a TwoArgsFunc,
// or any function whose last parameter is a string, which takes one or two
// operands before it, and which returns only an error, e.g.
//
//	func(ok bool, message string) error
//	func(actual, expected int, message string) error
//
// Typed operands are adapted by reflection; an operand that cannot be
// assigned to its parameter yields ErrArgumentType at call time.
func (o *Object) Define(name string, fn any) error {
	method, err := adaptMethod(fn)
	if err != nil {
		return errors.Wrapf(err, "define %q", name)
	}
	if o.methods == nil {
		o.methods = make(map[string]any)
	}
	o.methods[name] = method
	return nil
}

// Method looks name up in the overlay first, then in the original.
func (o *Object) Method(name string) (any, bool) {
	for obj := o; obj != nil; obj = obj.base {
		if m, ok := obj.methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Call invokes a single-argument method.
func (o *Object) Call(name string, value any, message string) error {
	m, _ := o.Method(name)
	fn, ok := m.(OneArgFunc)
	if !ok {
		return errors.Wrapf(ErrUnknownMethod, "%q is not a single-argument assertion", name)
	}
	return fn(value, message)
}

// Call2 invokes a two-argument method.
func (o *Object) Call2(name string, actual, expected any, message string) error {
	m, _ := o.Method(name)
	fn, ok := m.(TwoArgsFunc)
	if !ok {
		return errors.Wrapf(ErrUnknownMethod, "%q is not a two-argument assertion", name)
	}
	return fn(actual, expected, message)
}

func (o *Object) Ok(value any, message string) error {
	return o.Call("ok", value, message)
}

func (o *Object) Equal(actual, expected any, message string) error {
	return o.Call2("equal", actual, expected, message)
}

func (o *Object) NotEqual(actual, expected any, message string) error {
	return o.Call2("notEqual", actual, expected, message)
}

func (o *Object) StrictEqual(actual, expected any, message string) error {
	return o.Call2("strictEqual", actual, expected, message)
}

func (o *Object) NotStrictEqual(actual, expected any, message string) error {
	return o.Call2("notStrictEqual", actual, expected, message)
}

func (o *Object) DeepEqual(actual, expected any, message string) error {
	return o.Call2("deepEqual", actual, expected, message)
}

func (o *Object) NotDeepEqual(actual, expected any, message string) error {
	return o.Call2("notDeepEqual", actual, expected, message)
}

// Enhanced reports whether o carries an enhancement (and so a ledger).
func (o *Object) Enhanced() bool {
	return o != nil && o.power != nil
}

// Capture records a sub-expression value in o's ledger and returns it.
// It panics if o was not produced by Enhance.
func (o *Object) Capture(value any, kind string, loc Location) any {
	return o.enhancement().ledger.Capture(value, kind, loc)
}

// Expr finalizes the expression being evaluated and returns a carrier to
// pass to a decorated method. It panics if o was not produced by Enhance.
func (o *Object) Expr(value any, loc Location, content string) *Carrier {
	return o.enhancement().ledger.Finalize(value, loc, content)
}

func (o *Object) enhancement() *enhancement {
	if !o.Enhanced() {
		panic(errors.AssertionFailedf("capture API used on an assertion target that was not enhanced"))
	}
	return o.power
}

// Func is a callable assertion target. Like a host assert function it may
// also carry named methods.
type Func struct {
	Object
	call OneArgFunc
}

// NewFunc wraps fn as a callable assertion target.
func NewFunc(fn OneArgFunc, opts ...ObjectOption) *Func {
	return &Func{Object: *NewObject(opts...), call: fn}
}

// Enhanced reports whether f carries an enhancement.
func (f *Func) Enhanced() bool {
	return f != nil && f.power != nil
}

// Assert invokes the callable itself.
func (f *Func) Assert(value any, message string) error {
	return f.call(value, message)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// adaptMethod validates fn's shape and returns it as a OneArgFunc or TwoArgsFunc.
func adaptMethod(fn any) (any, error) {
	switch f := fn.(type) {
	case nil:
		return nil, errors.Wrap(ErrInvalidMethod, "method is nil")
	case OneArgFunc:
		return nonNil(f, f == nil)
	case TwoArgsFunc:
		return nonNil(f, f == nil)
	case func(any, string) error:
		return nonNil(OneArgFunc(f), f == nil)
	case func(any, any, string) error:
		return nonNil(TwoArgsFunc(f), f == nil)
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, errors.Wrapf(ErrInvalidMethod, "method must be a function, got %s", fnType.Kind())
	}
	if fnVal.IsNil() {
		return nil, errors.Wrap(ErrInvalidMethod, "method is nil")
	}

	n := fnType.NumIn()
	if fnType.IsVariadic() || (n != 2 && n != 3) ||
		fnType.In(n-1).Kind() != reflect.String ||
		fnType.NumOut() != 1 || fnType.Out(0) != errorType {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidMethod, "unsupported signature %s", fnType),
			"use func(value, message string) error or func(actual, expected, message string) error")
	}

	call := func(message string, args ...any) error {
		in := make([]reflect.Value, n)
		for i, arg := range args {
			v, err := argumentValue(arg, fnType.In(i))
			if err != nil {
				return errors.Wrapf(err, "argument %d", i+1)
			}
			in[i] = v
		}
		in[n-1] = reflect.ValueOf(message).Convert(fnType.In(n - 1))

		err, _ := fnVal.Call(in)[0].Interface().(error)
		return err
	}

	if n == 2 {
		return OneArgFunc(func(value any, message string) error {
			return call(message, value)
		}), nil
	}
	return TwoArgsFunc(func(actual, expected any, message string) error {
		return call(message, actual, expected)
	}), nil
}

func nonNil(method any, isNil bool) (any, error) {
	if isNil {
		return nil, errors.Wrap(ErrInvalidMethod, "method is nil")
	}
	return method, nil
}

func argumentValue(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(want), nil
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, errors.Wrapf(ErrArgumentType, "cannot use %T as %s", arg, want)
	}
	return v, nil
}
