package empower

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_DefineShapes(t *testing.T) {
	obj := NewObject()

	require.NoError(t, obj.Define("one", OneArgFunc(func(any, string) error { return nil })))
	require.NoError(t, obj.Define("two", TwoArgsFunc(func(any, any, string) error { return nil })))
	require.NoError(t, obj.Define("plainOne", func(any, string) error { return nil }))
	require.NoError(t, obj.Define("plainTwo", func(any, any, string) error { return nil }))

	for name, want := range map[string]string{
		"one":      "one",
		"plainOne": "one",
		"two":      "two",
		"plainTwo": "two",
	} {
		m, ok := obj.Method(name)
		require.True(t, ok, name)
		switch want {
		case "one":
			assert.IsType(t, OneArgFunc(nil), m, name)
		case "two":
			assert.IsType(t, TwoArgsFunc(nil), m, name)
		}
	}
}

func TestObject_DefineRejects(t *testing.T) {
	var nilOne OneArgFunc
	var nilTyped func(bool, string) error

	for name, fn := range map[string]any{
		"nil":            nil,
		"nil typed":      nilOne,
		"nil reflected":  nilTyped,
		"not a func":     42,
		"no message":     func(any) error { return nil },
		"three operands": func(a, b, c any, m string) error { return nil },
		"no error":       func(any, string) {},
		"bool result":    func(any, string) bool { return true },
		"variadic":       func(m string, args ...any) error { return nil },
		"int message":    func(any, int) error { return nil },
	} {
		t.Run(name, func(t *testing.T) {
			err := NewObject().Define("m", fn)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMethod))
		})
	}
}

// TestObject_DefineTypedOperands verifies reflective adaptation of typed methods.
func TestObject_DefineTypedOperands(t *testing.T) {
	type label string
	obj := NewObject()

	require.NoError(t, obj.Define("ok", func(ok bool, msg label) error {
		if ok {
			return nil
		}
		return NewAssertionError(AssertionErrorOptions{Actual: ok, Expected: true, Operator: "==", Message: string(msg)})
	}))
	require.NoError(t, obj.Define("equal", func(a, b int, msg string) error {
		if a == b {
			return nil
		}
		return NewAssertionError(AssertionErrorOptions{Actual: a, Expected: b, Operator: "==", Message: msg})
	}))

	assert.NoError(t, obj.Ok(true, ""))
	assert.EqualError(t, obj.Ok(false, "m"), "m")
	assert.EqualError(t, obj.Ok(nil, ""), "false == true")
	assert.NoError(t, obj.Equal(3, 3, ""))
	assert.EqualError(t, obj.Equal(3, 4, ""), "3 == 4")

	err := obj.Equal("3", 3, "")
	assert.ErrorIs(t, err, ErrArgumentType)
	assert.NotErrorIs(t, err, ErrAssertionFailed)
}

// TestObject_DefineTypedOperandsEnhanced verifies typed methods receive the
// unwrapped value once enhanced.
func TestObject_DefineTypedOperandsEnhanced(t *testing.T) {
	obj := NewObject()
	var got int
	require.NoError(t, obj.Define("equal", func(a, b int, msg string) error {
		got = a + b
		return nil
	}))

	target, err := Enhance(obj, constFormatter("F"))
	require.NoError(t, err)
	power := target.(*Object)

	require.NoError(t, power.Equal(power.Expr(3, Location{}, "x"), 4, ""))
	assert.Equal(t, 7, got)
}

func TestObject_CallUnknown(t *testing.T) {
	obj := Standard()

	assert.ErrorIs(t, obj.Call("missing", 1, ""), ErrUnknownMethod)
	assert.ErrorIs(t, obj.Call("equal", 1, ""), ErrUnknownMethod)
	assert.ErrorIs(t, obj.Call2("ok", 1, 2, ""), ErrUnknownMethod)
	assert.ErrorIs(t, NewObject().Equal(1, 1, ""), ErrUnknownMethod)
}

func TestObject_CaptureRequiresEnhancement(t *testing.T) {
	obj := Standard()

	assert.Panics(t, func() { obj.Capture(1, "ident", Location{}) })
	assert.Panics(t, func() { obj.Expr(1, Location{}, "") })
	assert.Panics(t, func() { StandardFunc().Expr(1, Location{}, "") })
}

func TestObject_ZeroValue(t *testing.T) {
	var obj Object
	require.NoError(t, obj.Define("ok", Ok))

	target, err := Enhance(&obj, constFormatter("F"), WithDestructive(true))
	require.NoError(t, err)
	assert.Same(t, &obj, target)
	assert.EqualError(t, obj.Ok(obj.Expr(false, Location{}, ""), ""), "F")
}
