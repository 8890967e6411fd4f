package empower

import (
	"reflect"

	"github.com/stretchr/testify/assert"
)

// Operators reported by the standard assertions.
const (
	OpEqual          = "=="
	OpNotEqual       = "!="
	OpStrictEqual    = "==="
	OpNotStrictEqual = "!=="
	OpDeepEqual      = "deepEqual"
	OpNotDeepEqual   = "notDeepEqual"
)

// Standard returns an assertion object with ok, equal, notEqual, strictEqual,
// notStrictEqual, deepEqual and notDeepEqual. Failures are *AssertionError
// values and the object declares NewAssertionError as its failure constructor.
//
// Equality semantics:
//
//	equal        values equal after numeric/type conversion (5 == 5.0)
//	strictEqual  same dynamic type and ==; slices, maps and funcs by identity
//	deepEqual    reflect.DeepEqual, with []byte compared by content
func Standard() *Object {
	return NewObject(standardMethods()...)
}

// StandardFunc returns the callable form of Standard: calling it is ok, and it
// carries the same named methods.
func StandardFunc() *Func {
	return NewFunc(Ok, standardMethods()...)
}

func standardMethods() []ObjectOption {
	return []ObjectOption{
		WithFailures(NewAssertionError),
		WithOneArg("ok", Ok),
		WithTwoArgs("equal", Equal),
		WithTwoArgs("notEqual", NotEqual),
		WithTwoArgs("strictEqual", StrictEqual),
		WithTwoArgs("notStrictEqual", NotStrictEqual),
		WithTwoArgs("deepEqual", DeepEqual),
		WithTwoArgs("notDeepEqual", NotDeepEqual),
	}
}

// Ok fails unless value is truthy: true, or any non-zero value other than a bool.
func Ok(value any, message string) error {
	if truthy(value) {
		return nil
	}
	return fail(value, true, OpEqual, message)
}

func Equal(actual, expected any, message string) error {
	if assert.ObjectsAreEqualValues(expected, actual) {
		return nil
	}
	return fail(actual, expected, OpEqual, message)
}

func NotEqual(actual, expected any, message string) error {
	if !assert.ObjectsAreEqualValues(expected, actual) {
		return nil
	}
	return fail(actual, expected, OpNotEqual, message)
}

func StrictEqual(actual, expected any, message string) error {
	if strictlyEqual(actual, expected) {
		return nil
	}
	return fail(actual, expected, OpStrictEqual, message)
}

func NotStrictEqual(actual, expected any, message string) error {
	if !strictlyEqual(actual, expected) {
		return nil
	}
	return fail(actual, expected, OpNotStrictEqual, message)
}

func DeepEqual(actual, expected any, message string) error {
	if assert.ObjectsAreEqual(expected, actual) {
		return nil
	}
	return fail(actual, expected, OpDeepEqual, message)
}

func NotDeepEqual(actual, expected any, message string) error {
	if !assert.ObjectsAreEqual(expected, actual) {
		return nil
	}
	return fail(actual, expected, OpNotDeepEqual, message)
}

func fail(actual, expected any, operator, message string) error {
	return NewAssertionError(AssertionErrorOptions{
		Actual:   actual,
		Expected: expected,
		Operator: operator,
		Message:  message,
	})
}

func truthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return !reflect.ValueOf(value).IsZero()
}

func strictlyEqual(a, b any) (equal bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	switch ta.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && (ta.Kind() == reflect.Func || va.Len() == vb.Len())
	}
	if !ta.Comparable() {
		return false
	}

	// Interface-typed fields may still hold incomparable values.
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
