package empower

// OneArgFunc is a single-argument assertion such as ok(value, message).
type OneArgFunc func(value any, message string) error

// TwoArgsFunc is a two-argument assertion such as equal(actual, expected, message).
type TwoArgsFunc func(actual, expected any, message string) error

// decorateOneArg wraps base so that a carrier argument is unwrapped and the
// call runs through s. Plain arguments go straight to base.
func decorateOneArg(base OneArgFunc, s *synthesizer) OneArgFunc {
	return func(value any, message string) error {
		ctx, ok := carried(value)
		if !ok {
			return base(value, message)
		}

		return s.run(func(msg string) error {
			return base(ctx.Value, msg)
		}, message, ctx)
	}
}

// decorateTwoArgs wraps base for two operands, each of which may be a carrier.
// When both are, the left context is primary: its value, location and content
// are kept and the right context contributes only its events.
func decorateTwoArgs(base TwoArgsFunc, s *synthesizer) TwoArgsFunc {
	return func(arg1, arg2 any, message string) error {
		left, leftCarried := carried(arg1)
		right, rightCarried := carried(arg2)
		if !leftCarried && !rightCarried {
			return base(arg1, arg2, message)
		}

		val1, val2 := arg1, arg2
		var ctx *Context
		switch {
		case leftCarried && rightCarried:
			ctx = left.merge(right)
			val1, val2 = left.Value, right.Value
		case leftCarried:
			ctx = left.clone()
			val1 = left.Value
		default:
			ctx = right.clone()
			val2 = right.Value
		}

		return s.run(func(msg string) error {
			return base(val1, val2, msg)
		}, message, ctx)
	}
}
