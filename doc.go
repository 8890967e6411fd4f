// Package empower turns ordinary assertion objects and functions into
// power-assert aware ones.
//
// # Overview
//
// A source-rewriting stage instruments every assertion expression so that
// interesting sub-expression values are recorded while the expression is
// evaluated. empower is the runtime half of that protocol: it keeps a capture
// ledger per enhanced target, packages the evaluated expression into a
// context carrier, and decorates assertion methods so that a carrier passed
// as an argument is unwrapped and its captured values are rendered into the
// failure message.
//
// # Architecture
//
// The package components:
//
//   - ledger     - Capture/Finalize of sub-expression values (Ledger, Carrier)
//   - decorate   - one-arg and two-arg method decorators
//   - failure    - eager and lazy failure message synthesis
//   - config     - Config, functional Options, YAML and map loading
//   - object     - Object and Func assertion targets, Define
//   - standard   - Standard() object with ok/equal/strictEqual/deepEqual...
//   - formatter/ - reference Formatter implementation
//
// # Quick Start
//
// Enhance the standard object with the reference formatter:
//
//	target, err := empower.Enhance(empower.Standard(), formatter.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	power := target.(*empower.Object)
//
// Instrumented code then looks like this for assert.Equal(user.Age, 4):
//
//	age := empower.Capture(power, user.Age, "member", empower.Location{Line: 12, Column: 14})
//	err = power.Equal(power.Expr(age, empower.Location{Line: 12, Column: 1}, "equal(user.Age, 4)"), 4, "")
//
// Without a carrier argument an enhanced method behaves exactly like the
// original.
//
// # Eager and Lazy Modes
//
// By default the diagnostic is rendered before the assertion runs and handed
// to it as the message ("message diagnostic", or just the diagnostic).
//
// With WithModifyMessageOnFail or WithSaveContextOnFail the assertion runs
// with the caller's message and the diagnostic is only rendered when it
// fails. The failure is then rebuilt through the target's FailureConstructor:
//
//	target, _ := empower.Enhance(empower.Standard(), formatter.New(),
//	    empower.WithModifyMessageOnFail(true),
//	    empower.WithSaveContextOnFail(true),
//	)
//
// Errors that are not *AssertionError, and targets without a
// FailureConstructor, get their original failure back unchanged.
//
// # Destructive Enhancement
//
// WithDestructive(true) decorates an *Object in place. Otherwise a new
// *Object is returned that shadows the decorated methods and delegates the
// rest to the original. Functions cannot be enhanced destructively.
//
// # Concurrency
//
// A ledger belongs to one evaluation at a time. Goroutines evaluating
// assertions concurrently each need their own enhanced target.
package empower
