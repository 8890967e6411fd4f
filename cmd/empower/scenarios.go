package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/alexshd/empower"
	"github.com/alexshd/empower/formatter"
)

const scenarioFile = "scenarios_test.go"

type user struct {
	Name string
	Age  int
}

// scenario is what a rewriting stage emits for one assertion statement.
type scenario struct {
	name string
	eval func(power *empower.Object) error
}

func at(line, column int) empower.Location {
	return empower.Location{Path: scenarioFile, Line: line, Column: column}
}

var scenarios = []scenario{
	{
		// assert.Equal(u.Age, 4)
		name: "member equal",
		eval: func(power *empower.Object) error {
			u := user{Name: "alice", Age: 3}
			age := empower.Capture(power, u.Age, "member", at(12, 14))
			return power.Equal(power.Expr(age, at(12, 2), "assert.Equal(u.Age, 4)"), 4, "")
		},
	},
	{
		// assert.Ok(len(items) > 3, "need more items")
		name: "binary ok",
		eval: func(power *empower.Object) error {
			items := []string{"a", "b"}
			n := empower.Capture(power, len(items), "call", at(20, 12))
			cond := empower.Capture(power, n > 3, "binary", at(20, 23))
			return power.Ok(power.Expr(cond, at(20, 2), "assert.Ok(len(items) > 3)"), "need more items")
		},
	},
	{
		// assert.DeepEqual(got.Tags, want.Tags)
		name: "both operands",
		eval: func(power *empower.Object) error {
			got := map[string][]string{"Tags": {"x"}}
			want := map[string][]string{"Tags": {"x", "y"}}
			left := power.Expr(empower.Capture(power, got["Tags"], "member", at(31, 19)), at(31, 2), "assert.DeepEqual(got.Tags, want.Tags)")
			right := power.Expr(empower.Capture(power, want["Tags"], "member", at(31, 29)), at(31, 2), "assert.DeepEqual(got.Tags, want.Tags)")
			return power.DeepEqual(left, right, "")
		},
	},
	{
		// assert.StrictEqual(u.Name, "alice")
		name: "passing",
		eval: func(power *empower.Object) error {
			u := user{Name: "alice", Age: 3}
			name := empower.Capture(power, u.Name, "member", at(40, 20))
			return power.StrictEqual(power.Expr(name, at(40, 2), `assert.StrictEqual(u.Name, "alice")`), "alice", "")
		},
	},
}

// runScenarios enhances the standard object with cfg and prints the outcome
// of every scenario.
func runScenarios(out io.Writer, cfg empower.Config) error {
	target, err := empower.Enhance(empower.Standard(), formatter.New(), empower.WithConfig(cfg))
	if err != nil {
		return err
	}
	power := target.(*empower.Object)

	for _, sc := range scenarios {
		err := sc.eval(power)
		if err == nil {
			fmt.Fprintf(out, "--- PASS: %s\n", sc.name)
			continue
		}

		fmt.Fprintf(out, "--- FAIL: %s\n%s\n", sc.name, err)
		var failure *empower.AssertionError
		if errors.As(err, &failure) && failure.PowerAssertContext != nil {
			fmt.Fprintf(out, "    (context saved: %d captured values)\n", len(failure.PowerAssertContext.Events))
		}
	}
	return nil
}
