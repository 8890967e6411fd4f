package empower

import (
	"testing"
)

// BenchmarkStandard_Equal is the baseline: an unenhanced passing assertion.
func BenchmarkStandard_Equal(b *testing.B) {
	obj := Standard()

	b.ReportAllocs()
	for b.Loop() {
		_ = obj.Equal(4, 4, "")
	}
}

// BenchmarkEnhanced_PlainArguments measures the decoration overhead when no
// carrier is passed.
func BenchmarkEnhanced_PlainArguments(b *testing.B) {
	target, err := Enhance(Standard(), constFormatter("F"))
	if err != nil {
		b.Fatalf("Enhance failed: %v", err)
	}
	power := target.(*Object)

	b.ReportAllocs()
	for b.Loop() {
		_ = power.Equal(4, 4, "")
	}
}

// BenchmarkEnhanced_Eager formats on every call, pass or fail.
func BenchmarkEnhanced_Eager(b *testing.B) {
	target, err := Enhance(Standard(), constFormatter("F"))
	if err != nil {
		b.Fatalf("Enhance failed: %v", err)
	}
	power := target.(*Object)

	b.ReportAllocs()
	for b.Loop() {
		v := power.Capture(4, "ident", Location{Line: 1, Column: 8})
		_ = power.Equal(power.Expr(v, Location{Line: 1}, "equal(a, 4)"), 4, "")
	}
}

// BenchmarkEnhanced_Lazy formats only when the assertion fails, which is never here.
func BenchmarkEnhanced_Lazy(b *testing.B) {
	target, err := Enhance(Standard(), constFormatter("F"), WithModifyMessageOnFail(true))
	if err != nil {
		b.Fatalf("Enhance failed: %v", err)
	}
	power := target.(*Object)

	b.ReportAllocs()
	for b.Loop() {
		v := power.Capture(4, "ident", Location{Line: 1, Column: 8})
		_ = power.Equal(power.Expr(v, Location{Line: 1}, "equal(a, 4)"), 4, "")
	}
}

// BenchmarkEnhanced_LazyFailure includes re-synthesis of the failure.
func BenchmarkEnhanced_LazyFailure(b *testing.B) {
	target, err := Enhance(Standard(), constFormatter("F"),
		WithModifyMessageOnFail(true), WithSaveContextOnFail(true))
	if err != nil {
		b.Fatalf("Enhance failed: %v", err)
	}
	power := target.(*Object)

	b.ReportAllocs()
	for b.Loop() {
		v := power.Capture(3, "ident", Location{Line: 1, Column: 8})
		_ = power.Equal(power.Expr(v, Location{Line: 1}, "equal(a, 4)"), 4, "")
	}
}
