package empower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "", Location{}.String())
	assert.Equal(t, "3:7", Location{Line: 3, Column: 7}.String())
	assert.Equal(t, "a_test.go:3:7", Location{Path: "a_test.go", Line: 3, Column: 7}.String())
}

// TestLedger_CaptureIsTransparent verifies capture returns its input unchanged.
func TestLedger_CaptureIsTransparent(t *testing.T) {
	l := NewLedger()
	slice := []int{1, 2}

	assert.Equal(t, 42, l.Capture(42, "ident", Location{}))
	assert.Nil(t, l.Capture(nil, "ident", Location{}))
	assert.Equal(t, "s", l.Capture("s", "literal", Location{}))
	got := l.Capture(slice, "ident", Location{}).([]int)
	assert.Same(t, &slice[0], &got[0])
	assert.Equal(t, 4, l.Len())
}

func TestLedger_FinalizeTakesOwnership(t *testing.T) {
	l := NewLedger()
	loc := Location{Line: 1, Column: 1}
	l.Capture(2, "ident", Location{Line: 1, Column: 4})
	l.Capture(false, "binary", Location{Line: 1, Column: 6})

	ctx := l.Finalize(false, loc, "ok(x > 3)").PowerAssertContext()
	require.NotNil(t, ctx)

	assert.Equal(t, false, ctx.Value)
	assert.Equal(t, loc, ctx.Location)
	assert.Equal(t, "ok(x > 3)", ctx.Content)
	assert.Equal(t, []CaptureEvent{
		{Value: 2, Kind: "ident", Location: Location{Line: 1, Column: 4}},
		{Value: false, Kind: "binary", Location: Location{Line: 1, Column: 6}},
	}, ctx.Events)
	assert.Zero(t, l.Len())

	// Later captures must not leak into the finalized context.
	l.Capture(99, "ident", Location{})
	assert.Len(t, ctx.Events, 2)
}

// TestLedger_ResetBetweenExpressions verifies a second finalize without
// captures yields an empty event sequence.
func TestLedger_ResetBetweenExpressions(t *testing.T) {
	l := NewLedger()
	l.Capture(1, "ident", Location{})

	first := l.Finalize(1, Location{}, "a").PowerAssertContext()
	second := l.Finalize(2, Location{}, "b").PowerAssertContext()

	assert.Len(t, first.Events, 1)
	assert.NotNil(t, second.Events)
	assert.Empty(t, second.Events)
}

func TestLedger_FinalizeAcceptsNil(t *testing.T) {
	ctx := NewLedger().Finalize(nil, Location{}, "").PowerAssertContext()

	require.NotNil(t, ctx)
	assert.Nil(t, ctx.Value)
	assert.Empty(t, ctx.Events)
}

func TestCarried_NotCarriers(t *testing.T) {
	var nilCarrier *Carrier

	for name, v := range map[string]any{
		"nil":           nil,
		"typed nil":     nilCarrier,
		"empty carrier": &Carrier{},
		"int":           5,
		"context":       &Context{},
	} {
		t.Run(name, func(t *testing.T) {
			ctx, ok := carried(v)
			assert.False(t, ok)
			assert.Nil(t, ctx)
		})
	}

	assert.Nil(t, nilCarrier.PowerAssertContext())
}

func TestContext_MergeDoesNotMutate(t *testing.T) {
	a := CaptureEvent{Value: 4, Kind: "ident"}
	b := CaptureEvent{Value: 5, Kind: "ident"}

	// Spare capacity would let a naive append write into left's backing array.
	leftEvents := make([]CaptureEvent, 1, 4)
	leftEvents[0] = a
	left := &Context{Value: 4, Content: "x", Location: Location{Line: 1}, Events: leftEvents}
	right := &Context{Value: 5, Content: "y", Location: Location{Line: 2}, Events: []CaptureEvent{b}}

	merged := left.merge(right)

	assert.Equal(t, []CaptureEvent{a, b}, merged.Events)
	assert.Equal(t, 4, merged.Value)
	assert.Equal(t, "x", merged.Content)
	assert.Equal(t, Location{Line: 1}, merged.Location)

	assert.Equal(t, []CaptureEvent{a}, left.Events)
	assert.Equal(t, []CaptureEvent{b}, right.Events)
	assert.Equal(t, CaptureEvent{}, leftEvents[:2][1])
}
