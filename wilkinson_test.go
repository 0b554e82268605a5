package ticks

import (
	"testing"

	"github.com/blend/go-sdk/assert"
)

func TestWilkinsonSearchDegenerateFallback(t *testing.T) {
	assert := assert.New(t)

	ctx := AxisContext{Coord: CoordX, SizeViewport: 50, SizeGlyph: 10}
	state := wilkinsonSearch(0, 1, 4, ctx)

	assert.Equal(0.0, state.LMin)
	assert.Equal(1.0, state.LMax)
	assert.Equal(1.0, state.LStep)
	assert.Equal(1, state.J)
	assert.Equal(0.0, state.Q)
	assert.Equal(2, state.K)
	assert.Equal(FormatDecimal, state.Format.Kind)
	assert.Equal(1, state.Format.Precision)
	assert.Equal(0.0, state.Score)
}

func TestWilkinsonSearchProducesValidCandidate(t *testing.T) {
	assert := assert.New(t)

	ctx := AxisContext{Coord: CoordX, SizeViewport: 1000, SizeGlyph: 10}
	state := wilkinsonSearch(0, 1, 4, ctx)

	assert.True(state.LMin < state.LMax)
	assert.True(state.LStep > 0)
	assert.True(state.Score > -scoreInf)
}

func TestWilkinsonSearchIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	ctx := AxisContext{Coord: CoordY, SizeViewport: 800, SizeGlyph: 8}
	a := wilkinsonSearch(-10.12, 20.34, 6, ctx)
	b := wilkinsonSearch(-10.12, 20.34, 6, ctx)

	assert.Equal(a, b)
}

func TestWilkinsonSearchLargeMagnitudeRangeDoesNotPanic(t *testing.T) {
	assert := assert.New(t)

	// A range wide enough that decimal notation at high precision would
	// render past MaxGlyphsPerLabel; the Format Optimizer must reject
	// those candidates instead of letting render() panic (spec §4.1).
	ctx := AxisContext{Coord: CoordX, SizeViewport: 1000, SizeGlyph: 10}
	state := wilkinsonSearch(0, 2e12, 4, ctx)

	assert.True(state.LMin < state.LMax)
	assert.True(state.Score > -scoreInf)
}

func TestWilkinsonSearchProducesSaneCandidateForVariousRanges(t *testing.T) {
	testcases := []struct {
		name       string
		dmin, dmax float64
	}{
		{"unit range", 0, 1},
		{"offset range", -10.12, 20.34},
		{"tiny range", 0.001, 0.002},
		{"precision-hungry range", -0.131456, -0.124789},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			ctx := AxisContext{Coord: CoordX, SizeViewport: 2000, SizeGlyph: 5}
			m := requestedTickCount(ctx)
			state := wilkinsonSearch(tc.dmin, tc.dmax, m, ctx)

			assert.True(state.LMin < state.LMax)
			assert.True(state.LStep > 0)
			assert.True(state.Score > -scoreInf)
		})
	}
}
