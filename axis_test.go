package ticks

import (
	"testing"

	"github.com/blend/go-sdk/assert"
)

func TestAxisContextValidate(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name   string
		ctx    AxisContext
		panics bool
	}{
		{"valid x", AxisContext{Coord: CoordX, SizeViewport: 100, SizeGlyph: 10}, false},
		{"valid y with extensions", AxisContext{Coord: CoordY, SizeViewport: 100, SizeGlyph: 10, Extensions: 2}, false},
		{"bad coord", AxisContext{Coord: Coord(99), SizeViewport: 100, SizeGlyph: 10}, true},
		{"zero viewport", AxisContext{Coord: CoordX, SizeViewport: 0, SizeGlyph: 10}, true},
		{"negative glyph", AxisContext{Coord: CoordX, SizeViewport: 100, SizeGlyph: -1}, true},
		{"negative extensions", AxisContext{Coord: CoordX, SizeViewport: 100, SizeGlyph: 10, Extensions: -1}, true},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			didPanic := false
			func() {
				defer func() {
					if recover() != nil {
						didPanic = true
					}
				}()
				tc.ctx.validate()
			}()
			assert.Equal(tc.panics, didPanic)
		})
	}
}

func TestAxisContextDegenerate(t *testing.T) {
	assert := assert.New(t)

	assert.True(AxisContext{SizeViewport: 50, SizeGlyph: 10}.degenerate())
	assert.False(AxisContext{SizeViewport: 101, SizeGlyph: 10}.degenerate())
}

func TestCoordString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("x", CoordX.String())
	assert.Equal("y", CoordY.String())
}
