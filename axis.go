// Package ticks implements the Extended Wilkinson tick-label algorithm:
// given a numeric data range and a description of the axis it will be
// drawn on, it picks a "nice" sequence of tick values, a display format,
// and rendered label strings that maximize a weighted quality score.
//
// The algorithm is ported from visky's VklAxesContext/vkl_ticks (C), by
// way of a simplified Go port in github.com/moira-alert/go-chart's
// GeneratePrettyContinuousTicks.
package ticks

import "fmt"

// Coord selects which axis a context describes. It changes how a
// label's pixel footprint is measured: full string width on X, a single
// glyph height on Y (labels stack vertically there).
type Coord int

const (
	CoordX Coord = iota
	CoordY
)

func (c Coord) String() string {
	switch c {
	case CoordX:
		return "x"
	case CoordY:
		return "y"
	default:
		return fmt.Sprintf("Coord(%d)", int(c))
	}
}

// ABI constants, part of the public contract (spec §6).
const (
	// MaxGlyphsPerLabel bounds a single rendered label, sign included.
	MaxGlyphsPerLabel = 24
	// MaxLabels bounds how many candidate labels a single legibility
	// evaluation will render into its scratch buffer.
	MaxLabels = 256
	// MinLabelDistance is the pixel gap below which labels are
	// considered to start overlapping (§4.2).
	MinLabelDistance = 50.0
	// DecimalLowerBound and DecimalUpperBound bound the magnitude range
	// in which decimal notation is considered legible (§4.3).
	DecimalLowerBound = 1e-4
	DecimalUpperBound = 1e6
)

// Search bounds (spec §4.5).
const (
	jMax = 10
	kMax = 50
	zMax = 18
)

// niceNumbers is the fixed, preference-ordered sequence of "nice" step
// factors the search chooses from.
var niceNumbers = [...]float64{1, 5, 2, 2.5, 4, 3}

// scoreWeights is (simplicity, coverage, density, legibility).
var scoreWeights = [4]float64{0.2, 0.25, 0.5, 0.05}

// AxisContext describes the axis a tick layout is being computed for.
type AxisContext struct {
	// Coord selects the horizontal or vertical axis.
	Coord Coord
	// SizeViewport is the pixel extent of the axis line.
	SizeViewport float64
	// SizeGlyph is the pixel size of a single character: width for a
	// horizontal axis, height for a vertical one.
	SizeGlyph float64
	// Extensions is the number of extra tick "pages" to generate on
	// each side of the data range, for off-screen scroll buffering.
	Extensions int
}

// validate panics naming the violated invariant; callers are expected to
// satisfy these preconditions themselves (spec §7 "Contract violation").
func (ctx AxisContext) validate() {
	if ctx.Coord != CoordX && ctx.Coord != CoordY {
		panic(fmt.Sprintf("ticks: invalid AxisContext.Coord %v", ctx.Coord))
	}
	if ctx.SizeViewport <= 0 {
		panic("ticks: AxisContext.SizeViewport must be > 0")
	}
	if ctx.SizeGlyph <= 0 {
		panic("ticks: AxisContext.SizeGlyph must be > 0")
	}
	if ctx.Extensions < 0 {
		panic("ticks: AxisContext.Extensions must be >= 0")
	}
}

// degenerate reports whether the viewport is too small to justify
// running the search at all (spec §4.5).
func (ctx AxisContext) degenerate() bool {
	return ctx.SizeViewport < 10*ctx.SizeGlyph
}
