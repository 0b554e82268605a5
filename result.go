package ticks

import "math"

// avgCharsPerLabel approximates characters per label on the horizontal
// axis when estimating the requested tick count (spec §9 "Open
// question"). Kept as the literal from the original implementation;
// see DESIGN.md for why this isn't exposed as a caller-facing knob.
const avgCharsPerLabel = 6.0

// TicksResult is the populated tick layout handed back to a caller
// (spec §3). It is immutable once returned by Ticks; call Destroy when
// done with it.
type TicksResult struct {
	// Dmin, Dmax are the input data range, possibly widened by
	// AxisContext.Extensions.
	Dmin, Dmax float64
	// LMinOrig, LMaxOrig are the tick endpoints the search chose,
	// without extensions applied.
	LMinOrig, LMaxOrig float64
	// LMin, LMax, LStep are the tick endpoints and spacing, with
	// extensions applied.
	LMin, LStep, LMax float64
	// Format is the chosen display format.
	Format TickFormat
	// ValueCount is the number of ticks emitted (len(Values)).
	ValueCount int
	// ValueCountReq is the tick count originally requested, before the
	// search adjusted it (informational only).
	ValueCountReq int
	// Values are the ordered tick positions.
	Values []float64
	// Labels are the rendered label strings, Labels[i] = render(Values[i], Format).
	Labels []string
}

// Destroy releases TicksResult's backing storage. Go's garbage
// collector makes this unnecessary for memory safety, but it keeps the
// type's lifecycle explicit and symmetric with the spec's
// ticks_destroy entry point (§6) for callers porting code from the
// original C API.
func (r *TicksResult) Destroy() {
	r.Values = nil
	r.Labels = nil
	r.ValueCount = 0
}

// requestedTickCount is §4.6 step 2: m = max(2, ceil((0.1*size_viewport)
// / ((coord==X ? 6 : 1) * size_glyph))). The factor of 6 approximates
// average characters per label on the horizontal axis.
func requestedTickCount(ctx AxisContext) int {
	charWidth := 1.0
	if ctx.Coord == CoordX {
		charWidth = avgCharsPerLabel
	}
	m := int(math.Ceil((0.1 * ctx.SizeViewport) / (charWidth * ctx.SizeGlyph)))
	if m < 2 {
		m = 2
	}
	return m
}

// Ticks is the primary entry point (spec §4.6, §6): given a data range
// and an axis description, it returns a populated tick layout.
func Ticks(dmin, dmax float64, ctx AxisContext) TicksResult {
	if dmin >= dmax {
		panic("ticks: dmin must be < dmax")
	}
	ctx.validate()

	m := requestedTickCount(ctx)
	winner := wilkinsonSearch(dmin, dmax, m, ctx)

	diff := dmax - dmin
	e := float64(ctx.Extensions)

	n := tickCount(winner.LMin, winner.LMax, winner.LStep)
	total := (2*ctx.Extensions + 1) * n
	x0 := winner.LMin - e*diff - e*winner.LStep

	values := make([]float64, total)
	labels := make([]string, total)
	for i := 0; i < total; i++ {
		x := x0 + float64(i)*winner.LStep
		values[i] = x
		labels[i] = render(x, winner.Format)
	}

	return TicksResult{
		Dmin: dmin - e*diff,
		Dmax: dmax + e*diff,

		LMinOrig: winner.LMin,
		LMaxOrig: winner.LMax,

		LMin:  winner.LMin - e*diff,
		LMax:  winner.LMax + e*diff,
		LStep: winner.LStep,

		Format: winner.Format,

		ValueCount:    total,
		ValueCountReq: m,

		Values: values,
		Labels: labels,
	}
}
