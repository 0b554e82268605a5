package ticks

import "math"

// labelScratch is rendered-label storage reused across every inner
// evaluation of a single search call, instead of allocating a fresh
// slice per candidate (spec §5, §9 "scratch-buffer pattern"). One
// instance backs an entire call to Ticks.
type labelScratch struct {
	labels []string
}

func newLabelScratch() *labelScratch {
	return &labelScratch{labels: make([]string, 0, MaxLabels)}
}

// fill renders the n tick labels for (format, lmin, lstep) into the
// scratch's backing array, reusing it across calls. ok is false if any
// label would not fit MaxGlyphsPerLabel, signalling the caller to
// reject this (format, precision) candidate rather than trust its
// rendering (spec §4.1/§4.4).
func (s *labelScratch) fill(format TickFormat, lmin, lstep float64, n int) (labels []string, ok bool) {
	if n > MaxLabels {
		panic("ticks: candidate tick count exceeds MaxLabels")
	}
	if cap(s.labels) < n {
		s.labels = make([]string, n)
	}
	s.labels = s.labels[:n]
	ok = true
	for i := 0; i < n; i++ {
		lbl, good := renderChecked(lmin+float64(i)*lstep, format)
		s.labels[i] = lbl
		ok = ok && good
	}
	return s.labels, ok
}

// tickCount is the Wilkinson loop invariant n = floor(1 + (lmax-lmin)/lstep)
// (spec §4.2 step 1), with the ITER_TICKS bracketing assertions from
// visky/ticks.h carried over as invariant checks. A tolerance of 1e-6
// steps is added before flooring, so a span that floating-point rounding
// leaves a hair short of a whole number of steps still counts its last
// tick.
func tickCount(lmin, lmax, lstep float64) int {
	const tol = 1e-6
	n := int(math.Floor(1 + (lmax-lmin)/lstep + tol))
	if n < 2 {
		panic("ticks: tick count invariant violated (n < 2)")
	}
	if n >= 3 {
		if lmin+float64(n-1)*lstep > lmax+tol*lstep {
			panic("ticks: tick count invariant violated (last tick beyond lmax)")
		}
		if lmin+float64(n)*lstep < lmax-tol*lstep {
			panic("ticks: tick count invariant violated (n too small for lmax)")
		}
	}
	return n
}

// minGapFromLabels computes §4.2 step 3-4 given already-rendered
// labels: the minimum pixel gap between any two adjacent candidate
// labels.
func minGapFromLabels(labels []string, lmin, lmax, lstep float64, ctx AxisContext) float64 {
	n := len(labels)
	min := math.Inf(1)
	for i := 0; i < n-1; i++ {
		var n0, n1 int
		if ctx.Coord == CoordX {
			n0, n1 = len(labels[i]), len(labels[i+1])
		} else {
			n0, n1 = 1, 1
		}
		gap := lstep/(lmax-lmin)*ctx.SizeViewport - ctx.SizeGlyph*float64(n0+n1)
		if gap < 0 {
			gap = 0
		}
		if gap < min {
			min = gap
		}
	}
	return min
}

// minGap is the standalone form of §4.2's min_gap operation: render the
// candidate labels, then measure their minimum pixel gap.
func minGap(scratch *labelScratch, format TickFormat, lmin, lmax, lstep float64, ctx AxisContext) float64 {
	n := tickCount(lmin, lmax, lstep)
	labels, _ := scratch.fill(format, lmin, lstep, n)
	return minGapFromLabels(labels, lmin, lmax, lstep, ctx)
}

// overlap maps a pixel gap to the legibility contribution described in
// spec §4.2: saturates at 1 once labels are comfortably spaced,
// collapses once they touch exactly, and interpolates monotonically
// increasing in between.
func overlap(d float64) float64 {
	switch {
	case d >= MinLabelDistance:
		return 1
	case d == 0:
		return -scoreInf
	default:
		return 2 - MinLabelDistance/d
	}
}

// hasDuplicate reports whether any two labels in the slice are equal,
// backing the active duplicate-label penalty (spec §9, P8).
func hasDuplicate(labels []string) bool {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			return true
		}
		seen[l] = struct{}{}
	}
	return false
}
