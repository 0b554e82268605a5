package ticks

import "math"

// scoreInf mirrors the original C implementation's `#define INF
// 1000000000` sentinel rather than IEEE-754 infinity. Using an actual
// -Inf for "certain overlap" or "duplicate labels" would make every
// first-candidate comparison `l > bestL` false when bestL is also
// seeded at -Inf, so the very first candidate evaluated would never be
// adopted as the running best. A large finite sentinel, weighted down
// by the legibility term's small coefficient, sorts below every
// realistic finite score while still comparing strictly less-than
// itself only when truly tied.
const scoreInf = 1e9

// prettyTicksEps is the tolerance used to decide whether lstep divides
// lmin evenly for the simplicity bonus (spec §4.3 "v").
const prettyTicksEps = 1e-10

// simplicity is §4.3's s(q,j,lmin,lmax,lstep). qIndex is the 0-based
// index of q within niceNumbers.
func simplicity(qIndex, j int, lmin, lmax, lstep float64) float64 {
	n := float64(len(niceNumbers))
	i := float64(qIndex + 1)
	v := 0.0
	if math.Mod(lmin, lstep) < prettyTicksEps ||
		(math.Mod(lstep-lmin, lstep) < prettyTicksEps && lmin <= 0 && lmax >= 0) {
		v = 1
	}
	return (n-i)/(n-1) + v - float64(j)
}

// simplicityMax is the monotone upper bound s̄(q,j): same formula with
// v pinned to its best-case value of 1.
func simplicityMax(qIndex, j int) float64 {
	n := float64(len(niceNumbers))
	i := float64(qIndex + 1)
	return (n-i)/(n-1) + 1 - float64(j)
}

// coverage is §4.3's c(dmin,dmax,lmin,lmax).
func coverage(dmin, dmax, lmin, lmax float64) float64 {
	drange := dmax - dmin
	return 1 - 0.5*(sqr(dmax-lmax)+sqr(dmin-lmin))/sqr(0.1*drange)
}

// coverageMax is the monotone upper bound c̄(σ) for a fixed span σ.
func coverageMax(dmin, dmax, span float64) float64 {
	drange := dmax - dmin
	if span <= drange {
		return 1
	}
	return 1 - sqr(0.5*(span-drange))/sqr(0.1*drange)
}

// density is §4.3's d(k,m,dmin,dmax,lmin,lmax).
func density(k, m int, dmin, dmax, lmin, lmax float64) float64 {
	r := float64(k-1) / (lmax - lmin)
	rt := float64(m-1) / (math.Max(lmax, dmax) - math.Min(lmin, dmin))
	return 2 - math.Max(r/rt, rt/r)
}

// densityMax is the monotone upper bound d̄(k,m).
func densityMax(k, m int) float64 {
	if k >= m {
		return 2 - float64(k-1)/float64(m-1)
	}
	return 1
}

// perTickFormatScore is §4.3 step 1: per-tick contribution to the
// format part of legibility.
func perTickFormatScore(kind TickFormatKind, x float64) float64 {
	switch kind {
	case FormatDecimal:
		ax := math.Abs(x)
		if ax > DecimalLowerBound && ax < DecimalUpperBound {
			return 1
		}
		return 0
	case FormatScientific:
		return 0.25
	default:
		return 0
	}
}

// legibility evaluates §4.3's ℓ for a fixed (format, lmin, lmax, lstep),
// rendering candidate labels into scratch. The duplicate-label term is
// active (DESIGN.md "Open Question resolutions"): any repeated label
// collapses legibility toward scoreInf's negative, forcing the
// optimizer to a different (format, precision) pair, per P8. A
// (format, precision) pair whose labels don't fit MaxGlyphsPerLabel is
// rejected the same way (spec §4.1: "the precision must have been
// rejected upstream"), instead of ever calling the panicking render().
func legibility(scratch *labelScratch, format TickFormat, lmin, lmax, lstep float64, ctx AxisContext) float64 {
	n := tickCount(lmin, lmax, lstep)
	labels, fits := scratch.fill(format, lmin, lstep, n)
	if !fits {
		return -scoreInf
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += perTickFormatScore(format.Kind, lmin+float64(i)*lstep)
	}
	f := 0.9 * sum / float64(maxInt(1, n))

	o := overlap(minGapFromLabels(labels, lmin, lmax, lstep, ctx))

	dup := 1.0
	if hasDuplicate(labels) {
		dup = -scoreInf
	}

	return (f + o + dup) / 3
}

// score is §4.3's total weighted score S = W·(s,c,d,ℓ).
func score(s, c, d, l float64) float64 {
	return scoreWeights[0]*s + scoreWeights[1]*c + scoreWeights[2]*d + scoreWeights[3]*l
}

func sqr(x float64) float64 { return x * x }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
