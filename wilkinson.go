package ticks

import "math"

// SearchState is a candidate tick line considered by the Extended
// Wilkinson Search (spec §3). The value returned by wilkinsonSearch is
// the winner: the candidate with the highest Score found.
type SearchState struct {
	LMin, LMax, LStep float64
	J                 int
	Q                 float64
	K                 int
	Format            TickFormat
	Score             float64
}

// wilkinsonSearch is the four-level nested branch-and-bound search
// (spec §4.5), ported from visky/ticks.h's wilk_ext. dmin < dmax and m
// (the requested tick count) >= 2 are preconditions enforced by the
// caller (Ticks).
func wilkinsonSearch(dmin, dmax float64, m int, ctx AxisContext) SearchState {
	if ctx.degenerate() {
		return SearchState{
			LMin:   dmin,
			LMax:   dmax,
			LStep:  dmax - dmin,
			J:      1,
			Q:      0,
			K:      2,
			Format: TickFormat{Kind: FormatDecimal, Precision: 1},
			Score:  0,
		}
	}

	scratch := newLabelScratch()
	best := SearchState{Score: -scoreInf}
	found := false

JLoop:
	for j := 1; j < jMax; j++ {
		for qi, q := range niceNumbers {
			sm := simplicityMax(qi, j)
			if score(sm, 1, 1, 1) <= best.Score {
				// No later j can improve on this bound: jump straight
				// to the exit, matching wilk_ext's `j = INF; break;`.
				break JLoop
			}

			for k := 2; k < kMax; k++ {
				dm := densityMax(k, m)
				if score(sm, 1, dm, 1) <= best.Score {
					break
				}

				delta := (dmax - dmin) / float64(k+1) / float64(j) / q
				z := math.Ceil(math.Log10(delta))

				for z < float64(zMax) {
					step := float64(j) * q * math.Pow(10, z)
					cm := coverageMax(dmin, dmax, step*float64(k-1))

					if score(sm, cm, dm, 1) <= best.Score {
						break
					}

					minStart := math.Floor(dmax/step)*float64(j) - float64(k-1)*float64(j)
					maxStart := math.Ceil(dmin/step) * float64(j)

					if minStart > maxStart {
						z++
						continue
					}

					for start := minStart; start <= maxStart; start++ {
						lmin := start * (step / float64(j))
						lmax := lmin + step*float64(k-1)
						lstep := step

						s := simplicity(qi, j, lmin, lmax, lstep)
						c := coverage(dmin, dmax, lmin, lmax)
						d := density(k, m, dmin, dmax, lmin, lmax)
						format, l := optimizeFormat(scratch, lmin, lmax, lstep, ctx)

						scr := score(s, c, d, l)
						if !found || scr > best.Score {
							best = SearchState{
								LMin: lmin, LMax: lmax, LStep: lstep,
								J: j, Q: q, K: k,
								Format: format, Score: scr,
							}
							found = true
						}
					}
					z++
				}
			}
		}
	}

	return best
}
