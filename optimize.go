package ticks

// optimizeFormat is the Format Optimizer (spec §4.4): for a fixed
// (lmin, lmax, lstep), search format_kind × precision for the most
// legible labeling. The first candidate evaluated always seeds the
// running best (see score.go's scoreInf comment for why), after which
// only a strictly greater legibility replaces it.
func optimizeFormat(scratch *labelScratch, lmin, lmax, lstep float64, ctx AxisContext) (TickFormat, float64) {
	var best TickFormat
	bestL := -scoreInf
	first := true

	for _, kind := range [...]TickFormatKind{FormatDecimal, FormatScientific} {
		for precision := 1; precision <= 9; precision++ {
			f := TickFormat{Kind: kind, Precision: precision}
			l := legibility(scratch, f, lmin, lmax, lstep, ctx)
			if first || l > bestL {
				best = f
				bestL = l
				first = false
			}
		}
	}

	if best.Kind == FormatUndefined {
		panic("ticks: format optimizer failed to select a format")
	}
	if best.Precision < 1 {
		panic("ticks: format optimizer selected an invalid precision")
	}
	return best, bestL
}
