// Package fontmetrics derives the AxisContext.SizeGlyph pixel value the
// ticks package's search expects from a real TrueType font, instead of
// requiring the caller to hand-pick a constant. It is a caller-side
// convenience built on top of the same stack the teacher chart package
// uses to measure rendered label text (github.com/golang/freetype,
// golang.org/x/image/math/fixed) — it never rasterizes a glyph or builds
// a font atlas, only reads advance widths and the font's bounding box,
// expressed the way the freetype ecosystem expresses them: 26.6
// fixed-point pixel units.
package fontmetrics

import (
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

// DefaultDPI matches the freetype package's own default resolution.
const DefaultDPI = 72.0

// Font wraps a parsed TrueType font for glyph-size queries.
type Font struct {
	tt *truetype.Font
}

// Load parses TrueType font bytes.
func Load(data []byte) (*Font, error) {
	tt, err := freetype.ParseFont(data)
	if err != nil {
		return nil, err
	}
	return &Font{tt: tt}, nil
}

// GlyphSize returns the pixel advance width of a representative digit
// glyph ('0') and the pixel line height of the font's bounding box, at
// the given point size and DPI, as 26.6 fixed-point values. Pass the
// result through ToPixels before feeding it into
// AxisContext{SizeGlyph: ...} (width for a horizontal axis, height for
// a vertical one).
func (f *Font) GlyphSize(points, dpi float64) (width, height fixed.Int26_6) {
	idx := f.tt.Index('0')
	hm := f.tt.HMetric(idx)
	b := f.tt.Bounds()
	return glyphSizeFromMetrics(int(hm.AdvanceWidth), int(b.YMax)-int(b.YMin), f.tt.UnitsPerEm(), points, dpi)
}

// glyphSizeFromMetrics is the pure FUnit-to-26.6-fixed-point conversion,
// factored out so it can be exercised without parsing a real font file.
func glyphSizeFromMetrics(advanceWidthFUnits, boundsHeightFUnits, unitsPerEm int, points, dpi float64) (width, height fixed.Int26_6) {
	if unitsPerEm <= 0 {
		panic("fontmetrics: font reports non-positive UnitsPerEm")
	}
	scale := points * dpi / 72 / float64(unitsPerEm)
	width = fixed.Int26_6(float64(advanceWidthFUnits) * scale * 64)
	height = fixed.Int26_6(float64(boundsHeightFUnits) * scale * 64)
	return width, height
}

// ToPixels converts a 26.6 fixed-point length to a plain pixel float64,
// the form AxisContext.SizeGlyph expects.
func ToPixels(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
