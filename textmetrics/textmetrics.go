// Package textmetrics estimates the width and height pikchr's text labels
// occupy and assigns each line of a multi-line label its vertical slot
// (spec.md §4.9). Unlike font/font.go's real OpenType shaping (which this
// engine deliberately does not wire in — pikchr's own layout never
// measures glyph outlines, only the charwid/charht/fontscale builtin
// variables, see DESIGN.md), this package follows pikchr's fixed
// average-character-width approximation instead.
package textmetrics

import (
	"math"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/geom"
)

// Metrics holds the builtin sizing variables text measurement depends on.
type Metrics struct {
	CharWidth  geom.Length
	CharHeight geom.Length
	FontScale  geom.Scalar
}

// sizeFactor implements the "big"/"small" keyword scaling rule (DESIGN.md's
// Open Question: repeated size keywords compound quadratically, not
// linearly, matching the visual jump a second "big big" reads as).
func sizeFactor(style ast.TextStyle) float64 {
	f := 1.0
	if style.BigCount > 0 {
		f *= math.Pow(1.2, float64(style.BigCount*style.BigCount))
	}
	if style.SmallCount > 0 {
		f /= math.Pow(1.2, float64(style.SmallCount*style.SmallCount))
	}
	return f
}

// LineWidth estimates one line's rendered width.
func (m Metrics) LineWidth(text string, style ast.TextStyle) geom.Length {
	n := len([]rune(text))
	w := float64(m.CharWidth) * float64(m.FontScale) * sizeFactor(style) * float64(n)
	return geom.Length(w)
}

// LineHeight estimates one line's rendered height (its baseline-to-baseline
// advance when stacked with other lines).
func (m Metrics) LineHeight(style ast.TextStyle) geom.Length {
	return geom.Length(float64(m.CharHeight) * float64(m.FontScale) * sizeFactor(style))
}

// Placement is one text line positioned relative to its object's center.
type Placement struct {
	Text   string
	Style  ast.TextStyle
	Offset geom.Offset // relative to the object's center
}

// Line pairs the source text with its style, the input Slot consumes.
type Line struct {
	Text  string
	Style ast.TextStyle
}

// Slot lays out a label's lines around an object's center, stacking
// "above"-slotted lines upward, "below"-slotted lines downward, and
// center-slotted lines on the centerline itself (spec.md §4.9). Multiple
// lines sharing a slot stack outward from the center in the order given.
func Slot(m Metrics, lines []Line) []Placement {
	placements := make([]Placement, len(lines))

	var aboveY, belowY geom.Length
	for i, l := range lines {
		h := m.LineHeight(l.Style)
		var dy geom.Length
		switch l.Style.Vertical {
		case ast.VerticalAbove:
			aboveY += h
			dy = aboveY - h/2
		case ast.VerticalBelow:
			belowY += h
			dy = -(belowY - h/2)
		default:
			dy = 0
		}
		dx := geom.ZERO
		placements[i] = Placement{Text: l.Text, Style: l.Style, Offset: geom.Offset{DX: dx, DY: dy}}
	}
	return placements
}

// BoundingHeight returns the total vertical extent a label's lines occupy,
// used by "fit" sizing (spec.md §4.6).
func BoundingHeight(m Metrics, lines []Line) geom.Length {
	var above, below, center geom.Length
	for _, l := range lines {
		h := m.LineHeight(l.Style)
		switch l.Style.Vertical {
		case ast.VerticalAbove:
			above += h
		case ast.VerticalBelow:
			below += h
		default:
			if h > center {
				center = h
			}
		}
	}
	total := above + below
	if center > total {
		total = center
	}
	return total
}

// BoundingWidth returns the widest line's width, used by "fit" sizing.
func BoundingWidth(m Metrics, lines []Line) geom.Length {
	var max geom.Length
	for _, l := range lines {
		if w := m.LineWidth(l.Text, l.Style); w > max {
			max = w
		}
	}
	return max
}
