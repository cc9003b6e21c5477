// Package svgout renders the finished diagram to an SVG document: shapes
// as explicit path/ellipse/polyline elements, labels as text elements, and
// a viewBox computed from the accumulated bounding box of everything drawn
// (spec.md §10). It follows svg/writer.go's fluent Builder-plus-WriteTo
// idiom and its Y-flip-at-emission convention, generalized from
// MetaPost's arbitrary Bezier paths to pikchr's closed-form shape set.
package svgout

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/geom"
	"github.com/gopikchr/pikchr/shape"
)

// Shape is one drawable primitive: a polygon/ellipse/path outline plus its
// style, already placed in the engine's Y-up inch coordinate space. Label
// text is not part of a Shape; it is added separately as Text values.
type Shape struct {
	Class     ast.Class
	Center    geom.Point
	HalfW     geom.Length
	HalfH     geom.Length
	Radius    geom.Length
	Vertices  []geom.Point // non-empty for line-like classes
	Closed    bool
	Stroke    geom.Color
	HasFill   bool
	Fill      geom.Color
	Thickness geom.Length
	Dashed    bool
	Dotted    bool
	DashWidth geom.Length
	Invisible bool
	ArrowEnd  bool
	ArrowStart bool
	CW         bool // which side of the chord an arc's center sits on
	Behind     bool // emitted in an earlier layer than non-behind shapes (spec.md §4.6 step 4)
}

// Text is one positioned line of label text.
type Text struct {
	Pos   geom.Point
	Text  string
	Bold  bool
	Italic bool
	Anchor string // "start", "middle", "end"
	SizePt float64
}

// Builder accumulates shapes and text, then emits one SVG document.
// Coordinates passed in are in inches, Y-up; WriteTo performs the inch ->
// pixel scale and the Y-up -> Y-down flip in one place, matching
// svg/writer.go's PathToSVGTransformed's flipHeight argument.
type Builder struct {
	shapes []Shape
	texts  []Text
	bbox   geom.BoundingBox
	scale  float64 // pixels per inch
}

// NewBuilder creates an empty Builder. scale is pixels-per-inch (spec.md
// §10's default of 96, matching the "px" unit conversion in package geom).
func NewBuilder(scale float64) *Builder {
	if scale <= 0 {
		scale = 96
	}
	return &Builder{bbox: geom.NewEmptyBoundingBox(), scale: scale}
}

// AddShape records one shape and folds its extent into the running
// viewBox.
func (b *Builder) AddShape(s Shape) *Builder {
	b.shapes = append(b.shapes, s)
	if len(s.Vertices) > 0 {
		for _, v := range s.Vertices {
			b.bbox = b.bbox.ExpandPoint(v)
		}
	} else {
		b.bbox = b.bbox.ExpandRect(s.Center, s.HalfW*2, s.HalfH*2)
	}
	return b
}

// AddText records one line of label text.
func (b *Builder) AddText(t Text) *Builder {
	b.texts = append(b.texts, t)
	b.bbox = b.bbox.ExpandPoint(t.Pos)
	return b
}

// WriteTo emits the full SVG document.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	margin := geom.Inches(0.1)
	bb := b.bbox
	if bb.IsEmpty() {
		bb = geom.NewEmptyBoundingBox()
		bb = bb.ExpandPoint(geom.Point{})
	}
	bb = bb.Expand(margin)

	width := float64(bb.Width()) * b.scale
	height := float64(bb.Height()) * b.scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.2f %.2f">`+"\n",
		width, height, width, height)

	flip := func(p geom.Point) (float64, float64) {
		x := (float64(p.X) - float64(bb.Min.X)) * b.scale
		y := (float64(bb.Max.Y) - float64(p.Y)) * b.scale
		return x, y
	}

	// "behind" shapes draw in an earlier layer than ordinary ones; within a
	// layer, shapes keep their original insertion order (spec.md §4.6 step
	// 4's "layer then insertion").
	ordered := append([]Shape(nil), b.shapes...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Behind && !ordered[j].Behind
	})
	for _, s := range ordered {
		if s.Invisible {
			continue
		}
		writeShape(&sb, s, flip, b.scale)
	}
	for _, t := range b.texts {
		writeText(&sb, t, flip)
	}

	sb.WriteString("</svg>\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func writeShape(sb *strings.Builder, s Shape, flip func(geom.Point) (float64, float64), scale float64) {
	stroke := s.Stroke.CSS()
	strokeWidth := float64(s.Thickness) * scale
	dash := dashAttr(s, scale)

	switch s.Class {
	case ast.ClassCircle, ast.ClassDot:
		cx, cy := flip(s.Center)
		r := float64(s.Radius) * scale
		fmt.Fprintf(sb, `<circle cx="%.2f" cy="%.2f" r="%.2f" stroke="%s" stroke-width="%.2f"%s %s/>`+"\n",
			cx, cy, r, stroke, strokeWidth, dash, fillAttr(s))

	case ast.ClassOval, ast.ClassEllipse, ast.ClassCylinder:
		cx, cy := flip(s.Center)
		rx := float64(s.HalfW) * scale
		ry := float64(s.HalfH) * scale
		fmt.Fprintf(sb, `<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" stroke="%s" stroke-width="%.2f"%s %s/>`+"\n",
			cx, cy, rx, ry, stroke, strokeWidth, dash, fillAttr(s))

	case ast.ClassDiamond:
		hw := s.HalfW
		hh := s.HalfH
		pts := []geom.Point{
			s.Center.Plus(geom.Offset{DY: hh}),
			s.Center.Plus(geom.Offset{DX: hw}),
			s.Center.Plus(geom.Offset{DY: -hh}),
			s.Center.Plus(geom.Offset{DX: -hw}),
		}
		writePolygon(sb, pts, true, flip, stroke, strokeWidth, dash, fillAttr(s))

	case ast.ClassFile:
		writeFile(sb, s, flip, stroke, strokeWidth, dash, fillAttr(s))

	case ast.ClassArc:
		writeArc(sb, s, flip, stroke, strokeWidth, dash, fillAttr(s), scale)

	case ast.ClassArrow, ast.ClassLine, ast.ClassMove, ast.ClassSpline:
		// Arrowhead polygons are emitted before the line's own path element
		// (spec.md §4.6 step 4's reference ordering).
		if s.ArrowEnd && len(s.Vertices) >= 2 {
			writeArrowhead(sb, s.Vertices[len(s.Vertices)-2], s.Vertices[len(s.Vertices)-1], flip, stroke, scale)
		}
		if s.ArrowStart && len(s.Vertices) >= 2 {
			writeArrowhead(sb, s.Vertices[1], s.Vertices[0], flip, stroke, scale)
		}
		writePolygon(sb, s.Vertices, s.Closed, flip, stroke, strokeWidth, dash, fillAttr(s))

	default: // box, text
		x0, y0 := flip(s.Center.Plus(geom.Offset{DX: -s.HalfW, DY: s.HalfH}))
		w := float64(s.HalfW*2) * scale
		h := float64(s.HalfH*2) * scale
		fmt.Fprintf(sb, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" stroke="%s" stroke-width="%.2f"%s %s/>`+"\n",
			x0, y0, w, h, stroke, strokeWidth, dash, fillAttr(s))
	}
}

func writePolygon(sb *strings.Builder, pts []geom.Point, closed bool, flip func(geom.Point) (float64, float64), stroke string, strokeWidth float64, dash, fill string) {
	if len(pts) == 0 {
		return
	}
	var d strings.Builder
	for i, p := range pts {
		x, y := flip(p)
		if i == 0 {
			fmt.Fprintf(&d, "M %.2f %.2f", x, y)
		} else {
			fmt.Fprintf(&d, " L %.2f %.2f", x, y)
		}
	}
	if closed {
		d.WriteString(" Z")
	}
	fmt.Fprintf(sb, `<path d="%s" stroke="%s" stroke-width="%.2f"%s %s/>`+"\n", d.String(), stroke, strokeWidth, dash, fill)
}

// writeArc emits a true quarter-circle SVG arc between an arc object's two
// endpoints (spec.md's arc object; grounded on shape.ArcCenter/ArcRadius,
// themselves adapted from mp/geometry.go's rotation/distance helpers).
func writeArc(sb *strings.Builder, s Shape, flip func(geom.Point) (float64, float64), stroke string, strokeWidth float64, dash, fill string, scale float64) {
	if len(s.Vertices) < 2 {
		return
	}
	p0 := s.Vertices[0]
	p1 := s.Vertices[len(s.Vertices)-1]
	center := shape.ArcCenter(p0, p1, s.CW)
	r := float64(shape.ArcRadius(p0, p1)) * scale

	x0, y0 := flip(p0)
	x1, y1 := flip(p1)
	cx, cy := flip(center)
	sweep := 0
	if (x0-cx)*(y1-cy)-(y0-cy)*(x1-cx) > 0 {
		sweep = 1
	}
	if s.ArrowEnd {
		writeArrowhead(sb, arcTangentPoint(p0, p1, center), p1, flip, stroke, scale)
	}
	if s.ArrowStart {
		writeArrowhead(sb, arcTangentPoint(p1, p0, center), p0, flip, stroke, scale)
	}

	fmt.Fprintf(sb, `<path d="M %.2f %.2f A %.2f %.2f 0 0 %d %.2f %.2f" stroke="%s" stroke-width="%.2f"%s %s/>`+"\n",
		x0, y0, r, r, sweep, x1, y1, stroke, strokeWidth, dash, fill)
}

// arcTangentPoint returns a point just behind "to" along the arc's tangent
// direction at "to", approximated as the radial-perpendicular that points
// back toward "from" — enough to aim an arrowhead correctly without a full
// angular parametrization.
func arcTangentPoint(from, to, center geom.Point) geom.Point {
	rx, ry := float64(to.X-center.X), float64(to.Y-center.Y)
	perpA := geom.Point{X: to.X - geom.Length(-ry), Y: to.Y - geom.Length(rx)}
	perpB := geom.Point{X: to.X - geom.Length(ry), Y: to.Y - geom.Length(-rx)}
	da := (float64(perpA.X-from.X))*(float64(perpA.X-from.X)) + (float64(perpA.Y-from.Y))*(float64(perpA.Y-from.Y))
	db := (float64(perpB.X-from.X))*(float64(perpB.X-from.X)) + (float64(perpB.Y-from.Y))*(float64(perpB.Y-from.Y))
	if da < db {
		return perpA
	}
	return perpB
}

func writeFile(sb *strings.Builder, s Shape, flip func(geom.Point) (float64, float64), stroke string, strokeWidth float64, dash, fill string) {
	fold := geom.Length(0.15)
	if fold > s.HalfW {
		fold = s.HalfW
	}
	pts := []geom.Point{
		s.Center.Plus(geom.Offset{DX: -s.HalfW, DY: s.HalfH}),
		s.Center.Plus(geom.Offset{DX: s.HalfW - fold, DY: s.HalfH}),
		s.Center.Plus(geom.Offset{DX: s.HalfW, DY: s.HalfH - fold}),
		s.Center.Plus(geom.Offset{DX: s.HalfW, DY: -s.HalfH}),
		s.Center.Plus(geom.Offset{DX: -s.HalfW, DY: -s.HalfH}),
	}
	writePolygon(sb, pts, true, flip, stroke, strokeWidth, dash, fill)
}

func writeArrowhead(sb *strings.Builder, from, to geom.Point, flip func(geom.Point) (float64, float64), stroke string, scale float64) {
	x1, y1 := flip(from)
	x2, y2 := flip(to)
	dx, dy := x2-x1, y2-y1
	length := (dx*dx + dy*dy)
	if length == 0 {
		return
	}
	norm := math.Sqrt(length)
	ux, uy := dx/norm, dy/norm
	size := 8.0
	leftX, leftY := x2-size*ux+size*0.4*uy, y2-size*uy-size*0.4*ux
	rightX, rightY := x2-size*ux-size*0.4*uy, y2-size*uy+size*0.4*ux
	fmt.Fprintf(sb, `<path d="M %.2f %.2f L %.2f %.2f L %.2f %.2f Z" fill="%s" stroke="none"/>`+"\n",
		leftX, leftY, x2, y2, rightX, rightY, stroke)
}

func writeText(sb *strings.Builder, t Text, flip func(geom.Point) (float64, float64)) {
	x, y := flip(t.Pos)
	anchor := t.Anchor
	if anchor == "" {
		anchor = "middle"
	}
	size := t.SizePt
	if size == 0 {
		size = 14
	}
	weight := ""
	if t.Bold {
		weight = ` font-weight="bold"`
	}
	style := ""
	if t.Italic {
		style = ` font-style="italic"`
	}
	fmt.Fprintf(sb, `<text x="%.2f" y="%.2f" text-anchor="%s" font-size="%.2f"%s%s>%s</text>`+"\n",
		x, y, anchor, size, weight, style, escapeXML(t.Text))
}

func dashAttr(s Shape, scale float64) string {
	switch {
	case s.Dotted:
		w := float64(s.DashWidth) * scale
		if w == 0 {
			w = 2
		}
		return fmt.Sprintf(` stroke-dasharray="%.2f %.2f" stroke-linecap="round"`, 0.1, w)
	case s.Dashed:
		w := float64(s.DashWidth) * scale
		if w == 0 {
			w = 6
		}
		return fmt.Sprintf(` stroke-dasharray="%.2f %.2f"`, w, w)
	default:
		return ""
	}
}

func fillAttr(s Shape) string {
	if s.HasFill {
		return fmt.Sprintf(`fill="%s"`, s.Fill.CSS())
	}
	return `fill="none"`
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
