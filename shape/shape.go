// Package shape computes object boundary geometry: the eight-compass edge
// points every shaped object exposes, and the "chop" calculation that trims
// a line-like object's endpoint back to the boundary of the object it
// touches (spec.md §3 edges, §7 chop rules). It is grounded on
// mp/geometry.go's line-intersection/rotation helpers and mp/offset.go's
// path-boundary computations, generalized from MetaPost's pen-envelope
// model to pikchr's closed-form box/circle/diamond/ellipse boundaries.
package shape

import (
	"math"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/geom"
)

// Box describes a shaped object's bounding geometry: a center, half-width,
// half-height, and the class that determines which boundary formula
// applies (spec.md §7).
type Box struct {
	Class  ast.Class
	Center geom.Point
	HalfW  geom.Length
	HalfH  geom.Length
}

// ChopPoint returns the point where the segment from b.Center toward
// "towards" crosses b's boundary. It implements spec.md §7's chop rule: a
// line ending inside or at an object's center is pulled back to where it
// would first touch that object's visible outline.
func ChopPoint(b Box, towards geom.Point) geom.Point {
	dx := float64(towards.X - b.Center.X)
	dy := float64(towards.Y - b.Center.Y)
	if dx == 0 && dy == 0 {
		return b.Center
	}
	hw := float64(b.HalfW)
	hh := float64(b.HalfH)

	var t float64
	switch b.Class {
	case ast.ClassCircle, ast.ClassDot:
		r := math.Min(hw, hh)
		t = r / math.Hypot(dx, dy)

	case ast.ClassOval, ast.ClassEllipse, ast.ClassCylinder:
		// Ellipse boundary: (t*dx/hw)^2 + (t*dy/hh)^2 = 1.
		if hw == 0 || hh == 0 {
			t = 0
		} else {
			denom := (dx*dx)/(hw*hw) + (dy*dy)/(hh*hh)
			t = 1 / math.Sqrt(denom)
		}

	case ast.ClassDiamond:
		// Diamond boundary: |x|/hw + |y|/hh = 1.
		if hw == 0 || hh == 0 {
			t = 0
		} else {
			denom := math.Abs(dx)/hw + math.Abs(dy)/hh
			t = 1 / denom
		}

	default:
		// Rectangle boundary (box, file, text): the ray
		// exits through whichever axis-aligned side it reaches first.
		tx := math.MaxFloat64
		ty := math.MaxFloat64
		if dx != 0 {
			tx = hw / math.Abs(dx)
		}
		if dy != 0 {
			ty = hh / math.Abs(dy)
		}
		t = math.Min(tx, ty)
	}

	if t > 1 || math.IsInf(t, 0) || math.IsNaN(t) {
		t = 1
	}
	return geom.Point{
		X: b.Center.X + geom.Length(dx*t),
		Y: b.Center.Y + geom.Length(dy*t),
	}
}

// EdgePoint returns the location of one of the eight compass points (or
// the center) on b's boundary, following the same per-class boundary
// formulas ChopPoint uses, evaluated along the compass direction instead
// of toward an arbitrary point.
func EdgePoint(b Box, e ast.Edge) geom.Point {
	dir := edgeUnitVec(e)
	if dir.IsZero() {
		return b.Center
	}
	far := b.Center.Plus(geom.Offset{
		DX: geom.Length(dir.DX) * (b.HalfW + b.HalfH + 1),
		DY: geom.Length(dir.DY) * (b.HalfW + b.HalfH + 1),
	})
	return ChopPoint(b, far)
}

func edgeUnitVec(e ast.Edge) geom.UnitVec {
	switch e {
	case ast.EdgeNorth:
		return geom.North
	case ast.EdgeSouth:
		return geom.South
	case ast.EdgeEast:
		return geom.East
	case ast.EdgeWest:
		return geom.West
	case ast.EdgeNorthEast:
		return geom.NorthEast
	case ast.EdgeNorthWest:
		return geom.NorthWest
	case ast.EdgeSouthEast:
		return geom.SouthEast
	case ast.EdgeSouthWest:
		return geom.SouthWest
	default:
		return geom.Zero
	}
}

// BoundingBox returns the object's axis-aligned bounding box, the basis
// for the overall drawing's viewBox computation in package svgout.
func (b Box) BoundingBox() geom.BoundingBox {
	bb := geom.NewEmptyBoundingBox()
	bb = bb.ExpandRect(b.Center, b.HalfW*2, b.HalfH*2)
	return bb
}
