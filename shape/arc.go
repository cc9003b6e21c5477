package shape

import (
	"math"

	"github.com/gopikchr/pikchr/geom"
)

// ArcRadius returns the radius of the quarter-circle arc pikchr draws
// between two endpoints (spec.md's arc object always sweeps a 90-degree
// arc between its two endpoints, never an arbitrary ellipse segment).
// Grounded on mp/geometry.go's Distance/Rotate vector helpers, adapted
// from MetaPost's general line/rotation geometry to pikchr's fixed
// quarter-circle rule: the chord of a 90-degree arc is r*sqrt(2).
func ArcRadius(p0, p1 geom.Point) geom.Length {
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)
	chord := math.Hypot(dx, dy)
	return geom.Length(chord / math.Sqrt2)
}

// ArcCenter returns the center of the quarter-circle arc from p0 to p1,
// on whichever side of the chord cw selects (spec.md's "cw"/"ccw" arc
// attribute). The center sits on the chord's perpendicular bisector at
// a distance of half the chord length, which for a 90-degree arc is r/√2
// and leaves both endpoints exactly r from the center.
func ArcCenter(p0, p1 geom.Point, cw bool) geom.Point {
	mx := (float64(p0.X) + float64(p1.X)) / 2
	my := (float64(p0.Y) + float64(p1.Y)) / 2
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)

	nx, ny := -dy, dx
	norm := math.Hypot(nx, ny)
	if norm == 0 {
		return geom.Point{X: geom.Length(mx), Y: geom.Length(my)}
	}
	nx, ny = nx/norm, ny/norm

	half := math.Hypot(dx, dy) / 2
	if cw {
		half = -half
	}
	return geom.Point{X: geom.Length(mx + nx*half), Y: geom.Length(my + ny*half)}
}
