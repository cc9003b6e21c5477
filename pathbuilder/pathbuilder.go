// Package pathbuilder turns a line-like object's attribute list (from,
// to, direction moves, heading moves, then-clauses) into an ordered vertex
// chain, the state machine spec.md §5 describes for ArrowPath. It follows
// the fluent, incrementally-accumulated segment style of
// draw/builder.go's PathBuilder, replacing MetaPost's tension/curl-solved
// Bezier segments with pikchr's plain polyline-with-explicit-corners model
// (mp/knot.go's Knot chain is the nearest teacher analogue, minus the
// spline solve).
package pathbuilder

import (
	"github.com/gopikchr/pikchr/geom"
)

// Builder accumulates a line-like object's path one move at a time. The
// zero value is not usable; create one with New.
type Builder struct {
	vertices  []geom.Point
	cur       geom.Point
	lastDir   geom.UnitVec
	thenFlag  bool // true once an explicit "then" has been seen since the last move
	closed    bool
}

// New starts a path at the given point (the object's "from" position, or
// the layout driver's current cursor if no "from" was given).
func New(start geom.Point) *Builder {
	return &Builder{vertices: []geom.Point{start}, cur: start}
}

// Vertices returns the accumulated path, in order.
func (b *Builder) Vertices() []geom.Point { return append([]geom.Point(nil), b.vertices...) }

// Cur returns the path's current endpoint.
func (b *Builder) Cur() geom.Point { return b.cur }

// LastDirection returns the unit direction of the most recent segment, or
// the Zero vector before any segment has been added.
func (b *Builder) LastDirection() geom.UnitVec { return b.lastDir }

// Then marks that the next move is an explicit corner (spec.md §5's
// "then" keyword): it does not change the geometry by itself, but signals
// the builder that a following move must start a new segment rather than
// being folded into the one before it, matching pikchr's rule that two
// direction moves with no "then" between them are drawn as one straight
// run rather than as two segments when they point the same way.
func (b *Builder) Then() { b.thenFlag = true }

// MoveTo appends an explicit waypoint (an absolute "to POSITION" clause).
func (b *Builder) MoveTo(p geom.Point) {
	b.appendVertex(p)
}

// MoveBy appends a vertex reached by travelling along dir for dist from
// the current point (a "right 1.5in" style direction-move clause, or a
// heading-move once dir has been computed from degrees).
func (b *Builder) MoveBy(dir geom.UnitVec, dist geom.Length) {
	b.appendVertex(b.cur.Plus(dir.Scale(dist)))
	b.lastDir = dir
}

// SetEvenWith appends a vertex reached by holding the current point's
// off-axis coordinate fixed and setting the axis coordinate that horizontal
// implies (X if true, Y if false) absolutely to target's matching
// coordinate — no offset from the current point is applied, unlike MoveBy
// (spec.md §4.3's set_even_with: "right until even with B.w").
func (b *Builder) SetEvenWith(horizontal bool, target geom.Point) {
	p := b.cur
	if horizontal {
		p.X = target.X
	} else {
		p.Y = target.Y
	}
	b.appendVertex(p)
}

func (b *Builder) appendVertex(p geom.Point) {
	// Two collinear, same-direction moves with no intervening "then" merge
	// into a single segment rather than leaving a redundant mid-segment
	// vertex — this only matters for the vertex list's visual corners, not
	// for any chop/label computation, which always uses the final merged
	// endpoint. A move that reverses direction is kept as its own segment.
	if !b.thenFlag && len(b.vertices) > 1 {
		prev := b.vertices[len(b.vertices)-2]
		last := b.vertices[len(b.vertices)-1]
		sameDir := float64(last.X-prev.X)*float64(p.X-last.X)+float64(last.Y-prev.Y)*float64(p.Y-last.Y) > 0
		if sameDir && collinear(prev, last, p) {
			b.vertices[len(b.vertices)-1] = p
			b.cur = p
			return
		}
	}
	b.vertices = append(b.vertices, p)
	b.cur = p
	b.thenFlag = false
}

func collinear(a, b, c geom.Point) bool {
	// Cross product of (b-a) and (c-a); zero means collinear.
	abx, aby := float64(b.X-a.X), float64(b.Y-a.Y)
	acx, acy := float64(c.X-a.X), float64(c.Y-a.Y)
	cross := abx*acy - aby*acx
	return cross > -1e-9 && cross < 1e-9
}

// Close appends the starting point as a final vertex, closing the path
// (spec.md §4.7's "close" attribute).
func (b *Builder) Close() {
	b.closed = true
	b.appendVertex(b.vertices[0])
}

// IsClosed reports whether Close was called.
func (b *Builder) IsClosed() bool { return b.closed }

// ChopEndpoints replaces the first and/or last vertex with chopped
// versions, implementing the "chop" attribute (spec.md §7): the path's
// visible endpoints are pulled back from the raw from/to positions to the
// boundary of whatever object sits there.
func (b *Builder) ChopEndpoints(chopStart, chopEnd *geom.Point) {
	if len(b.vertices) == 0 {
		return
	}
	if chopStart != nil {
		b.vertices[0] = *chopStart
	}
	if chopEnd != nil {
		b.vertices[len(b.vertices)-1] = *chopEnd
		b.cur = *chopEnd
	}
}
