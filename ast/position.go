package ast

import "github.com/gopikchr/pikchr/pos"

// Position is implemented by every placement expression: anything that
// resolves to a single Point once the layout driver has processed the
// objects before it (spec.md §3, §4.2).
type Position interface {
	Node
	positionNode()
}

// Edge names one of an object's named edge/corner points (".n", ".ne", ...,
// ".c" for center, ".start"/".end" for line-like endpoints).
type Edge int

const (
	EdgeCenter Edge = iota
	EdgeNorth
	EdgeSouth
	EdgeEast
	EdgeWest
	EdgeNorthEast
	EdgeNorthWest
	EdgeSouthEast
	EdgeSouthWest
	EdgeStart
	EdgeEnd
)

func (e Edge) String() string {
	switch e {
	case EdgeCenter:
		return "c"
	case EdgeNorth:
		return "n"
	case EdgeSouth:
		return "s"
	case EdgeEast:
		return "e"
	case EdgeWest:
		return "w"
	case EdgeNorthEast:
		return "ne"
	case EdgeNorthWest:
		return "nw"
	case EdgeSouthEast:
		return "se"
	case EdgeSouthWest:
		return "sw"
	case EdgeStart:
		return "start"
	case EdgeEnd:
		return "end"
	default:
		return "?"
	}
}

// NthKind distinguishes the ways an object can be selected by ordinal
// reference (spec.md §4.2's "Nth object of class").
type NthKind int

const (
	NthOrdinal  NthKind = iota // "3rd box" / "3rd last box"
	NthFirst                   // "first box"
	NthLast                    // "last box" / an implicit bare "box"
	NthPrevious                // "previous [box]" / bare "[box]" referring back
	NthThis                    // "this" (the object currently under construction)
)

// Nth selects an object by class and ordinal, counting from the start or
// from the end of the statement list seen so far (spec.md §4.2).
type Nth struct {
	Kind  NthKind
	N     int     // ordinal count, meaningful only for NthOrdinal (1-based)
	Class *Class  // nil means "any object", matching bare "2nd previous"
	Last  bool    // true counts from the end ("3rd last box")
}

// Coord is an explicit (x, y) pair, each axis independently an Expr so
// either may itself be a place-derived coordinate expression.
type Coord struct {
	baseNode
	X, Y Expr
}

func NewCoord(span pos.Span, x, y Expr) *Coord { return &Coord{baseNode{span}, x, y} }
func (*Coord) positionNode()                   {}

// Tuple composes a position's x from one place and its y from another,
// implementing pikchr's "(A.x, B.y)" cross-reference form.
type Tuple struct {
	baseNode
	XOf, YOf Position
}

func NewTuple(span pos.Span, xOf, yOf Position) *Tuple { return &Tuple{baseNode{span}, xOf, yOf} }
func (*Tuple) positionNode()                           {}

// PlaceRef is a bare reference to a labeled position, an object's center,
// or one of its edges (spec.md §4.2's place-ref). Object is nil and Label
// non-empty for a plain label reference; Edge is EdgeCenter when no ".edge"
// suffix was written.
type PlaceRef struct {
	baseNode
	Label  string
	Object *ObjectRef
	Edge   Edge
}

func NewPlaceRef(span pos.Span, label string, obj *ObjectRef, edge Edge) *PlaceRef {
	return &PlaceRef{baseNode{span}, label, obj, edge}
}
func (*PlaceRef) positionNode() {}

// OffsetPosition is "position + (dx, dy)" / "position - (dx, dy)" (spec.md
// §4.2). The sign is folded into DX/DY by the constructor's caller.
type OffsetPosition struct {
	baseNode
	Base   Position
	DX, DY Expr
}

func NewOffsetPosition(span pos.Span, base Position, dx, dy Expr) *OffsetPosition {
	return &OffsetPosition{baseNode{span}, base, dx, dy}
}
func (*OffsetPosition) positionNode() {}

// Between is "F of the way between A and B" (spec.md §4.2); F is a Scalar
// expression, typically a literal fraction but may itself reference
// variables or object properties.
type Between struct {
	baseNode
	F    Expr
	A, B Position
}

func NewBetween(span pos.Span, f Expr, a, b Position) *Between {
	return &Between{baseNode{span}, f, a, b}
}
func (*Between) positionNode() {}

// AngleBracket is pikchr's "<dx,dy> of position" form. It is kept as a
// node distinct from OffsetPosition, but the resolver applies its dx/dy
// along the absolute x/y axes exactly as it does for OffsetPosition; no
// rotation by the current diagram direction takes place.
type AngleBracket struct {
	baseNode
	Base   Position
	DX, DY Expr
}

func NewAngleBracket(span pos.Span, base Position, dx, dy Expr) *AngleBracket {
	return &AngleBracket{baseNode{span}, base, dx, dy}
}
func (*AngleBracket) positionNode() {}

// AboveBelow is "DIST above/below POSITION" (spec.md §4.2).
type AboveBelow struct {
	baseNode
	Dist  Expr
	Above bool
	Of    Position
}

func NewAboveBelow(span pos.Span, dist Expr, above bool, of Position) *AboveBelow {
	return &AboveBelow{baseNode{span}, dist, above, of}
}
func (*AboveBelow) positionNode() {}

// LeftRightOf is "DIST left/right of POSITION" (spec.md §4.2).
type LeftRightOf struct {
	baseNode
	Dist Expr
	Left bool
	Of   Position
}

func NewLeftRightOf(span pos.Span, dist Expr, left bool, of Position) *LeftRightOf {
	return &LeftRightOf{baseNode{span}, dist, left, of}
}
func (*LeftRightOf) positionNode() {}

// HeadingOf is "DIST heading DEGREES from POSITION" (spec.md §4.2).
type HeadingOf struct {
	baseNode
	Dist    Expr
	Heading Expr
	Of      Position
}

func NewHeadingOf(span pos.Span, dist, heading Expr, of Position) *HeadingOf {
	return &HeadingOf{baseNode{span}, dist, heading, of}
}
func (*HeadingOf) positionNode() {}

// EdgeOf is "DIST above/below/left/right/ne/... of the edge of POSITION",
// the generalized "DIST <edge> of POSITION" form distinct from the
// directional AboveBelow/LeftRightOf helpers, used for the compass-edge
// cases (ne/nw/se/sw) that have no dedicated boolean flag.
type EdgeOf struct {
	baseNode
	Dist Expr
	Edge Edge
	Of   Position
}

func NewEdgeOf(span pos.Span, dist Expr, edge Edge, of Position) *EdgeOf {
	return &EdgeOf{baseNode{span}, dist, edge, of}
}
func (*EdgeOf) positionNode() {}
