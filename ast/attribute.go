package ast

import "github.com/gopikchr/pikchr/pos"

// Attribute is implemented by every object-statement modifier: size and
// style properties, placement clauses, path-building moves, and the
// boolean flags (spec.md §3's Attribute, §4.4-§4.7).
type Attribute interface {
	Node
	attributeNode()
}

// NumericAttr sets a sizing property ("width", "height", "radius",
// "diameter", "thickness") possibly as a percentage of its current/default
// value rather than an absolute length (spec.md §4.4, Open Question on "%").
type NumericAttr struct {
	baseNode
	Prop    string
	Value   Expr
	Percent bool
}

func NewNumericAttr(span pos.Span, prop string, value Expr, percent bool) *NumericAttr {
	return &NumericAttr{baseNode{span}, prop, value, percent}
}
func (*NumericAttr) attributeNode() {}

// DashAttr selects a dashed or dotted stroke, with an optional dash length
// override (spec.md §4.4); nil Width leaves the width unset, and the SVG
// emitter then falls back to a fixed pattern (6px dashes, or a 2px gap
// between dots) that no variable adjusts.
type DashAttr struct {
	baseNode
	Dotted bool
	Width  Expr // nil if unspecified
}

func NewDashAttr(span pos.Span, dotted bool, width Expr) *DashAttr {
	return &DashAttr{baseNode{span}, dotted, width}
}
func (*DashAttr) attributeNode() {}

// ColorAttr sets "color", "fill", or "stroke-width"-adjacent color-valued
// properties of an object (spec.md §4.4, §2).
type ColorAttr struct {
	baseNode
	Prop  string
	Value Expr
}

func NewColorAttr(span pos.Span, prop string, value Expr) *ColorAttr {
	return &ColorAttr{baseNode{span}, prop, value}
}
func (*ColorAttr) attributeNode() {}

// BoolAttr is a standalone boolean-style flag word: "solid", "invisible",
// "thick", "thin", "cw", "ccw" (spec.md §4.4).
type BoolAttr struct {
	baseNode
	Name string
}

func NewBoolAttr(span pos.Span, name string) *BoolAttr { return &BoolAttr{baseNode{span}, name} }
func (*BoolAttr) attributeNode()                       {}

// StringAttr attaches a text line to an object, with its slot/justification
// encoded in Style (spec.md §4.6, §4.9).
type StringAttr struct {
	baseNode
	Text  string
	Style TextStyle
}

func NewStringAttr(span pos.Span, text string, style TextStyle) *StringAttr {
	return &StringAttr{baseNode{span}, text, style}
}
func (*StringAttr) attributeNode() {}

// AtAttr pins the object's center (or, for line-like objects, a specific
// vertex — folded in by the resolver, not this node) to a position
// (spec.md §4.4/§4.5).
type AtAttr struct {
	baseNode
	Pos Position
}

func NewAtAttr(span pos.Span, p Position) *AtAttr { return &AtAttr{baseNode{span}, p} }
func (*AtAttr) attributeNode()                     {}

// FromAttr sets a line-like object's starting point (spec.md §4.7).
type FromAttr struct {
	baseNode
	Pos Position
}

func NewFromAttr(span pos.Span, p Position) *FromAttr { return &FromAttr{baseNode{span}, p} }
func (*FromAttr) attributeNode()                       {}

// ToAttr appends a waypoint/endpoint to a line-like object's path (spec.md
// §4.7).
type ToAttr struct {
	baseNode
	Pos Position
}

func NewToAttr(span pos.Span, p Position) *ToAttr { return &ToAttr{baseNode{span}, p} }
func (*ToAttr) attributeNode()                     {}

// DirMoveAttr moves in a compass direction by an optional distance (default
// the object's current width for left/right and height for up/down, which
// for a line-like object is "linewid"/"lineht") — "right 1.5in", "down"
// (spec.md §4.7).
type DirMoveAttr struct {
	baseNode
	Dir  Compass
	Dist Expr // nil uses the axis default
}

func NewDirMoveAttr(span pos.Span, dir Compass, dist Expr) *DirMoveAttr {
	return &DirMoveAttr{baseNode{span}, dir, dist}
}
func (*DirMoveAttr) attributeNode() {}

// EvenWithAttr unifies "right until even with POSITION" and "... then
// even with POSITION": moves in Dir until aligned on the axis Dir implies
// with Target (DESIGN.md Open Question: the two phrasings are treated as
// one node since they differ only in surface grammar, not semantics).
type EvenWithAttr struct {
	baseNode
	Dir    Compass
	Target Position
}

func NewEvenWithAttr(span pos.Span, dir Compass, target Position) *EvenWithAttr {
	return &EvenWithAttr{baseNode{span}, dir, target}
}
func (*EvenWithAttr) attributeNode() {}

// HeadingAttr moves along an arbitrary compass heading in degrees rather
// than one of the four cardinal directions (spec.md §4.7's "heading N from
// here").
type HeadingAttr struct {
	baseNode
	Degrees Expr
	Dist    Expr // nil uses the object's current width ("linewid" for a line)
}

func NewHeadingAttr(span pos.Span, degrees, dist Expr) *HeadingAttr {
	return &HeadingAttr{baseNode{span}, degrees, dist}
}
func (*HeadingAttr) attributeNode() {}

// BareExprAttr is a line-like object's bare distance move in the current
// direction with no direction keyword ("line 1.5", spec.md §4.7).
type BareExprAttr struct {
	baseNode
	Dist Expr
}

func NewBareExprAttr(span pos.Span, dist Expr) *BareExprAttr {
	return &BareExprAttr{baseNode{span}, dist}
}
func (*BareExprAttr) attributeNode() {}

// ThenAttr introduces an explicit path-continuation clause (spec.md §5's
// "then" keyword, used to force the path builder's thenFlag/corner logic).
type ThenAttr struct {
	baseNode
	Clause *ThenClause
}

func NewThenAttr(span pos.Span, clause *ThenClause) *ThenAttr {
	return &ThenAttr{baseNode{span}, clause}
}
func (*ThenAttr) attributeNode() {}

// ThenClause holds the moves that follow an explicit "then" keyword; kept
// distinct from a flat Attribute list so the path builder can tell an
// explicit corner from an implicit one (spec.md §5).
type ThenClause struct {
	Moves []Attribute
}

// ChopAttr requests that a line-like object's endpoints be chopped back to
// the boundary of the objects they touch (spec.md §4.7, §7's chop rules).
type ChopAttr struct{ baseNode }

func NewChopAttr(span pos.Span) *ChopAttr { return &ChopAttr{baseNode{span}} }
func (*ChopAttr) attributeNode()          {}

// FitAttr requests that a shaped object's box be resized to just fit its
// text label (spec.md §4.6).
type FitAttr struct{ baseNode }

func NewFitAttr(span pos.Span) *FitAttr { return &FitAttr{baseNode{span}} }
func (*FitAttr) attributeNode()         {}

// SameAttr copies another object's size/style attributes wholesale; nil
// Referent means "same as the previous object of this class" (spec.md
// §4.4's "same [as OBJECT]").
type SameAttr struct {
	baseNode
	Referent *ObjectRef
}

func NewSameAttr(span pos.Span, ref *ObjectRef) *SameAttr {
	return &SameAttr{baseNode{span}, ref}
}
func (*SameAttr) attributeNode() {}

// CloseAttr closes a line-like object's path back to its starting point
// (spec.md §4.7).
type CloseAttr struct{ baseNode }

func NewCloseAttr(span pos.Span) *CloseAttr { return &CloseAttr{baseNode{span}} }
func (*CloseAttr) attributeNode()           {}

// WithAttr pins one of the object's own edges to a position, rather than
// its center ("with .n at ...", spec.md §4.4).
type WithAttr struct {
	baseNode
	Edge Edge
	Pos  Position
}

func NewWithAttr(span pos.Span, edge Edge, p Position) *WithAttr {
	return &WithAttr{baseNode{span}, edge, p}
}
func (*WithAttr) attributeNode() {}

// BehindAttr requests the object be drawn before (underneath) the objects
// already emitted, rather than on top (spec.md §4.4's z-order flag).
type BehindAttr struct{ baseNode }

func NewBehindAttr(span pos.Span) *BehindAttr { return &BehindAttr{baseNode{span}} }
func (*BehindAttr) attributeNode()            {}

// Vertical is a text line's vertical slot within its object's stacked label
// (spec.md §4.9): above its center line, on the center line, or below it.
type Vertical int

const (
	VerticalCenter Vertical = iota
	VerticalAbove
	VerticalBelow
)

// HJust is a text line's horizontal justification relative to its slot
// anchor (spec.md §4.9).
type HJust int

const (
	HJustCenter HJust = iota
	HJustLeft
	HJustRight
)

// TextStyle carries a text line's slot and font-weight/size modifiers
// (spec.md §4.6, §4.9). BigCount/SmallCount count repeated "big"/"small"
// keywords, which the text metrics component squares (DESIGN.md Open
// Question on repeated-size-keyword growth).
type TextStyle struct {
	Vertical   Vertical
	HJust      HJust
	BigCount   int
	SmallCount int
	Bold       bool
	Italic     bool
}
