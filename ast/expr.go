package ast

import "github.com/gopikchr/pikchr/pos"

// Expr is implemented by every expression node (spec.md §3, §4.1).
type Expr interface {
	Node
	exprNode()
}

// NumberExpr is a numeric literal. Unit suffixes (in/cm/mm/pt/px/pc) are
// converted to inches by the external parser (spec.md §6); by the time an
// AST reaches this engine, Value is already in inches or is dimensionless,
// and the evaluator treats it as a bare Scalar unless context coerces it.
type NumberExpr struct {
	baseNode
	Value float64
}

func NewNumberExpr(span pos.Span, v float64) *NumberExpr { return &NumberExpr{baseNode{span}, v} }
func (*NumberExpr) exprNode()                             {}

// VarExpr names a variable: a user variable (conventionally prefixed `$`)
// or a builtin (e.g. "boxwid", or a color name).
type VarExpr struct {
	baseNode
	Name string
}

func NewVarExpr(span pos.Span, name string) *VarExpr { return &VarExpr{baseNode{span}, name} }
func (*VarExpr) exprNode()                            {}

// PositionExpr embeds a full Position where a value is expected, used for
// dist()'s point arguments and anywhere else a coordinate pair is used as
// a value rather than a placement (spec.md §4.1's "place-ref").
type PositionExpr struct {
	baseNode
	Pos Position
}

func NewPositionExpr(span pos.Span, p Position) *PositionExpr {
	return &PositionExpr{baseNode{span}, p}
}
func (*PositionExpr) exprNode() {}

// CallExpr is a builtin function call: abs, cos, sin, int, sqrt, max, min,
// or dist (spec.md §4.1). dist's arguments are PositionExprs; trig
// functions take degrees.
type CallExpr struct {
	baseNode
	Func string
	Args []Expr
}

func NewCallExpr(span pos.Span, fn string, args []Expr) *CallExpr {
	return &CallExpr{baseNode{span}, fn, args}
}
func (*CallExpr) exprNode() {}

// BinaryExpr is a binary arithmetic or comparison expression.
type BinaryExpr struct {
	baseNode
	Op          string // "+","-","*","/","<","<=",">",">=","==","!=","&&","||"
	Left, Right Expr
}

func NewBinaryExpr(span pos.Span, op string, l, r Expr) *BinaryExpr {
	return &BinaryExpr{baseNode{span}, op, l, r}
}
func (*BinaryExpr) exprNode() {}

// UnaryExpr is a unary arithmetic or logical expression ("-", "+", "!").
type UnaryExpr struct {
	baseNode
	Op      string
	Operand Expr
}

func NewUnaryExpr(span pos.Span, op string, e Expr) *UnaryExpr {
	return &UnaryExpr{baseNode{span}, op, e}
}
func (*UnaryExpr) exprNode() {}

// ObjectProperty enumerates the named numeric properties readable off an
// object (spec.md §3's "object property").
type ObjectProperty int

const (
	PropWidth ObjectProperty = iota
	PropHeight
	PropRadius
	PropDiameter
	PropThickness
)

// ObjectPropertyExpr reads a numeric property off a referenced object
// (e.g. "A.width", "A.radius").
type ObjectPropertyExpr struct {
	baseNode
	Object ObjectRef
	Prop   ObjectProperty
}

func NewObjectPropertyExpr(span pos.Span, ref ObjectRef, prop ObjectProperty) *ObjectPropertyExpr {
	return &ObjectPropertyExpr{baseNode{span}, ref, prop}
}
func (*ObjectPropertyExpr) exprNode() {}

// ObjectCoordExpr reads an object's center coordinate along one axis
// (".x"/".y", e.g. "A.x").
type ObjectCoordExpr struct {
	baseNode
	Object ObjectRef
	Axis   Axis
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func NewObjectCoordExpr(span pos.Span, ref ObjectRef, axis Axis) *ObjectCoordExpr {
	return &ObjectCoordExpr{baseNode{span}, ref, axis}
}
func (*ObjectCoordExpr) exprNode() {}

// ObjectEdgeCoordExpr reads one axis of a named edge point on an object
// (e.g. "A.n.y", "A.ne.x").
type ObjectEdgeCoordExpr struct {
	baseNode
	Object ObjectRef
	Edge   Edge
	Axis   Axis
}

func NewObjectEdgeCoordExpr(span pos.Span, ref ObjectRef, edge Edge, axis Axis) *ObjectEdgeCoordExpr {
	return &ObjectEdgeCoordExpr{baseNode{span}, ref, edge, axis}
}
func (*ObjectEdgeCoordExpr) exprNode() {}

// VertexCoordExpr reads the Nth waypoint of a line-like object (spec.md
// §3's "vertex coord", e.g. "2nd vertex of A").
type VertexCoordExpr struct {
	baseNode
	Object ObjectRef
	Index  int // 1-based, as pikchr ordinals are
}

func NewVertexCoordExpr(span pos.Span, ref ObjectRef, index int) *VertexCoordExpr {
	return &VertexCoordExpr{baseNode{span}, ref, index}
}
func (*VertexCoordExpr) exprNode() {}

// ObjectRef names the object an ObjectProperty/Coord/Edge/Vertex expr or a
// from/to/with/same attribute refers to: either an Nth-style selector or an
// explicit dotted name path into nested sublists (spec.md §4.2).
type ObjectRef struct {
	Nth  *Nth     // non-nil for "2nd box", "last circle", "previous", "this"
	Path []string // non-nil for "A", "A.B.C" dotted lookups; Path[0] may be "this"
}
