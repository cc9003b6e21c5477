package geom

import "fmt"

// ValueKind tags the variant a Value currently holds.
type ValueKind int

const (
	KindLength ValueKind = iota
	KindScalar
	KindColor
)

// Value is the evaluator's tagged union of Length, Scalar, and Color
// (spec.md §3). Zero value is a zero Length (KindLength is the first kind).
type Value struct {
	kind   ValueKind
	length Length
	scalar Scalar
	color  Color
}

func NewLength(l Length) Value { return Value{kind: KindLength, length: l} }
func NewScalar(s Scalar) Value { return Value{kind: KindScalar, scalar: s} }
func NewColor(c Color) Value   { return Value{kind: KindColor, color: c} }

func (v Value) Kind() ValueKind { return v.kind }

// Length returns the Length payload; ok is false unless Kind()==KindLength.
func (v Value) Length() (Length, bool) {
	if v.kind != KindLength {
		return 0, false
	}
	return v.length, true
}

// Scalar returns the Scalar payload; ok is false unless Kind()==KindScalar.
func (v Value) Scalar() (Scalar, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	return v.scalar, true
}

// Color returns the Color payload; ok is false unless Kind()==KindColor.
func (v Value) Color() (Color, bool) {
	if v.kind != KindColor {
		return 0, false
	}
	return v.color, true
}

// AsLength coerces the value to a Length for contexts that need inches
// (eval_len in spec.md §4.1): a Scalar is treated as inches directly
// (compatibility), a Length passes through, and a Color is a type error.
func (v Value) AsLength() (Length, bool) {
	switch v.kind {
	case KindLength:
		return v.length, true
	case KindScalar:
		return v.scalar.AsLength(), true
	default:
		return 0, false
	}
}

// AsScalar coerces the value to a dimensionless Scalar (eval_scalar in
// spec.md §4.1): a Length's raw inch value is reinterpreted as a Scalar, a
// Scalar passes through, and a Color is a type error.
func (v Value) AsScalar() (Scalar, bool) {
	switch v.kind {
	case KindLength:
		return Scalar(v.length), true
	case KindScalar:
		return v.scalar, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindLength:
		return fmt.Sprintf("%gin", float64(v.length))
	case KindScalar:
		return fmt.Sprintf("%g", float64(v.scalar))
	case KindColor:
		return v.color.CSS()
	default:
		return "?"
	}
}
