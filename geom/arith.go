package geom

import (
	"math"

	"github.com/gopikchr/pikchr/perr"
	"github.com/gopikchr/pikchr/pos"
)

// checkFinite turns a non-finite Length/Scalar into an Overflow error,
// matching spec.md §3's "non-finite results are errors" rule.
func checkFinite(span pos.Span, f float64) error {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return perr.At(span, perr.Overflow, "arithmetic produced a non-finite result")
	}
	return nil
}

// Add implements the Value "+" rule table from spec.md §3: L+L=L, L+S=L
// (S treated as inches), S+L=L, S+S=S. Color does not support "+".
func Add(span pos.Span, a, b Value) (Value, error) {
	return combine(span, a, b, func(x, y float64) float64 { return x + y })
}

// Sub implements the Value "-" rule table, symmetric to Add.
func Sub(span pos.Span, a, b Value) (Value, error) {
	return combine(span, a, b, func(x, y float64) float64 { return x - y })
}

func combine(span pos.Span, a, b Value, op func(x, y float64) float64) (Value, error) {
	switch {
	case a.kind == KindLength && b.kind == KindLength:
		r := op(float64(a.length), float64(b.length))
		if err := checkFinite(span, r); err != nil {
			return Value{}, err
		}
		return NewLength(Length(r)), nil
	case a.kind == KindLength && b.kind == KindScalar:
		r := op(float64(a.length), float64(b.scalar))
		if err := checkFinite(span, r); err != nil {
			return Value{}, err
		}
		return NewLength(Length(r)), nil
	case a.kind == KindScalar && b.kind == KindLength:
		r := op(float64(a.scalar), float64(b.length))
		if err := checkFinite(span, r); err != nil {
			return Value{}, err
		}
		return NewLength(Length(r)), nil
	case a.kind == KindScalar && b.kind == KindScalar:
		r := op(float64(a.scalar), float64(b.scalar))
		if err := checkFinite(span, r); err != nil {
			return Value{}, err
		}
		return NewScalar(Scalar(r)), nil
	default:
		return Value{}, perr.At(span, perr.TypeMismatch, "colors do not support arithmetic")
	}
}

// Mul implements "*": L*S=S*L=L, L*L=S (area), S*S=S.
func Mul(span pos.Span, a, b Value) (Value, error) {
	switch {
	case a.kind == KindLength && b.kind == KindScalar:
		return scaleLength(span, a.length, float64(b.scalar))
	case a.kind == KindScalar && b.kind == KindLength:
		return scaleLength(span, b.length, float64(a.scalar))
	case a.kind == KindLength && b.kind == KindLength:
		r := float64(a.length) * float64(b.length)
		if err := checkFinite(span, r); err != nil {
			return Value{}, err
		}
		return NewScalar(Scalar(r)), nil
	case a.kind == KindScalar && b.kind == KindScalar:
		r := float64(a.scalar) * float64(b.scalar)
		if err := checkFinite(span, r); err != nil {
			return Value{}, err
		}
		return NewScalar(Scalar(r)), nil
	default:
		return Value{}, perr.At(span, perr.TypeMismatch, "colors do not support arithmetic")
	}
}

func scaleLength(span pos.Span, l Length, s float64) (Value, error) {
	r := float64(l) * s
	if err := checkFinite(span, r); err != nil {
		return Value{}, err
	}
	return NewLength(Length(r)), nil
}

// Div implements "/": L/S=L, L/L=S (ratio), S/S=S. Division by exactly zero
// is a DivisionByZero error in every case.
func Div(span pos.Span, a, b Value) (Value, error) {
	switch {
	case a.kind == KindLength && b.kind == KindScalar:
		if b.scalar == 0 {
			return Value{}, perr.At(span, perr.DivisionByZero, "division by zero")
		}
		return scaleLength(span, a.length, 1/float64(b.scalar))
	case a.kind == KindLength && b.kind == KindLength:
		if b.length == 0 {
			return Value{}, perr.At(span, perr.DivisionByZero, "division by zero")
		}
		r := float64(a.length) / float64(b.length)
		if err := checkFinite(span, r); err != nil {
			return Value{}, err
		}
		return NewScalar(Scalar(r)), nil
	case a.kind == KindScalar && b.kind == KindScalar:
		if b.scalar == 0 {
			return Value{}, perr.At(span, perr.DivisionByZero, "division by zero")
		}
		r := float64(a.scalar) / float64(b.scalar)
		if err := checkFinite(span, r); err != nil {
			return Value{}, err
		}
		return NewScalar(Scalar(r)), nil
	default:
		return Value{}, perr.At(span, perr.TypeMismatch, "division requires numeric operands")
	}
}

// Neg negates a Length or Scalar value; Color has no negation.
func Neg(span pos.Span, a Value) (Value, error) {
	switch a.kind {
	case KindLength:
		return NewLength(-a.length), nil
	case KindScalar:
		return NewScalar(-a.scalar), nil
	default:
		return Value{}, perr.At(span, perr.TypeMismatch, "cannot negate a color")
	}
}
