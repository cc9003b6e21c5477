// Package geom implements the engine's units and arithmetic: Length,
// Scalar, UnitVec, Point, Offset, BoundingBox, and the tagged Value/Color
// model layered on top of them.
//
// All layout math happens in inches (component 1 of the specification);
// pixel conversion happens only at SVG emission (see package svgout).
// Coordinates are Y-up throughout this package and every package that
// consumes it — only svgout flips to SVG's Y-down convention.
package geom

import "math"

// Length is a length in inches. The zero value is ZERO.
type Length float64

// ZERO is the zero Length.
const ZERO Length = 0

// Inches constructs a Length from a value already expressed in inches.
func Inches(v float64) Length { return Length(v) }

// Float64 returns the raw inch value.
func (l Length) Float64() float64 { return float64(l) }

func (l Length) Add(o Length) Length { return l + o }
func (l Length) Sub(o Length) Length { return l - o }
func (l Length) Neg() Length         { return -l }

// Scale multiplies a Length by a dimensionless Scalar (L*S=L).
func (l Length) Scale(s Scalar) Length { return Length(float64(l) * float64(s)) }

// Div divides a Length by a dimensionless Scalar (L/S=L).
func (l Length) Div(s Scalar) Length { return Length(float64(l) / float64(s)) }

func (l Length) Abs() Length {
	if l < 0 {
		return -l
	}
	return l
}

func (l Length) Min(o Length) Length {
	if l < o {
		return l
	}
	return o
}

func (l Length) Max(o Length) Length {
	if l > o {
		return l
	}
	return o
}

// IsFinite reports whether the length is a usable, non-overflowed value.
func (l Length) IsFinite() bool { return !math.IsInf(float64(l), 0) && !math.IsNaN(float64(l)) }

// CheckedDiv divides by another Length, producing a dimensionless ratio
// (L/L=S). Reports false on division by exactly zero.
func (l Length) CheckedDiv(o Length) (Scalar, bool) {
	if o == 0 {
		return 0, false
	}
	return Scalar(float64(l) / float64(o)), true
}

// Scalar is a dimensionless number (the "Scalar" tag of Value).
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar { return s + o }
func (s Scalar) Sub(o Scalar) Scalar { return s - o }
func (s Scalar) Mul(o Scalar) Scalar { return s * o }

// AsLength treats a Scalar as inches, for the L±S compatibility rule.
func (s Scalar) AsLength() Length { return Length(s) }

// unitPerInch converts a unit suffix (in/cm/mm/pt/px/pc) to inches, per
// spec.md §6. The external parser is expected to apply this at parse time;
// it is exposed here so tests can build AST literals without duplicating
// the table, and so the engine's own constant-folding (e.g. default pixel
// scale arithmetic) uses the exact same ratios.
func unitPerInch(unit string) (float64, bool) {
	switch unit {
	case "in":
		return 1, true
	case "cm":
		return 1.0 / 2.54, true
	case "mm":
		return 1.0 / 25.4, true
	case "pt":
		return 1.0 / 72, true
	case "px":
		return 1.0 / 96, true
	case "pc":
		return 1.0 / 6, true
	default:
		return 0, false
	}
}

// LengthFromUnit converts a raw numeric value with an explicit unit suffix
// into inches. ok is false for an unrecognized unit.
func LengthFromUnit(value float64, unit string) (Length, bool) {
	if unit == "" {
		return Length(value), true
	}
	ratio, ok := unitPerInch(unit)
	if !ok {
		return 0, false
	}
	return Length(value * ratio), true
}
