// Package eval walks ast.Expr trees and produces geom.Value results,
// following the constant-folding style of mp/math.go's double-backend
// arithmetic helpers (sin/cos in degrees, abs, sqrt) adapted from MetaPost's
// fixed-point model to pikchr's plain-float Value/Length/Scalar model.
package eval

import (
	"math"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/geom"
	"github.com/gopikchr/pikchr/perr"
	"github.com/gopikchr/pikchr/pos"
)

// Env supplies everything the evaluator needs but cannot compute itself:
// variable storage and the object graph built so far. Kept as an interface
// so package resolve can implement it without eval importing resolve,
// mirroring the collaborator-boundary pattern draw/context.go uses between
// its builder and the mp path solver.
type Env interface {
	LookupVar(name string) (geom.Value, bool)
	ObjectProperty(ref ast.ObjectRef, prop ast.ObjectProperty) (geom.Value, error)
	ObjectCoord(ref ast.ObjectRef, axis ast.Axis) (geom.Value, error)
	ObjectEdgeCoord(ref ast.ObjectRef, edge ast.Edge, axis ast.Axis) (geom.Value, error)
	VertexCoord(ref ast.ObjectRef, index int) (geom.Value, error)
	ResolvePosition(p ast.Position) (geom.Point, error)
}

// Eval evaluates an expression tree to a single Value.
func Eval(env Env, e ast.Expr) (geom.Value, error) {
	switch n := e.(type) {
	case *ast.NumberExpr:
		return geom.NewScalar(geom.Scalar(n.Value)), nil

	case *ast.VarExpr:
		if v, ok := env.LookupVar(n.Name); ok {
			return v, nil
		}
		if c, ok := geom.NamedColor(n.Name); ok {
			return geom.NewColor(c), nil
		}
		return geom.Value{}, perr.At(n.Span(), perr.UnboundName, "undefined variable %q", n.Name)

	case *ast.PositionExpr:
		p, err := env.ResolvePosition(n.Pos)
		if err != nil {
			return geom.Value{}, err
		}
		// A bare position used as a value degrades to its x coordinate,
		// matching pikchr's "a place used where a number is expected"
		// rule; callers needing both axes use dist() or .x/.y directly.
		return geom.NewLength(p.X), nil

	case *ast.CallExpr:
		return evalCall(env, n)

	case *ast.BinaryExpr:
		return evalBinary(env, n)

	case *ast.UnaryExpr:
		return evalUnary(env, n)

	case *ast.ObjectPropertyExpr:
		return env.ObjectProperty(n.Object, n.Prop)

	case *ast.ObjectCoordExpr:
		return env.ObjectCoord(n.Object, n.Axis)

	case *ast.ObjectEdgeCoordExpr:
		return env.ObjectEdgeCoord(n.Object, n.Edge, n.Axis)

	case *ast.VertexCoordExpr:
		return env.VertexCoord(n.Object, n.Index)

	default:
		return geom.Value{}, perr.At(e.Span(), perr.InternalInvariant, "unhandled expression node %T", e)
	}
}

func evalCall(env Env, n *ast.CallExpr) (geom.Value, error) {
	switch n.Func {
	case "dist":
		if len(n.Args) != 2 {
			return geom.Value{}, perr.At(n.Span(), perr.BadAttribute, "dist() requires two position arguments")
		}
		a, err := evalAsPoint(env, n.Args[0])
		if err != nil {
			return geom.Value{}, err
		}
		b, err := evalAsPoint(env, n.Args[1])
		if err != nil {
			return geom.Value{}, err
		}
		return geom.NewLength(geom.Dist(a, b)), nil

	case "abs", "sin", "cos", "sqrt", "int":
		if len(n.Args) != 1 {
			return geom.Value{}, perr.At(n.Span(), perr.BadAttribute, "%s() takes exactly one argument", n.Func)
		}
		v, err := Eval(env, n.Args[0])
		if err != nil {
			return geom.Value{}, err
		}
		f, ok := scalarFloat(v)
		if !ok {
			return geom.Value{}, perr.At(n.Span(), perr.TypeMismatch, "%s() requires a numeric argument", n.Func)
		}
		return unaryMath(n.Span(), n.Func, f)

	case "max", "min":
		if len(n.Args) != 2 {
			return geom.Value{}, perr.At(n.Span(), perr.BadAttribute, "%s() requires exactly two arguments", n.Func)
		}
		a, err := Eval(env, n.Args[0])
		if err != nil {
			return geom.Value{}, err
		}
		b, err := Eval(env, n.Args[1])
		if err != nil {
			return geom.Value{}, err
		}
		af, aok := scalarFloat(a)
		bf, bok := scalarFloat(b)
		if !aok || !bok {
			return geom.Value{}, perr.At(n.Span(), perr.TypeMismatch, "%s() requires numeric arguments", n.Func)
		}
		pick := af
		if (n.Func == "max" && bf > af) || (n.Func == "min" && bf < af) {
			pick = bf
		}
		if a.Kind() == geom.KindLength || b.Kind() == geom.KindLength {
			return geom.NewLength(geom.Length(pick)), nil
		}
		return geom.NewScalar(geom.Scalar(pick)), nil

	default:
		return geom.Value{}, perr.At(n.Span(), perr.UnboundName, "unknown function %q", n.Func)
	}
}

func evalAsPoint(env Env, e ast.Expr) (geom.Point, error) {
	if pe, ok := e.(*ast.PositionExpr); ok {
		return env.ResolvePosition(pe.Pos)
	}
	v, err := Eval(env, e)
	if err != nil {
		return geom.Point{}, err
	}
	l, ok := v.AsLength()
	if !ok {
		return geom.Point{}, perr.At(e.Span(), perr.TypeMismatch, "dist() argument must be a position or length")
	}
	return geom.Point{X: l, Y: geom.ZERO}, nil
}

// unaryMath implements the trig/abs/sqrt/int builtins. Trig functions take
// degrees, matching numberSinCos's angle handling in mp/math.go, but operate
// directly in floating degrees rather than MetaPost's angle-multiplier
// fixed-point encoding since pikchr has no such scaling.
func unaryMath(span pos.Span, fn string, f float64) (geom.Value, error) {
	var r float64
	switch fn {
	case "abs":
		r = math.Abs(f)
	case "sin":
		r = math.Sin(f * math.Pi / 180)
	case "cos":
		r = math.Cos(f * math.Pi / 180)
	case "sqrt":
		if f < 0 {
			return geom.Value{}, perr.At(span, perr.DomainError, "sqrt() of a negative number")
		}
		r = math.Sqrt(f)
	case "int":
		r = math.Trunc(f)
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return geom.Value{}, perr.At(span, perr.Overflow, "%s() produced a non-finite result", fn)
	}
	return geom.NewScalar(geom.Scalar(r)), nil
}

func scalarFloat(v geom.Value) (float64, bool) {
	if l, ok := v.Length(); ok {
		return float64(l), true
	}
	if s, ok := v.Scalar(); ok {
		return float64(s), true
	}
	return 0, false
}

func evalBinary(env Env, n *ast.BinaryExpr) (geom.Value, error) {
	a, err := Eval(env, n.Left)
	if err != nil {
		return geom.Value{}, err
	}
	b, err := Eval(env, n.Right)
	if err != nil {
		return geom.Value{}, err
	}
	switch n.Op {
	case "+":
		return geom.Add(n.Span(), a, b)
	case "-":
		return geom.Sub(n.Span(), a, b)
	case "*":
		return geom.Mul(n.Span(), a, b)
	case "/":
		return geom.Div(n.Span(), a, b)
	case "<", "<=", ">", ">=", "==", "!=":
		return evalCompare(n.Span(), n.Op, a, b)
	case "&&", "||":
		af, aok := scalarFloat(a)
		bf, bok := scalarFloat(b)
		if !aok || !bok {
			return geom.Value{}, perr.At(n.Span(), perr.TypeMismatch, "%s requires numeric operands", n.Op)
		}
		var r bool
		if n.Op == "&&" {
			r = af != 0 && bf != 0
		} else {
			r = af != 0 || bf != 0
		}
		return boolValue(r), nil
	default:
		return geom.Value{}, perr.At(n.Span(), perr.InternalInvariant, "unknown binary operator %q", n.Op)
	}
}

func evalCompare(span pos.Span, op string, a, b geom.Value) (geom.Value, error) {
	af, aok := scalarFloat(a)
	bf, bok := scalarFloat(b)
	if !aok || !bok {
		return geom.Value{}, perr.At(span, perr.TypeMismatch, "%s requires numeric operands", op)
	}
	var r bool
	switch op {
	case "<":
		r = af < bf
	case "<=":
		r = af <= bf
	case ">":
		r = af > bf
	case ">=":
		r = af >= bf
	case "==":
		r = af == bf
	case "!=":
		r = af != bf
	}
	return boolValue(r), nil
}

func boolValue(b bool) geom.Value {
	if b {
		return geom.NewScalar(1)
	}
	return geom.NewScalar(0)
}

func evalUnary(env Env, n *ast.UnaryExpr) (geom.Value, error) {
	v, err := Eval(env, n.Operand)
	if err != nil {
		return geom.Value{}, err
	}
	switch n.Op {
	case "-":
		return geom.Neg(n.Span(), v)
	case "+":
		return v, nil
	case "!":
		f, ok := scalarFloat(v)
		if !ok {
			return geom.Value{}, perr.At(n.Span(), perr.TypeMismatch, "! requires a numeric operand")
		}
		return boolValue(f == 0), nil
	default:
		return geom.Value{}, perr.At(n.Span(), perr.InternalInvariant, "unknown unary operator %q", n.Op)
	}
}
