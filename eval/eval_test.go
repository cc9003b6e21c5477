package eval

import (
	"testing"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/geom"
	"github.com/gopikchr/pikchr/pos"
)

type fakeEnv struct {
	vars map[string]geom.Value
}

func (f *fakeEnv) LookupVar(name string) (geom.Value, bool) { v, ok := f.vars[name]; return v, ok }
func (f *fakeEnv) ObjectProperty(ast.ObjectRef, ast.ObjectProperty) (geom.Value, error) {
	return geom.Value{}, nil
}
func (f *fakeEnv) ObjectCoord(ast.ObjectRef, ast.Axis) (geom.Value, error) { return geom.Value{}, nil }
func (f *fakeEnv) ObjectEdgeCoord(ast.ObjectRef, ast.Edge, ast.Axis) (geom.Value, error) {
	return geom.Value{}, nil
}
func (f *fakeEnv) VertexCoord(ast.ObjectRef, int) (geom.Value, error) { return geom.Value{}, nil }
func (f *fakeEnv) ResolvePosition(p ast.Position) (geom.Point, error) {
	c := p.(*ast.Coord)
	xv, _ := Eval(f, c.X)
	yv, _ := Eval(f, c.Y)
	xl, _ := xv.AsLength()
	yl, _ := yv.AsLength()
	return geom.Point{X: xl, Y: yl}, nil
}

func sp() pos.Span { return pos.Span{} }

func TestEvalArithmetic(t *testing.T) {
	env := &fakeEnv{vars: map[string]geom.Value{"boxwid": geom.NewLength(geom.Inches(0.75))}}
	expr := ast.NewBinaryExpr(sp(), "+",
		ast.NewVarExpr(sp(), "boxwid"),
		ast.NewNumberExpr(sp(), 1))
	v, err := Eval(env, expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	l, ok := v.AsLength()
	if !ok || l != geom.Inches(1.75) {
		t.Errorf("got %v, want 1.75in", v)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	env := &fakeEnv{vars: map[string]geom.Value{}}
	expr := ast.NewBinaryExpr(sp(), "/", ast.NewNumberExpr(sp(), 1), ast.NewNumberExpr(sp(), 0))
	if _, err := Eval(env, expr); err == nil {
		t.Errorf("expected division by zero error")
	}
}

func TestEvalUnboundVar(t *testing.T) {
	env := &fakeEnv{vars: map[string]geom.Value{}}
	if _, err := Eval(env, ast.NewVarExpr(sp(), "$nope")); err == nil {
		t.Errorf("expected unbound name error")
	}
}

func TestEvalNamedColor(t *testing.T) {
	env := &fakeEnv{vars: map[string]geom.Value{}}
	v, err := Eval(env, ast.NewVarExpr(sp(), "red"))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v.Kind() != geom.KindColor {
		t.Errorf("got kind %v, want color", v.Kind())
	}
}

func TestEvalTrig(t *testing.T) {
	env := &fakeEnv{vars: map[string]geom.Value{}}
	v, err := Eval(env, ast.NewCallExpr(sp(), "cos", []ast.Expr{ast.NewNumberExpr(sp(), 0)}))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	s, _ := v.Scalar()
	if s != 1 {
		t.Errorf("cos(0) = %v, want 1", s)
	}
}

func TestEvalDist(t *testing.T) {
	env := &fakeEnv{vars: map[string]geom.Value{}}
	a := ast.NewCoord(sp(), ast.NewNumberExpr(sp(), 0), ast.NewNumberExpr(sp(), 0))
	b := ast.NewCoord(sp(), ast.NewNumberExpr(sp(), 3), ast.NewNumberExpr(sp(), 4))
	call := ast.NewCallExpr(sp(), "dist", []ast.Expr{
		ast.NewPositionExpr(sp(), a),
		ast.NewPositionExpr(sp(), b),
	})
	v, err := Eval(env, call)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	l, _ := v.AsLength()
	if l != geom.Inches(5) {
		t.Errorf("dist = %v, want 5", l)
	}
}

func TestEvalMaxMin(t *testing.T) {
	env := &fakeEnv{vars: map[string]geom.Value{}}
	v, err := Eval(env, ast.NewCallExpr(sp(), "max", []ast.Expr{
		ast.NewNumberExpr(sp(), 3),
		ast.NewNumberExpr(sp(), 7),
	}))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	s, _ := v.Scalar()
	if s != 7 {
		t.Errorf("max(3,7) = %v, want 7", s)
	}
}
