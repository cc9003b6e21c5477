package ast

import (
	"testing"

	"github.com/gopikchr/pikchr/pos"
)

func span() pos.Span {
	return pos.Span{Start: pos.Position{Line: 1, Column: 1}, End: pos.Position{Line: 1, Column: 2}}
}

func TestClassString(t *testing.T) {
	if got := ClassBox.String(); got != "box" {
		t.Errorf("ClassBox.String() = %q", got)
	}
	if got := ClassSpline.String(); got != "spline" {
		t.Errorf("ClassSpline.String() = %q", got)
	}
}

func TestClassIsLineLike(t *testing.T) {
	lineLike := []Class{ClassArc, ClassArrow, ClassLine, ClassMove, ClassSpline}
	for _, c := range lineLike {
		if !c.IsLineLike() {
			t.Errorf("%v should be line-like", c)
		}
	}
	shaped := []Class{ClassBox, ClassCircle, ClassOval, ClassCylinder, ClassDiamond, ClassEllipse, ClassFile, ClassDot, ClassText}
	for _, c := range shaped {
		if c.IsLineLike() {
			t.Errorf("%v should not be line-like", c)
		}
	}
}

func TestObjectStmtBuildsAttributeList(t *testing.T) {
	attrs := []Attribute{
		NewNumericAttr(span(), "width", NewNumberExpr(span(), 1.5), false),
		NewBoolAttr(span(), "solid"),
	}
	obj := NewObjectStmt(span(), ClassBase{Class: ClassBox}, attrs)
	if len(obj.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(obj.Attributes))
	}
	if obj.Span() != span() {
		t.Errorf("Span() = %v", obj.Span())
	}
}

func TestLabeledStatementVariants(t *testing.T) {
	p := NewPlaceRef(span(), "A", nil, EdgeCenter)
	posLabel := NewLabeledPosition(span(), "Here", p)
	if posLabel.Position == nil || posLabel.Object != nil {
		t.Errorf("NewLabeledPosition should set Position, not Object")
	}
	obj := NewObjectStmt(span(), ClassBase{Class: ClassCircle}, nil)
	objLabel := NewLabeledObject(span(), "A", obj)
	if objLabel.Object == nil || objLabel.Position != nil {
		t.Errorf("NewLabeledObject should set Object, not Position")
	}
}

func TestCompassString(t *testing.T) {
	want := map[Compass]string{CompassRight: "right", CompassDown: "down", CompassLeft: "left", CompassUp: "up"}
	for c, s := range want {
		if got := c.String(); got != s {
			t.Errorf("%v.String() = %q, want %q", c, got, s)
		}
	}
}

func TestEdgeString(t *testing.T) {
	if got := EdgeNorthEast.String(); got != "ne" {
		t.Errorf("EdgeNorthEast.String() = %q", got)
	}
	if got := EdgeCenter.String(); got != "c" {
		t.Errorf("EdgeCenter.String() = %q", got)
	}
}

func TestExprNodesCarrySpan(t *testing.T) {
	n := NewNumberExpr(span(), 3)
	if n.Span() != span() {
		t.Errorf("NumberExpr.Span() mismatch")
	}
	call := NewCallExpr(span(), "dist", []Expr{
		NewPositionExpr(span(), NewCoord(span(), NewNumberExpr(span(), 0), NewNumberExpr(span(), 0))),
	})
	if len(call.Args) != 1 {
		t.Fatalf("CallExpr.Args len = %d", len(call.Args))
	}
}
