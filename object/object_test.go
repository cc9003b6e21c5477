package object

import (
	"testing"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/geom"
	"github.com/gopikchr/pikchr/pos"
	"github.com/gopikchr/pikchr/resolve"
)

func sp() pos.Span { return pos.Span{} }

func newEnv() *resolve.Table {
	return resolve.NewTable(map[string]geom.Value{
		"boxwid":    geom.NewLength(geom.Inches(0.75)),
		"boxht":     geom.NewLength(geom.Inches(0.5)),
		"circlerad": geom.NewLength(geom.Inches(0.25)),
		"linewid":   geom.NewLength(geom.Inches(0.5)),
		"lineht":    geom.NewLength(geom.Inches(0.5)),
		"thickness": geom.NewLength(geom.Inches(0.015)),
	})
}

func TestBuildBoxDefaultSize(t *testing.T) {
	env := newEnv()
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassBox}, nil)
	built, next, err := Build(env, Cursor{Pos: geom.Point{}, Dir: ast.CompassRight}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if built.Obj.Width != geom.Inches(0.75) || built.Obj.Height != geom.Inches(0.5) {
		t.Errorf("got width=%v height=%v", built.Obj.Width, built.Obj.Height)
	}
	if next.X <= built.Obj.Center.X {
		t.Errorf("cursor should advance to the right, got %v", next)
	}
}

func TestBuildBoxWithExplicitWidth(t *testing.T) {
	env := newEnv()
	attrs := []ast.Attribute{
		ast.NewNumericAttr(sp(), "width", ast.NewNumberExpr(sp(), 2), false),
	}
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassBox}, attrs)
	built, _, err := Build(env, Cursor{}, "A", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if built.Obj.Width != geom.Inches(2) {
		t.Errorf("got width=%v, want 2in", built.Obj.Width)
	}
	if built.Obj.Label != "A" {
		t.Errorf("got label=%q", built.Obj.Label)
	}
}

func TestBuildLineMoves(t *testing.T) {
	env := newEnv()
	attrs := []ast.Attribute{
		ast.NewDirMoveAttr(sp(), ast.CompassRight, ast.NewNumberExpr(sp(), 1)),
	}
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassLine}, attrs)
	built, _, err := Build(env, Cursor{Pos: geom.Point{}}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(built.Obj.Vertices) != 2 {
		t.Fatalf("expected 2 vertices, got %d: %v", len(built.Obj.Vertices), built.Obj.Vertices)
	}
	if built.Obj.Vertices[1] != (geom.Point{X: geom.Inches(1)}) {
		t.Errorf("got endpoint %v, want (1,0)", built.Obj.Vertices[1])
	}
}

func TestBuildLineChopsAgainstEndpointObjects(t *testing.T) {
	env := newEnv()
	env.Commit(&resolve.Object{Class: ast.ClassBox, Label: "A", Center: geom.Point{}, Width: geom.Inches(1), Height: geom.Inches(1)})
	env.Commit(&resolve.Object{Class: ast.ClassBox, Label: "B", Center: geom.Point{X: geom.Inches(3)}, Width: geom.Inches(1), Height: geom.Inches(1)})

	attrs := []ast.Attribute{
		ast.NewFromAttr(sp(), ast.NewPlaceRef(sp(), "A", nil, ast.EdgeCenter)),
		ast.NewToAttr(sp(), ast.NewPlaceRef(sp(), "B", nil, ast.EdgeCenter)),
		ast.NewChopAttr(sp()),
	}
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassLine}, attrs)
	built, _, err := Build(env, Cursor{}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(built.Obj.Vertices) != 2 {
		t.Fatalf("expected 2 vertices, got %d", len(built.Obj.Vertices))
	}
	start, end := built.Obj.Vertices[0], built.Obj.Vertices[1]
	if start.X != geom.Inches(0.5) {
		t.Errorf("expected chop to pull the start to A's east edge (0.5in), got %v", start)
	}
	if end.X != geom.Inches(2.5) {
		t.Errorf("expected chop to pull the end to B's west edge (2.5in), got %v", end)
	}
}

func TestBuildArrowDefaultsToEndArrowhead(t *testing.T) {
	env := newEnv()
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassArrow}, nil)
	built, _, err := Build(env, Cursor{}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !built.Style.ArrowEnd || built.Style.ArrowStart {
		t.Errorf("got ArrowStart=%v ArrowEnd=%v, want start=false end=true", built.Style.ArrowStart, built.Style.ArrowEnd)
	}
}

func TestBuildArrowBothEndsAttribute(t *testing.T) {
	env := newEnv()
	attrs := []ast.Attribute{ast.NewBoolAttr(sp(), "<->")}
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassArrow}, attrs)
	built, _, err := Build(env, Cursor{}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !built.Style.ArrowStart || !built.Style.ArrowEnd {
		t.Errorf("got ArrowStart=%v ArrowEnd=%v, want both true", built.Style.ArrowStart, built.Style.ArrowEnd)
	}
}

func TestBuildBoxWithDirectionMoveOffsetsFromCursor(t *testing.T) {
	env := newEnv()
	attrs := []ast.Attribute{
		ast.NewDirMoveAttr(sp(), ast.CompassRight, ast.NewNumberExpr(sp(), 2)),
		ast.NewDirMoveAttr(sp(), ast.CompassUp, ast.NewNumberExpr(sp(), 1)),
	}
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassBox}, attrs)
	built, _, err := Build(env, Cursor{Pos: geom.Point{}}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := geom.Point{X: geom.Inches(2), Y: geom.Inches(1)}
	if built.Obj.Center != want {
		t.Errorf("got center=%v, want %v", built.Obj.Center, want)
	}
}

func TestBuildLineEvenWithSetsAxisAbsolutely(t *testing.T) {
	env := newEnv()
	env.Commit(&resolve.Object{Class: ast.ClassBox, Label: "A", Center: geom.Point{}, Width: geom.Inches(1), Height: geom.Inches(1)})
	env.Commit(&resolve.Object{Class: ast.ClassBox, Label: "B", Center: geom.Point{X: geom.Inches(3)}, Width: geom.Inches(1), Height: geom.Inches(1)})

	attrs := []ast.Attribute{
		ast.NewFromAttr(sp(), ast.NewPlaceRef(sp(), "A", nil, ast.EdgeEast)),
		ast.NewEvenWithAttr(sp(), ast.CompassRight, ast.NewPlaceRef(sp(), "B", nil, ast.EdgeWest)),
	}
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassLine}, attrs)
	built, _, err := Build(env, Cursor{}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(built.Obj.Vertices) != 2 {
		t.Fatalf("expected 2 vertices, got %d", len(built.Obj.Vertices))
	}
	start, end := built.Obj.Vertices[0], built.Obj.Vertices[1]
	if start != (geom.Point{X: geom.Inches(0.5)}) {
		t.Errorf("got start=%v, want A's east edge (0.5,0)", start)
	}
	if end != (geom.Point{X: geom.Inches(2.5)}) {
		t.Errorf("got end=%v, want B's west edge (2.5,0), even-with applies no offset", end)
	}
}

func TestBuildNumericPercentScalesCurrentValue(t *testing.T) {
	env := newEnv()
	attrs := []ast.Attribute{
		ast.NewNumericAttr(sp(), "width", ast.NewNumberExpr(sp(), 50), true),
	}
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassBox}, attrs)
	built, _, err := Build(env, Cursor{}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := geom.Inches(0.75 * 0.5)
	if built.Obj.Width != want {
		t.Errorf("got width=%v, want %v (50%% of boxwid, not 0.5in)", built.Obj.Width, want)
	}
}

func TestBuildSameCopiesSizeAndStyleFromReferent(t *testing.T) {
	env := newEnv()
	red, _ := geom.NamedColor("red")
	attrsA := []ast.Attribute{
		ast.NewNumericAttr(sp(), "width", ast.NewNumberExpr(sp(), 2), false),
		ast.NewColorAttr(sp(), "fill", ast.NewVarExpr(sp(), "red")),
	}
	stmtA := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassBox}, attrsA)
	builtA, _, err := Build(env, Cursor{}, "A", stmtA)
	if err != nil {
		t.Fatalf("Build A error: %v", err)
	}
	env.Commit(builtA.Obj)

	attrsB := []ast.Attribute{ast.NewSameAttr(sp(), nil)}
	stmtB := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassBox}, attrsB)
	cursor := Cursor{LastOfAny: map[ast.Class]*resolve.Object{ast.ClassBox: builtA.Obj}}
	builtB, _, err := Build(env, cursor, "", stmtB)
	if err != nil {
		t.Fatalf("Build B error: %v", err)
	}
	if builtB.Obj.Width != geom.Inches(2) {
		t.Errorf("got width=%v, want 2in copied from A", builtB.Obj.Width)
	}
	if !builtB.Style.HasFill || builtB.Style.Fill != red {
		t.Errorf("got HasFill=%v Fill=%v, want red fill copied from A", builtB.Style.HasFill, builtB.Style.Fill)
	}
}

func TestBuildInvisibleAttribute(t *testing.T) {
	env := newEnv()
	attrs := []ast.Attribute{ast.NewBoolAttr(sp(), "invisible")}
	stmt := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassBox}, attrs)
	built, _, err := Build(env, Cursor{}, "", stmt)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !built.Style.Invisible {
		t.Errorf("expected Invisible style to be set")
	}
}
