package render

import (
	"strings"
	"testing"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/pos"
)

func sp() pos.Span { return pos.Span{} }

func box(label string, attrs ...ast.Attribute) ast.Statement {
	obj := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassBox}, attrs)
	if label == "" {
		return obj
	}
	return ast.NewLabeledObject(sp(), label, obj)
}

func TestRenderSingleBoxProducesSVG(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{box("")}}
	out, err := Render(prog, Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "<rect") {
		t.Errorf("expected an svg with a rect, got %s", out)
	}
}

func TestRenderTwoBoxesAdvanceCursor(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		box("A"),
		box("B"),
	}}
	out, err := Render(prog, Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Count(out, "<rect") != 2 {
		t.Errorf("expected two rects, got %s", out)
	}
}

func TestRenderAssignThenUseVariable(t *testing.T) {
	assign := ast.NewAssignStatement(sp(), "$w", ast.NewNumberExpr(sp(), 2))
	withWidth := box("", ast.NewNumericAttr(sp(), "width", ast.NewVarExpr(sp(), "$w"), false))
	prog := &ast.Program{Statements: []ast.Statement{assign, withWidth}}
	out, err := Render(prog, Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(out, "width=\"192.00\"") {
		t.Errorf("expected a 2in (192px) wide rect, got %s", out)
	}
}

func TestRenderErrorStatementAborts(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		ast.NewErrorStatement(sp(), "boom"),
	}}
	if _, err := Render(prog, Options{}); err == nil {
		t.Errorf("expected error statement to abort the render")
	}
}

func TestRenderAssertFailureIsDiagnosticNotAbort(t *testing.T) {
	var diags []string
	prog := &ast.Program{Statements: []ast.Statement{
		ast.NewAssertStatement(sp(), ast.NewNumberExpr(sp(), 0)),
		box(""),
	}}
	out, err := Render(prog, Options{Diagnostics: &diags})
	if err != nil {
		t.Fatalf("Render should not abort on assert failure: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %d: %v", len(diags), diags)
	}
	if !strings.Contains(out, "<rect") {
		t.Errorf("render should still have produced the box after the failed assert")
	}
}

func TestRenderUndefinedMacroErrors(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		ast.NewMacroCallStatement(sp(), "nope", nil),
	}}
	if _, err := Render(prog, Options{Parser: func(string) (*ast.Program, error) { return &ast.Program{}, nil }}); err == nil {
		t.Errorf("expected undefined macro to error")
	}
}

func TestRenderLineChopsAgainstLabeledBoxes(t *testing.T) {
	a := box("A")
	b := box("B", ast.NewDirMoveAttr(sp(), ast.CompassRight, ast.NewNumberExpr(sp(), 2)))
	line := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassLine}, []ast.Attribute{
		ast.NewFromAttr(sp(), ast.NewPlaceRef(sp(), "A", nil, ast.EdgeEast)),
		ast.NewToAttr(sp(), ast.NewPlaceRef(sp(), "B", nil, ast.EdgeWest)),
		ast.NewChopAttr(sp()),
	})

	prog := &ast.Program{Statements: []ast.Statement{a, b, line}}
	out, err := Render(prog, Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(out, "<path") {
		t.Errorf("expected a <path> element for the chopped line, got %s", out)
	}
}

func TestRenderArrowBetweenBoxesDrawsArrowhead(t *testing.T) {
	a := box("A")
	arrow := ast.NewObjectStmt(sp(), ast.ClassBase{Class: ast.ClassArrow}, nil)
	b := box("B")

	prog := &ast.Program{Statements: []ast.Statement{a, arrow, b}}
	out, err := Render(prog, Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Count(out, "<rect") != 2 {
		t.Errorf("expected two boxes, got %s", out)
	}
	if !strings.Contains(out, `fill="rgb(0,0,0)" stroke="none"`) {
		t.Errorf("expected a filled arrowhead polygon for the default arrow class, got %s", out)
	}
}

func TestRenderMacroDefineAndCall(t *testing.T) {
	define := ast.NewDefineStatement(sp(), "sq", "box")
	call := ast.NewMacroCallStatement(sp(), "sq", nil)
	parser := func(src string) (*ast.Program, error) {
		if src == "box" {
			return &ast.Program{Statements: []ast.Statement{box("")}}, nil
		}
		return &ast.Program{}, nil
	}
	prog := &ast.Program{Statements: []ast.Statement{define, call}}
	out, err := Render(prog, Options{Parser: parser})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(out, "<rect") {
		t.Errorf("expected the expanded macro's box to render, got %s", out)
	}
}
