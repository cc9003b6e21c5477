package textmetrics

import (
	"testing"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/geom"
)

func testMetrics() Metrics {
	return Metrics{CharWidth: geom.Inches(0.112), CharHeight: geom.Inches(0.14), FontScale: 1}
}

func TestLineWidthScalesWithLength(t *testing.T) {
	m := testMetrics()
	short := m.LineWidth("hi", ast.TextStyle{})
	long := m.LineWidth("hello world", ast.TextStyle{})
	if long <= short {
		t.Errorf("longer text should be wider: short=%v long=%v", short, long)
	}
}

func TestBigCountIncreasesSize(t *testing.T) {
	m := testMetrics()
	base := m.LineHeight(ast.TextStyle{})
	big := m.LineHeight(ast.TextStyle{BigCount: 1})
	bigger := m.LineHeight(ast.TextStyle{BigCount: 2})
	if !(base < big && big < bigger) {
		t.Errorf("expected strictly increasing heights: %v < %v < %v", base, big, bigger)
	}
}

func TestSmallCountDecreasesSize(t *testing.T) {
	m := testMetrics()
	base := m.LineHeight(ast.TextStyle{})
	small := m.LineHeight(ast.TextStyle{SmallCount: 1})
	if small >= base {
		t.Errorf("small text should be smaller: base=%v small=%v", base, small)
	}
}

func TestSlotStacksAboveAndBelow(t *testing.T) {
	m := testMetrics()
	lines := []Line{
		{Text: "top", Style: ast.TextStyle{Vertical: ast.VerticalAbove}},
		{Text: "mid", Style: ast.TextStyle{Vertical: ast.VerticalCenter}},
		{Text: "bot", Style: ast.TextStyle{Vertical: ast.VerticalBelow}},
	}
	got := Slot(m, lines)
	if got[0].Offset.DY <= 0 {
		t.Errorf("above line should have positive DY, got %v", got[0].Offset.DY)
	}
	if got[2].Offset.DY >= 0 {
		t.Errorf("below line should have negative DY, got %v", got[2].Offset.DY)
	}
	if got[1].Offset.DY != 0 {
		t.Errorf("center line should have zero DY, got %v", got[1].Offset.DY)
	}
}

func TestBoundingWidthTakesMax(t *testing.T) {
	m := testMetrics()
	lines := []Line{{Text: "a"}, {Text: "a much longer line"}}
	w := BoundingWidth(m, lines)
	if w != m.LineWidth("a much longer line", ast.TextStyle{}) {
		t.Errorf("BoundingWidth should match the longest line")
	}
}
