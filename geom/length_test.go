package geom

import "testing"

func TestLengthArithmetic(t *testing.T) {
	a := Inches(2)
	b := Inches(0.5)
	if got := a.Add(b); got != Inches(2.5) {
		t.Errorf("Add = %v, want 2.5", got)
	}
	if got := a.Sub(b); got != Inches(1.5) {
		t.Errorf("Sub = %v, want 1.5", got)
	}
	if got := a.Scale(Scalar(2)); got != Inches(4) {
		t.Errorf("Scale = %v, want 4", got)
	}
	if got := a.Div(Scalar(4)); got != Inches(0.5) {
		t.Errorf("Div = %v, want 0.5", got)
	}
	if got := Inches(-3).Abs(); got != Inches(3) {
		t.Errorf("Abs = %v, want 3", got)
	}
}

func TestLengthCheckedDiv(t *testing.T) {
	if _, ok := Inches(4).CheckedDiv(Inches(0)); ok {
		t.Errorf("CheckedDiv by zero should fail")
	}
	ratio, ok := Inches(4).CheckedDiv(Inches(2))
	if !ok || ratio != 2 {
		t.Errorf("CheckedDiv(4,2) = %v,%v want 2,true", ratio, ok)
	}
}

func TestLengthFromUnit(t *testing.T) {
	tests := []struct {
		v    float64
		unit string
		want float64
	}{
		{1, "in", 1},
		{2.54, "cm", 1},
		{25.4, "mm", 1},
		{72, "pt", 1},
		{96, "px", 1},
		{6, "pc", 1},
		{5, "", 5},
	}
	for _, tt := range tests {
		got, ok := LengthFromUnit(tt.v, tt.unit)
		if !ok {
			t.Fatalf("LengthFromUnit(%v,%q) not ok", tt.v, tt.unit)
		}
		if d := float64(got) - tt.want; d > 1e-9 || d < -1e-9 {
			t.Errorf("LengthFromUnit(%v,%q) = %v, want %v", tt.v, tt.unit, got, tt.want)
		}
	}
	if _, ok := LengthFromUnit(1, "furlong"); ok {
		t.Errorf("expected unknown unit to fail")
	}
}
