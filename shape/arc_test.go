package shape

import (
	"math"
	"testing"

	"github.com/gopikchr/pikchr/geom"
)

func TestArcRadiusUnitChord(t *testing.T) {
	p0 := geom.Point{}
	p1 := geom.Point{X: geom.Inches(1)}
	r := ArcRadius(p0, p1)
	want := geom.Length(1 / math.Sqrt2)
	if math.Abs(float64(r-want)) > 1e-9 {
		t.Errorf("ArcRadius = %v, want %v", r, want)
	}
}

func TestArcCenterEquidistantFromEndpoints(t *testing.T) {
	p0 := geom.Point{}
	p1 := geom.Point{X: geom.Inches(1)}
	c := ArcCenter(p0, p1, true)
	r := ArcRadius(p0, p1)
	d0 := math.Hypot(float64(c.X-p0.X), float64(c.Y-p0.Y))
	d1 := math.Hypot(float64(c.X-p1.X), float64(c.Y-p1.Y))
	if math.Abs(d0-float64(r)) > 1e-9 || math.Abs(d1-float64(r)) > 1e-9 {
		t.Errorf("center %v is not equidistant (r=%v) from endpoints: d0=%v d1=%v", c, r, d0, d1)
	}
}

func TestArcCenterFlipsWithCW(t *testing.T) {
	p0 := geom.Point{}
	p1 := geom.Point{X: geom.Inches(1)}
	cw := ArcCenter(p0, p1, true)
	ccw := ArcCenter(p0, p1, false)
	if cw == ccw {
		t.Errorf("cw and ccw arc centers should differ, both got %v", cw)
	}
}
