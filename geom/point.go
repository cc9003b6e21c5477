package geom

import "math"

// Point is a location in the engine's Y-up inch coordinate space.
type Point struct {
	X, Y Length
}

// Offset is a displacement between two Points.
type Offset struct {
	DX, DY Length
}

// Sub returns the Offset from q to p (p - q), per spec.md §3.
func (p Point) Sub(q Point) Offset {
	return Offset{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Plus returns the Point reached by applying an Offset (p + o).
func (p Point) Plus(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Minus returns the Point reached by subtracting an Offset.
func (p Point) Minus(o Offset) Point {
	return Point{X: p.X - o.DX, Y: p.Y - o.DY}
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Between returns the point at fraction f along the segment from p to q
// (f=0 -> p, f=1 -> q, extrapolates outside [0,1]), implementing the
// "f between A and B" position form of spec.md §3.
func Between(f Scalar, p, q Point) Point {
	return Point{
		X: p.X + Length(float64(f)*float64(q.X-p.X)),
		Y: p.Y + Length(float64(f)*float64(q.Y-p.Y)),
	}
}

// Dist is the Euclidean distance between two points, as used by the
// evaluator's dist() builtin (spec.md §4.1).
func Dist(p, q Point) Length {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return Length(math.Hypot(dx, dy))
}

func (o Offset) Add(other Offset) Offset {
	return Offset{DX: o.DX + other.DX, DY: o.DY + other.DY}
}

func (o Offset) Neg() Offset {
	return Offset{DX: -o.DX, DY: -o.DY}
}

func (o Offset) Length() Length {
	return Length(math.Hypot(float64(o.DX), float64(o.DY)))
}

// UnitVec is one of the nine pikchr direction constants: the eight compass
// points plus Zero (no direction). Components are unit-length except Zero.
type UnitVec struct {
	DX, DY float64
}

var (
	Zero  = UnitVec{0, 0}
	North = UnitVec{0, 1}
	South = UnitVec{0, -1}
	East  = UnitVec{1, 0}
	West  = UnitVec{-1, 0}
)

var diag = 1.0 / math.Sqrt2

var (
	NorthEast = UnitVec{diag, diag}
	NorthWest = UnitVec{-diag, diag}
	SouthEast = UnitVec{diag, -diag}
	SouthWest = UnitVec{-diag, -diag}
)

// Scale returns the Offset obtained by scaling the unit vector by a Length
// (UnitVec * Length = Offset, per spec.md §3).
func (u UnitVec) Scale(l Length) Offset {
	return Offset{DX: Length(u.DX * float64(l)), DY: Length(u.DY * float64(l))}
}

// IsZero reports whether u is the Zero direction constant.
func (u UnitVec) IsZero() bool { return u.DX == 0 && u.DY == 0 }

// Heading builds a unit vector at the given compass heading in degrees,
// measured clockwise from North the way pikchr's "heading N of" does
// (0=N, 90=E, 180=S, 270=W).
func Heading(degrees float64) UnitVec {
	rad := degrees * math.Pi / 180
	return UnitVec{DX: math.Sin(rad), DY: math.Cos(rad)}
}

// CardinalFromAngle maps a heading in degrees to the nearest of the eight
// compass UnitVec constants using the quadrant thresholds from spec.md
// §4.3 (add_heading): 45/135/225/315.
func CardinalFromAngle(degrees float64) UnitVec {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	switch {
	case d < 45 || d >= 315:
		return North
	case d < 135:
		return East
	case d < 225:
		return South
	default:
		return West
	}
}
