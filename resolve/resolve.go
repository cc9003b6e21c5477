// Package resolve is the engine's symbol table: it tracks builtin and user
// variables, the objects placed so far, and their labels, and answers the
// object/position lookups package eval needs while walking expressions
// (spec.md §4, "Symbol resolver"). It is grounded on draw/context.go's
// variable-table bookkeeping, generalized from MetaPost's (x,y) equation
// variables to pikchr's already-placed, already-solved object records.
package resolve

import (
	"math"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/eval"
	"github.com/gopikchr/pikchr/geom"
	"github.com/gopikchr/pikchr/perr"
	"github.com/gopikchr/pikchr/pos"
)

// ObjectStyle carries every rendering-affecting attribute an object
// statement can set, independent of its geometry (spec.md §4.4). It lives
// here rather than in package object so that a committed Object can carry
// its own finished style forward — the "same" attribute (spec.md §4.4 step
// 5) copies both the size and the style of an earlier object, and only the
// resolver's Table has every earlier object on hand.
type ObjectStyle struct {
	Stroke     geom.Color
	HasFill    bool
	Fill       geom.Color
	Thickness  geom.Length
	Dashed     bool
	Dotted     bool
	DashWidth  geom.Length
	Invisible  bool
	CW         bool
	Behind     bool
	ArrowStart bool
	ArrowEnd   bool
}

// Object is a fully-placed drawable: its geometry is final once recorded,
// matching spec.md §3's invariant that an object's position never changes
// after the statement that created it finishes.
type Object struct {
	Class    ast.Class
	Label    string
	Center   geom.Point
	Width    geom.Length
	Height   geom.Length
	Radius   geom.Length
	Vertices []geom.Point // non-empty only for line-like classes
	Fit      bool
	Closed   bool // path was closed back to its start via the "close" attribute
	Style    ObjectStyle
}

// edgePoint returns the location of a named edge/corner on a shaped
// object, per spec.md §3's eight-compass-point-plus-center edge model.
func (o *Object) edgePoint(e ast.Edge) geom.Point {
	hw := o.Width / 2
	hh := o.Height / 2
	switch e {
	case ast.EdgeNorth:
		return o.Center.Plus(geom.Offset{DY: hh})
	case ast.EdgeSouth:
		return o.Center.Plus(geom.Offset{DY: -hh})
	case ast.EdgeEast:
		return o.Center.Plus(geom.Offset{DX: hw})
	case ast.EdgeWest:
		return o.Center.Plus(geom.Offset{DX: -hw})
	case ast.EdgeNorthEast:
		return o.Center.Plus(geom.Offset{DX: hw, DY: hh})
	case ast.EdgeNorthWest:
		return o.Center.Plus(geom.Offset{DX: -hw, DY: hh})
	case ast.EdgeSouthEast:
		return o.Center.Plus(geom.Offset{DX: hw, DY: -hh})
	case ast.EdgeSouthWest:
		return o.Center.Plus(geom.Offset{DX: -hw, DY: -hh})
	case ast.EdgeStart:
		if len(o.Vertices) > 0 {
			return o.Vertices[0]
		}
	case ast.EdgeEnd:
		if len(o.Vertices) > 0 {
			return o.Vertices[len(o.Vertices)-1]
		}
	}
	return o.Center
}

// Table is the resolver's mutable state for one render pass.
type Table struct {
	vars    map[string]geom.Value
	objects []*Object
	labels  map[string]*Object
	current *Object // object under construction, for "this"
}

// NewTable builds a resolver seeded with pikchr's builtin variables
// (spec.md §9's Appendix, reconstructed from original_source/src/render.rs).
func NewTable(builtins map[string]geom.Value) *Table {
	vars := make(map[string]geom.Value, len(builtins))
	for k, v := range builtins {
		vars[k] = v
	}
	return &Table{vars: vars, labels: make(map[string]*Object)}
}

func (t *Table) LookupVar(name string) (geom.Value, bool) {
	v, ok := t.vars[name]
	return v, ok
}

func (t *Table) SetVar(name string, v geom.Value) { t.vars[name] = v }

// SetCurrent marks the object presently under construction, visible to
// expressions via Nth{Kind: NthThis} and via "this" path references.
func (t *Table) SetCurrent(o *Object) { t.current = o }

// Commit finalizes a placed object: records it in placement order and, if
// labeled, makes it addressable by name.
func (t *Table) Commit(o *Object) {
	t.objects = append(t.objects, o)
	if o.Label != "" {
		t.labels[o.Label] = o
	}
	t.current = nil
}

// Lookup resolves an ObjectRef to the Object it names. Only Path[0] of a
// dotted path is used: objects record no children, so "A.B" resolves to A
// and the remaining path elements are not searched.
func (t *Table) Lookup(span pos.Span, ref ast.ObjectRef) (*Object, error) {
	if ref.Nth != nil {
		return t.lookupNth(span, *ref.Nth)
	}
	if len(ref.Path) == 0 {
		return nil, perr.At(span, perr.InternalInvariant, "empty object reference")
	}
	if ref.Path[0] == "this" && t.current != nil {
		return t.current, nil
	}
	o, ok := t.labels[ref.Path[0]]
	if !ok {
		return nil, perr.At(span, perr.UnboundName, "undefined object %q", ref.Path[0])
	}
	return o, nil
}

func (t *Table) lookupNth(span pos.Span, n ast.Nth) (*Object, error) {
	if n.Kind == ast.NthThis {
		if t.current == nil {
			return nil, perr.At(span, perr.UnboundName, `"this" used outside an object statement`)
		}
		return t.current, nil
	}

	matches := make([]*Object, 0, len(t.objects))
	for _, o := range t.objects {
		if n.Class == nil || o.Class == *n.Class {
			matches = append(matches, o)
		}
	}
	if len(matches) == 0 {
		return nil, perr.At(span, perr.UnboundName, "no matching object found")
	}

	switch n.Kind {
	case ast.NthLast, ast.NthPrevious:
		return matches[len(matches)-1], nil
	case ast.NthFirst:
		return matches[0], nil
	case ast.NthOrdinal:
		idx := n.N - 1
		if n.Last {
			idx = len(matches) - n.N
		}
		if idx < 0 || idx >= len(matches) {
			return nil, perr.At(span, perr.UnboundName, "ordinal object reference out of range")
		}
		return matches[idx], nil
	default:
		return nil, perr.At(span, perr.InternalInvariant, "unhandled Nth kind")
	}
}

func (t *Table) ObjectProperty(ref ast.ObjectRef, prop ast.ObjectProperty) (geom.Value, error) {
	o, err := t.Lookup(pos.Span{}, ref)
	if err != nil {
		return geom.Value{}, err
	}
	switch prop {
	case ast.PropWidth:
		return geom.NewLength(o.Width), nil
	case ast.PropHeight:
		return geom.NewLength(o.Height), nil
	case ast.PropRadius:
		return geom.NewLength(o.Radius), nil
	case ast.PropDiameter:
		return geom.NewLength(o.Radius * 2), nil
	case ast.PropThickness:
		v, _ := t.LookupVar("thickness")
		return v, nil
	default:
		return geom.Value{}, perr.At(pos.Span{}, perr.InternalInvariant, "unhandled object property")
	}
}

func (t *Table) ObjectCoord(ref ast.ObjectRef, axis ast.Axis) (geom.Value, error) {
	o, err := t.Lookup(pos.Span{}, ref)
	if err != nil {
		return geom.Value{}, err
	}
	if axis == ast.AxisX {
		return geom.NewLength(o.Center.X), nil
	}
	return geom.NewLength(o.Center.Y), nil
}

func (t *Table) ObjectEdgeCoord(ref ast.ObjectRef, edge ast.Edge, axis ast.Axis) (geom.Value, error) {
	o, err := t.Lookup(pos.Span{}, ref)
	if err != nil {
		return geom.Value{}, err
	}
	p := o.edgePoint(edge)
	if axis == ast.AxisX {
		return geom.NewLength(p.X), nil
	}
	return geom.NewLength(p.Y), nil
}

func (t *Table) VertexCoord(ref ast.ObjectRef, index int) (geom.Value, error) {
	o, err := t.Lookup(pos.Span{}, ref)
	if err != nil {
		return geom.Value{}, err
	}
	if index < 1 || index > len(o.Vertices) {
		return geom.Value{}, perr.At(pos.Span{}, perr.BadAttribute, "vertex index out of range")
	}
	// In expression context a vertex yields only its x coordinate, the
	// same way a PositionExpr degrades to X (spec.md §4.1); there is no
	// Position form of a vertex reference.
	return geom.NewLength(o.Vertices[index-1].X), nil
}

// ResolvePosition evaluates any ast.Position node to a concrete Point. It
// is the heart of the symbol resolver (spec.md §4.2) and is implemented
// here, not in package eval, because most Position variants bottom out in
// object lookups that only this table can perform; package eval in turn
// calls back into this method for the PositionExpr case, the same
// collaborator relationship draw/context.go has with mp's path solver.
func (t *Table) ResolvePosition(p ast.Position) (geom.Point, error) {
	switch n := p.(type) {
	case *ast.Coord:
		xv, err := eval.Eval(t, n.X)
		if err != nil {
			return geom.Point{}, err
		}
		yv, err := eval.Eval(t, n.Y)
		if err != nil {
			return geom.Point{}, err
		}
		xl, ok := xv.AsLength()
		if !ok {
			return geom.Point{}, perr.At(n.Span(), perr.TypeMismatch, "coordinate x is not numeric")
		}
		yl, ok := yv.AsLength()
		if !ok {
			return geom.Point{}, perr.At(n.Span(), perr.TypeMismatch, "coordinate y is not numeric")
		}
		return geom.Point{X: xl, Y: yl}, nil

	case *ast.Tuple:
		x, err := t.ResolvePosition(n.XOf)
		if err != nil {
			return geom.Point{}, err
		}
		y, err := t.ResolvePosition(n.YOf)
		if err != nil {
			return geom.Point{}, err
		}
		return geom.Point{X: x.X, Y: y.Y}, nil

	case *ast.PlaceRef:
		if n.Object == nil {
			o, ok := t.labels[n.Label]
			if !ok {
				return geom.Point{}, perr.At(n.Span(), perr.UnboundName, "undefined label %q", n.Label)
			}
			return o.edgePoint(n.Edge), nil
		}
		o, err := t.Lookup(n.Span(), *n.Object)
		if err != nil {
			return geom.Point{}, err
		}
		return o.edgePoint(n.Edge), nil

	case *ast.OffsetPosition:
		base, err := t.ResolvePosition(n.Base)
		if err != nil {
			return geom.Point{}, err
		}
		dx, err := t.evalLength(n.DX)
		if err != nil {
			return geom.Point{}, err
		}
		dy, err := t.evalLength(n.DY)
		if err != nil {
			return geom.Point{}, err
		}
		return base.Plus(geom.Offset{DX: dx, DY: dy}), nil

	case *ast.Between:
		a, err := t.ResolvePosition(n.A)
		if err != nil {
			return geom.Point{}, err
		}
		b, err := t.ResolvePosition(n.B)
		if err != nil {
			return geom.Point{}, err
		}
		fv, err := eval.Eval(t, n.F)
		if err != nil {
			return geom.Point{}, err
		}
		f, ok := fv.AsScalar()
		if !ok {
			return geom.Point{}, perr.At(n.Span(), perr.TypeMismatch, "fraction must be numeric")
		}
		return geom.Between(f, a, b), nil

	case *ast.AngleBracket:
		base, err := t.ResolvePosition(n.Base)
		if err != nil {
			return geom.Point{}, err
		}
		dx, err := t.evalLength(n.DX)
		if err != nil {
			return geom.Point{}, err
		}
		dy, err := t.evalLength(n.DY)
		if err != nil {
			return geom.Point{}, err
		}
		return base.Plus(geom.Offset{DX: dx, DY: dy}), nil

	case *ast.AboveBelow:
		of, err := t.ResolvePosition(n.Of)
		if err != nil {
			return geom.Point{}, err
		}
		d, err := t.evalLength(n.Dist)
		if err != nil {
			return geom.Point{}, err
		}
		if !n.Above {
			d = -d
		}
		return of.Plus(geom.Offset{DY: d}), nil

	case *ast.LeftRightOf:
		of, err := t.ResolvePosition(n.Of)
		if err != nil {
			return geom.Point{}, err
		}
		d, err := t.evalLength(n.Dist)
		if err != nil {
			return geom.Point{}, err
		}
		if !n.Left {
			d = -d
		}
		return of.Plus(geom.Offset{DX: -d}), nil

	case *ast.HeadingOf:
		of, err := t.ResolvePosition(n.Of)
		if err != nil {
			return geom.Point{}, err
		}
		d, err := t.evalLength(n.Dist)
		if err != nil {
			return geom.Point{}, err
		}
		hv, err := eval.Eval(t, n.Heading)
		if err != nil {
			return geom.Point{}, err
		}
		deg, ok := hv.AsScalar()
		if !ok {
			return geom.Point{}, perr.At(n.Span(), perr.TypeMismatch, "heading must be numeric")
		}
		rad := float64(deg) * math.Pi / 180
		return of.Plus(geom.Offset{DX: geom.Length(math.Sin(rad) * float64(d)), DY: geom.Length(math.Cos(rad) * float64(d))}), nil

	case *ast.EdgeOf:
		of, err := t.ResolvePosition(n.Of)
		if err != nil {
			return geom.Point{}, err
		}
		d, err := t.evalLength(n.Dist)
		if err != nil {
			return geom.Point{}, err
		}
		dir := edgeDirection(n.Edge)
		return of.Plus(dir.Scale(d)), nil

	default:
		return geom.Point{}, perr.At(p.Span(), perr.InternalInvariant, "unhandled position node %T", p)
	}
}

// PositionObject returns the Object a Position directly names, when it
// bottoms out in one (a label/object edge reference, or an offset/angle
// applied to one); it returns nil for positions with no single underlying
// object (coordinates, betweens, bare headings). The layout driver uses
// this to find which object a line's "from"/"to" endpoint is attached to,
// so it knows what to chop against (spec.md §7).
func (t *Table) PositionObject(p ast.Position) *Object {
	switch n := p.(type) {
	case *ast.PlaceRef:
		if n.Object == nil {
			return t.labels[n.Label]
		}
		o, err := t.Lookup(n.Span(), *n.Object)
		if err != nil {
			return nil
		}
		return o
	case *ast.OffsetPosition:
		return t.PositionObject(n.Base)
	case *ast.AngleBracket:
		return t.PositionObject(n.Base)
	default:
		return nil
	}
}

func (t *Table) evalLength(e ast.Expr) (geom.Length, error) {
	v, err := eval.Eval(t, e)
	if err != nil {
		return 0, err
	}
	l, ok := v.AsLength()
	if !ok {
		return 0, perr.At(e.Span(), perr.TypeMismatch, "expected a numeric distance")
	}
	return l, nil
}

func edgeDirection(e ast.Edge) geom.UnitVec {
	switch e {
	case ast.EdgeNorth:
		return geom.North
	case ast.EdgeSouth:
		return geom.South
	case ast.EdgeEast:
		return geom.East
	case ast.EdgeWest:
		return geom.West
	case ast.EdgeNorthEast:
		return geom.NorthEast
	case ast.EdgeNorthWest:
		return geom.NorthWest
	case ast.EdgeSouthEast:
		return geom.SouthEast
	case ast.EdgeSouthWest:
		return geom.SouthWest
	default:
		return geom.Zero
	}
}
