// Package object builds a finished resolve.Object (and its rendering
// Style) from an ast.ObjectStmt plus the layout driver's current cursor
// and direction state (spec.md §3's Object builder, §4.4-§4.7). It is
// grounded on draw/builder.go's fluent attribute application and
// mp/pen.go's stroke/fill/dash style record, generalized from MetaPost's
// pen-and-path model to pikchr's box/circle/line attribute grammar.
package object

import (
	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/eval"
	"github.com/gopikchr/pikchr/geom"
	"github.com/gopikchr/pikchr/pathbuilder"
	"github.com/gopikchr/pikchr/perr"
	"github.com/gopikchr/pikchr/pos"
	"github.com/gopikchr/pikchr/resolve"
	"github.com/gopikchr/pikchr/shape"
	"github.com/gopikchr/pikchr/textmetrics"
)

// Style carries every rendering-affecting attribute an object statement
// can set, independent of its geometry (spec.md §4.4). It is an alias for
// resolve.ObjectStyle so a committed resolve.Object can carry its finished
// style forward for a later "same" attribute to copy (spec.md §4.4 step 5).
type Style = resolve.ObjectStyle

// TextLine is one line of an object's attached label, already positioned
// relative to the object's center (spec.md §4.9; final pixel placement is
// package textmetrics's job).
type TextLine struct {
	Text  string
	Style ast.TextStyle
}

// Built is everything the layout driver needs to record and render one
// object statement.
type Built struct {
	Obj   *resolve.Object
	Style Style
	Texts []TextLine
}

// Cursor is the layout driver's current placement state, threaded through
// object construction the way draw/builder.go threads its Context (spec.md
// §8).
type Cursor struct {
	Pos       geom.Point
	Dir       ast.Compass
	LastOfAny map[ast.Class]*resolve.Object
}

// Env is the subset of the resolver an object build needs: eval.Env plus
// object lookup and the object behind a position. This package uses
// resolve.Object and resolve.ObjectStyle but never names resolve's
// concrete Table, which satisfies Env.
type Env interface {
	eval.Env
	PositionObject(p ast.Position) *resolve.Object
	Lookup(span pos.Span, ref ast.ObjectRef) (*resolve.Object, error)
}

// Build constructs a finished object from its statement, the current
// cursor, and the variable/object environment. The caller (package
// render) is responsible for committing the returned Obj into the
// resolver's Table once built.
func Build(env Env, cursor Cursor, label string, stmt *ast.ObjectStmt) (Built, geom.Point, error) {
	cb, ok := stmt.Base.(ast.ClassBase)
	if !ok {
		return Built{}, cursor.Pos, perr.At(stmt.Span(), perr.InternalInvariant, "object builder requires a class base")
	}
	class := cb.Class

	width, err := defaultLength(env, "width", cb.Class, cursor)
	if err != nil {
		return Built{}, cursor.Pos, err
	}
	height, err := defaultLength(env, "height", cb.Class, cursor)
	if err != nil {
		return Built{}, cursor.Pos, err
	}
	radius, err := defaultRadius(env, cb.Class)
	if err != nil {
		return Built{}, cursor.Pos, err
	}

	st := defaultStyle(env, class)
	var texts []TextLine
	var atPos *geom.Point
	var withEdge = ast.EdgeCenter
	var withPos *geom.Point
	var chop bool
	var fit bool
	var fromObj, toObj *resolve.Object
	// A non-line-like object ("box right 2in") also honours direction-move
	// attributes: they accumulate into a single offset from the cursor
	// rather than building a waypoint path (spec.md §4.4 step 6: "anything
	// with any of from/to/direction-move/then/even" is positioned this
	// way, not only line-like classes).
	var moveOffset geom.Offset
	var hasMoveOffset bool

	pb := (*pathbuilder.Builder)(nil)
	if class.IsLineLike() {
		pb = pathbuilder.New(cursor.Pos)
	}
	curDir := compassUnitVec(cursor.Dir)

	for _, a := range stmt.Attributes {
		switch at := a.(type) {
		case *ast.NumericAttr:
			l, err := evalNumeric(env, at)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			switch at.Prop {
			case "width":
				width = applyPercent(l, at.Percent, width)
			case "height":
				height = applyPercent(l, at.Percent, height)
			case "radius":
				radius = applyPercent(l, at.Percent, radius)
			case "diameter":
				if at.Percent {
					radius = applyPercent(l, true, radius*2) / 2
				} else {
					radius = l / 2
				}
			case "thickness":
				st.Thickness = applyPercent(l, at.Percent, st.Thickness)
			}

		case *ast.ColorAttr:
			v, err := eval.Eval(env, at.Value)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			c, ok := v.Color()
			if !ok {
				return Built{}, cursor.Pos, perr.At(at.Span(), perr.TypeMismatch, "%s requires a color value", at.Prop)
			}
			switch at.Prop {
			case "fill":
				st.Fill, st.HasFill = c, true
			default:
				st.Stroke = c
			}

		case *ast.BoolAttr:
			switch at.Name {
			case "solid":
				st.Dashed, st.Dotted = false, false
			case "invisible":
				st.Invisible = true
			case "thick":
				st.Thickness = st.Thickness * 2
			case "thin":
				st.Thickness = st.Thickness / 2
			case "cw":
				st.CW = true
			case "ccw":
				st.CW = false
			case "->":
				st.ArrowStart, st.ArrowEnd = false, true
			case "<-":
				st.ArrowStart, st.ArrowEnd = true, false
			case "<->":
				st.ArrowStart, st.ArrowEnd = true, true
			}

		case *ast.DashAttr:
			st.Dashed = !at.Dotted
			st.Dotted = at.Dotted
			if at.Width != nil {
				w, err := evalExprLength(env, at.Width)
				if err != nil {
					return Built{}, cursor.Pos, err
				}
				st.DashWidth = w
			}

		case *ast.StringAttr:
			texts = append(texts, TextLine{Text: at.Text, Style: at.Style})

		case *ast.AtAttr:
			p, err := env.ResolvePosition(at.Pos)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			atPos = &p

		case *ast.WithAttr:
			p, err := env.ResolvePosition(at.Pos)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			withEdge, withPos = at.Edge, &p

		case *ast.FromAttr:
			p, err := env.ResolvePosition(at.Pos)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			if pb != nil {
				pb = pathbuilder.New(p)
				fromObj = env.PositionObject(at.Pos)
			} else {
				atPos = &p
			}

		case *ast.ToAttr:
			p, err := env.ResolvePosition(at.Pos)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			if pb != nil {
				pb.MoveTo(p)
				toObj = env.PositionObject(at.Pos)
			}

		case *ast.DirMoveAttr:
			dir := compassUnitVec(at.Dir)
			d := height
			if at.Dir == ast.CompassRight || at.Dir == ast.CompassLeft {
				d = width
			}
			if at.Dist != nil {
				var err error
				d, err = evalExprLength(env, at.Dist)
				if err != nil {
					return Built{}, cursor.Pos, err
				}
			}
			if pb != nil {
				pb.MoveBy(dir, d)
			} else {
				moveOffset, hasMoveOffset = moveOffset.Add(dir.Scale(d)), true
			}
			curDir = dir

		case *ast.HeadingAttr:
			degv, err := eval.Eval(env, at.Degrees)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			deg, _ := degv.AsScalar()
			dir := geom.Heading(float64(deg))
			d := width
			if at.Dist != nil {
				d, err = evalExprLength(env, at.Dist)
				if err != nil {
					return Built{}, cursor.Pos, err
				}
			}
			if pb != nil {
				pb.MoveBy(dir, d)
			} else {
				moveOffset, hasMoveOffset = moveOffset.Add(dir.Scale(d)), true
			}
			curDir = dir

		case *ast.BareExprAttr:
			d, err := evalExprLength(env, at.Dist)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			if pb != nil {
				pb.MoveBy(curDir, d)
			} else {
				moveOffset, hasMoveOffset = moveOffset.Add(curDir.Scale(d)), true
			}

		case *ast.EvenWithAttr:
			target, err := env.ResolvePosition(at.Target)
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			dir := compassUnitVec(at.Dir)
			horizontal := at.Dir == ast.CompassRight || at.Dir == ast.CompassLeft
			if pb != nil {
				pb.SetEvenWith(horizontal, target)
			} else if horizontal {
				moveOffset.DX, hasMoveOffset = target.X-cursor.Pos.X, true
			} else {
				moveOffset.DY, hasMoveOffset = target.Y-cursor.Pos.Y, true
			}
			curDir = dir

		case *ast.SameAttr:
			ref, err := sameReferent(env, cursor, class, at.Referent, at.Span())
			if err != nil {
				return Built{}, cursor.Pos, err
			}
			if ref != nil {
				width, height, radius = ref.Width, ref.Height, ref.Radius
				st = ref.Style
			}

		case *ast.ThenAttr:
			if pb != nil {
				pb.Then()
				for _, mv := range at.Clause.Moves {
					// applyThenMove handles direction moves, bare
					// distances, and even-with moves; other attribute
					// kinds inside a then-clause are ignored.
					if err := applyThenMove(env, pb, &curDir, width, height, mv); err != nil {
						return Built{}, cursor.Pos, err
					}
				}
			}

		case *ast.CloseAttr:
			if pb != nil {
				pb.Close()
			}

		case *ast.ChopAttr:
			chop = true

		case *ast.FitAttr:
			fit = true

		case *ast.BehindAttr:
			st.Behind = true
		}
	}

	// A line-like object that named no from/to/move/heading/then attribute
	// at all still advances by its default length in the current cursor
	// direction ("box A; arrow; box B" chains edge to edge, spec.md
	// scenario S1) — without this, a bare line-like statement would
	// collapse to a single-point, zero-length path.
	if pb != nil {
		if v := pb.Vertices(); len(v) < 2 {
			d := width
			if curDir == geom.North || curDir == geom.South {
				d = height
			}
			pb.MoveBy(curDir, d)
		}
	}

	// The exit/entry edge along the current cardinal direction is exactly
	// half the object's extent on that axis for every shape class (box,
	// circle, oval, and diamond all meet their own East/West edge at
	// exactly halfW and their North/South edge at exactly halfH) — see
	// shape.EdgePoint's per-class formulas.
	halfExtent := func(dir geom.UnitVec) geom.Length {
		switch dir {
		case geom.East, geom.West:
			return width / 2
		case geom.North, geom.South:
			return height / 2
		default:
			return 0
		}
	}

	var center geom.Point
	var vertices []geom.Point
	switch {
	case pb != nil:
		vertices = pb.Vertices()
		if len(vertices) > 0 {
			center = geom.Midpoint(vertices[0], vertices[len(vertices)-1])
		}
	case atPos != nil:
		center = *atPos
	case withPos != nil:
		center = centerFromEdge(*withPos, withEdge, width, height)
	case hasMoveOffset:
		center = cursor.Pos.Plus(moveOffset)
	default:
		// Position relative to the cursor in the current direction: the
		// entry edge coincides with the cursor so objects chain edge to
		// edge (spec.md §4.4 step 6).
		center = cursor.Pos.Plus(curDir.Scale(halfExtent(curDir)))
	}

	if fit && len(texts) > 0 {
		width, height = fitToText(env, texts, width, height)
	}

	obj := &resolve.Object{
		Class:    class,
		Label:    label,
		Center:   center,
		Width:    width,
		Height:   height,
		Radius:   radius,
		Vertices: vertices,
		Fit:      fit,
		Closed:   pb != nil && pb.IsClosed(),
		Style:    st,
	}

	if chop && pb != nil && len(vertices) >= 2 {
		applyChop(obj, fromObj, toObj)
	}

	next := center
	if pb != nil && len(vertices) > 0 {
		next = vertices[len(vertices)-1]
	} else {
		next = center.Plus(curDir.Scale(halfExtent(curDir)))
	}

	return Built{Obj: obj, Style: st, Texts: texts}, next, nil
}

func applyThenMove(env Env, pb *pathbuilder.Builder, curDir *geom.UnitVec, width, height geom.Length, a ast.Attribute) error {
	switch at := a.(type) {
	case *ast.DirMoveAttr:
		dir := compassUnitVec(at.Dir)
		d := height
		if at.Dir == ast.CompassRight || at.Dir == ast.CompassLeft {
			d = width
		}
		if at.Dist != nil {
			var err error
			d, err = evalExprLength(env, at.Dist)
			if err != nil {
				return err
			}
		}
		pb.MoveBy(dir, d)
		*curDir = dir
	case *ast.BareExprAttr:
		d, err := evalExprLength(env, at.Dist)
		if err != nil {
			return err
		}
		pb.MoveBy(*curDir, d)
	case *ast.EvenWithAttr:
		target, err := env.ResolvePosition(at.Target)
		if err != nil {
			return err
		}
		dir := compassUnitVec(at.Dir)
		pb.SetEvenWith(at.Dir == ast.CompassRight || at.Dir == ast.CompassLeft, target)
		*curDir = dir
	}
	return nil
}

// sameReferent resolves a "same" attribute's size/style source: the named
// referent when given, otherwise the most recently built object of the
// same class, otherwise nil (spec.md §4.4 step 5's silent-default rule,
// spec.md §9).
func sameReferent(env Env, cursor Cursor, class ast.Class, referent *ast.ObjectRef, span pos.Span) (*resolve.Object, error) {
	if referent != nil {
		return env.Lookup(span, *referent)
	}
	if cursor.LastOfAny != nil {
		if o, ok := cursor.LastOfAny[class]; ok {
			return o, nil
		}
	}
	return nil, nil
}

// applyChop pulls a line-like object's endpoints back from the object
// center they were aimed at to that object's visible boundary (spec.md
// §7): "line from A to B chop" should stop at A's and B's outlines, not
// their centers. Only ends with an attached object (from fromObj/toObj,
// traced back through env.PositionObject) are pulled back; a bare
// coordinate endpoint is left untouched (DESIGN.md Open Question 3).
func applyChop(obj *resolve.Object, fromObj, toObj *resolve.Object) {
	n := len(obj.Vertices)
	if fromObj != nil {
		b := shape.Box{Class: fromObj.Class, Center: fromObj.Center, HalfW: fromObj.Width / 2, HalfH: fromObj.Height / 2}
		obj.Vertices[0] = shape.ChopPoint(b, obj.Vertices[1])
	}
	if toObj != nil {
		b := shape.Box{Class: toObj.Class, Center: toObj.Center, HalfW: toObj.Width / 2, HalfH: toObj.Height / 2}
		obj.Vertices[n-1] = shape.ChopPoint(b, obj.Vertices[n-2])
	}
}

func centerFromEdge(edgePoint geom.Point, edge ast.Edge, width, height geom.Length) geom.Point {
	b := shape.Box{Class: ast.ClassBox, Center: geom.Point{}, HalfW: width / 2, HalfH: height / 2}
	offset := shape.EdgePoint(b, edge).Sub(geom.Point{})
	return edgePoint.Minus(offset)
}

// fitToText grows width/height to accommodate the object's attached label,
// measuring it against the charwid/charht/fontscale width table (spec.md
// §4.4 step 3) rather than ad-hoc constants.
func fitToText(env Env, texts []TextLine, width, height geom.Length) (geom.Length, geom.Length) {
	m := textmetrics.Metrics{FontScale: 1}
	if v, ok := env.LookupVar("charwid"); ok {
		m.CharWidth, _ = v.AsLength()
	}
	if v, ok := env.LookupVar("charht"); ok {
		m.CharHeight, _ = v.AsLength()
	}
	if v, ok := env.LookupVar("fontscale"); ok {
		if fs, ok := v.AsScalar(); ok {
			m.FontScale = fs
		}
	}

	lines := make([]textmetrics.Line, len(texts))
	for i, t := range texts {
		lines[i] = textmetrics.Line{Text: t.Text, Style: t.Style}
	}

	if fitWidth := textmetrics.BoundingWidth(m, lines); fitWidth > width {
		width = fitWidth + geom.Inches(0.2)
	}
	if fitHeight := textmetrics.BoundingHeight(m, lines); fitHeight > height {
		height = fitHeight + geom.Inches(0.1)
	}
	return width, height
}

func compassUnitVec(c ast.Compass) geom.UnitVec {
	switch c {
	case ast.CompassRight:
		return geom.East
	case ast.CompassLeft:
		return geom.West
	case ast.CompassUp:
		return geom.North
	case ast.CompassDown:
		return geom.South
	default:
		return geom.Zero
	}
}

func defaultLength(env Env, which string, class ast.Class, cursor Cursor) (geom.Length, error) {
	name := widthVarName(which, class)
	if name == "" {
		return geom.ZERO, nil
	}
	v, ok := env.LookupVar(name)
	if !ok {
		return geom.ZERO, nil
	}
	l, _ := v.AsLength()
	return l, nil
}

func widthVarName(which string, class ast.Class) string {
	switch class {
	case ast.ClassBox:
		if which == "width" {
			return "boxwid"
		}
		return "boxht"
	case ast.ClassOval:
		if which == "width" {
			return "ovalwid"
		}
		return "ovalht"
	case ast.ClassCylinder:
		if which == "width" {
			return "cylinderwid"
		}
		return "cylinderht"
	case ast.ClassDiamond:
		if which == "width" {
			return "diamondwid"
		}
		return "diamondht"
	case ast.ClassFile:
		if which == "width" {
			return "filewid"
		}
		return "fileht"
	case ast.ClassEllipse:
		if which == "width" {
			return "ellipsewid"
		}
		return "ellipseht"
	case ast.ClassText:
		if which == "width" {
			return "textwid"
		}
		return "textht"
	default:
		if which == "width" {
			return "linewid"
		}
		return "lineht"
	}
}

func defaultRadius(env Env, class ast.Class) (geom.Length, error) {
	switch class {
	case ast.ClassCircle:
		if v, ok := env.LookupVar("circlerad"); ok {
			l, _ := v.AsLength()
			return l, nil
		}
	case ast.ClassDot:
		if v, ok := env.LookupVar("dotrad"); ok {
			l, _ := v.AsLength()
			return l, nil
		}
	case ast.ClassArc:
		if v, ok := env.LookupVar("arcrad"); ok {
			l, _ := v.AsLength()
			return l, nil
		}
	case ast.ClassCylinder:
		if v, ok := env.LookupVar("cylinderrad"); ok {
			l, _ := v.AsLength()
			return l, nil
		}
	case ast.ClassFile:
		if v, ok := env.LookupVar("filerad"); ok {
			l, _ := v.AsLength()
			return l, nil
		}
	}
	return geom.ZERO, nil
}

func defaultStyle(env Env, class ast.Class) Style {
	st := Style{}
	if v, ok := env.LookupVar("thickness"); ok {
		st.Thickness, _ = v.AsLength()
	}
	if c, ok := geom.NamedColor("black"); ok {
		st.Stroke = c
	}
	// An arrow is, by definition, a line with an arrowhead at its end
	// unless overridden by an explicit "<-"/"->"/"<->" attribute word
	// (spec.md §3's ObjectStyle, arrow_start/arrow_end).
	if class == ast.ClassArrow {
		st.ArrowEnd = true
	}
	return st
}

// evalNumeric evaluates a numeric property attribute's expression. A plain
// number resolves to an absolute Length; a "%" suffix instead resolves to
// the fraction it names (0.5 for "50%") — applyPercent then scales that
// fraction against the property's *current* value at the call site
// (spec.md §4.4 step 5: percent is always relative to the current size,
// never an absolute fraction of an inch).
func evalNumeric(env Env, at *ast.NumericAttr) (geom.Length, error) {
	v, err := eval.Eval(env, at.Value)
	if err != nil {
		return 0, err
	}
	if at.Percent {
		s, ok := v.AsScalar()
		if !ok {
			return 0, perr.At(at.Span(), perr.TypeMismatch, "%s requires a numeric value", at.Prop)
		}
		return geom.Length(float64(s) / 100), nil
	}
	l, ok := v.AsLength()
	if !ok {
		return 0, perr.At(at.Span(), perr.TypeMismatch, "%s requires a numeric value", at.Prop)
	}
	return l, nil
}

// applyPercent turns evalNumeric's result into the property's new value: a
// percent fraction scales the current value, an absolute value replaces it
// outright.
func applyPercent(l geom.Length, percent bool, current geom.Length) geom.Length {
	if percent {
		return current.Scale(geom.Scalar(l))
	}
	return l
}

func evalExprLength(env Env, e ast.Expr) (geom.Length, error) {
	v, err := eval.Eval(env, e)
	if err != nil {
		return 0, err
	}
	l, ok := v.AsLength()
	if !ok {
		return 0, perr.At(e.Span(), perr.TypeMismatch, "expected a numeric distance")
	}
	return l, nil
}
