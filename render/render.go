// Package render is the engine's layout driver and public entry point: it
// walks a Program's statements in order, threading the cursor and
// direction state, resolver table, and SVG builder described across
// spec.md §4 and §8, and produces the final SVG document. It is grounded
// on draw/context.go's sequential constraint-application loop and
// mp/solver.go's top-level solve-then-emit shape, generalized from
// MetaPost's equation-solving pass to pikchr's single left-to-right
// statement walk.
package render

import (
	"strconv"
	"strings"

	"github.com/gopikchr/pikchr/ast"
	"github.com/gopikchr/pikchr/eval"
	"github.com/gopikchr/pikchr/geom"
	"github.com/gopikchr/pikchr/object"
	"github.com/gopikchr/pikchr/perr"
	"github.com/gopikchr/pikchr/resolve"
	"github.com/gopikchr/pikchr/svgout"
	"github.com/gopikchr/pikchr/textmetrics"
)

// maxMacroDepth bounds recursive macro expansion (spec.md §4.8/§9): a
// macro that (directly or indirectly) invokes itself aborts rather than
// recursing forever.
const maxMacroDepth = 10

// SourceParser re-parses a macro body, with its positional arguments
// already substituted, back into statements. Supplying this keeps the
// actual pikchr surface grammar an external collaborator (spec.md §1)
// while still letting this engine implement macro substitution and
// recursion-depth enforcement itself (spec.md §4.5, §4.8).
type SourceParser func(source string) (*ast.Program, error)

// Options configures one render pass.
type Options struct {
	// ScalePxPerInch converts the engine's internal inches to SVG pixels
	// at emission (spec.md §10). Defaults to 96 (the CSS "px" convention,
	// the same ratio package geom's unit table uses).
	ScalePxPerInch float64
	// Parser re-parses macro bodies (spec.md §4.8). Required only if the
	// input program contains MacroCallStatement nodes.
	Parser SourceParser
	// Diagnostics, if non-nil, receives one line per print/assert
	// diagnostic emitted during the render (spec.md §4.5, §7). Assertion
	// failures are diagnostics, not aborts.
	Diagnostics *[]string
}

// Render compiles a parsed Program to a complete SVG document.
func Render(prog *ast.Program, opts Options) (string, error) {
	if opts.ScalePxPerInch <= 0 {
		opts.ScalePxPerInch = 96
	}
	tab := resolve.NewTable(DefaultBuiltins())
	svgB := svgout.NewBuilder(opts.ScalePxPerInch)
	d := &driver{
		tab:     tab,
		svg:     svgB,
		opts:    opts,
		macros:  map[string]string{},
		cursor:  object.Cursor{Pos: geom.Point{}, Dir: ast.CompassRight, LastOfAny: map[ast.Class]*resolve.Object{}},
	}
	if err := d.runStatements(prog.Statements, 0); err != nil {
		return "", err
	}
	var sb strings.Builder
	if _, err := svgB.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type driver struct {
	tab    *resolve.Table
	svg    *svgout.Builder
	opts   Options
	macros map[string]string
	cursor object.Cursor
}

func (d *driver) runStatements(stmts []ast.Statement, macroDepth int) error {
	for _, s := range stmts {
		if err := d.runStatement(s, macroDepth); err != nil {
			return err
		}
	}
	return nil
}

func (d *driver) runStatement(s ast.Statement, macroDepth int) error {
	switch n := s.(type) {
	case *ast.DirectionStatement:
		d.cursor.Dir = n.Direction
		return nil

	case *ast.AssignStatement:
		v, err := eval.Eval(d.tab, n.Value)
		if err != nil {
			return err
		}
		d.tab.SetVar(n.Name, v)
		return nil

	case *ast.DefineStatement:
		d.macros[n.Name] = n.Body
		return nil

	case *ast.MacroCallStatement:
		return d.runMacroCall(n, macroDepth)

	case *ast.AssertStatement:
		v, err := eval.Eval(d.tab, n.Condition)
		if err != nil {
			return err
		}
		f, _ := v.AsScalar()
		if f == 0 {
			if d.opts.Diagnostics != nil {
				*d.opts.Diagnostics = append(*d.opts.Diagnostics, "assert failed: "+n.Span().String())
			}
		}
		return nil

	case *ast.PrintStatement:
		parts := make([]string, 0, len(n.Args))
		for _, a := range n.Args {
			v, err := eval.Eval(d.tab, a)
			if err != nil {
				return err
			}
			parts = append(parts, v.String())
		}
		if d.opts.Diagnostics != nil {
			*d.opts.Diagnostics = append(*d.opts.Diagnostics, strings.Join(parts, " "))
		}
		return nil

	case *ast.ErrorStatement:
		return perr.At(n.Span(), perr.UserError, "%s", n.Message)

	case *ast.LabeledStatement:
		if n.Object != nil {
			return d.runObject(n.Label, n.Object, macroDepth)
		}
		p, err := d.tab.ResolvePosition(n.Position)
		if err != nil {
			return err
		}
		d.tab.Commit(&resolve.Object{Label: n.Label, Center: p})
		return nil

	case *ast.ObjectStmt:
		return d.runObject("", n, macroDepth)

	default:
		return perr.At(s.Span(), perr.InternalInvariant, "unhandled statement %T", s)
	}
}

func (d *driver) runMacroCall(n *ast.MacroCallStatement, macroDepth int) error {
	if d.opts.Parser == nil {
		return perr.At(n.Span(), perr.BadAttribute, "macro %q invoked but no source parser was configured", n.Name)
	}
	if macroDepth >= maxMacroDepth {
		return perr.At(n.Span(), perr.MacroDepth, "macro expansion exceeded depth %d", maxMacroDepth)
	}
	body, ok := d.macros[n.Name]
	if !ok {
		return perr.At(n.Span(), perr.UnboundName, "undefined macro %q", n.Name)
	}
	expanded := substituteArgs(body, n.Args)
	prog, err := d.opts.Parser(expanded)
	if err != nil {
		return perr.Wrap(n.Span(), perr.BadAttribute, err, "error re-parsing macro %q", n.Name)
	}
	return d.runStatements(prog.Statements, macroDepth+1)
}

// substituteArgs replaces $1..$N placeholders in a macro body with its
// call-site arguments (spec.md §4.8).
func substituteArgs(body string, args []string) string {
	out := body
	for i, a := range args {
		out = strings.ReplaceAll(out, "$"+strconv.Itoa(i+1), a)
	}
	return out
}

func (d *driver) runObject(label string, stmt *ast.ObjectStmt, macroDepth int) error {
	switch base := stmt.Base.(type) {
	case ast.SublistBase:
		return d.runSublist(label, base, macroDepth)
	case ast.TextBase:
		return d.runTextObject(label, stmt, base)
	case ast.ClassBase:
		return d.runClassObject(label, stmt)
	default:
		return perr.At(stmt.Span(), perr.InternalInvariant, "unhandled object base %T", stmt.Base)
	}
}

func (d *driver) runClassObject(label string, stmt *ast.ObjectStmt) error {
	built, next, err := object.Build(d.tab, d.cursor, label, stmt)
	if err != nil {
		return err
	}
	d.tab.SetCurrent(built.Obj)
	d.tab.Commit(built.Obj)
	d.cursor.Pos = next
	d.cursor.LastOfAny[built.Obj.Class] = built.Obj

	d.svg.AddShape(toShape(built))
	d.addTexts(built)
	return nil
}

func (d *driver) runTextObject(label string, stmt *ast.ObjectStmt, base ast.TextBase) error {
	obj := &resolve.Object{
		Class:  ast.ClassText,
		Label:  label,
		Center: d.cursor.Pos,
	}
	tm := d.metrics()
	obj.Width = tm.LineWidth(base.Content, base.Style)
	obj.Height = tm.LineHeight(base.Style)
	d.tab.Commit(obj)
	d.svg.AddText(svgout.Text{
		Pos:  obj.Center,
		Text: base.Content,
		Bold: base.Style.Bold, Italic: base.Style.Italic,
	})
	return nil
}

func (d *driver) runSublist(label string, base ast.SublistBase, macroDepth int) error {
	bb := geom.NewEmptyBoundingBox()
	startCursor := d.cursor
	if err := d.runStatements(base.Statements, macroDepth); err != nil {
		return err
	}
	// The sublist's own bounding box is whatever its inner statements
	// drew; without a per-call bbox listener, approximate it as the span
	// between the cursor's start and end points (spec.md §3's sublist
	// object, Non-goal: exact nested-group bounding boxes are not
	// reconstructed here since object building already records each
	// child individually in the resolver).
	bb = bb.ExpandPoint(startCursor.Pos)
	bb = bb.ExpandPoint(d.cursor.Pos)
	obj := &resolve.Object{
		Class:  ast.ClassBox,
		Label:  label,
		Center: bb.Center(),
		Width:  bb.Width(),
		Height: bb.Height(),
	}
	d.tab.Commit(obj)
	return nil
}

func (d *driver) metrics() textmetrics.Metrics {
	charWid, _ := d.tab.LookupVar("charwid")
	charHt, _ := d.tab.LookupVar("charht")
	fontScale, _ := d.tab.LookupVar("fontscale")
	cw, _ := charWid.AsLength()
	ch, _ := charHt.AsLength()
	fs, _ := fontScale.AsScalar()
	if fs == 0 {
		fs = 1
	}
	return textmetrics.Metrics{CharWidth: cw, CharHeight: ch, FontScale: fs}
}

func (d *driver) addTexts(built object.Built) {
	if len(built.Texts) == 0 {
		return
	}
	tm := d.metrics()
	lines := make([]textmetrics.Line, len(built.Texts))
	for i, t := range built.Texts {
		lines[i] = textmetrics.Line{Text: t.Text, Style: t.Style}
	}
	placements := textmetrics.Slot(tm, lines)
	for _, p := range placements {
		anchor := "middle"
		switch p.Style.HJust {
		case ast.HJustLeft:
			anchor = "start"
		case ast.HJustRight:
			anchor = "end"
		}
		d.svg.AddText(svgout.Text{
			Pos:    built.Obj.Center.Plus(p.Offset),
			Text:   p.Text,
			Bold:   p.Style.Bold,
			Italic: p.Style.Italic,
			Anchor: anchor,
		})
	}
}

func toShape(built object.Built) svgout.Shape {
	o := built.Obj
	return svgout.Shape{
		Class:      o.Class,
		Center:     o.Center,
		HalfW:      o.Width / 2,
		HalfH:      o.Height / 2,
		Radius:     o.Radius,
		Vertices:   o.Vertices,
		Closed:     o.Closed,
		Stroke:     built.Style.Stroke,
		HasFill:    built.Style.HasFill,
		Fill:       built.Style.Fill,
		Thickness:  built.Style.Thickness,
		Dashed:     built.Style.Dashed,
		Dotted:     built.Style.Dotted,
		DashWidth:  built.Style.DashWidth,
		Invisible:  built.Style.Invisible,
		ArrowStart: built.Style.ArrowStart,
		ArrowEnd:   built.Style.ArrowEnd,
		CW:         built.Style.CW,
		Behind:     built.Style.Behind,
	}
}
