package render

import "github.com/gopikchr/pikchr/geom"

// DefaultBuiltins returns pikchr's builtin variable table (spec.md §9's
// Appendix), reconstructed from original_source/src/render.rs since
// spec.md's own Appendix reference was dangling (DESIGN.md's Open
// Question on builtin sourcing).
func DefaultBuiltins() map[string]geom.Value {
	length := func(inches float64) geom.Value { return geom.NewLength(geom.Inches(inches)) }
	scalar := func(v float64) geom.Value { return geom.NewScalar(geom.Scalar(v)) }

	return map[string]geom.Value{
		"boxwid":      length(0.75),
		"boxht":       length(0.5),
		"circlerad":   length(0.25),
		"ovalwid":     length(1.0),
		"ovalht":      length(0.5),
		"linewid":     length(0.5),
		"lineht":      length(0.5),
		"arrowwid":    length(0.5),
		"arrowht":     length(0.5),
		"arrowhead":   scalar(0.04),
		"arcrad":      length(0.25),
		"ellipsewid":  length(0.75),
		"ellipseht":   length(0.5),
		"movewid":     length(0.5),
		"dotrad":      length(0.015),
		"diamondwid":  length(1.0),
		"diamondht":   length(0.75),
		"filewid":     length(0.5),
		"fileht":      length(0.75),
		"filerad":     length(0.15),
		"cylinderwid": length(0.75),
		"cylinderht":  length(0.5),
		"cylinderrad": length(0.075),
		"textwid":     length(0.0),
		"textht":      length(0.14),
		"scale":       scalar(1.0),
		"thickness":   length(0.015),
		"fontscale":   scalar(1.0),
		"charht":      length(0.14),
		"charwid":     length(0.084),
		"margin":      length(0.0),
		"wid":         length(0.75),
		"ht":          length(0.5),
		"rad":         length(0.25),
	}
}
