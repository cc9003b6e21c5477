package geom

import "fmt"

// Color is a packed 0xRRGGBB value, the representation Value's Color tag
// carries (spec.md §3). "None"/invisible colors are represented separately
// by ObjectStyle.Invisible, not by a sentinel Color value.
type Color uint32

// RGB packs 8-bit components into a Color, matching the named-color table
// built from original_source/src/render.rs (e.g. 0xff0000 for red).
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Components unpacks a Color into its 8-bit channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// CSS renders the color as an SVG-compatible "rgb(r,g,b)" string, mirroring
// mp.ColorRGB's formatting in mp/color.go.
func (c Color) CSS() string {
	r, g, b := c.Components()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// namedColors is the full pikchr/MetaPost-descended named-color table,
// taken verbatim (by value) from original_source/src/render.rs:253-289.
var namedColors = map[string]Color{
	"white":      0xffffff,
	"black":      0x000000,
	"red":        0xff0000,
	"green":      0x00ff00,
	"blue":       0x0000ff,
	"yellow":     0xffff00,
	"cyan":       0x00ffff,
	"magenta":    0xff00ff,
	"gray":       0x808080,
	"grey":       0x808080,
	"lightgray":  0xd3d3d3,
	"lightgrey":  0xd3d3d3,
	"darkgray":   0xa9a9a9,
	"darkgrey":   0xa9a9a9,
	"orange":     0xffa500,
	"pink":       0xffc0cb,
	"purple":     0x800080,
	"bisque":     0xffe4c4,
	"beige":      0xf5f5dc,
	"brown":      0xa52a2a,
	"coral":      0xff7f50,
	"gold":       0xffd700,
	"ivory":      0xfffff0,
	"khaki":      0xf0e68c,
	"lavender":   0xe6e6fa,
	"linen":      0xfaf0e6,
	"maroon":     0x800000,
	"navy":       0x000080,
	"olive":      0x808000,
	"salmon":     0xfa8072,
	"silver":     0xc0c0c0,
	"tan":        0xd2b48c,
	"teal":       0x008080,
	"tomato":     0xff6347,
	"turquoise":  0x40e0d0,
	"violet":     0xee82ee,
	"wheat":      0xf5deb3,
}

// NamedColor looks up a pikchr builtin color name. ok is false for an
// unrecognized name, in which case the caller (typically the expression
// evaluator resolving a bare identifier) should fall through to treating
// the name as an ordinary variable or object reference.
func NamedColor(name string) (Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// NamedColors returns a copy of the builtin color table, without aliasing
// the package internal map.
func NamedColors() map[string]Color {
	out := make(map[string]Color, len(namedColors))
	for k, v := range namedColors {
		out[k] = v
	}
	return out
}
