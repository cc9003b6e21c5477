package geom

// BoundingBox is an axis-aligned min/max point pair. The zero value is not
// empty: it is a degenerate box at the origin, and expanding it always
// includes (0,0). Use NewEmptyBoundingBox for a sentinel to expand from
// (mirroring the teacher's FitViewBoxToPaths accumulation pattern in
// svg/writer.go). Every Expand*/Union method returns a new box and leaves
// its receiver unchanged.
type BoundingBox struct {
	Min, Max Point
	empty    bool
}

// NewEmptyBoundingBox returns a bounding box with no extent, ready to be
// grown by ExpandPoint/ExpandRect.
func NewEmptyBoundingBox() BoundingBox {
	return BoundingBox{empty: true}
}

// IsEmpty reports whether the bounding box has never been expanded.
func (b BoundingBox) IsEmpty() bool { return b.empty }

// ExpandPoint grows the bounding box to include p.
func (b BoundingBox) ExpandPoint(p Point) BoundingBox {
	if b.empty {
		return BoundingBox{Min: p, Max: p}
	}
	return BoundingBox{
		Min: Point{X: b.Min.X.Min(p.X), Y: b.Min.Y.Min(p.Y)},
		Max: Point{X: b.Max.X.Max(p.X), Y: b.Max.Y.Max(p.Y)},
	}
}

// ExpandRect grows the bounding box to include an axis-aligned rectangle
// centered at center with the given full width/height.
func (b BoundingBox) ExpandRect(center Point, width, height Length) BoundingBox {
	hw, hh := width/2, height/2
	b = b.ExpandPoint(Point{X: center.X - hw, Y: center.Y - hh})
	b = b.ExpandPoint(Point{X: center.X + hw, Y: center.Y + hh})
	return b
}

// Union merges two bounding boxes.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if o.empty {
		return b
	}
	b = b.ExpandPoint(o.Min)
	b = b.ExpandPoint(o.Max)
	return b
}

// Expand grows every side of the bounding box by the given margin.
func (b BoundingBox) Expand(margin Length) BoundingBox {
	if b.empty {
		return b
	}
	return BoundingBox{
		Min: Point{X: b.Min.X - margin, Y: b.Min.Y - margin},
		Max: Point{X: b.Max.X + margin, Y: b.Max.Y + margin},
	}
}

// ExpandSides grows the bounding box by independent per-side margins.
func (b BoundingBox) ExpandSides(left, right, top, bottom Length) BoundingBox {
	if b.empty {
		return b
	}
	return BoundingBox{
		Min: Point{X: b.Min.X - left, Y: b.Min.Y - bottom},
		Max: Point{X: b.Max.X + right, Y: b.Max.Y + top},
	}
}

// Width returns the bounding box's horizontal extent.
func (b BoundingBox) Width() Length { return b.Max.X - b.Min.X }

// Height returns the bounding box's vertical extent.
func (b BoundingBox) Height() Length { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of the bounding box.
func (b BoundingBox) Center() Point { return Midpoint(b.Min, b.Max) }
