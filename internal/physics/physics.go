// Package physics provides the axis-aligned geometry used for hitboxes,
// movement clamping and arena bounds.
package physics

import "math"

// Rect is an axis-aligned rectangle. Min is inclusive, Max exclusive for
// overlap tests.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectAround returns a w×h rectangle centred on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Intersects reports whether the two rectangles overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Contains reports whether the point lies inside r (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Inset shrinks r by dx on the left and right and by dy on the top and
// bottom. An inset larger than half the extent collapses that axis to its
// centre line.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX - dx, MaxY: r.MaxY - dy}
	if out.MinX > out.MaxX {
		mid := (r.MinX + r.MaxX) / 2
		out.MinX, out.MaxX = mid, mid
	}
	if out.MinY > out.MaxY {
		mid := (r.MinY + r.MaxY) / 2
		out.MinY, out.MaxY = mid, mid
	}
	return out
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign maps v onto {-1, 0, 1}.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Normalize returns the unit vector pointing along (x, y), or (0, 0) for the
// zero vector.
func Normalize(x, y float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}
