package geom

import "math"

// Size holds pixel dimensions of a coordinate space.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// IsZero reports whether either dimension is missing.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect returns the size as a rectangle anchored at the origin.
func (s Size) Rect() Rect {
	return Rect{X: 0, Y: 0, Width: s.Width, Height: s.Height}
}

// Point is a position in some pixel space. Which space (source, output,
// screen) is implicit from context; points from different spaces are
// never mixed.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Rect is an axis-aligned box with non-negative extent.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsPoint reports whether p lies inside the rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// ContainsRect reports whether other lies fully inside the rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Intersect returns the overlap of two rectangles. The second result is
// false when they do not overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Scaled grows or shrinks the rectangle about its center.
func (r Rect) Scaled(factor float64) Rect {
	w := r.Width * factor
	h := r.Height * factor
	c := r.Center()
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// CenteredAt moves the rectangle so its center lands on p.
func (r Rect) CenteredAt(p Point) Rect {
	return Rect{X: p.X - r.Width/2, Y: p.Y - r.Height/2, Width: r.Width, Height: r.Height}
}

// ClampTo shifts and, if necessary, shrinks the rectangle so it lies
// fully inside bounds.
func (r Rect) ClampTo(bounds Rect) Rect {
	out := r
	if out.Width > bounds.Width {
		out.Width = bounds.Width
	}
	if out.Height > bounds.Height {
		out.Height = bounds.Height
	}
	if out.X < bounds.X {
		out.X = bounds.X
	}
	if out.Y < bounds.Y {
		out.Y = bounds.Y
	}
	if out.X+out.Width > bounds.X+bounds.Width {
		out.X = bounds.X + bounds.Width - out.Width
	}
	if out.Y+out.Height > bounds.Y+bounds.Height {
		out.Y = bounds.Y + bounds.Height - out.Height
	}
	return out
}

// ApproxEqual reports whether both rectangles match within tolerance on
// every field.
func (r Rect) ApproxEqual(other Rect, tolerance float64) bool {
	return math.Abs(r.X-other.X) <= tolerance &&
		math.Abs(r.Y-other.Y) <= tolerance &&
		math.Abs(r.Width-other.Width) <= tolerance &&
		math.Abs(r.Height-other.Height) <= tolerance
}

// RectFromCorners builds the bounding rectangle of two points, in any
// corner order.
func RectFromCorners(a, b Point) Rect {
	x0 := math.Min(a.X, b.X)
	y0 := math.Min(a.Y, b.Y)
	return Rect{X: x0, Y: y0, Width: math.Abs(a.X - b.X), Height: math.Abs(a.Y - b.Y)}
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpRect interpolates each field of two rectangles independently.
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		X:      Lerp(a.X, b.X, t),
		Y:      Lerp(a.Y, b.Y, t),
		Width:  Lerp(a.Width, b.Width, t),
		Height: Lerp(a.Height, b.Height, t),
	}
}
