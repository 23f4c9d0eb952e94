package image

import "fmt"

// Rect is an integer rectangle covering [X1, X2) x [Y1, Y2).
type Rect struct {
	X1, Y1, X2, Y2 int
}

// R is shorthand for Rect{x1, y1, x2, y2}.
func R(x1, y1, x2, y2 int) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the number of columns, never negative.
func (r Rect) Width() int {
	return max(r.X2-r.X1, 0)
}

// Height returns the number of rows, never negative.
func (r Rect) Height() int {
	return max(r.Y2-r.Y1, 0)
}

// Area returns Width * Height.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Empty reports whether the rectangle contains no pixel.
func (r Rect) Empty() bool {
	return r.X1 >= r.X2 || r.Y1 >= r.Y2
}

// Contains reports whether pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2
}

// ContainsRect reports whether s is a subset of r. An empty s is contained
// when its corners lie within r's closed extent.
func (r Rect) ContainsRect(s Rect) bool {
	return r.X1 <= s.X1 && s.X1 <= s.X2 && s.X2 <= r.X2 &&
		r.Y1 <= s.Y1 && s.Y1 <= s.Y2 && s.Y2 <= r.Y2
}

// Intersect returns the largest rectangle contained in both r and s. The
// result may be empty.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		X1: max(r.X1, s.X1),
		Y1: max(r.Y1, s.Y1),
		X2: min(r.X2, s.X2),
		Y2: min(r.Y2, s.Y2),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.X1, r.X2, r.Y1, r.Y2)
}
