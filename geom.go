package softraster

// Rect is an integer rectangle: origin (X, Y) and spans (W, H).
// A Rect is empty when either span is not positive.
//
// Emptiness is a distinguished state, not just a degenerate size: every
// transform in this package that detects an empty input or produces an empty
// result returns the canonical EmptyRect, never a zero-span rectangle at some
// shifted origin. Callers can therefore compare against EmptyRect directly.
type Rect struct {
	X, Y, W, H int
}

// EmptyRect is the canonical empty rectangle.
var EmptyRect = Rect{}

// IsEmpty reports whether the rectangle contains no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the x coordinate of the last column, r.X + r.W - 1.
// Only meaningful for non-empty rectangles.
func (r Rect) Right() int { return r.X + r.W - 1 }

// Bottom returns the y coordinate of the last row, r.Y + r.H - 1.
// Only meaningful for non-empty rectangles.
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return !r.IsEmpty() &&
		x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// ContainsRect reports whether every pixel of s lies inside r.
// An empty s is contained in anything; nothing but an empty s is contained
// in an empty r.
func (r Rect) ContainsRect(s Rect) bool {
	if s.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return s.X >= r.X && s.Y >= r.Y &&
		s.X+s.W <= r.X+r.W && s.Y+s.H <= r.Y+r.H
}

// Intersect returns the intersection of r and s, or EmptyRect if they do not
// overlap.
func (r Rect) Intersect(s Rect) Rect {
	if r.IsEmpty() || s.IsEmpty() {
		return EmptyRect
	}
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.W, s.X+s.W)
	y2 := min(r.Y+r.H, s.Y+s.H)
	if x1 >= x2 || y1 >= y2 {
		return EmptyRect
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Insets are non-negative border widths around a rectangle, in pixels.
// They carry window border math between device and logical space.
type Insets struct {
	Top, Left, Bottom, Right int
}
