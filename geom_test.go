package softraster

import "testing"

// TestRectIsEmpty tests emptiness detection.
func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{name: "canonical empty", r: EmptyRect, want: true},
		{name: "zero width", r: Rect{X: 3, Y: 4, W: 0, H: 5}, want: true},
		{name: "negative height", r: Rect{X: 3, Y: 4, W: 5, H: -1}, want: true},
		{name: "single pixel", r: Rect{X: -7, Y: -7, W: 1, H: 1}, want: false},
		{name: "normal", r: Rect{X: 0, Y: 0, W: 10, H: 20}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

// TestRectIntersect tests intersection, including the canonical-empty rule.
func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "overlap",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 5, Y: 5, W: 10, H: 10},
			want: Rect{X: 5, Y: 5, W: 5, H: 5},
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 2, Y: 3, W: 4, H: 5},
			want: Rect{X: 2, Y: 3, W: 4, H: 5},
		},
		{
			name: "disjoint yields canonical empty",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 20, Y: 20, W: 5, H: 5},
			want: EmptyRect,
		},
		{
			name: "touching edges yields canonical empty",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 10, Y: 0, W: 5, H: 10},
			want: EmptyRect,
		},
		{
			name: "empty input yields canonical empty",
			a:    Rect{X: 3, Y: 3, W: 0, H: 10},
			b:    Rect{X: 0, Y: 0, W: 100, H: 100},
			want: EmptyRect,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect (swapped) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestRectContains tests pixel containment at edges and corners.
func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	inside := [][2]int{{2, 3}, {5, 3}, {2, 7}, {5, 7}, {3, 5}}
	outside := [][2]int{{1, 3}, {6, 3}, {2, 2}, {2, 8}, {0, 0}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, want true", p[0], p[1])
		}
	}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, want false", p[0], p[1])
		}
	}
	if EmptyRect.Contains(0, 0) {
		t.Error("EmptyRect contains a pixel")
	}
}

// TestRectContainsRect tests rectangle containment with empty operands.
func TestRectContainsRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !r.ContainsRect(Rect{X: 0, Y: 0, W: 10, H: 10}) {
		t.Error("rect does not contain itself")
	}
	if !r.ContainsRect(EmptyRect) {
		t.Error("rect does not contain the empty rect")
	}
	if r.ContainsRect(Rect{X: 5, Y: 5, W: 10, H: 2}) {
		t.Error("rect contains an overhanging rect")
	}
	if EmptyRect.ContainsRect(Rect{X: 0, Y: 0, W: 1, H: 1}) {
		t.Error("empty rect contains a pixel rect")
	}
}
