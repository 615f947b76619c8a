// Package scale implements scaled-rectangle image resampling for softraster.
//
// A call maps a source pixel rectangle onto a destination rectangle under a
// clip, using one of three strategies: nearest pixel, 2x2 bilinear, or 4x4
// Catmull-Rom bicubic. Destination rows are partitioned into contiguous row
// ranges and fanned out through a caller-supplied parallel runner; each task
// delivers its rows top to bottom, one row at a time, to the row sink.
package scale

import "errors"

// Sentinel errors for caller contract violations. They are returned before
// any row is produced; a failed call has no partial side effects.
var (
	// ErrSourceBounds is returned when srcRect is not contained in the
	// source's own rectangle.
	ErrSourceBounds = errors.New("scale: source rectangle outside source bounds")

	// ErrMissingCollaborator is returned when a required collaborator is nil.
	ErrMissingCollaborator = errors.New("scale: nil source, sink or parallel runner")
)

// Rect is an integer rectangle with origin and spans.
type Rect struct {
	X, Y, W, H int
}

// IsEmpty reports whether the rectangle contains no pixels.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// containsRect reports whether every pixel of s lies inside r.
func (r Rect) containsRect(s Rect) bool {
	if s.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return s.X >= r.X && s.Y >= r.Y &&
		s.X+s.W <= r.X+r.W && s.Y+s.H <= r.Y+r.H
}

// intersect returns the intersection of r and s, or the zero Rect.
func (r Rect) intersect(s Rect) Rect {
	if r.IsEmpty() || s.IsEmpty() {
		return Rect{}
	}
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.W, s.X+s.W)
	y2 := min(r.Y+r.H, s.Y+s.H)
	if x1 >= x2 || y1 >= y2 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Mode selects the resampling strategy.
type Mode uint8

const (
	// Nearest selects the closest source pixel (no interpolation).
	Nearest Mode = iota
	// Bilinear interpolates linearly between a 2x2 source neighborhood.
	Bilinear
	// Bicubic interpolates a 4x4 neighborhood with Catmull-Rom weights.
	Bicubic
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	case Bicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Model declares the alpha representation pixels use on both sides of a
// scale: rows are delivered in the same representation the source declares.
type Model uint8

const (
	// Straight is non-premultiplied ARGB.
	Straight Model = iota
	// Premul is premultiplied ARGB.
	Premul
)

// Source is a readable rectangle of ARGB pixels. Pixel may be called
// concurrently and is only ever called with coordinates inside Bounds.
type Source interface {
	Bounds() Rect
	Pixel(x, y int) uint32
}

// RowSink receives one fully computed destination row at a time. The row
// covers (x, y, len(row), 1) and the slice is only valid during the call.
// WriteRow may be called concurrently for different rows.
type RowSink interface {
	WriteRow(x, y int, row []uint32)
}

// Parallel executes fn over [begin, end) partitioned into contiguous
// sub-ranges and blocks until all of them completed.
type Parallel interface {
	RunRange(begin, end int, fn func(begin, end int))
}

// strategy computes the destination rows of one prepared job.
type strategy interface {
	drawRows(par Parallel, j *job)
}

// strategies is the singleton dispatch table, indexed by Mode.
var strategies = [...]strategy{
	Nearest:  nearest{},
	Bilinear: bilinear{},
	Bicubic:  bicubic{},
}

// job carries the validated per-call state shared by all row tasks.
// Everything in it is read-only once handed to the strategy.
type job struct {
	model            Model
	src              Source
	srcRect, dstRect Rect
	// dr is the clipped destination rectangle actually produced.
	dr   Rect
	sink RowSink
}

// Draw resamples srcRect of src onto dstRect, clipped by dstClip, delivering
// rows to sink. It performs no resampling math itself: it validates the
// arguments and forwards to the strategy selected by mode.
//
// Degenerate inputs (empty source or destination rectangle, clip not
// intersecting the destination) are no-ops, not errors.
func Draw(par Parallel, mode Mode, model Model, src Source, srcRect, dstRect, dstClip Rect, sink RowSink) error {
	if par == nil || src == nil || sink == nil {
		return ErrMissingCollaborator
	}
	if int(mode) >= len(strategies) {
		panic("scale: unknown scaling mode")
	}
	if srcRect.IsEmpty() || dstRect.IsEmpty() {
		return nil
	}
	if !src.Bounds().containsRect(srcRect) {
		return ErrSourceBounds
	}
	dr := dstRect.intersect(dstClip)
	if dr.IsEmpty() {
		return nil
	}
	strategies[mode].drawRows(par, &job{
		model:   model,
		src:     src,
		srcRect: srcRect,
		dstRect: dstRect,
		dr:      dr,
		sink:    sink,
	})
	return nil
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clampFloat clamps a float64 value to [minVal, maxVal].
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
