package softraster

import (
	"errors"
	"math/bits"
)

// ErrInvalidScale is returned when a scale factor smaller than 1 is given.
var ErrInvalidScale = errors.New("softraster: scale factor must be >= 1")

// Scaler converts between device pixels ("OS") and logical pixels ("BD").
// One logical pixel covers scale x scale device pixels, scale >= 1 and equal
// along both axes. Device pixel p belongs to logical pixel floorDiv(p, scale).
//
// A Scaler is owned by a binding configuration and shared by everything
// drawing under that configuration. Changing the scale is a rare,
// coarse-grained event: callers must not call SetScale while rasterization
// or resampling using this Scaler is in flight. All conversion methods are
// read-only and safe to call concurrently between such changes.
type Scaler struct {
	scale int
	// shift is log2(scale) when scale is a power of two, else -1.
	// Arithmetic right shift floor-divides correctly for negative positions.
	shift int
}

// NewScaler creates a Scaler with the given scale factor.
// Returns ErrInvalidScale if scale < 1.
func NewScaler(scale int) (*Scaler, error) {
	s := &Scaler{}
	if err := s.SetScale(scale); err != nil {
		return nil, err
	}
	return s, nil
}

// SetScale changes the scale factor. Returns ErrInvalidScale if scale < 1.
// Must not be called while drawing operations using this Scaler are running.
func (s *Scaler) SetScale(scale int) error {
	if scale < 1 {
		return ErrInvalidScale
	}
	s.scale = scale
	s.shift = -1
	if scale&(scale-1) == 0 {
		s.shift = bits.TrailingZeros(uint(scale))
	}
	return nil
}

// Scale returns the current scale factor.
func (s *Scaler) Scale() int { return s.scale }

// floorDiv divides p by the scale factor, rounding toward negative infinity.
func (s *Scaler) floorDiv(p int) int {
	if s.shift >= 0 {
		return p >> uint(s.shift)
	}
	q := p / s.scale
	if p%s.scale != 0 && (p < 0) != (s.scale < 0) {
		q--
	}
	return q
}

// PosDeviceToLogical returns the logical pixel containing device pixel p.
func (s *Scaler) PosDeviceToLogical(p int) int {
	if s.scale == 1 {
		return p
	}
	return s.floorDiv(p)
}

// PosDeviceToLogicalFloor returns the logical pixel whose device-space cell
// lies entirely at or before p: the greatest l with l*scale + scale - 1 <= p.
func (s *Scaler) PosDeviceToLogicalFloor(p int) int {
	if s.scale == 1 {
		return p
	}
	return s.floorDiv(p - (s.scale - 1))
}

// PosDeviceToLogicalCeil returns the logical pixel whose device-space cell
// lies entirely at or after p: the smallest l with l*scale >= p.
func (s *Scaler) PosDeviceToLogicalCeil(p int) int {
	if s.scale == 1 {
		return p
	}
	return s.floorDiv(p + (s.scale - 1))
}

// PosLogicalToDeviceFloor returns the first device pixel of logical pixel p.
func (s *Scaler) PosLogicalToDeviceFloor(p int) int {
	return p * s.scale
}

// PosLogicalToDeviceCeil returns the last device pixel of logical pixel p.
func (s *Scaler) PosLogicalToDeviceCeil(p int) int {
	return p*s.scale + (s.scale - 1)
}

// RectDeviceToLogicalContained returns the largest logical rectangle whose
// device-space footprint is a subset of r: ceiling on the near edges, floor
// on the far edges. A non-empty input may legitimately produce EmptyRect when
// no logical cell fits entirely inside it.
func (s *Scaler) RectDeviceToLogicalContained(r Rect) Rect {
	if r.IsEmpty() {
		return EmptyRect
	}
	if s.scale == 1 {
		return r
	}
	x1 := s.PosDeviceToLogicalCeil(r.X)
	y1 := s.PosDeviceToLogicalCeil(r.Y)
	x2 := s.PosDeviceToLogicalFloor(r.Right())
	y2 := s.PosDeviceToLogicalFloor(r.Bottom())
	if x2 < x1 || y2 < y1 {
		return EmptyRect
	}
	return Rect{X: x1, Y: y1, W: x2 - x1 + 1, H: y2 - y1 + 1}
}

// RectDeviceToLogicalContaining returns the smallest logical rectangle whose
// device-space footprint is a superset of r: plain floor division on both the
// near and far edges, spans computed as far - near + 1.
func (s *Scaler) RectDeviceToLogicalContaining(r Rect) Rect {
	if r.IsEmpty() {
		return EmptyRect
	}
	if s.scale == 1 {
		return r
	}
	x1 := s.PosDeviceToLogical(r.X)
	y1 := s.PosDeviceToLogical(r.Y)
	x2 := s.PosDeviceToLogical(r.Right())
	y2 := s.PosDeviceToLogical(r.Bottom())
	return Rect{X: x1, Y: y1, W: x2 - x1 + 1, H: y2 - y1 + 1}
}

// RectLogicalToDevice returns the exact device-space footprint of a logical
// rectangle. Logical to device is always exact: device spans are integer
// multiples of the scale, so there is no rounding ambiguity.
func (s *Scaler) RectLogicalToDevice(r Rect) Rect {
	if r.IsEmpty() {
		return EmptyRect
	}
	if s.scale == 1 {
		return r
	}
	return Rect{
		X: r.X * s.scale,
		Y: r.Y * s.scale,
		W: r.W * s.scale,
		H: r.H * s.scale,
	}
}

// InsetsDeviceToLogicalContaining converts window border insets to logical
// pixels, rounding every side up. Ceiling, never floor: a scaled client area
// computed from these insets must never leak past its window.
func (s *Scaler) InsetsDeviceToLogicalContaining(i Insets) Insets {
	if s.scale == 1 {
		return i
	}
	return Insets{
		Top:    s.ceilDiv(i.Top),
		Left:   s.ceilDiv(i.Left),
		Bottom: s.ceilDiv(i.Bottom),
		Right:  s.ceilDiv(i.Right),
	}
}

// ceilDiv divides a non-negative span by the scale factor, rounding up.
func (s *Scaler) ceilDiv(span int) int {
	return s.floorDiv(span + (s.scale - 1))
}
