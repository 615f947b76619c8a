package softraster

import (
	"errors"

	"github.com/gogpu/softraster/internal/scale"
)

// Sentinel errors for scaled-rect drawing. Both are reported before any row
// is produced; a failed call has no partial side effects.
var (
	// ErrSourceBounds is returned when the source rectangle is not fully
	// contained in the pixel source's own rectangle.
	ErrSourceBounds = errors.New("softraster: source rectangle outside source bounds")

	// ErrMissingCollaborator is returned when a required collaborator
	// (parallelizer, source or sink) is nil.
	ErrMissingCollaborator = errors.New("softraster: nil parallelizer, source or sink")
)

// DrawScaledRect resamples srcRect of src onto dstRect, clipped by dstClip,
// delivering one destination row at a time to sink in the representation
// model declares. The dispatcher performs no resampling math itself: it
// validates the arguments and forwards unchanged to the strategy mode
// selects. An unrecognized mode is a programmer error and panics.
//
// Destination rows are partitioned into contiguous ranges and fanned out
// through par; see the Parallelizer and RowSink contracts for ordering.
// Resampling is pure and deterministic: the same inputs produce the same
// rows regardless of how the work was partitioned.
//
// Degenerate inputs (empty srcRect, dstRect, or clip intersection) are
// defined as no-ops, not errors. Source neighborhoods reaching outside
// srcPixels' rectangle are clamped to the nearest valid pixel, never wrapped
// or zero-filled, so extreme ratios stay in bounds.
func DrawScaledRect(par Parallelizer, mode ScalingMode, model ColorModel,
	src PixelSource, srcRect, dstRect, dstClip Rect, sink RowSink) error {
	if par == nil || src == nil || sink == nil {
		return ErrMissingCollaborator
	}

	var m scale.Mode
	switch mode {
	case ScaleNearest:
		m = scale.Nearest
	case ScaleBilinear:
		m = scale.Bilinear
	case ScaleBicubic:
		m = scale.Bicubic
	default:
		panic("softraster: unknown scaling mode")
	}
	cm := scale.Straight
	if model == ColorPremul {
		cm = scale.Premul
	}

	err := scale.Draw(parAdapter{par}, m, cm, sourceAdapter{src},
		scaleRect(srcRect), scaleRect(dstRect), scaleRect(dstClip), sinkAdapter{sink})
	if errors.Is(err, scale.ErrSourceBounds) {
		return ErrSourceBounds
	}
	return err
}

// scaleRect converts a public Rect to the internal representation,
// normalizing empties.
func scaleRect(r Rect) scale.Rect {
	if r.IsEmpty() {
		return scale.Rect{}
	}
	return scale.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

type sourceAdapter struct {
	s PixelSource
}

func (a sourceAdapter) Bounds() scale.Rect { return scaleRect(a.s.Bounds()) }

func (a sourceAdapter) Pixel(x, y int) uint32 { return a.s.Pixel(x, y) }

type sinkAdapter struct {
	s RowSink
}

func (a sinkAdapter) WriteRow(x, y int, row []uint32) { a.s.WriteRow(x, y, row) }

type parAdapter struct {
	p Parallelizer
}

func (a parAdapter) RunRange(begin, end int, fn func(begin, end int)) {
	a.p.RunRange(begin, end, fn)
}
