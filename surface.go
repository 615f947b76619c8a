package softraster

// Boundary interfaces. This core drives no surface directly: the rasterizer
// emits pixel-set calls into a Drawer, and the resampler emits computed rows
// into a RowSink. Both are provided by the surrounding graphics layer.

// Drawer is the pixel back end the polygon rasterizer drives. The drawer
// owns the current paint color and the actual pixel storage; the rasterizer
// only decides which pixels to light.
//
// DrawLine must light exactly the pixels the rasterizer's LineTracer
// produces for the same segment. DrawPointInClip and DrawHorizontalLineInClip
// receive coordinates already clipped; DrawLine and FillRect clip themselves
// against the given rectangle.
type Drawer interface {
	DrawLine(clip Rect, x0, y0, x1, y1 int)
	DrawPointInClip(x, y int)
	DrawHorizontalLineInClip(x0, x1, y int)
	// FillRect fills a rectangle. axesSwapped indicates the logical axes are
	// rotated 90/270 degrees relative to the device axes, letting the drawer
	// pick its device-aligned run primitive accordingly.
	FillRect(clip Rect, x, y, w, h int, axesSwapped bool)
}

// PixelSource exposes a rectangle of readable ARGB pixels for resampling.
// The representation of the returned values (straight or premultiplied) is
// whatever the ColorModel passed alongside it declares.
//
// Pixel is only ever called with coordinates inside Bounds, and may be
// called concurrently.
type PixelSource interface {
	Bounds() Rect
	Pixel(x, y int) uint32
}

// RowSink receives one fully computed destination row at a time, in the same
// representation the call's ColorModel declares. The row covers the target
// rectangle (x, y, len(row), 1); the slice is reused and only valid during
// the call. Rows of one task arrive top to bottom, but rows of different
// tasks interleave in no particular order, so WriteRow must handle each row
// independently and be safe for concurrent calls.
type RowSink interface {
	WriteRow(x, y int, row []uint32)
}

// Parallelizer executes a splittable workload over [begin, end) and blocks
// until all of it completed. Implementations must be reentrant: a workload
// item may itself call RunRange, and the calling goroutine must be able to
// participate as a worker so bounded pools cannot deadlock. The core assumes
// nothing about which goroutine runs a given sub-range.
type Parallelizer interface {
	RunRange(begin, end int, fn func(begin, end int))
}

// ScalingMode selects the resampling strategy for DrawScaledRect.
type ScalingMode uint8

const (
	// ScaleNearest selects the closest source pixel (no interpolation).
	// Fast but blocky.
	ScaleNearest ScalingMode = iota
	// ScaleBilinear interpolates a 2x2 neighborhood. Good balance between
	// quality and speed.
	ScaleBilinear
	// ScaleBicubic interpolates a 4x4 neighborhood with Catmull-Rom
	// weights. Highest quality, slowest.
	ScaleBicubic
)

// String returns a string representation of the scaling mode.
func (m ScalingMode) String() string {
	switch m {
	case ScaleNearest:
		return "Nearest"
	case ScaleBilinear:
		return "Bilinear"
	case ScaleBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// ColorModel declares the alpha representation of the pixels a PixelSource
// produces and a RowSink receives.
type ColorModel uint8

const (
	// ColorStraight is non-premultiplied ARGB (the canonical caller form).
	ColorStraight ColorModel = iota
	// ColorPremul is premultiplied ARGB.
	ColorPremul
)

// String returns a string representation of the color model.
func (m ColorModel) String() string {
	switch m {
	case ColorStraight:
		return "Straight"
	case ColorPremul:
		return "Premul"
	default:
		return "Unknown"
	}
}
