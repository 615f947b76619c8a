package softraster

import "image"

// Adapters between the stdlib image types and the resampling boundary
// interfaces. Note the model pairing: image.NRGBA stores straight alpha and
// pairs with ColorStraight; image.RGBA stores alpha-premultiplied values and
// pairs with ColorPremul.

// NRGBASource exposes an *image.NRGBA as a PixelSource producing straight
// ARGB. Pass ColorStraight alongside it.
type NRGBASource struct {
	Img *image.NRGBA
}

// Bounds implements PixelSource.
func (s NRGBASource) Bounds() Rect { return fromImageRect(s.Img.Rect) }

// Pixel implements PixelSource.
func (s NRGBASource) Pixel(x, y int) uint32 {
	i := s.Img.PixOffset(x, y)
	p := s.Img.Pix[i : i+4 : i+4]
	return uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}

// RGBASource exposes an *image.RGBA as a PixelSource producing premultiplied
// ARGB. Pass ColorPremul alongside it.
type RGBASource struct {
	Img *image.RGBA
}

// Bounds implements PixelSource.
func (s RGBASource) Bounds() Rect { return fromImageRect(s.Img.Rect) }

// Pixel implements PixelSource.
func (s RGBASource) Pixel(x, y int) uint32 {
	i := s.Img.PixOffset(x, y)
	p := s.Img.Pix[i : i+4 : i+4]
	return uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}

// NRGBASink writes straight-ARGB rows into an *image.NRGBA. Rows outside
// the image bounds are cropped. Safe for concurrent WriteRow calls: distinct
// rows touch distinct pixels.
type NRGBASink struct {
	Img *image.NRGBA
}

// WriteRow implements RowSink.
func (s NRGBASink) WriteRow(x, y int, row []uint32) {
	writeRow(s.Img.Pix, s.Img.Stride, s.Img.Rect, x, y, row)
}

// RGBASink writes premultiplied-ARGB rows into an *image.RGBA. Rows outside
// the image bounds are cropped. Safe for concurrent WriteRow calls.
type RGBASink struct {
	Img *image.RGBA
}

// WriteRow implements RowSink.
func (s RGBASink) WriteRow(x, y int, row []uint32) {
	writeRow(s.Img.Pix, s.Img.Stride, s.Img.Rect, x, y, row)
}

func writeRow(pix []uint8, stride int, bounds image.Rectangle, x, y int, row []uint32) {
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	for i, p := range row {
		px := x + i
		if px < bounds.Min.X {
			continue
		}
		if px >= bounds.Max.X {
			break
		}
		o := (y-bounds.Min.Y)*stride + (px-bounds.Min.X)*4
		pix[o] = uint8(p >> 16)
		pix[o+1] = uint8(p >> 8)
		pix[o+2] = uint8(p)
		pix[o+3] = uint8(p >> 24)
	}
}

func fromImageRect(r image.Rectangle) Rect {
	if r.Empty() {
		return EmptyRect
	}
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}
