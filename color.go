package softraster

// ARGB is a 32-bit color with straight (non-premultiplied) alpha, packed
// 0xAARRGGBB. This is the canonical representation callers pass in.
type ARGB uint32

// PremulARGB is a 32-bit color with premultiplied alpha, packed 0xAARRGGBB.
// Each color channel has been scaled by alpha/255 and is therefore never
// larger than the alpha channel. Blending uses this representation.
type PremulARGB uint32

// NewARGB packs alpha and color channels into an ARGB value.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// IsOpaque reports whether the color is fully opaque.
// Opaque draws take the rasterizer's fast edge-only path.
func (c ARGB) IsOpaque() bool { return c>>24 == 0xff }

// Alpha returns the alpha channel.
func (c PremulARGB) Alpha() uint8 { return uint8(c >> 24) }

// mulDiv255 computes round(x*a/255) for x, a in [0, 255].
// Rounding keeps the straight/premultiplied round-trip stable: once a value
// has survived one Premultiply/Unpremultiply cycle, further cycles are exact.
func mulDiv255(x, a uint32) uint32 {
	return (x*a + 127) / 255
}

// Premultiply converts a straight-alpha color to premultiplied alpha.
// The conversion is lossy in general: low-alpha colors collapse distinct
// channel values onto the same premultiplied value.
func (c ARGB) Premultiply() PremulARGB {
	a := uint32(c) >> 24
	switch a {
	case 0xff:
		return PremulARGB(c)
	case 0:
		return 0
	}
	r := mulDiv255(uint32(c)>>16&0xff, a)
	g := mulDiv255(uint32(c)>>8&0xff, a)
	b := mulDiv255(uint32(c)&0xff, a)
	return PremulARGB(a<<24 | r<<16 | g<<8 | b)
}

// Unpremultiply converts a premultiplied color back to straight alpha.
// A fully transparent input maps to zero. Channels larger than alpha (an
// invalid premultiplied value) clamp to 255 rather than overflow.
func (c PremulARGB) Unpremultiply() ARGB {
	a := uint32(c) >> 24
	switch a {
	case 0xff:
		return ARGB(c)
	case 0:
		return 0
	}
	r := unmul255(uint32(c)>>16&0xff, a)
	g := unmul255(uint32(c)>>8&0xff, a)
	b := unmul255(uint32(c)&0xff, a)
	return ARGB(a<<24 | r<<16 | g<<8 | b)
}

// unmul255 computes round(x*255/a) clamped to 255, for a in [1, 254].
func unmul255(x, a uint32) uint32 {
	v := (x*255 + a/2) / a
	if v > 255 {
		v = 255
	}
	return v
}

// SourceOver blends src over dst in premultiplied space:
// out = src + dst*(255-srcAlpha)/255, per channel, with rounding.
func SourceOver(dst, src PremulARGB) PremulARGB {
	sa := uint32(src) >> 24
	switch sa {
	case 0xff:
		return src
	case 0:
		return dst
	}
	inv := 255 - sa
	a := uint32(src)>>24 + mulDiv255(uint32(dst)>>24, inv)
	r := uint32(src)>>16&0xff + mulDiv255(uint32(dst)>>16&0xff, inv)
	g := uint32(src)>>8&0xff + mulDiv255(uint32(dst)>>8&0xff, inv)
	b := uint32(src)&0xff + mulDiv255(uint32(dst)&0xff, inv)
	return PremulARGB(a<<24 | r<<16 | g<<8 | b)
}

// BlendOver blends a straight-alpha source color over a straight-alpha
// destination, converting through premultiplied space.
func BlendOver(dst, src ARGB) ARGB {
	return SourceOver(dst.Premultiply(), src.Premultiply()).Unpremultiply()
}
