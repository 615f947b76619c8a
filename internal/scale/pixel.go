package scale

// Raw ARGB pixel conversions for the interpolating strategies. Weighted
// averaging is only linear in premultiplied space, so straight-alpha sources
// are converted on fetch and converted back on emit; premultiplied sources
// pass through untouched. The nearest strategy copies pixels verbatim and
// needs none of this.

// fetchFunc reads one source pixel as premultiplied ARGB.
type fetchFunc func(x, y int) uint32

// emitFunc converts one computed premultiplied pixel to the output model.
type emitFunc func(p uint32) uint32

// converters returns the fetch/emit pair for the job's color model, chosen
// once per call so the hot loops carry no per-pixel format branches.
func (j *job) converters() (fetchFunc, emitFunc) {
	if j.model == Premul {
		return j.src.Pixel, func(p uint32) uint32 { return p }
	}
	src := j.src
	return func(x, y int) uint32 {
			return premultiply(src.Pixel(x, y))
		}, func(p uint32) uint32 {
			return unpremultiply(p)
		}
}

// premultiply converts straight ARGB to premultiplied ARGB with rounding.
func premultiply(c uint32) uint32 {
	a := c >> 24
	switch a {
	case 0xff:
		return c
	case 0:
		return 0
	}
	r := (c>>16&0xff*a + 127) / 255
	g := (c>>8&0xff*a + 127) / 255
	b := (c&0xff*a + 127) / 255
	return a<<24 | r<<16 | g<<8 | b
}

// unpremultiply converts premultiplied ARGB back to straight ARGB,
// clamping channels that interpolation overshot past alpha.
func unpremultiply(c uint32) uint32 {
	a := c >> 24
	switch a {
	case 0xff:
		return c
	case 0:
		return 0
	}
	r := unmul(c>>16&0xff, a)
	g := unmul(c>>8&0xff, a)
	b := unmul(c&0xff, a)
	return a<<24 | r<<16 | g<<8 | b
}

func unmul(x, a uint32) uint32 {
	v := (x*255 + a/2) / a
	if v > 255 {
		v = 255
	}
	return v
}
