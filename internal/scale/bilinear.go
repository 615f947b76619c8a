package scale

import "math"

// bilinear interpolates each destination pixel from the 2x2 source
// neighborhood around the mapped pixel center (d+0.5)*srcSpan/dstSpan-0.5,
// with neighborhoods falling outside the source rectangle clamped to the
// nearest valid pixel (edge replication).
type bilinear struct{}

// linCoef is one axis' precomputed interpolation term: the two absolute
// source coordinates and the fractional weight of the second one.
type linCoef struct {
	i0, i1 int
	t      float64
}

// linCoefs builds the per-axis coefficients for dSpan destination pixels
// starting at destination offset off, sampling sSpan source pixels starting
// at absolute source coordinate sOrigin.
func linCoefs(off, n, dSpan, sSpan, sOrigin int) []linCoef {
	ratio := float64(sSpan) / float64(dSpan)
	cs := make([]linCoef, n)
	for i := range cs {
		f := (float64(off+i)+0.5)*ratio - 0.5
		i0 := int(math.Floor(f))
		t := f - float64(i0)
		i1 := clamp(i0+1, 0, sSpan-1)
		i0 = clamp(i0, 0, sSpan-1)
		cs[i] = linCoef{i0: sOrigin + i0, i1: sOrigin + i1, t: t}
	}
	return cs
}

func (bilinear) drawRows(par Parallel, j *job) {
	xc := linCoefs(j.dr.X-j.dstRect.X, j.dr.W, j.dstRect.W, j.srcRect.W, j.srcRect.X)
	yc := linCoefs(j.dr.Y-j.dstRect.Y, j.dr.H, j.dstRect.H, j.srcRect.H, j.srcRect.Y)
	fetch, emit := j.converters()

	par.RunRange(0, j.dr.H, func(begin, end int) {
		row := make([]uint32, j.dr.W)
		for r := begin; r < end; r++ {
			y := yc[r]
			for i, x := range xc {
				p00 := fetch(x.i0, y.i0)
				p10 := fetch(x.i1, y.i0)
				p01 := fetch(x.i0, y.i1)
				p11 := fetch(x.i1, y.i1)

				var out uint32
				for shift := 0; shift < 32; shift += 8 {
					v := lerp2D(
						float64(p00>>shift&0xff), float64(p10>>shift&0xff),
						float64(p01>>shift&0xff), float64(p11>>shift&0xff),
						x.t, y.t)
					out |= uint32(v+0.5) << shift
				}
				row[i] = emit(out)
			}
			j.sink.WriteRow(j.dr.X, j.dr.Y+r, row)
		}
	})
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
