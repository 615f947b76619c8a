package scale

import "math"

// bicubic interpolates each destination pixel from the 4x4 source
// neighborhood around the mapped pixel center using Catmull-Rom weights
// (the cubic BC-spline with B=0, C=0.5). Neighborhood rows and columns
// outside the source rectangle are clamped to the nearest valid pixel.
type bicubic struct{}

// cubCoef is one axis' precomputed interpolation term: four absolute source
// coordinates (edge-replicated) and their Catmull-Rom weights.
type cubCoef struct {
	idx [4]int
	w   [4]float64
}

// cubCoefs builds the per-axis coefficients, mirroring linCoefs.
func cubCoefs(off, n, dSpan, sSpan, sOrigin int) []cubCoef {
	ratio := float64(sSpan) / float64(dSpan)
	cs := make([]cubCoef, n)
	for i := range cs {
		f := (float64(off+i)+0.5)*ratio - 0.5
		i0 := int(math.Floor(f))
		t := f - float64(i0)
		var c cubCoef
		for k := 0; k < 4; k++ {
			c.idx[k] = sOrigin + clamp(i0+k-1, 0, sSpan-1)
			c.w[k] = cubicWeight(t - float64(k-1))
		}
		cs[i] = c
	}
	return cs
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t:
// 1.5|t|^3 - 2.5|t|^2 + 1 for |t| < 1, -0.5|t|^3 + 2.5|t|^2 - 4|t| + 2 for
// |t| < 2, zero beyond.
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

func (bicubic) drawRows(par Parallel, j *job) {
	xc := cubCoefs(j.dr.X-j.dstRect.X, j.dr.W, j.dstRect.W, j.srcRect.W, j.srcRect.X)
	yc := cubCoefs(j.dr.Y-j.dstRect.Y, j.dr.H, j.dstRect.H, j.srcRect.H, j.srcRect.Y)
	fetch, emit := j.converters()

	par.RunRange(0, j.dr.H, func(begin, end int) {
		row := make([]uint32, j.dr.W)
		for r := begin; r < end; r++ {
			y := yc[r]
			for i, x := range xc {
				var acc [4]float64
				for ky := 0; ky < 4; ky++ {
					wy := y.w[ky]
					if wy == 0 {
						continue
					}
					sy := y.idx[ky]
					for kx := 0; kx < 4; kx++ {
						wxy := x.w[kx] * wy
						if wxy == 0 {
							continue
						}
						p := fetch(x.idx[kx], sy)
						acc[0] += float64(p>>24&0xff) * wxy
						acc[1] += float64(p>>16&0xff) * wxy
						acc[2] += float64(p>>8&0xff) * wxy
						acc[3] += float64(p&0xff) * wxy
					}
				}
				// Catmull-Rom overshoots near hard transitions; clamp each
				// channel back into range before packing.
				out := uint32(clampFloat(acc[0], 0, 255)+0.5)<<24 |
					uint32(clampFloat(acc[1], 0, 255)+0.5)<<16 |
					uint32(clampFloat(acc[2], 0, 255)+0.5)<<8 |
					uint32(clampFloat(acc[3], 0, 255)+0.5)
				row[i] = emit(out)
			}
			j.sink.WriteRow(j.dr.X, j.dr.Y+r, row)
		}
	})
}
