package scale

// nearest is the nearest-pixel strategy. For every destination pixel it
// copies the source pixel containing the destination pixel center, mapped as
// floor((d+0.5)*srcSpan/dstSpan) in exact integer arithmetic. No color
// conversion happens: pixels are copied verbatim in either model.
type nearest struct{}

func (nearest) drawRows(par Parallel, j *job) {
	sw, sh := j.srcRect.W, j.srcRect.H
	dw, dh := j.dstRect.W, j.dstRect.H

	// Column map is identical for every row; compute it once.
	cols := make([]int, j.dr.W)
	for i := range cols {
		dx := j.dr.X - j.dstRect.X + i
		cols[i] = j.srcRect.X + clamp(int(int64(2*dx+1)*int64(sw)/int64(2*dw)), 0, sw-1)
	}

	par.RunRange(0, j.dr.H, func(begin, end int) {
		row := make([]uint32, j.dr.W)
		for r := begin; r < end; r++ {
			dy := j.dr.Y - j.dstRect.Y + r
			sy := j.srcRect.Y + clamp(int(int64(2*dy+1)*int64(sh)/int64(2*dh)), 0, sh-1)
			for i, sx := range cols {
				row[i] = j.src.Pixel(sx, sy)
			}
			j.sink.WriteRow(j.dr.X, j.dr.Y+r, row)
		}
	})
}
