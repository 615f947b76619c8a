package softraster

// Plotter consumes one clipped line pixel.
type Plotter func(x, y int)

// LineTracer is the generic line drawer the polygon rasterizer walks edges
// with. Trace invokes plot exactly once for every pixel of the segment that
// lies inside clip, in order from (x0, y0) toward (x1, y1).
//
// The tracer defines what "the polygon outline" means: the rasterizer
// guarantees outlines identical to independent line drawing only when the
// same tracer produces both. Callers embedding this core in a graphics layer
// with its own line algorithm should inject that algorithm here.
type LineTracer interface {
	Trace(clip Rect, x0, y0, x1, y1 int, plot Plotter)
}

// BresenhamTracer is the default LineTracer: the classic integer Bresenham
// walk over all octants. Pixels outside the clip are skipped, not produced;
// the error accumulator still advances across clipped-out spans, so the
// lit pixels are exactly the in-clip subset of the unclipped line.
type BresenhamTracer struct{}

// Trace implements LineTracer.
func (BresenhamTracer) Trace(clip Rect, x0, y0, x1, y1 int, plot Plotter) {
	if clip.IsEmpty() {
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if clip.Contains(x0, y0) {
			plot(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
