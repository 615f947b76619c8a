package raster

// Rect is an integer rectangle with origin and spans.
type Rect struct {
	X, Y, W, H int
}

// IsEmpty reports whether the rectangle contains no pixels.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) contains(x, y int) bool {
	return !r.IsEmpty() &&
		x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// intersect returns the intersection of r and s, or the zero Rect.
func (r Rect) intersect(s Rect) Rect {
	if r.IsEmpty() || s.IsEmpty() {
		return Rect{}
	}
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.W, s.X+s.W)
	y2 := min(r.Y+r.H, s.Y+s.H)
	if x1 >= x2 || y1 >= y2 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Plot consumes one clipped line pixel.
type Plot func(x, y int)

// Tracer is the generic line drawer the rasterizer walks polygon edges with.
// Trace must invoke plot exactly once for every pixel of the clipped segment.
type Tracer interface {
	Trace(clip Rect, x0, y0, x1, y1 int, plot Plot)
}

// Output is the pixel back end a rasterization call drives. It never writes
// pixels itself; the surrounding graphics layer owns the actual surface.
//
// DrawLine must light exactly the pixels the call's Tracer produces for the
// same segment, or outlines drawn through the fast path will differ from
// filled outlines.
type Output interface {
	DrawLine(clip Rect, x0, y0, x1, y1 int)
	DrawPointInClip(x, y int)
	DrawHorizontalLineInClip(x0, x1, y int)
	FillRect(clip Rect, x, y, w, h int, axesSwapped bool)
}

// Filler rasterizes polygons given by parallel coordinate arrays.
// The zero value is not usable; construct with New.
//
// A Filler is safe for concurrent use: all per-call state lives in pooled
// flag buffers, one per calling goroutine. A single fill call never fans out
// internally — the downward flag propagation requires strict top-to-bottom,
// left-to-right order.
type Filler struct {
	pool *BufferPool
}

// New creates a Filler drawing flag buffers from the given pool.
func New(pool *BufferPool) *Filler {
	return &Filler{pool: pool}
}

// Draw rasterizes the polygon outline only. The opaque flag selects the fast
// path: opaque edges go straight to out.DrawLine with no flag buffer, while
// translucent edges take the flagged path so that pixels shared by several
// edges are emitted exactly once and never blended twice.
func (f *Filler) Draw(clip Rect, xs, ys []int, n int, opaque bool, tr Tracer, out Output) {
	if done := handleDegenerate(clip, xs, ys, n, tr, out); done {
		return
	}
	if opaque {
		px, py := xs[n-1], ys[n-1]
		for i := 0; i < n; i++ {
			out.DrawLine(clip, px, py, xs[i], ys[i])
			px, py = xs[i], ys[i]
		}
		return
	}
	f.scanConvert(clip, xs, ys, n, false, false, tr, out)
}

// Fill rasterizes the polygon outline and its even-odd interior.
// axesSwapped indicates the logical axes are rotated 90/270 degrees relative
// to the device axes; it selects the primitive used for resolved interior
// runs and nothing else.
func (f *Filler) Fill(clip Rect, xs, ys []int, n int, axesSwapped bool, tr Tracer, out Output) {
	if done := handleDegenerate(clip, xs, ys, n, tr, out); done {
		return
	}
	f.scanConvert(clip, xs, ys, n, true, axesSwapped, tr, out)
}

// handleDegenerate deals with empty clips and point counts below 3, for
// which draw and fill are defined identically. Returns true when the call is
// fully handled.
func handleDegenerate(clip Rect, xs, ys []int, n int, tr Tracer, out Output) bool {
	if clip.IsEmpty() || n <= 0 {
		return true
	}
	switch n {
	case 1:
		if clip.contains(xs[0], ys[0]) {
			out.DrawPointInClip(xs[0], ys[0])
		}
		return true
	case 2:
		out.DrawLine(clip, xs[0], ys[0], xs[1], ys[1])
		return true
	}
	return false
}

// scanConvert is the general path: flag every edge pixel, then, when filling,
// resolve the rest of the clipped bounding box.
func (f *Filler) scanConvert(clip Rect, xs, ys []int, n int, fill, axesSwapped bool, tr Tracer, out Output) {
	cb := boundingBox(xs, ys, n).intersect(clip)
	if cb.IsEmpty() {
		return
	}

	buf := f.pool.Get(cb.W, cb.H)
	defer f.pool.Put(buf)
	flags := buf.Flags

	// Walk every edge through the tracer, lighting each pixel at most once.
	// A pixel two edges share, or that a self-intersection crosses twice, is
	// drawn on first touch and skipped afterwards.
	plot := func(x, y int) {
		idx := (y-cb.Y)*cb.W + (x - cb.X)
		if flags[idx] == Pending {
			flags[idx] = Edge
			out.DrawPointInClip(x, y)
		}
	}
	px, py := xs[n-1], ys[n-1]
	for i := 0; i < n; i++ {
		tr.Trace(cb, px, py, xs[i], ys[i], plot)
		px, py = xs[i], ys[i]
	}

	if !fill {
		return
	}
	f.fillInterior(clip, cb, flags, xs, ys, n, axesSwapped, out)
}

// fillInterior classifies every non-edge pixel of cb and emits interior runs.
func (f *Filler) fillInterior(clip, cb Rect, flags []Flag, xs, ys []int, n int, axesSwapped bool, out Output) {
	firstLit, firstPending := -1, -1
	for i, fl := range flags {
		if fl == Pending {
			if firstPending < 0 {
				firstPending = i
			}
		} else if firstLit < 0 {
			firstLit = i
		}
		if firstLit >= 0 && firstPending >= 0 {
			break
		}
	}

	if firstLit < 0 {
		// No edge pixel landed in the clipped bounding box: the box is
		// entirely inside or entirely outside the polygon. One exact test at
		// the geometric midpoint decides which.
		if Contains(xs, ys, n, cb.X+cb.W/2, cb.Y+cb.H/2) {
			out.FillRect(clip, cb.X, cb.Y, cb.W, cb.H, axesSwapped)
		}
		return
	}
	if firstPending < 0 {
		// The edges alone covered the whole clipped bounding box.
		return
	}

	for row := firstPending / cb.W; row < cb.H; row++ {
		f.scanRow(clip, cb, flags, xs, ys, n, row, axesSwapped, out)
	}
}

// scanRow resolves one row of the flag buffer left to right. Maximal runs of
// Pending pixels are classified as a unit: by the first resolved pixel found
// directly above any pixel of the run, or, failing that, by one containment
// test at the run's start. Resolved interior runs are emitted as a single
// horizontal primitive.
func (f *Filler) scanRow(clip, cb Rect, flags []Flag, xs, ys []int, n, row int, axesSwapped bool, out Output) {
	base := row * cb.W
	segStart := -1
	segFlag := Pending

	for col := 0; col <= cb.W; col++ {
		fl := Edge // virtual terminator past the row's end
		if col < cb.W {
			fl = flags[base+col]
		}
		switch fl {
		case Pending:
			if segStart < 0 {
				segStart, segFlag = col, Pending
			}
			if segFlag == Pending && row > 0 {
				// Membership can only change across an edge, so a pixel
				// below an already classified pixel shares its class. This
				// inheritance is what keeps typical fills out of the
				// per-pixel containment test.
				if above := flags[base-cb.W+col]; above == Inside || above == Outside {
					segFlag = above
				}
			}
		case Edge:
			if segStart >= 0 {
				f.resolveRun(clip, cb, flags, xs, ys, n, row, segStart, col-1, segFlag, axesSwapped, out)
				segStart = -1
			}
		default:
			// The scan can only meet Pending or Edge pixels: Inside/Outside
			// are stamped strictly behind the cursor. Anything else means
			// the buffer was corrupted, typically by a point count larger
			// than its backing arrays.
			panic("raster: flag buffer in impossible state " + fl.String() +
				" during fill scan")
		}
	}
}

// resolveRun stamps the run [c0, c1] of row with its classification and
// emits the run when it is interior.
func (f *Filler) resolveRun(clip, cb Rect, flags []Flag, xs, ys []int, n, row, c0, c1 int, segFlag Flag, axesSwapped bool, out Output) {
	if segFlag == Pending {
		segFlag = Outside
		if Contains(xs, ys, n, cb.X+c0, cb.Y+row) {
			segFlag = Inside
		}
	}
	base := row * cb.W
	for c := c0; c <= c1; c++ {
		flags[base+c] = segFlag
	}
	if segFlag != Inside {
		return
	}
	x0, y := cb.X+c0, cb.Y+row
	if axesSwapped {
		// The horizontal-run drawer is device-axis-aligned; under a rotated
		// configuration the run goes through the rect primitive instead.
		out.FillRect(clip, x0, y, c1-c0+1, 1, true)
	} else {
		out.DrawHorizontalLineInClip(x0, cb.X+c1, y)
	}
}

// boundingBox returns the tight bounds of the first n points.
func boundingBox(xs, ys []int, n int) Rect {
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < n; i++ {
		minX = min(minX, xs[i])
		maxX = max(maxX, xs[i])
		minY = min(minY, ys[i])
		maxY = max(maxY, ys[i])
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}
