package softraster

import (
	"errors"
	"testing"
)

// recordingDrawer materializes every Drawer call into per-pixel paint
// counts. DrawLine delegates to the default tracer, satisfying the
// pixel-identity contract between outline paths.
type recordingDrawer struct {
	counts       map[[2]int]int
	hlines       int
	swappedRects int
}

func newRecordingDrawer() *recordingDrawer {
	return &recordingDrawer{counts: map[[2]int]int{}}
}

func (d *recordingDrawer) mark(x, y int) { d.counts[[2]int{x, y}]++ }

func (d *recordingDrawer) DrawLine(clip Rect, x0, y0, x1, y1 int) {
	BresenhamTracer{}.Trace(clip, x0, y0, x1, y1, d.mark)
}

func (d *recordingDrawer) DrawPointInClip(x, y int) { d.mark(x, y) }

func (d *recordingDrawer) DrawHorizontalLineInClip(x0, x1, y int) {
	d.hlines++
	for x := x0; x <= x1; x++ {
		d.mark(x, y)
	}
}

func (d *recordingDrawer) FillRect(clip Rect, x, y, w, h int, axesSwapped bool) {
	if axesSwapped {
		d.swappedRects++
	}
	r := (Rect{X: x, Y: y, W: w, H: h}).Intersect(clip)
	for yy := r.Y; yy <= r.Bottom(); yy++ {
		for xx := r.X; xx <= r.Right(); xx++ {
			d.mark(xx, yy)
		}
	}
}

// TestPolygonPointCount tests the point-count contract on both entry points.
func TestPolygonPointCount(t *testing.T) {
	r := NewRasterizer(newRecordingDrawer())
	clip := Rect{X: 0, Y: 0, W: 100, H: 100}
	xs := []int{1, 2, 3}
	ys := []int{1, 2, 3}

	if err := r.DrawPolygon(clip, xs, ys, 4, NewARGB(0xff, 0, 0, 0)); !errors.Is(err, ErrPointCount) {
		t.Errorf("DrawPolygon err = %v, want ErrPointCount", err)
	}
	if err := r.FillPolygon(clip, xs, ys, 4, NewARGB(0xff, 0, 0, 0), false); !errors.Is(err, ErrPointCount) {
		t.Errorf("FillPolygon err = %v, want ErrPointCount", err)
	}
	if err := r.DrawPolygon(clip, xs, ys, 3, NewARGB(0xff, 0, 0, 0)); err != nil {
		t.Errorf("DrawPolygon with matching count: %v", err)
	}
}

// TestFillPolygonRectangle fills an axis-aligned rectangle and checks the
// painted set is exactly the rectangle, every pixel once.
func TestFillPolygonRectangle(t *testing.T) {
	d := newRecordingDrawer()
	r := NewRasterizer(d)
	clip := Rect{X: -50, Y: -50, W: 200, H: 200}
	xs := []int{2, 12, 12, 2}
	ys := []int{3, 3, 9, 9}

	if err := r.FillPolygon(clip, xs, ys, 4, NewARGB(0xff, 0, 0, 0), false); err != nil {
		t.Fatalf("FillPolygon: %v", err)
	}

	want := 0
	for y := 3; y <= 9; y++ {
		for x := 2; x <= 12; x++ {
			want++
			if n := d.counts[[2]int{x, y}]; n != 1 {
				t.Errorf("pixel (%d, %d) painted %d times, want 1", x, y, n)
			}
		}
	}
	if len(d.counts) != want {
		t.Errorf("painted %d pixels, want %d", len(d.counts), want)
	}
}

// TestDrawPolygonAlphaPaths tests the two outline paths: a translucent color
// paints every pixel exactly once even where edges meet, an opaque color
// repaints shared vertices, and both light the same pixel set.
func TestDrawPolygonAlphaPaths(t *testing.T) {
	clip := Rect{X: -50, Y: -50, W: 200, H: 200}
	xs := []int{0, 10, 10, 0}
	ys := []int{0, 10, 0, 10}

	translucent := newRecordingDrawer()
	if err := NewRasterizer(translucent).DrawPolygon(clip, xs, ys, 4, NewARGB(0x80, 0xff, 0, 0)); err != nil {
		t.Fatalf("DrawPolygon: %v", err)
	}
	for p, n := range translucent.counts {
		if n != 1 {
			t.Errorf("translucent outline painted %v %d times, want 1", p, n)
		}
	}

	opaque := newRecordingDrawer()
	if err := NewRasterizer(opaque).DrawPolygon(clip, xs, ys, 4, NewARGB(0xff, 0xff, 0, 0)); err != nil {
		t.Fatalf("DrawPolygon: %v", err)
	}
	multi := false
	for _, n := range opaque.counts {
		if n > 1 {
			multi = true
			break
		}
	}
	if !multi {
		t.Error("opaque fast path painted no pixel twice on a closed outline")
	}

	if len(translucent.counts) != len(opaque.counts) {
		t.Fatalf("translucent path lit %d pixels, opaque path %d",
			len(translucent.counts), len(opaque.counts))
	}
	for p := range translucent.counts {
		if opaque.counts[p] == 0 {
			t.Errorf("pixel %v lit only by the translucent path", p)
		}
	}
}

// TestPolygonDegenerate tests the low-point-count behavior through the
// public API.
func TestPolygonDegenerate(t *testing.T) {
	clip := Rect{X: 0, Y: 0, W: 20, H: 20}
	c := NewARGB(0xff, 0, 0, 0)

	d := newRecordingDrawer()
	r := NewRasterizer(d)
	if err := r.FillPolygon(clip, nil, nil, 0, c, false); err != nil {
		t.Fatalf("n=0: %v", err)
	}
	if err := r.DrawPolygon(EmptyRect, []int{5}, []int{5}, 1, c); err != nil {
		t.Fatalf("empty clip: %v", err)
	}
	if len(d.counts) != 0 {
		t.Fatalf("degenerate calls painted %d pixels", len(d.counts))
	}

	if err := r.FillPolygon(clip, []int{7}, []int{7}, 1, c, false); err != nil {
		t.Fatalf("n=1: %v", err)
	}
	if len(d.counts) != 1 || d.counts[[2]int{7, 7}] != 1 {
		t.Fatalf("single point painted %v, want exactly (7, 7)", d.counts)
	}

	d = newRecordingDrawer()
	r = NewRasterizer(d)
	if err := r.FillPolygon(clip, []int{1, 9}, []int{2, 6}, 2, c, false); err != nil {
		t.Fatalf("n=2: %v", err)
	}
	want := tracePixels(clip, 1, 2, 9, 6)
	if len(d.counts) != len(want) {
		t.Fatalf("two-point fill painted %d pixels, tracer %d", len(d.counts), len(want))
	}
	for p := range want {
		if d.counts[p] == 0 {
			t.Errorf("two-point fill missing tracer pixel %v", p)
		}
	}
}

// TestFillPolygonAxesSwapped tests that the swapped configuration emits
// interior runs through FillRect instead of the horizontal-line drawer,
// painting the same pixels.
func TestFillPolygonAxesSwapped(t *testing.T) {
	clip := Rect{X: -10, Y: -10, W: 100, H: 100}
	xs := []int{2, 12, 12, 2}
	ys := []int{3, 3, 9, 9}
	c := NewARGB(0xff, 0, 0, 0)

	normal := newRecordingDrawer()
	if err := NewRasterizer(normal).FillPolygon(clip, xs, ys, 4, c, false); err != nil {
		t.Fatalf("FillPolygon: %v", err)
	}
	swapped := newRecordingDrawer()
	if err := NewRasterizer(swapped).FillPolygon(clip, xs, ys, 4, c, true); err != nil {
		t.Fatalf("FillPolygon swapped: %v", err)
	}

	if swapped.hlines != 0 {
		t.Errorf("swapped fill made %d horizontal-line calls, want 0", swapped.hlines)
	}
	if swapped.swappedRects == 0 {
		t.Error("swapped fill emitted no swapped rects")
	}
	if len(normal.counts) != len(swapped.counts) {
		t.Fatalf("swapped fill painted %d pixels, normal %d", len(swapped.counts), len(normal.counts))
	}
	for p := range normal.counts {
		if swapped.counts[p] == 0 {
			t.Errorf("pixel %v painted only without axis swap", p)
		}
	}
}

// endpointTracer plots only the segment endpoints. It stands in for a
// surrounding layer with its own line style.
type endpointTracer struct{}

func (endpointTracer) Trace(clip Rect, x0, y0, x1, y1 int, plot Plotter) {
	if clip.Contains(x0, y0) {
		plot(x0, y0)
	}
	if (x0 != x1 || y0 != y1) && clip.Contains(x1, y1) {
		plot(x1, y1)
	}
}

// TestWithLineTracer tests that a configured tracer replaces Bresenham on
// the flagged outline path.
func TestWithLineTracer(t *testing.T) {
	d := newRecordingDrawer()
	r := NewRasterizer(d, WithLineTracer(endpointTracer{}))
	clip := Rect{X: -10, Y: -10, W: 100, H: 100}
	xs := []int{0, 8, 4}
	ys := []int{0, 0, 6}

	// Translucent color: the outline goes through the tracer.
	if err := r.DrawPolygon(clip, xs, ys, 3, NewARGB(0x80, 0, 0, 0)); err != nil {
		t.Fatalf("DrawPolygon: %v", err)
	}
	if len(d.counts) != 3 {
		t.Fatalf("endpoint tracer painted %d pixels, want the 3 vertices: %v", len(d.counts), d.counts)
	}
	for _, p := range [][2]int{{0, 0}, {8, 0}, {4, 6}} {
		if d.counts[p] != 1 {
			t.Errorf("vertex %v painted %d times, want 1", p, d.counts[p])
		}
	}
}

// countingDrawer is a minimal Drawer for benchmarks: it only counts calls,
// keeping drawer overhead out of the measurement.
type countingDrawer struct {
	calls int
}

func (d *countingDrawer) DrawLine(clip Rect, x0, y0, x1, y1 int) { d.calls++ }
func (d *countingDrawer) DrawPointInClip(x, y int)               { d.calls++ }
func (d *countingDrawer) DrawHorizontalLineInClip(x0, x1, y int) { d.calls++ }
func (d *countingDrawer) FillRect(clip Rect, x, y, w, h int, axesSwapped bool) {
	d.calls++
}

func benchmarkPolygon(b *testing.B, fill bool) {
	d := &countingDrawer{}
	r := NewRasterizer(d)
	clip := Rect{X: 0, Y: 0, W: 1024, H: 1024}
	// A 7-point star exercising edge crossings and interior runs.
	xs := []int{512, 610, 950, 680, 780, 512, 244}
	ys := []int{64, 370, 390, 580, 930, 720, 930}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if fill {
			err = r.FillPolygon(clip, xs, ys, len(xs), NewARGB(0xff, 0x20, 0x40, 0x80), false)
		} else {
			err = r.DrawPolygon(clip, xs, ys, len(xs), NewARGB(0x80, 0x20, 0x40, 0x80))
		}
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFillPolygon(b *testing.B) { benchmarkPolygon(b, true) }
func BenchmarkDrawPolygon(b *testing.B) { benchmarkPolygon(b, false) }

// TestFillPolygonTriangle checks interior coverage of a triangle against the
// outline: every horizontal gap between outline pixels of a row is filled.
func TestFillPolygonTriangle(t *testing.T) {
	clip := Rect{X: -10, Y: -10, W: 100, H: 100}
	xs := []int{0, 40, 20}
	ys := []int{0, 0, 30}
	c := NewARGB(0xff, 0, 0, 0)

	outline := newRecordingDrawer()
	if err := NewRasterizer(outline).DrawPolygon(clip, xs, ys, 3, c); err != nil {
		t.Fatalf("DrawPolygon: %v", err)
	}
	filled := newRecordingDrawer()
	if err := NewRasterizer(filled).FillPolygon(clip, xs, ys, 3, c, false); err != nil {
		t.Fatalf("FillPolygon: %v", err)
	}

	for p := range outline.counts {
		if filled.counts[p] == 0 {
			t.Errorf("outline pixel %v missing from fill", p)
		}
	}
	for y := 0; y <= 30; y++ {
		lo, hi := 1<<30, -(1 << 30)
		for p := range outline.counts {
			if p[1] == y {
				lo = min(lo, p[0])
				hi = max(hi, p[0])
			}
		}
		for x := lo; x <= hi; x++ {
			if filled.counts[[2]int{x, y}] == 0 {
				t.Fatalf("row %d: pixel (%d, %d) between outline columns %d..%d not filled",
					y, x, y, lo, hi)
			}
		}
	}
}
