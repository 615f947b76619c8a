package softraster

import (
	"errors"

	"github.com/gogpu/softraster/internal/raster"
)

// ErrPointCount is returned when the point count exceeds the coordinate
// array lengths. Catching this here keeps a bad count from surfacing later
// as a flag-buffer consistency panic deep in the fill scan.
var ErrPointCount = errors.New("softraster: point count exceeds coordinate arrays")

// Rasterizer scan-converts polygons into a Drawer.
//
// Outlines are produced by the configured LineTracer, so DrawPolygon output
// is pixel-identical to tracing each edge independently. Interiors follow
// even-odd point-in-polygon membership.
//
// A Rasterizer is safe for concurrent use. Scratch flag buffers are pooled
// per calling goroutine; a single call never parallelizes internally.
type Rasterizer struct {
	drawer Drawer
	tracer LineTracer
	filler *raster.Filler
}

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithLineTracer replaces the default Bresenham tracer with the surrounding
// layer's own line algorithm.
func WithLineTracer(t LineTracer) Option {
	return func(r *Rasterizer) { r.tracer = t }
}

// NewRasterizer creates a Rasterizer emitting into drawer.
func NewRasterizer(drawer Drawer, opts ...Option) *Rasterizer {
	r := &Rasterizer{
		drawer: drawer,
		tracer: BresenhamTracer{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.filler = raster.New(raster.NewBufferPool(Logger))
	return r
}

// DrawPolygon draws the closed outline of the polygon given by the first n
// entries of xs and ys. Edge i connects point i-1 (point n-1 for i=0) to
// point i; there is no explicit closing segment.
//
// c is the color the drawer will paint with; the rasterizer never forwards
// it, but its alpha picks the path taken. A fully opaque color draws each
// edge directly. A translucent color goes through the flagged path so pixels
// shared by several edges are emitted exactly once and never blended twice.
//
// n <= 0 and an empty clip are no-ops. n == 1 draws a single point,
// n == 2 a single line segment.
func (r *Rasterizer) DrawPolygon(clip Rect, xs, ys []int, n int, c ARGB) error {
	if n > len(xs) || n > len(ys) {
		return ErrPointCount
	}
	out := drawerOutput{r.drawer}
	r.filler.Draw(rasterRect(clip), xs, ys, n, c.IsOpaque(), tracerAdapter{r.tracer}, out)
	return nil
}

// FillPolygon draws the polygon outline and fills its even-odd interior.
// Interior pixels are emitted as whole horizontal runs, one call per run.
//
// axesSwapped indicates the caller's logical axes are rotated 90/270 degrees
// relative to the device axes. It selects the primitive used for interior
// runs (FillRect instead of the device-aligned horizontal-line drawer) and
// has no effect on the fill algorithm itself.
//
// Degenerate inputs behave exactly as in DrawPolygon; there is no fill
// distinction below three points.
func (r *Rasterizer) FillPolygon(clip Rect, xs, ys []int, n int, c ARGB, axesSwapped bool) error {
	if n > len(xs) || n > len(ys) {
		return ErrPointCount
	}
	out := drawerOutput{r.drawer}
	r.filler.Fill(rasterRect(clip), xs, ys, n, axesSwapped, tracerAdapter{r.tracer}, out)
	return nil
}

// rasterRect converts a public Rect to the internal representation,
// normalizing empties.
func rasterRect(r Rect) raster.Rect {
	if r.IsEmpty() {
		return raster.Rect{}
	}
	return raster.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func publicRect(r raster.Rect) Rect {
	if r.IsEmpty() {
		return EmptyRect
	}
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// tracerAdapter adapts a public LineTracer to the internal interface.
type tracerAdapter struct {
	t LineTracer
}

func (a tracerAdapter) Trace(clip raster.Rect, x0, y0, x1, y1 int, plot raster.Plot) {
	a.t.Trace(publicRect(clip), x0, y0, x1, y1, Plotter(plot))
}

// drawerOutput adapts a public Drawer to the internal output interface.
type drawerOutput struct {
	d Drawer
}

func (o drawerOutput) DrawLine(clip raster.Rect, x0, y0, x1, y1 int) {
	o.d.DrawLine(publicRect(clip), x0, y0, x1, y1)
}

func (o drawerOutput) DrawPointInClip(x, y int) {
	o.d.DrawPointInClip(x, y)
}

func (o drawerOutput) DrawHorizontalLineInClip(x0, x1, y int) {
	o.d.DrawHorizontalLineInClip(x0, x1, y)
}

func (o drawerOutput) FillRect(clip raster.Rect, x, y, w, h int, axesSwapped bool) {
	o.d.FillRect(publicRect(clip), x, y, w, h, axesSwapped)
}
