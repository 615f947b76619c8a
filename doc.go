// Package softraster is the software 2D rasterization core that backs the
// windowing abstraction.
//
// # Overview
//
// softraster does three things, all in bounded integer coordinate space and
// under an arbitrary rectangular clip:
//
//   - Polygon scan conversion: outlines identical to independent
//     line-drawing, interior fills consistent with even-odd point-in-polygon
//     membership (Rasterizer).
//   - Scaled-rectangle resampling: Nearest, Bilinear and Bicubic strategies
//     parallelized across an injected worker abstraction (DrawScaledRect).
//   - Device/logical pixel conversions: the integer scaling and rounding
//     rules every drawing operation must honor consistently (Scaler).
//
// The package never touches a window or a device pixel buffer directly.
// Callers supply point arrays, pixel sources and a clip; the rasterizer and
// resampler produce pixel-set and row-write calls into caller-provided sink
// interfaces (Drawer, RowSink).
//
// # Quick Start
//
//	import "github.com/gogpu/softraster"
//
//	r := softraster.NewRasterizer(drawer)
//	r.FillPolygon(clip, xs, ys, len(xs), color, false)
//
//	pool := softraster.NewWorkerPool(0)
//	defer pool.Close()
//	softraster.DrawScaledRect(pool, softraster.ScaleBilinear,
//	    softraster.ColorStraight, src, srcRect, dstRect, dstClip, sink)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Rect, ARGB, Scaler, Rasterizer, DrawScaledRect, adapters
//   - Internal: raster (polygon fill), scale (resampling strategies),
//     parallel (work-stealing worker pool)
//
// # Concurrency
//
// All operations are synchronous CPU-bound transforms. Polygon fill is
// strictly single-goroutine per call; only resampling fans out, through the
// Parallelizer the caller passes in. The in-repo WorkerPool is reentrant: a
// resampling strategy may itself run inside a worker without deadlocking.
//
// # Non-goals
//
// No anti-aliasing, no sub-pixel coverage accumulation, no curve flattening,
// and no color management beyond straight/premultiplied alpha conversion.
package softraster
