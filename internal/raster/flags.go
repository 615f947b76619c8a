// Package raster implements polygon scan conversion for softraster.
//
// The algorithm marks polygon edge pixels in a per-call flag buffer, then
// classifies the remaining pixels of the clipped bounding box as inside or
// outside by propagating flags downward row by row, falling back to an exact
// even-odd containment test once per unresolved run. Fill cost is close to
// linear in the bounding box area instead of area times edge count.
package raster

import (
	"log/slog"
	"sync"
)

// Flag is the per-pixel state of the fill algorithm.
//
// Every pixel starts Pending and transitions at most once: to Edge while the
// outline is drawn, or to Inside/Outside during the fill scan. Any other
// transition indicates a corrupted buffer or a caller that violated an
// array-length contract, and panics.
type Flag uint8

const (
	// Pending marks a pixel not yet classified.
	Pending Flag = iota
	// Edge marks a pixel lit by the polygon outline.
	Edge
	// Inside marks an interior pixel.
	Inside
	// Outside marks an exterior pixel.
	Outside
)

// String returns a string representation of the flag.
func (f Flag) String() string {
	switch f {
	case Pending:
		return "Pending"
	case Edge:
		return "Edge"
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// maxRetainFlags caps how large a pooled buffer may grow before Put discards
// it instead of retaining it, bounding worst-case memory held by idle
// workers. One Flag is one byte, so this is 16 MiB per pooled buffer.
const maxRetainFlags = 16 << 20

// Buffer is a reusable flag buffer over a polygon's clipped bounding box,
// indexed (y-rel)*W + (x-rel).
type Buffer struct {
	Flags []Flag
	W, H  int
}

// At returns the flag at buffer-relative coordinates.
func (b *Buffer) At(x, y int) Flag { return b.Flags[y*b.W+x] }

// BufferPool hands out flag buffers for fill calls.
//
// Buffers come from a sync.Pool, so each worker effectively reuses its own
// buffer across successive fills without locking. A pooled buffer grows
// monotonically up to maxRetainFlags; requests beyond the cap get a fresh
// throwaway allocation that is never retained.
type BufferPool struct {
	pool sync.Pool
	// Log supplies the logger for growth diagnostics. May be nil.
	Log func() *slog.Logger
}

// NewBufferPool creates an empty pool.
func NewBufferPool(log func() *slog.Logger) *BufferPool {
	return &BufferPool{Log: log}
}

// Get returns a buffer of w x h pixels with every flag Pending.
func (p *BufferPool) Get(w, h int) *Buffer {
	area := w * h
	if area > maxRetainFlags {
		p.debug("raster: flag buffer above retention cap, allocating throwaway",
			"w", w, "h", h)
		return &Buffer{Flags: make([]Flag, area), W: w, H: h}
	}
	b, _ := p.pool.Get().(*Buffer)
	if b == nil {
		b = &Buffer{}
	}
	if cap(b.Flags) < area {
		p.debug("raster: growing pooled flag buffer", "w", w, "h", h)
		b.Flags = make([]Flag, area)
	} else {
		b.Flags = b.Flags[:area]
		clear(b.Flags)
	}
	b.W, b.H = w, h
	return b
}

// Put returns a buffer to the pool. Buffers above the retention cap are
// dropped for the GC.
func (p *BufferPool) Put(b *Buffer) {
	if b == nil || cap(b.Flags) > maxRetainFlags {
		return
	}
	p.pool.Put(b)
}

func (p *BufferPool) debug(msg string, args ...any) {
	if p.Log == nil {
		return
	}
	if l := p.Log(); l != nil {
		l.Debug(msg, args...)
	}
}
