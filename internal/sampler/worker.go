// Package sampler runs one background worker per sample window,
// isolating chunk reads from the render loop. Both sides of the
// channel pair are polled, never awaited: a full queue drops the
// message, and the reader coalesces a backlog down to the newest
// position, so neither side can stall the other.
package sampler

import (
	"sync"
	"time"

	"github.com/kk-code-lab/binmap/internal/source"
)

// queueDepth bounds both the seek-request and position queues. Only
// the most recent message matters to either side, so the queues stay
// shallow.
const queueDepth = 8

// DefaultStream is the interval between sequential samples when no
// seek request is pending.
const DefaultStream = 100 * time.Millisecond

// Position is a sampled read position: the offset the worker read at
// and the number of bytes the chunk actually covered.
type Position struct {
	Offset int64
	Size   int64
}

// Worker samples chunks of a shared read-only source on demand. It
// owns no raster state; the coordinator maps published positions onto
// the preview.
type Worker struct {
	src    *source.Source
	base   int64
	wrap   bool
	stream time.Duration

	requests  chan int64
	positions chan Position
	wg        sync.WaitGroup
}

// Start spawns a worker sampling base-byte chunks from src. In wrap
// mode the worker also advances sequentially every stream interval,
// wrapping to offset 0 at EOF; without wrap it samples only on seek
// requests and idles at EOF. Stop shuts it down.
func Start(src *source.Source, base int64, wrap bool, stream time.Duration) *Worker {
	if base <= 0 {
		base = 256
	}
	if stream <= 0 {
		stream = DefaultStream
	}
	w := &Worker{
		src:       src,
		base:      base,
		wrap:      wrap,
		stream:    stream,
		requests:  make(chan int64, queueDepth),
		positions: make(chan Position, queueDepth),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// Seek asks the worker to sample at off. Never blocks: a full request
// queue drops the seek and returns false (best effort; the next click
// will land).
func (w *Worker) Seek(off int64) bool {
	select {
	case w.requests <- off:
		return true
	default:
		return false
	}
}

// Latest drains every pending position and returns only the newest,
// the coalescing policy from the render side: staleness over backlog.
func (w *Worker) Latest() (Position, bool) {
	var last Position
	seen := false
	for {
		select {
		case pos := <-w.positions:
			last = pos
			seen = true
		default:
			return last, seen
		}
	}
}

// Stop closes the request queue and joins the worker goroutine.
func (w *Worker) Stop() {
	close(w.requests)
	w.wg.Wait()
}

func (w *Worker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.stream)
	defer ticker.Stop()

	pos := int64(0)

	sample := func() {
		chunk := w.src.Chunk(pos, w.base)
		if chunk == nil {
			// End of file: wrap around or idle until the next seek.
			if !w.wrap {
				return
			}
			pos = 0
			chunk = w.src.Chunk(pos, w.base)
		}
		w.publish(Position{Offset: pos, Size: int64(len(chunk))})
		pos += int64(len(chunk))
	}

	sample()
	for {
		select {
		case off, ok := <-w.requests:
			if !ok {
				return
			}
			pos = w.clamp(off)
			sample()
		case <-ticker.C:
			// Sequential advance is a wrap-mode behavior; otherwise
			// the worker only moves on demand.
			if w.wrap {
				sample()
			}
		}
	}
}

// publish is a try-send: a full queue drops the position rather than
// blocking. The coordinator drains to the newest message anyway, and
// the next sample supersedes whatever was shed.
func (w *Worker) publish(p Position) {
	select {
	case w.positions <- p:
	default:
	}
}

func (w *Worker) clamp(off int64) int64 {
	if off < 0 {
		return 0
	}
	if off >= w.src.Size() {
		return w.src.Size() - 1
	}
	return off
}
