package preview

import (
	"math"
	"time"

	"github.com/kk-code-lab/binmap/internal/raster"
)

// Packed RGBA colors shared by the renderer and the cursor overlay.
var (
	// clearColor is the opaque-black background every rebuild starts from.
	clearColor = raster.RGBA(0x00, 0x00, 0x00, 0xff)
	// edgeTint is OR-ed over a whole row whose distribution diverges
	// from its predecessor.
	edgeTint = raster.RGBA(0xff, 0x00, 0x00, 0x00)
	// workingEdge marks the row currently being processed during an
	// interactive rebuild flush.
	workingEdge = raster.RGBA(0xff, 0x00, 0x00, 0xff)
	// highlight is OR-ed over the cursor window, non-destructive over
	// the preview's green channel.
	highlight = raster.RGBA(0x88, 0x00, 0x88, 0x00)
	// unpaintMask keeps green and alpha when clearing a previous
	// cursor window.
	unpaintMask = raster.RGBA(0x00, 0xff, 0x00, 0xff)
)

// flushInterval bounds how stale the on-screen raster may get during a
// long rebuild.
const flushInterval = 14 * time.Millisecond

// Renderer downsamples a byte source into a raster, one step-sized
// span per pixel, tinting rows whose byte distribution breaks from the
// previous row.
type Renderer struct {
	// Cutoff is the dissimilarity level below which a row is tinted as
	// a likely boundary. NaN disables edge detection entirely.
	Cutoff float64
	// Detailed feeds every byte of a step span into the row histogram
	// instead of just the sampled byte. Step times more work, closer
	// to the true row distribution.
	Detailed bool
	// Pump is the cancellation point, invoked once per rendered row.
	// Returning false aborts the rebuild mid-raster.
	Pump func() bool
	// Flush presents the raster during a rebuild so long files stay
	// interactive.
	Flush func()

	now func() time.Time // test clock
}

func (r *Renderer) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// Rebuild overwrites buf with the downsampled preview of src under
// lay. It returns false when Pump aborted the rebuild; rows already
// rendered stay intact and later rows keep the clear color.
func (r *Renderer) Rebuild(src []byte, buf *raster.Buffer, lay raster.Layout) bool {
	buf.Fill(clearColor)

	edges := !math.IsNaN(r.Cutoff)
	weight := float64(lay.Width)
	if r.Detailed {
		weight = float64(lay.Step) * float64(lay.Width)
	}

	var prev, curr Histogram
	srcLen := int64(len(src))
	pos := int64(0)
	last := r.clock()

	for row := 0; pos+lay.Step < srcLen && row < lay.Height; row++ {
		for x := 0; x < lay.Width && pos < srcLen; x++ {
			// The first byte of the span is the visual sample; the
			// histogram may consume the whole span in detailed mode.
			buf.Set(x, row, raster.RGBA(0x00, src[pos], 0x00, 0xff))
			if edges {
				if r.Detailed {
					for j := int64(0); j < lay.Step && pos+j < srcLen; j++ {
						curr.Add(src[pos+j])
					}
				} else {
					curr.Add(src[pos])
				}
			}
			pos += lay.Step
		}

		if edges {
			if row > 0 && Dissimilarity(&prev, &curr, weight) < r.Cutoff {
				buf.OrRow(row, edgeTint)
			}
			prev = curr
			curr.Reset()
		}

		if r.Pump != nil && !r.Pump() {
			return false
		}

		if now := r.clock(); now.Sub(last) > flushInterval {
			buf.SetRow(row+1, workingEdge)
			if r.Flush != nil {
				r.Flush()
			}
			last = now
		}
	}
	return true
}
