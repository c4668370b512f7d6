package preview

import "github.com/kk-code-lab/binmap/internal/raster"

// Window is the last-drawn cursor highlight: the byte region the
// sample worker most recently reported, mapped onto raster pixels. One
// Window exists per sample stream; Update keeps its fields consistent
// with the layout used to paint it so un-paint covers exactly the
// painted run.
type Window struct {
	Offset    int64 // byte offset last drawn, -1 when nothing is on screen
	SizeBytes int64 // bytes the highlight represents
	X, Y      int   // top-left pixel of the run
	Pixels    int   // run length in pixels
}

// Invalidate forces the next Update to repaint even at an unchanged
// offset, used after a rebuild wipes the raster.
func (w *Window) Invalidate() { w.Offset = -1 }

// Update moves the cursor highlight to newOffset covering sampleSize
// bytes. Repeated calls with the same offset are no-ops. The previous
// run is cleared down to the preview's green channel, then the new run
// is OR-painted so the highlight stays non-destructive.
func Update(buf *raster.Buffer, lay raster.Layout, w *Window, newOffset, sampleSize int64) {
	if newOffset == w.Offset {
		return
	}

	if w.Pixels > 0 {
		buf.AndRun(w.Y*lay.Width+w.X, w.Pixels, unpaintMask)
	}

	w.Offset = newOffset
	w.SizeBytes = sampleSize
	w.X, w.Y = lay.Cell(newOffset)
	w.Pixels = lay.RunPixels(sampleSize)
	if w.Pixels == 0 {
		return
	}
	buf.OrRun(w.Y*lay.Width+w.X, w.Pixels, highlight)
}
