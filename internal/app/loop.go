package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	previewpkg "github.com/kk-code-lab/binmap/internal/preview"
	"github.com/kk-code-lab/binmap/internal/raster"
	inputui "github.com/kk-code-lab/binmap/internal/ui/input"
)

// clockInterval drives the periodic drain of worker positions, the
// stand-in for the session clock tick.
const clockInterval = 40 * time.Millisecond

// Run performs the first rebuild and then pumps session events until
// quit. The raster and overlay are only ever touched from this
// goroutine.
func (app *Application) Run() {
	go app.forwardEvents(app.screen, app.done)

	app.rebuild()

	ticker := time.NewTicker(clockInterval)
	defer ticker.Stop()

	for !app.shouldQuit {
		select {
		case ev := <-app.eventCh:
			app.handleEvent(ev)
		case <-ticker.C:
			app.drainWorker()
		}

		if app.resizePending {
			app.resizePending = false
			if app.applyResize() {
				app.rebuild()
			}
		}
	}
}

// forwardEvents pumps screen events into the event channel until the
// screen is finalized or done closes. The done leg matters when the
// loop has already exited with a full buffer: without it the forwarder
// would stay blocked on the send across shutdown.
func (app *Application) forwardEvents(screen tcell.Screen, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized, session over.
			return
		}
		select {
		case app.eventCh <- ev:
		case <-done:
			return
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := app.input.Map(ev).(type) {
	case inputui.Quit:
		app.shouldQuit = true
	case inputui.Resize:
		app.resizePending = true
	case inputui.Click:
		app.handleClick(ev.X, ev.Y)
	}
}

// handleClick maps a cell click to a source offset and requests a seek
// there. A full request queue drops the seek; the next click lands.
func (app *Application) handleClick(cellX, cellY int) {
	// Each cell row carries two raster rows; a click addresses the
	// upper one.
	x, y := cellX, cellY*2
	if x >= app.buf.Width() || y >= app.buf.Height() {
		return
	}
	app.worker.Seek(app.lay.OffsetAt(x, y))
}

// drainWorker coalesces pending worker positions to the newest and
// moves the cursor overlay there.
func (app *Application) drainWorker() {
	pos, ok := app.worker.Latest()
	if !ok || pos.Offset == app.window.Offset {
		return
	}
	previewpkg.Update(app.buf, app.lay, &app.window, pos.Offset, pos.Size)
	app.present()
}

// pump is the rebuild cancellation point, invoked once per rendered
// row. It processes pending events without blocking and reports
// whether the rebuild may continue; quit and layout changes both
// preempt it.
func (app *Application) pump() bool {
	for {
		select {
		case ev := <-app.eventCh:
			app.handleEvent(ev)
		default:
			return !app.shouldQuit && !app.resizePending
		}
	}
}

// applyResize re-derives the raster dimensions from the new frame and
// reports whether they changed.
func (app *Application) applyResize() bool {
	app.screen.Sync()
	w, h, ok := app.clampToFrame(app.opts.Width, app.opts.Height)
	if !ok || (w == app.buf.Width() && h == app.buf.Height()) {
		return false
	}
	app.buf.Resize(w, h)
	app.lay = raster.LayoutFor(app.src.Size(), w, h)
	// The old overlay run died with the old raster contents.
	app.window.Pixels = 0
	app.window.Invalidate()
	return true
}

// rebuild regenerates the preview, restarting when a layout change
// preempts it mid-raster, then restores the cursor overlay at the
// worker's last known position.
func (app *Application) rebuild() {
	for {
		app.resizePending = false
		if app.preview.Rebuild(app.src.Bytes(), app.buf, app.lay) {
			break
		}
		if app.shouldQuit {
			return
		}
		if app.resizePending {
			app.applyResize()
			continue
		}
		return
	}

	last := app.window
	app.window.Invalidate()
	if last.Offset >= 0 {
		previewpkg.Update(app.buf, app.lay, &app.window, last.Offset, last.SizeBytes)
	}
	app.present()
}
