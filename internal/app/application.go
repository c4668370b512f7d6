package app

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	previewpkg "github.com/kk-code-lab/binmap/internal/preview"
	"github.com/kk-code-lab/binmap/internal/raster"
	"github.com/kk-code-lab/binmap/internal/sampler"
	"github.com/kk-code-lab/binmap/internal/source"
	inputui "github.com/kk-code-lab/binmap/internal/ui/input"
	renderui "github.com/kk-code-lab/binmap/internal/ui/render"
)

// sampleBase is the chunk size the sample worker reads per position.
const sampleBase = 256

// Options configures the application. The CLI validates ranges before
// construction.
type Options struct {
	Path     string
	Width    int
	Height   int
	Cutoff   float64 // NaN disables edge detection
	Detailed bool
	Wrap     bool
}

// Application owns the raster, the byte source and the sample worker,
// and wires session events to the preview renderer and the cursor
// overlay. All raster mutation happens on the Run goroutine; the
// worker only ever touches the shared read-only source.
type Application struct {
	screen   tcell.Screen
	renderer *renderui.Renderer
	src      *source.Source
	worker   *sampler.Worker
	preview  *previewpkg.Renderer
	input    inputui.Handler

	buf    *raster.Buffer
	lay    raster.Layout
	window previewpkg.Window
	opts   Options

	eventCh       chan tcell.Event
	done          chan struct{} // closed by Close to release the event forwarder
	shouldQuit    bool
	resizePending bool
}

// NewApplication maps the file, takes over the terminal and spawns the
// sample worker. Any failure tears down whatever was built and is
// fatal to the caller.
func NewApplication(opts Options) (*Application, error) {
	src, err := source.Map(opts.Path)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		src.Close()
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	screen.EnableMouse()

	app, err := newApplication(screen, src, opts)
	if err != nil {
		screen.Fini()
		src.Close()
		return nil, err
	}
	return app, nil
}

// newApplication wires an Application over an already-initialized
// screen; tests pass a SimulationScreen.
func newApplication(screen tcell.Screen, src *source.Source, opts Options) (*Application, error) {
	app := &Application{
		screen:   screen,
		renderer: renderui.NewRenderer(screen),
		src:      src,
		opts:     opts,
		eventCh:  make(chan tcell.Event, 16),
		done:     make(chan struct{}),
	}

	w, h, ok := app.clampToFrame(opts.Width, opts.Height)
	if !ok {
		return nil, fmt.Errorf("terminal too small for a preview surface")
	}
	app.buf = raster.New(w, h)
	app.lay = raster.LayoutFor(src.Size(), w, h)
	app.window.Invalidate()

	app.worker = sampler.Start(src, sampleBase, opts.Wrap, sampler.DefaultStream)
	app.preview = &previewpkg.Renderer{
		Cutoff:   opts.Cutoff,
		Detailed: opts.Detailed,
		Pump:     app.pump,
		Flush:    app.present,
	}
	return app, nil
}

// clampToFrame bounds the requested preview dimensions by what the
// screen can present.
func (app *Application) clampToFrame(w, h int) (cw, ch int, ok bool) {
	fw, fh := app.renderer.Frame()
	if fw < 1 || fh < 1 {
		return 0, 0, false
	}
	if w > fw {
		w = fw
	}
	if h > fh {
		h = fh
	}
	return w, h, w > 0 && h > 0
}

func (app *Application) status() renderui.Status {
	return renderui.Status{
		Name:       filepath.Base(app.src.Name()),
		FileSize:   app.src.Size(),
		Offset:     app.window.Offset,
		SampleSize: app.window.SizeBytes,
		Step:       app.lay.Step,
		Cutoff:     app.opts.Cutoff,
	}
}

func (app *Application) present() {
	app.renderer.Render(app.buf, app.status())
}

// Close stops the worker, restores the terminal and releases the
// mapping.
func (app *Application) Close() error {
	if app.done != nil {
		close(app.done)
		app.done = nil
	}
	if app.worker != nil {
		app.worker.Stop()
		app.worker = nil
	}
	if app.screen != nil {
		app.screen.Fini()
		app.screen = nil
	}
	if app.src != nil {
		err := app.src.Close()
		app.src = nil
		return err
	}
	return nil
}
