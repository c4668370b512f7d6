// Package render presents the preview raster on a terminal. Each cell
// carries two vertically stacked raster pixels via the upper-half
// block rune, so a W×H screen (minus the status row) shows a
// W×2(H-1) pixel surface.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kk-code-lab/binmap/internal/raster"
)

const halfBlock = '▀'

// Status is the information shown in the bottom status line.
type Status struct {
	Name       string
	FileSize   int64
	Offset     int64 // current cursor offset, -1 when none yet
	SampleSize int64
	Step       int64
	Cutoff     float64 // NaN when edge detection is off
}

// Renderer draws the raster and status line onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	theme   ColorTheme
	printer *message.Printer
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		theme:   GetColorTheme(),
		printer: message.NewPrinter(language.English),
	}
}

// Frame returns the pixel dimensions the current screen can carry:
// full width, twice the cell rows above the status line.
func (r *Renderer) Frame() (w, h int) {
	cw, ch := r.screen.Size()
	rows := ch - 1
	if rows < 0 {
		rows = 0
	}
	return cw, rows * 2
}

// Render draws buf and the status line, then presents the frame.
func (r *Renderer) Render(buf *raster.Buffer, st Status) {
	r.drawRaster(buf)
	r.drawStatusLine(st)
	r.screen.Show()
}

func (r *Renderer) drawRaster(buf *raster.Buffer) {
	cw, ch := r.screen.Size()
	rows := ch - 1
	bg := tcell.StyleDefault.Background(r.theme.Background)

	for cy := 0; cy < rows; cy++ {
		for x := 0; x < cw; x++ {
			if x >= buf.Width() || cy*2 >= buf.Height() {
				r.screen.SetContent(x, cy, ' ', nil, bg)
				continue
			}
			top := buf.At(x, cy*2)
			bottom := buf.At(x, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(pixelColor(top)).
				Background(pixelColor(bottom))
			r.screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
}

func (r *Renderer) drawStatusLine(st Status) {
	cw, ch := r.screen.Size()
	if ch < 1 {
		return
	}
	y := ch - 1
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)

	text := r.formatStatus(st)
	text = runewidth.Truncate(text, cw, "…")

	x := 0
	for _, ru := range text {
		if x >= cw {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += runewidth.RuneWidth(ru)
	}
	for ; x < cw; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) formatStatus(st Status) string {
	s := r.printer.Sprintf("%s · %d bytes · step %d", st.Name, st.FileSize, st.Step)
	if st.Offset >= 0 {
		s += r.printer.Sprintf(" · pos %d (+%d)", st.Offset, st.SampleSize)
	}
	if !math.IsNaN(st.Cutoff) {
		s += fmt.Sprintf(" · cutoff %.2f", st.Cutoff)
	}
	return s + " · q quits"
}

func pixelColor(p raster.Pixel) tcell.Color {
	return tcell.NewRGBColor(int32(p.R()), int32(p.G()), int32(p.B()))
}
