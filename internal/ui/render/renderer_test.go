package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/binmap/internal/raster"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}

func TestFrameLeavesStatusRow(t *testing.T) {
	scr := simScreen(t, 80, 25)
	r := NewRenderer(scr)
	w, h := r.Frame()
	if w != 80 || h != 48 {
		t.Errorf("Frame = %dx%d, want 80x48", w, h)
	}
}

func TestRenderStacksTwoPixelsPerCell(t *testing.T) {
	scr := simScreen(t, 8, 5)
	r := NewRenderer(scr)

	buf := raster.New(8, 8)
	buf.Fill(raster.RGBA(0, 0, 0, 0xff))
	buf.Set(2, 0, raster.RGBA(0x00, 0xaa, 0x00, 0xff)) // top half of cell (2,0)
	buf.Set(2, 1, raster.RGBA(0x00, 0x55, 0x00, 0xff)) // bottom half of cell (2,0)

	r.Render(buf, Status{Name: "x", Offset: -1, Step: 1, Cutoff: math.NaN()})

	ru, _, style, _ := scr.GetContent(2, 0)
	if ru != halfBlock {
		t.Fatalf("cell rune = %q, want half block", ru)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0, 0xaa, 0) {
		t.Errorf("fg = %v, want top pixel color", fg)
	}
	if bg != tcell.NewRGBColor(0, 0x55, 0) {
		t.Errorf("bg = %v, want bottom pixel color", bg)
	}
}

func TestRenderBlanksBeyondRaster(t *testing.T) {
	scr := simScreen(t, 10, 5)
	r := NewRenderer(scr)

	buf := raster.New(4, 4)
	buf.Fill(raster.RGBA(0x00, 0xff, 0x00, 0xff))
	r.Render(buf, Status{Name: "x", Offset: -1, Step: 1, Cutoff: math.NaN()})

	ru, _, _, _ := scr.GetContent(6, 0)
	if ru != ' ' {
		t.Errorf("cell past raster = %q, want blank", ru)
	}
	ru, _, _, _ = scr.GetContent(0, 3)
	if ru != ' ' {
		t.Errorf("row past raster = %q, want blank", ru)
	}
}

func TestFormatStatus(t *testing.T) {
	scr := simScreen(t, 80, 25)
	r := NewRenderer(scr)

	tests := []struct {
		name string
		st   Status
		want string
	}{
		{
			"no cursor, edges off",
			Status{Name: "a.bin", FileSize: 1048576, Offset: -1, Step: 16, Cutoff: math.NaN()},
			"a.bin · 1,048,576 bytes · step 16 · q quits",
		},
		{
			"cursor and cutoff",
			Status{Name: "a.bin", FileSize: 2048, Offset: 1024, SampleSize: 256, Step: 2, Cutoff: 0.9},
			"a.bin · 2,048 bytes · step 2 · pos 1,024 (+256) · cutoff 0.90 · q quits",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.formatStatus(tt.st); got != tt.want {
				t.Errorf("formatStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
