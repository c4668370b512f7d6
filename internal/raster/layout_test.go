package raster

import "testing"

func TestLayoutStepNeverBelowOne(t *testing.T) {
	tests := []struct {
		name   string
		srcLen int64
		w, h   int
		want   int64
	}{
		{"source smaller than grid", 10, 16, 16, 1},
		{"source equals grid", 256, 16, 16, 1},
		{"exact multiple", 1024, 16, 16, 4},
		{"rounds down", 1023, 16, 16, 3},
		{"single byte", 1, 128, 512, 1},
		{"large file", 1 << 30, 128, 512, (1 << 30) / (128 * 512)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lay := LayoutFor(tt.srcLen, tt.w, tt.h)
			if lay.Step != tt.want {
				t.Errorf("Step = %d, want %d", lay.Step, tt.want)
			}
			if lay.Step < 1 {
				t.Errorf("Step = %d, below 1", lay.Step)
			}
			if lay.BytesPerRow != lay.Step*int64(tt.w) {
				t.Errorf("BytesPerRow = %d, want %d", lay.BytesPerRow, lay.Step*int64(tt.w))
			}
		})
	}
}

func TestOffsetAtMatchesClickMapping(t *testing.T) {
	// 1024 bytes on 16x16 gives step 4; clicking pixel (3,2) must seek
	// to 2*(4*16) + 3*4 = 140.
	lay := LayoutFor(1024, 16, 16)
	if got := lay.OffsetAt(3, 2); got != 140 {
		t.Errorf("OffsetAt(3,2) = %d, want 140", got)
	}
}

func TestCellInvertsOffsetAt(t *testing.T) {
	lay := LayoutFor(1<<20, 64, 64)
	for _, px := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {63, 63}, {17, 42}} {
		off := lay.OffsetAt(px[0], px[1])
		x, y := lay.Cell(off)
		if x != px[0] || y != px[1] {
			t.Errorf("Cell(OffsetAt(%d,%d)) = (%d,%d)", px[0], px[1], x, y)
		}
	}
}

func TestRunPixels(t *testing.T) {
	lay := LayoutFor(1024, 16, 16) // step 4, 64 bytes per row

	tests := []struct {
		name string
		n    int64
		want int
	}{
		{"zero bytes", 0, 0},
		{"below one pixel", 3, 0},
		{"one pixel", 4, 1},
		{"partial row", 40, 10},
		{"exact row", 64, 16},
		{"row and a half", 96, 24},
		{"two rows", 128, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lay.RunPixels(tt.n); got != tt.want {
				t.Errorf("RunPixels(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}
