package raster

import "testing"

func TestPixelChannels(t *testing.T) {
	p := RGBA(0x12, 0x34, 0x56, 0x78)
	if p.R() != 0x12 || p.G() != 0x34 || p.B() != 0x56 || p.A() != 0x78 {
		t.Errorf("channel round-trip failed: %08x", uint32(p))
	}
}

func TestBufferBoundsChecked(t *testing.T) {
	b := New(4, 4)
	b.Fill(RGBA(0, 0, 0, 0xff))

	// Out-of-range writes are dropped, reads return zero.
	b.Set(-1, 0, RGBA(0xff, 0, 0, 0))
	b.Set(4, 0, RGBA(0xff, 0, 0, 0))
	b.Set(0, 4, RGBA(0xff, 0, 0, 0))
	if got := b.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0) = %08x, want 0", uint32(got))
	}
	if got := b.At(0, 4); got != 0 {
		t.Errorf("At(0,4) = %08x, want 0", uint32(got))
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := b.At(x, y); got != RGBA(0, 0, 0, 0xff) {
				t.Errorf("At(%d,%d) = %08x, clobbered by out-of-range write", x, y, uint32(got))
			}
		}
	}
}

func TestRunsClampAtBufferEnd(t *testing.T) {
	b := New(4, 2)
	b.Fill(RGBA(0, 0x40, 0, 0xff))

	// Run starting inside and extending well past the end.
	b.OrRun(6, 10, RGBA(0x88, 0, 0x88, 0))
	for i := 0; i < 6; i++ {
		if got := b.At(i%4, i/4); got != RGBA(0, 0x40, 0, 0xff) {
			t.Errorf("pixel %d changed before run start", i)
		}
	}
	for i := 6; i < 8; i++ {
		want := RGBA(0x88, 0x40, 0x88, 0xff)
		if got := b.At(i%4, i/4); got != want {
			t.Errorf("pixel %d = %08x, want %08x", i, uint32(got), uint32(want))
		}
	}

	b.AndRun(6, 10, RGBA(0, 0xff, 0, 0xff))
	for i := 6; i < 8; i++ {
		if got := b.At(i%4, i/4); got != RGBA(0, 0x40, 0, 0xff) {
			t.Errorf("pixel %d = %08x after un-paint, want original", i, uint32(got))
		}
	}
}

func TestResizeReusesBacking(t *testing.T) {
	b := New(8, 8)
	b.Resize(4, 4)
	if b.Width() != 4 || b.Height() != 4 || b.Len() != 16 {
		t.Errorf("after shrink: %dx%d len %d", b.Width(), b.Height(), b.Len())
	}
	b.Resize(16, 16)
	if b.Len() != 256 {
		t.Errorf("after grow: len %d", b.Len())
	}
	b.Resize(0, -3)
	if b.Len() != 0 {
		t.Errorf("after degenerate resize: len %d", b.Len())
	}
}
