package raster

// Layout maps byte offsets in a source of a given length onto pixels
// of a Width×Height raster. Step is the number of source bytes one
// pixel represents; rows are filled left to right, top to bottom.
//
// The renderer and the cursor overlay both derive their coordinates
// from the same Layout, which is what keeps paint and un-paint
// covering identical pixel runs.
type Layout struct {
	Width       int
	Height      int
	Step        int64
	BytesPerRow int64
}

// LayoutFor derives the layout for a source of srcLen bytes shown on a
// w×h raster. Step is at least 1 even when the source is smaller than
// the pixel grid.
func LayoutFor(srcLen int64, w, h int) Layout {
	step := int64(1)
	if w > 0 && h > 0 {
		if s := srcLen / int64(w*h); s > 1 {
			step = s
		}
	}
	return Layout{
		Width:       w,
		Height:      h,
		Step:        step,
		BytesPerRow: step * int64(w),
	}
}

// OffsetAt returns the source byte offset represented by pixel (x, y).
func (l Layout) OffsetAt(x, y int) int64 {
	return int64(y)*l.BytesPerRow + int64(x)*l.Step
}

// Cell returns the pixel coordinates holding byte offset off. The
// result may lie outside the raster when off maps past the last row;
// callers paint through the bounds-checked Buffer which drops it.
func (l Layout) Cell(off int64) (x, y int) {
	row := off / l.BytesPerRow
	col := (off - row*l.BytesPerRow) / l.Step
	return int(col), int(row)
}

// PixelIndex returns the linear pixel index for byte offset off.
func (l Layout) PixelIndex(off int64) int {
	x, y := l.Cell(off)
	return y*l.Width + x
}

// RunPixels converts a byte count into the number of consecutive
// pixels it spans, whole rows first, then the remainder in step-sized
// pixels.
func (l Layout) RunPixels(n int64) int {
	rows := n / l.BytesPerRow
	rem := n - rows*l.BytesPerRow
	return int(rows)*l.Width + int(rem/l.Step)
}
