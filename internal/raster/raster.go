package raster

// Maximum preview dimensions accepted from the command line. Stands in
// for the display protocol's surface limits.
const (
	MaxWidth  = 4096
	MaxHeight = 4096
)

// Pixel is one RGBA value packed 0xRRGGBBAA. Packing the channels into
// one word keeps the overlay's bitwise OR-paint and AND-clear as plain
// integer ops.
type Pixel uint32

// RGBA packs four channel values into a Pixel.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel(r)<<24 | Pixel(g)<<16 | Pixel(b)<<8 | Pixel(a)
}

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 24) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 16) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p >> 8) }

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p) }

// Buffer is a width×height RGBA grid stored row-major. All accessors
// are bounds-checked: out-of-range writes are dropped and out-of-range
// reads return zero, so callers never index the backing slice
// directly.
type Buffer struct {
	w, h int
	pix  []Pixel
}

// New allocates a w×h buffer. Non-positive dimensions yield an empty
// buffer.
func New(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Resize changes the buffer dimensions, reusing the backing slice when
// it is large enough. Contents after a resize are undefined; callers
// rebuild the preview anyway.
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	if cap(b.pix) >= n {
		b.pix = b.pix[:n]
	} else {
		b.pix = make([]Pixel, n)
	}
	b.w, b.h = w, h
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.w }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.h }

// Len returns the total pixel count.
func (b *Buffer) Len() int { return len(b.pix) }

// Fill sets every pixel to px.
func (b *Buffer) Fill(px Pixel) {
	for i := range b.pix {
		b.pix[i] = px
	}
}

// At returns the pixel at (x, y), or zero when out of range.
func (b *Buffer) At(x, y int) Pixel {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0
	}
	return b.pix[y*b.w+x]
}

// Set writes the pixel at (x, y); out-of-range writes are dropped.
func (b *Buffer) Set(x, y int, px Pixel) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.pix[y*b.w+x] = px
}

// OrRun ORs px into n consecutive pixels starting at linear index
// start, stopping at the end of the buffer.
func (b *Buffer) OrRun(start, n int, px Pixel) {
	if start < 0 {
		n += start
		start = 0
	}
	for i := start; i < start+n && i < len(b.pix); i++ {
		b.pix[i] |= px
	}
}

// AndRun ANDs mask into n consecutive pixels starting at linear index
// start, stopping at the end of the buffer.
func (b *Buffer) AndRun(start, n int, mask Pixel) {
	if start < 0 {
		n += start
		start = 0
	}
	for i := start; i < start+n && i < len(b.pix); i++ {
		b.pix[i] &= mask
	}
}

// OrRow ORs px into every pixel of row y.
func (b *Buffer) OrRow(y int, px Pixel) {
	if y < 0 || y >= b.h {
		return
	}
	row := b.pix[y*b.w : (y+1)*b.w]
	for i := range row {
		row[i] |= px
	}
}

// SetRow sets every pixel of row y to px.
func (b *Buffer) SetRow(y int, px Pixel) {
	if y < 0 || y >= b.h {
		return
	}
	row := b.pix[y*b.w : (y+1)*b.w]
	for i := range row {
		row[i] = px
	}
}
