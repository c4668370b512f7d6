package preview

import "math"

// epsilon keeps empty bins from zeroing the overlap product.
const epsilon = 1e-7

// Histogram counts byte values over one raster row's source span.
type Histogram [256]int32

// Add counts one byte value.
func (h *Histogram) Add(b byte) { h[b]++ }

// Reset zeroes all bins.
func (h *Histogram) Reset() { *h = Histogram{} }

// Dissimilarity scores how different two row distributions are, in
// [0,1]: 1 means the rows look alike, values near 0 flag a likely
// structural boundary. rowWeight is the number of samples contributing
// to a row.
//
// Each bin is normalized by rowWeight, the Bhattacharyya-style overlap
// coefficient is summed across bins, clamped to the rounded sum of the
// first distribution to absorb floating-point overshoot, and folded
// into 1 - sqrt(target - overlap). Single pass, no state beyond the
// two histograms; the exact arithmetic (including the rounding clamp)
// is load-bearing and must not be swapped for a textbook
// Bhattacharyya distance.
func Dissimilarity(prev, curr *Histogram, rowWeight float64) float64 {
	var bc, sum float64
	for i := 0; i < 256; i++ {
		np := (float64(prev[i]) + epsilon) / rowWeight
		nc := (float64(curr[i]) + epsilon) / rowWeight
		bc += math.Sqrt(np * nc)
		sum += np
	}
	rnd := math.Floor(sum + 0.5)
	if bc > rnd {
		bc = rnd
	}
	return 1 - math.Sqrt(rnd-bc)
}
