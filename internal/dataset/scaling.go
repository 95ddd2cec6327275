package dataset

// Range is the observed (min, max) of one dimension.
type Range struct {
	Min float64
	Max float64
}

// Scale linearly maps v from [srcMin, srcMax] to [dstMin, dstMax].
// A degenerate source range maps everything to dstMin. With constrain the
// result is clamped to the destination range.
func Scale(v, srcMin, srcMax, dstMin, dstMax float64, constrain bool) float64 {
	if srcMin == srcMax {
		return dstMin
	}
	out := (v-srcMin)*(dstMax-dstMin)/(srcMax-srcMin) + dstMin
	if constrain {
		lo, hi := dstMin, dstMax
		if lo > hi {
			lo, hi = hi, lo
		}
		if out < lo {
			return lo
		}
		if out > hi {
			return hi
		}
	}
	return out
}

// Unscale is the inverse of Scale for the same ranges.
func Unscale(v, srcMin, srcMax, dstMin, dstMax float64) float64 {
	return Scale(v, dstMin, dstMax, srcMin, srcMax, false)
}
