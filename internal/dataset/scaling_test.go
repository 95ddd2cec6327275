package dataset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	assert.InDelta(t, 0.5, Scale(5, 0, 10, 0, 1, false), 1e-12)
	assert.InDelta(t, 0.0, Scale(5, 0, 10, -1, 1, false), 1e-12)
	assert.InDelta(t, 1.5, Scale(15, 0, 10, 0, 1, false), 1e-12)
	assert.InDelta(t, 1.0, Scale(15, 0, 10, 0, 1, true), 1e-12)
	assert.InDelta(t, -1.0, Scale(-3, 0, 10, -1, 1, true), 1e-12)

	// Degenerate source range.
	assert.Equal(t, -1.0, Scale(3, 2, 2, -1, 1, false))
}

func TestScaleRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	for i := 0; i < 1000; i++ {
		lo := rng.Float64()*200 - 100
		hi := lo + rng.Float64()*50 + 1e-3
		v := lo + rng.Float64()*(hi-lo)

		s := Scale(v, lo, hi, -1, 1, false)
		assert.InDelta(t, v, Unscale(s, lo, hi, -1, 1), 1e-9*(1+abs(v)))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
