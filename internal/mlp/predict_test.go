package mlp

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictChecksInput(t *testing.T) {
	m, err := New(DefaultConfig(2, 2, 1))
	require.NoError(t, err)

	for _, x := range [][]float64{nil, {1}, {1, 2, 3}} {
		_, err := m.Predict(x)
		assert.True(t, errors.Is(err, ErrDimension), "len %d: %v", len(x), err)
	}
	_, err = m.Predict([]float64{1, 2})
	assert.True(t, errors.Is(err, ErrNotTrained))

	require.NoError(t, m.Train(context.Background(), xorData(t)))
	for _, x := range [][]float64{nil, {1}, {1, 2, 3}} {
		_, err := m.Predict(x)
		assert.True(t, errors.Is(err, ErrDimension), "len %d: %v", len(x), err)
	}

	_, err = m.PredictBatch([][]float64{{0, 1}, {1}})
	assert.True(t, errors.Is(err, ErrDimension))
}

func TestPredictLikelihoods(t *testing.T) {
	m, err := New(blobConfig(3))
	require.NoError(t, err)
	require.NoError(t, m.Train(context.Background(), blobs(t, 3, 20, 11)))

	preds, err := m.PredictBatch([][]float64{{-2, -2}, {2, 2}, {2, -2}, {0, 0}})
	require.NoError(t, err)
	for _, p := range preds {
		require.Len(t, p.Likelihoods, 3)
		var sum float64
		best := 0
		for k, l := range p.Likelihoods {
			assert.GreaterOrEqual(t, l, 0.0)
			sum += l
			if l > p.Likelihoods[best] {
				best = k
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
		assert.Equal(t, best+1, p.ClassLabel)
		assert.Equal(t, p.Likelihoods[best], p.MaxLikelihood)
		assert.False(t, p.Rejected)
	}
	assert.Equal(t, []int{1, 2, 3}, []int{preds[0].ClassLabel, preds[1].ClassLabel, preds[2].ClassLabel})
}

func TestPredictRejects(t *testing.T) {
	m, err := New(blobConfig(3))
	require.NoError(t, err)
	require.NoError(t, m.Train(context.Background(), blobs(t, 3, 20, 13)))

	// Likelihoods never exceed 1.
	m.nullRejectionThreshold = 1.5

	p, err := m.Predict([]float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, p.ClassLabel)
	assert.False(t, p.Rejected)

	m.SetNullRejection(true)
	p, err = m.Predict([]float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, p.ClassLabel)
	assert.True(t, p.Rejected)
}

// Raising the coefficient lowers the threshold, so no sample rejected at
// a larger coefficient can be accepted at a smaller one.
func TestNullRejectionCoeffMonotonic(t *testing.T) {
	cfg := blobConfig(3)
	cfg.UseNullRejection = true
	m, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, m.Train(context.Background(), blobs(t, 3, 30, 17)))

	_, sigma := m.NullRejectionStats()
	assert.GreaterOrEqual(t, sigma, 0.0)

	var probe [][]float64
	for x := -4.0; x <= 4; x += 0.5 {
		for y := -4.0; y <= 4; y += 0.5 {
			probe = append(probe, []float64{x, y})
		}
	}

	last := len(probe) + 1
	lastThreshold := m.NullRejectionThreshold() + 1
	for _, coeff := range []float64{0.1, 0.5, 1, 2, 3, 5, 10} {
		require.NoError(t, m.SetNullRejectionCoeff(coeff))
		assert.LessOrEqual(t, m.NullRejectionThreshold(), lastThreshold)
		lastThreshold = m.NullRejectionThreshold()

		preds, err := m.PredictBatch(probe)
		require.NoError(t, err)
		rejected := 0
		for _, p := range preds {
			if p.Rejected {
				rejected++
				assert.Zero(t, p.ClassLabel)
			}
		}
		assert.LessOrEqual(t, rejected, last, "coeff %v", coeff)
		last = rejected
	}

	assert.True(t, errors.Is(m.SetNullRejectionCoeff(0), ErrConfiguration))
	assert.True(t, errors.Is(m.SetNullRejectionCoeff(-1), ErrConfiguration))
}
