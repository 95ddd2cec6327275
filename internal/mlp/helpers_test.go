package mlp

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
	"github.com/FlavioCFOliveira/gomlp/internal/dataset"
)

func xorData(t *testing.T) *dataset.Dataset {
	t.Helper()
	d := dataset.New(2, 1)
	for _, row := range [][3]float64{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}} {
		require.NoError(t, d.Add(row[:2], row[2:]))
	}
	return d
}

// xorConfig is a 2-4-1 tanh network trained for up to 2000 epochs with a
// 1e-6 minimum change. Weights start in [-1,1]: from [-0.1,0.1] every
// restart settles on the symmetric plateau that predicts 0 everywhere.
func xorConfig() Config {
	cfg := DefaultConfig(2, 4, 1)
	cfg.InputActivation = activations.Tanh
	cfg.HiddenActivation = activations.Tanh
	cfg.OutputActivation = activations.Tanh
	cfg.MinWeight, cfg.MaxWeight = -1, 1
	cfg.MaxNumEpochs = 2000
	cfg.MinChange = 1e-6
	cfg.UseValidationSet = false
	return cfg
}

var blobCenters = [][2]float64{{-2, -2}, {2, 2}, {2, -2}}

// blobs returns perClass gaussian samples (sigma 0.5) around each of the
// first numClasses centers, interleaved by class.
func blobs(t *testing.T, numClasses, perClass int, seed uint64) *dataset.Dataset {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 0))
	d := dataset.NewClassification(2, numClasses)
	for i := 0; i < perClass; i++ {
		for c := 0; c < numClasses; c++ {
			x := []float64{
				blobCenters[c][0] + 0.5*rng.NormFloat64(),
				blobCenters[c][1] + 0.5*rng.NormFloat64(),
			}
			require.NoError(t, d.AddLabeled(x, c+1))
		}
	}
	return d
}

func blobConfig(numClasses int) Config {
	cfg := DefaultConfig(2, 4, numClasses)
	cfg.Mode = Classification
	cfg.NumRandomTrainingIterations = 5
	return cfg
}
