package mlp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Prediction is the result of running the model on one input.
type Prediction struct {
	// Output is the network output, unscaled to the target ranges when
	// scaling is enabled.
	Output []float64

	// Classification only.
	Likelihoods   []float64
	MaxLikelihood float64
	// ClassLabel is 1-based; 0 means the sample was rejected as unknown.
	ClassLabel int
	Rejected   bool
}

// Predict runs the trained model on x.
func (m *MLP) Predict(x []float64) (Prediction, error) {
	if len(x) != m.cfg.NumInputs {
		return Prediction{}, errors.Wrapf(ErrDimension, "input has %d values, network has %d inputs", len(x), m.cfg.NumInputs)
	}
	if !m.trained {
		return Prediction{}, ErrNotTrained
	}

	p := Prediction{Output: m.net.Feedforward(x)}
	if m.cfg.Mode == Regression {
		return p, nil
	}

	// Shift the outputs to be non-negative and normalise them into
	// pseudo-likelihoods.
	p.Likelihoods = append([]float64(nil), p.Output...)
	floats.AddConst(-floats.Min(p.Output), p.Likelihoods)
	if sum := floats.Sum(p.Likelihoods); sum > 0 {
		floats.Scale(1/sum, p.Likelihoods)
	} else {
		for i := range p.Likelihoods {
			p.Likelihoods[i] = 1 / float64(len(p.Likelihoods))
		}
	}

	k := floats.MaxIdx(p.Likelihoods)
	p.MaxLikelihood = p.Likelihoods[k]
	p.ClassLabel = k + 1
	if m.cfg.UseNullRejection && p.MaxLikelihood < m.nullRejectionThreshold {
		p.ClassLabel = 0
		p.Rejected = true
	}
	return p, nil
}

// PredictBatch runs Predict on every row of xs.
func (m *MLP) PredictBatch(xs [][]float64) ([]Prediction, error) {
	out := make([]Prediction, len(xs))
	for i, x := range xs {
		p, err := m.Predict(x)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		out[i] = p
	}
	return out, nil
}
