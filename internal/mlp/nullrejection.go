package mlp

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/FlavioCFOliveira/gomlp/internal/dataset"
	"github.com/FlavioCFOliveira/gomlp/internal/net"
)

// calibrate sets the null-rejection threshold from the winning outputs of
// the correctly classified samples of d: mu - sigma*coeff, with sigma the
// sample standard deviation. The statistics are taken on raw outputs while
// Predict tests normalised likelihoods against the threshold.
func (m *MLP) calibrate(n *net.Network, d *dataset.Dataset) {
	var winners []float64
	for i := 0; i < d.Len(); i++ {
		e := d.At(i)
		y := n.Feedforward(e.Input)
		k := floats.MaxIdx(y)
		if k == floats.MaxIdx(e.Target) {
			winners = append(winners, y[k])
		}
	}

	var mu, sigma float64
	switch len(winners) {
	case 0:
		m.log.Warning("no correctly classified samples, null rejection threshold is 0", "samples", d.Len())
	case 1:
		mu = winners[0]
	default:
		mu, sigma = stat.MeanStdDev(winners, nil)
	}

	m.nullRejectionMu = mu
	m.nullRejectionSigma = sigma
	m.nullRejectionThreshold = mu - sigma*m.cfg.NullRejectionCoeff
	m.log.Debug("null rejection calibrated",
		"samples", len(winners),
		"mu", mu,
		"sigma", sigma,
		"threshold", m.nullRejectionThreshold)
}
