package layer

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
)

// Default bounds for the uniform weight initialisation.
const (
	DefaultMinWeight = -0.1
	DefaultMaxWeight = 0.1
)

// Neuron is a single unit with its own weights, bias and momentum memory.
type Neuron struct {
	NumInputs  int
	Weights    []float64
	Bias       float64
	Activation activations.Kind
	Gamma      float64

	// Momentum memory, one entry per weight.
	PreviousUpdate     []float64
	PreviousBiasUpdate float64
}

// Init allocates the weights and draws them and the bias uniformly from
// [minW, maxW]. Momentum buffers are zeroed.
func (n *Neuron) Init(numInputs int, act activations.Kind, gamma float64, rng *rand.Rand, minW, maxW float64) error {
	if !act.Valid() {
		return fmt.Errorf("invalid activation %v", act)
	}
	if numInputs <= 0 {
		return fmt.Errorf("neuron needs at least one input, got %d", numInputs)
	}

	n.NumInputs = numInputs
	n.Activation = act
	n.Gamma = gamma
	n.Weights = make([]float64, numInputs)
	n.PreviousUpdate = make([]float64, numInputs)
	n.PreviousBiasUpdate = 0

	span := maxW - minW
	for i := range n.Weights {
		n.Weights[i] = minW + rng.Float64()*span
	}
	n.Bias = minW + rng.Float64()*span
	return nil
}

// Fire computes the activation of bias + sum(x_i * w_i).
func (n *Neuron) Fire(x []float64) float64 {
	z := n.Bias + floats.Dot(x[:n.NumInputs], n.Weights)
	return n.Activation.Activate(z, n.Gamma)
}

// Derivative returns the slope of the activation at output y.
func (n *Neuron) Derivative(y float64) float64 {
	return n.Activation.Derivative(y, n.Gamma)
}

// HasNaN reports whether any weight or the bias is NaN.
func (n *Neuron) HasNaN() bool {
	return n.Bias != n.Bias || floats.HasNaN(n.Weights)
}

// Clone returns an independent copy of the neuron.
func (n *Neuron) Clone() Neuron {
	c := *n
	c.Weights = append([]float64(nil), n.Weights...)
	c.PreviousUpdate = append([]float64(nil), n.PreviousUpdate...)
	return c
}
