// Package layer provides the neurons and neuron layers of the MLP.
package layer

import (
	"fmt"
	"math/rand/v2"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
)

// Layer is an ordered sequence of neurons sharing one activation kind.
type Layer struct {
	Neurons    []Neuron
	Activation activations.Kind
}

// New creates a layer of size neurons, each fed by numInputs values,
// with weights drawn from [minW, maxW].
func New(size, numInputs int, act activations.Kind, gamma float64, rng *rand.Rand, minW, maxW float64) (Layer, error) {
	if size <= 0 {
		return Layer{}, fmt.Errorf("layer size must be > 0, got %d", size)
	}

	l := Layer{
		Neurons:    make([]Neuron, size),
		Activation: act,
	}
	for i := range l.Neurons {
		if err := l.Neurons[i].Init(numInputs, act, gamma, rng, minW, maxW); err != nil {
			return Layer{}, fmt.Errorf("neuron %d: %w", i, err)
		}
	}
	return l, nil
}

// Size returns the number of neurons.
func (l *Layer) Size() int {
	return len(l.Neurons)
}

// InSize returns the number of inputs each neuron reads.
func (l *Layer) InSize() int {
	if len(l.Neurons) == 0 {
		return 0
	}
	return l.Neurons[0].NumInputs
}

// Forward fires every neuron on x and writes the results into out,
// which must hold Size() values.
func (l *Layer) Forward(x, out []float64) []float64 {
	for i := range l.Neurons {
		out[i] = l.Neurons[i].Fire(x)
	}
	return out[:len(l.Neurons)]
}

// Params returns the layer parameters flattened as
// [w_0..., b_0, w_1..., b_1, ...] (copy).
func (l *Layer) Params() []float64 {
	params := make([]float64, 0, len(l.Neurons)*(l.InSize()+1))
	for i := range l.Neurons {
		params = append(params, l.Neurons[i].Weights...)
		params = append(params, l.Neurons[i].Bias)
	}
	return params
}

// SetParams updates weights and biases from a slice laid out as Params.
func (l *Layer) SetParams(params []float64) error {
	want := len(l.Neurons) * (l.InSize() + 1)
	if len(params) != want {
		return fmt.Errorf("layer expects %d params, got %d", want, len(params))
	}

	off := 0
	for i := range l.Neurons {
		n := &l.Neurons[i]
		off += copy(n.Weights, params[off:off+n.NumInputs])
		n.Bias = params[off]
		off++
	}
	return nil
}

// HasNaN reports whether any neuron holds a NaN parameter.
func (l *Layer) HasNaN() bool {
	for i := range l.Neurons {
		if l.Neurons[i].HasNaN() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy sharing no memory with l.
func (l *Layer) Clone() Layer {
	c := Layer{
		Neurons:    make([]Neuron, len(l.Neurons)),
		Activation: l.Activation,
	}
	for i := range l.Neurons {
		c.Neurons[i] = l.Neurons[i].Clone()
	}
	return c
}
