// Package activations provides the activation functions used by MLP neurons.
package activations

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies one of the fixed activation functions.
type Kind int

const (
	// Linear passes the weighted sum through unchanged.
	Linear Kind = iota
	// Sigmoid computes the logistic function, range (0, 1).
	Sigmoid
	// BipolarSigmoid computes 2/(1+exp(-gamma*z))-1, range (-1, 1).
	BipolarSigmoid
	// Tanh computes the hyperbolic tangent, range (-1, 1).
	Tanh
)

var kindNames = [...]string{"Linear", "Sigmoid", "BipolarSigmoid", "Tanh"}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= Linear && k <= Tanh
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Parse returns the kind with the given name (case insensitive).
func Parse(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown activation %q", name)
}

// Activate computes f(z). gamma is only used by BipolarSigmoid.
func (k Kind) Activate(z, gamma float64) float64 {
	switch k {
	case Linear:
		return z
	case Sigmoid:
		return 1 / (1 + math.Exp(-z))
	case BipolarSigmoid:
		return 2/(1+math.Exp(-gamma*z)) - 1
	case Tanh:
		return math.Tanh(z)
	}
	return math.NaN()
}

// Derivative computes f'(z) expressed in terms of the output y = f(z).
// y must be the value the neuron actually produced on its last fire.
func (k Kind) Derivative(y, gamma float64) float64 {
	switch k {
	case Linear:
		return 1
	case Sigmoid:
		return y * (1 - y)
	case BipolarSigmoid:
		return gamma * (1 - y*y) / 2
	case Tanh:
		return 1 - y*y
	}
	return math.NaN()
}

// Range returns the interval the activation naturally maps into.
// Unbounded Linear outputs are trained against [0, 1].
func (k Kind) Range() (lo, hi float64) {
	switch k {
	case Tanh, BipolarSigmoid:
		return -1, 1
	}
	return 0, 1
}
