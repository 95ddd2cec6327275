// Package activations provides unit tests for activation functions.
package activations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivate(t *testing.T) {
	tests := []struct {
		kind     Kind
		input    float64
		expected float64
	}{
		{Linear, -2.5, -2.5},
		{Linear, 3, 3},
		{Sigmoid, 0, 0.5},
		{Sigmoid, 2, 1 / (1 + math.Exp(-2))},
		{Sigmoid, math.Inf(-1), 0},
		{Sigmoid, math.Inf(1), 1},
		{BipolarSigmoid, 0, 0},
		{BipolarSigmoid, 1, 2/(1+math.Exp(-2)) - 1},
		{Tanh, 0, 0},
		{Tanh, -1, math.Tanh(-1)},
	}

	for _, tt := range tests {
		got := tt.kind.Activate(tt.input, 2)
		assert.InDelta(t, tt.expected, got, 1e-12, "%v(%v)", tt.kind, tt.input)
	}
}

func TestDerivativeFromOutput(t *testing.T) {
	tests := []struct {
		kind     Kind
		output   float64
		expected float64
	}{
		{Linear, 42, 1},
		{Sigmoid, 0.5, 0.25},
		{Sigmoid, 0.9, 0.09},
		{BipolarSigmoid, 0, 1},
		{BipolarSigmoid, 0.5, 0.75},
		{Tanh, 0, 1},
		{Tanh, 0.5, 0.75},
	}

	for _, tt := range tests {
		got := tt.kind.Derivative(tt.output, 2)
		assert.InDelta(t, tt.expected, got, 1e-12, "%v'(y=%v)", tt.kind, tt.output)
	}
}

func TestBipolarSigmoidGamma(t *testing.T) {
	// Steeper slope for larger gamma.
	assert.Greater(t, BipolarSigmoid.Activate(0.5, 4), BipolarSigmoid.Activate(0.5, 1))
	assert.InDelta(t, 2.0, BipolarSigmoid.Derivative(0, 4), 1e-12)
}

func TestInvalidKind(t *testing.T) {
	k := Kind(7)
	assert.False(t, k.Valid())
	assert.True(t, math.IsNaN(k.Activate(1, 1)))
	assert.True(t, math.IsNaN(k.Derivative(1, 1)))
	assert.Equal(t, "Kind(7)", k.String())
}

func TestParse(t *testing.T) {
	for _, k := range []Kind{Linear, Sigmoid, BipolarSigmoid, Tanh} {
		got, err := Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := Parse("tanh")
	require.NoError(t, err)
	assert.Equal(t, Tanh, got)

	_, err = Parse("relu")
	assert.Error(t, err)
}

func TestRange(t *testing.T) {
	lo, hi := Tanh.Range()
	assert.Equal(t, [2]float64{-1, 1}, [2]float64{lo, hi})
	lo, hi = Sigmoid.Range()
	assert.Equal(t, [2]float64{0, 1}, [2]float64{lo, hi})
}
