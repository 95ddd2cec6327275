// Package net provides the three-layer feed-forward network.
package net

import (
	"fmt"
	"math/rand/v2"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
	"github.com/FlavioCFOliveira/gomlp/internal/dataset"
	"github.com/FlavioCFOliveira/gomlp/internal/layer"
)

// Topology describes the shape of a network.
type Topology struct {
	NumInputs  int
	NumHidden  int
	NumOutputs int

	InputActivation  activations.Kind
	HiddenActivation activations.Kind
	OutputActivation activations.Kind

	// Gamma is the BipolarSigmoid slope.
	Gamma float64

	// Bounds of the uniform weight initialisation. Both zero selects
	// layer.DefaultMinWeight and layer.DefaultMaxWeight.
	MinWeight float64
	MaxWeight float64
}

// Validate checks sizes and activation kinds.
func (t Topology) Validate() error {
	if t.NumInputs <= 0 || t.NumHidden <= 0 || t.NumOutputs <= 0 {
		return fmt.Errorf("layer sizes must be > 0, got %d-%d-%d", t.NumInputs, t.NumHidden, t.NumOutputs)
	}
	for _, k := range []activations.Kind{t.InputActivation, t.HiddenActivation, t.OutputActivation} {
		if !k.Valid() {
			return fmt.Errorf("invalid activation %v", k)
		}
	}
	if t.MinWeight > t.MaxWeight {
		return fmt.Errorf("min weight %v exceeds max weight %v", t.MinWeight, t.MaxWeight)
	}
	return nil
}

func (t Topology) weightBounds() (float64, float64) {
	if t.MinWeight == 0 && t.MaxWeight == 0 {
		return layer.DefaultMinWeight, layer.DefaultMaxWeight
	}
	return t.MinWeight, t.MaxWeight
}

// Network is an input pass-through layer, one hidden layer and an output
// layer. Each input neuron reads exactly one input value.
type Network struct {
	topo   Topology
	input  layer.Layer
	hidden layer.Layer
	output layer.Layer

	scaling      bool
	inputRanges  []dataset.Range
	targetRanges []dataset.Range

	// Reusable forward buffers.
	inputBuf  []float64
	inputOut  []float64
	hiddenOut []float64
	outOut    []float64

	// Reusable backprop buffers.
	deltaO []float64
	deltaH []float64
}

// New builds a network with weights drawn from rng.
func New(topo Topology, rng *rand.Rand) (*Network, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	n := &Network{
		topo:      topo,
		inputBuf:  make([]float64, topo.NumInputs),
		inputOut:  make([]float64, topo.NumInputs),
		hiddenOut: make([]float64, topo.NumHidden),
		outOut:    make([]float64, topo.NumOutputs),
		deltaO:    make([]float64, topo.NumOutputs),
		deltaH:    make([]float64, topo.NumHidden),
	}
	if err := n.Init(rng); err != nil {
		return nil, err
	}
	return n, nil
}

// Init rebuilds every layer with fresh random weights and zero momentum.
// Scaling settings are kept.
func (n *Network) Init(rng *rand.Rand) error {
	t := n.topo
	minW, maxW := t.weightBounds()

	var err error
	if n.input, err = layer.New(t.NumInputs, 1, t.InputActivation, t.Gamma, rng, minW, maxW); err != nil {
		return fmt.Errorf("input layer: %w", err)
	}
	// Input neurons pass their value through and are never trained.
	for i := range n.input.Neurons {
		n.input.Neurons[i].Weights[0] = 1
		n.input.Neurons[i].Bias = 0
	}
	if n.hidden, err = layer.New(t.NumHidden, t.NumInputs, t.HiddenActivation, t.Gamma, rng, minW, maxW); err != nil {
		return fmt.Errorf("hidden layer: %w", err)
	}
	if n.output, err = layer.New(t.NumOutputs, t.NumHidden, t.OutputActivation, t.Gamma, rng, minW, maxW); err != nil {
		return fmt.Errorf("output layer: %w", err)
	}
	return nil
}

// Topology returns the network shape.
func (n *Network) Topology() Topology { return n.topo }

// NumInputs returns the input dimensionality.
func (n *Network) NumInputs() int { return n.topo.NumInputs }

// NumOutputs returns the output dimensionality.
func (n *Network) NumOutputs() int { return n.topo.NumOutputs }

// Layers returns the input, hidden and output layers.
func (n *Network) Layers() [3]*layer.Layer {
	return [3]*layer.Layer{&n.input, &n.hidden, &n.output}
}

// SetRanges stores the input and target ranges used when scaling is on.
func (n *Network) SetRanges(inputRanges, targetRanges []dataset.Range) error {
	if inputRanges != nil && len(inputRanges) != n.topo.NumInputs {
		return fmt.Errorf("got %d input ranges, network has %d inputs", len(inputRanges), n.topo.NumInputs)
	}
	if targetRanges != nil && len(targetRanges) != n.topo.NumOutputs {
		return fmt.Errorf("got %d target ranges, network has %d outputs", len(targetRanges), n.topo.NumOutputs)
	}
	n.inputRanges = append([]dataset.Range(nil), inputRanges...)
	n.targetRanges = append([]dataset.Range(nil), targetRanges...)
	return nil
}

// Ranges returns the stored input and target ranges.
func (n *Network) Ranges() (inputRanges, targetRanges []dataset.Range) {
	return n.inputRanges, n.targetRanges
}

// SetScaling turns input scaling and output unscaling on or off.
func (n *Network) SetScaling(on bool) { n.scaling = on }

// Scaling reports whether feedforward scales its inputs.
func (n *Network) Scaling() bool { return n.scaling }

// OutputRange returns the interval the output activation trains against.
func (n *Network) OutputRange() (lo, hi float64) {
	return n.topo.OutputActivation.Range()
}

// Feedforward computes the network output for x. The returned slice is
// newly allocated.
func (n *Network) Feedforward(x []float64) []float64 {
	n.FeedforwardCached(x, n.inputOut, n.hiddenOut, n.outOut)
	return append([]float64(nil), n.outOut...)
}

// FeedforwardCached computes the network output for x and leaves the
// activations of each layer in inputOut, hiddenOut and outOut.
func (n *Network) FeedforwardCached(x, inputOut, hiddenOut, outOut []float64) {
	in := x
	if n.scaling && len(n.inputRanges) == n.topo.NumInputs {
		for i, r := range n.inputRanges {
			n.inputBuf[i] = dataset.Scale(x[i], r.Min, r.Max, 0, 1, false)
		}
		in = n.inputBuf
	}

	for i := range n.input.Neurons {
		inputOut[i] = n.input.Neurons[i].Fire(in[i : i+1])
	}
	n.hidden.Forward(inputOut, hiddenOut)
	n.output.Forward(hiddenOut, outOut)

	if n.scaling && len(n.targetRanges) == n.topo.NumOutputs {
		lo, hi := n.OutputRange()
		for k, r := range n.targetRanges {
			outOut[k] = dataset.Unscale(outOut[k], r.Min, r.Max, lo, hi)
		}
	}
}

// HasNaN reports whether any weight or bias in the network is NaN.
func (n *Network) HasNaN() bool {
	return n.input.HasNaN() || n.hidden.HasNaN() || n.output.HasNaN()
}

// Params returns all parameters flattened layer by layer (copy).
func (n *Network) Params() []float64 {
	var params []float64
	for _, l := range n.Layers() {
		params = append(params, l.Params()...)
	}
	return params
}

// Clone returns a deep copy. Later changes to n never reach the copy.
func (n *Network) Clone() *Network {
	return &Network{
		topo:         n.topo,
		input:        n.input.Clone(),
		hidden:       n.hidden.Clone(),
		output:       n.output.Clone(),
		scaling:      n.scaling,
		inputRanges:  append([]dataset.Range(nil), n.inputRanges...),
		targetRanges: append([]dataset.Range(nil), n.targetRanges...),
		inputBuf:     make([]float64, n.topo.NumInputs),
		inputOut:     make([]float64, n.topo.NumInputs),
		hiddenOut:    make([]float64, n.topo.NumHidden),
		outOut:       make([]float64, n.topo.NumOutputs),
		deltaO:       make([]float64, n.topo.NumOutputs),
		deltaH:       make([]float64, n.topo.NumHidden),
	}
}
