package net

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
	"github.com/FlavioCFOliveira/gomlp/internal/dataset"
	"github.com/FlavioCFOliveira/gomlp/internal/layer"
)

// State is the serialisable form of a Network. Momentum memory is not
// part of it; a restored network starts with zero momentum.
type State struct {
	Topology Topology

	// Activation names, kept alongside Topology so files stay readable
	// by tools that do not know the Kind numbering.
	InputActivation  string
	HiddenActivation string
	OutputActivation string

	// Per layer params as produced by layer.Layer.Params.
	InputParams  []float64
	HiddenParams []float64
	OutputParams []float64

	Scaling      bool
	InputRanges  []dataset.Range
	TargetRanges []dataset.Range
}

// State exports the network parameters.
func (n *Network) State() State {
	return State{
		Topology:         n.topo,
		InputActivation:  n.topo.InputActivation.String(),
		HiddenActivation: n.topo.HiddenActivation.String(),
		OutputActivation: n.topo.OutputActivation.String(),
		InputParams:      n.input.Params(),
		HiddenParams:     n.hidden.Params(),
		OutputParams:     n.output.Params(),
		Scaling:          n.scaling,
		InputRanges:      append([]dataset.Range(nil), n.inputRanges...),
		TargetRanges:     append([]dataset.Range(nil), n.targetRanges...),
	}
}

// FromState rebuilds a network from an exported state.
func FromState(s State) (*Network, error) {
	if err := s.Topology.Validate(); err != nil {
		return nil, fmt.Errorf("invalid topology: %w", err)
	}

	n := &Network{
		topo:      s.Topology,
		inputBuf:  make([]float64, s.Topology.NumInputs),
		inputOut:  make([]float64, s.Topology.NumInputs),
		hiddenOut: make([]float64, s.Topology.NumHidden),
		outOut:    make([]float64, s.Topology.NumOutputs),
		deltaO:    make([]float64, s.Topology.NumOutputs),
		deltaH:    make([]float64, s.Topology.NumHidden),
	}
	t := s.Topology
	n.input = emptyLayer(t.NumInputs, 1, t.InputActivation, t.Gamma)
	n.hidden = emptyLayer(t.NumHidden, t.NumInputs, t.HiddenActivation, t.Gamma)
	n.output = emptyLayer(t.NumOutputs, t.NumHidden, t.OutputActivation, t.Gamma)

	if err := n.input.SetParams(s.InputParams); err != nil {
		return nil, fmt.Errorf("input layer: %w", err)
	}
	if err := n.hidden.SetParams(s.HiddenParams); err != nil {
		return nil, fmt.Errorf("hidden layer: %w", err)
	}
	if err := n.output.SetParams(s.OutputParams); err != nil {
		return nil, fmt.Errorf("output layer: %w", err)
	}
	if err := n.SetRanges(nullIfEmpty(s.InputRanges), nullIfEmpty(s.TargetRanges)); err != nil {
		return nil, err
	}
	n.scaling = s.Scaling
	return n, nil
}

func emptyLayer(size, numInputs int, act activations.Kind, gamma float64) layer.Layer {
	l := layer.Layer{Neurons: make([]layer.Neuron, size), Activation: act}
	for i := range l.Neurons {
		l.Neurons[i] = layer.Neuron{
			NumInputs:      numInputs,
			Weights:        make([]float64, numInputs),
			Activation:     act,
			Gamma:          gamma,
			PreviousUpdate: make([]float64, numInputs),
		}
	}
	return l
}

func nullIfEmpty(r []dataset.Range) []dataset.Range {
	if len(r) == 0 {
		return nil
	}
	return r
}

// Encode writes the network to an io.Writer using gob encoding.
func (n *Network) Encode(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(n.State()); err != nil {
		return fmt.Errorf("failed to encode network: %w", err)
	}
	return nil
}

// Decode reads a network written by Encode.
func Decode(r io.Reader) (*Network, error) {
	var s State
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode network: %w", err)
	}
	return FromState(s)
}

// Save saves the network to a file using gob encoding.
func (n *Network) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return n.Encode(file)
}

// Load loads a network from a file written by Save.
func Load(filename string) (*Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
