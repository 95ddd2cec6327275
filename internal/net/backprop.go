package net

import (
	"github.com/FlavioCFOliveira/gomlp/internal/opt"
)

// Backprop runs one online gradient descent step on (x, t) and returns
// the squared error sum_k (t_k - y_k)^2 of the output computed before the
// update. NaN values are not checked here.
func (n *Network) Backprop(x, t []float64, rule opt.Momentum) float64 {
	n.FeedforwardCached(x, n.inputOut, n.hiddenOut, n.outOut)

	var sse float64
	for k := range n.output.Neurons {
		e := t[k] - n.outOut[k]
		sse += e * e
		n.deltaO[k] = n.output.Neurons[k].Derivative(n.outOut[k]) * e
	}

	// Hidden deltas use the output weights from before this step.
	for j := range n.hidden.Neurons {
		var sum float64
		for k := range n.output.Neurons {
			sum += n.output.Neurons[k].Weights[j] * n.deltaO[k]
		}
		n.deltaH[j] = n.hidden.Neurons[j].Derivative(n.hiddenOut[j]) * sum
	}

	for k := range n.output.Neurons {
		o := &n.output.Neurons[k]
		rule.StepInPlace(o.Weights, o.PreviousUpdate, n.hiddenOut, n.deltaO[k])
		o.PreviousBiasUpdate = rule.Update(o.PreviousBiasUpdate, 1, n.deltaO[k])
		o.Bias += o.PreviousBiasUpdate
	}
	for j := range n.hidden.Neurons {
		h := &n.hidden.Neurons[j]
		rule.StepInPlace(h.Weights, h.PreviousUpdate, n.inputOut, n.deltaH[j])
		h.PreviousBiasUpdate = rule.Update(h.PreviousBiasUpdate, 1, n.deltaH[j])
		h.Bias += h.PreviousBiasUpdate
	}
	return sse
}

// LastOutput returns the output of the most recent forward pass made by
// Backprop or FeedforwardCached on the network's own buffers. The slice
// is reused by the next call.
func (n *Network) LastOutput() []float64 {
	return n.outOut
}
