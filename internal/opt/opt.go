// Package opt provides the weight update rule used by online backpropagation.
package opt

import "fmt"

// Momentum is online gradient descent with a momentum term.
//
// The gradient contribution is scaled by (1-Momentum):
//
//	update = LearningRate * (Momentum*prev + (1-Momentum)*a*delta)
//
// Models trained with this rule depend on that scaling, so it must not be
// replaced with the textbook form prev*Momentum + LearningRate*grad.
type Momentum struct {
	LearningRate float64
	Momentum     float64
}

// Validate checks the hyper-parameters.
func (m Momentum) Validate() error {
	if !(m.LearningRate > 0) {
		return fmt.Errorf("learning rate must be > 0, got %v", m.LearningRate)
	}
	if m.Momentum < 0 || m.Momentum > 1 {
		return fmt.Errorf("momentum must be in [0,1], got %v", m.Momentum)
	}
	return nil
}

// Update returns the step for one parameter given its previous step,
// the activation a feeding it and the error term delta.
func (m Momentum) Update(prev, a, delta float64) float64 {
	return m.LearningRate * (m.Momentum*prev + (1-m.Momentum)*a*delta)
}

// StepInPlace applies the rule to a weight vector fed by inputs.
// weights and prev are updated in place.
func (m Momentum) StepInPlace(weights, prev, inputs []float64, delta float64) {
	for i := range weights {
		u := m.Update(prev[i], inputs[i], delta)
		weights[i] += u
		prev[i] = u
	}
}
