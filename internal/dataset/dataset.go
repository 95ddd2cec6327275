// Package dataset holds labelled training examples and their scaling ranges.
package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Example is one input vector with its target vector.
type Example struct {
	Input  []float64
	Target []float64
}

// Dataset is an ordered collection of examples of fixed dimensionality.
type Dataset struct {
	inputDims  int
	targetDims int
	examples   []Example
}

// New creates an empty dataset.
func New(inputDims, targetDims int) *Dataset {
	return &Dataset{inputDims: inputDims, targetDims: targetDims}
}

// NewClassification creates an empty dataset whose targets are one-hot
// vectors over numClasses classes.
func NewClassification(inputDims, numClasses int) *Dataset {
	return New(inputDims, numClasses)
}

// Add appends a copy of (input, target).
func (d *Dataset) Add(input, target []float64) error {
	if len(input) != d.inputDims {
		return fmt.Errorf("input has %d dims, dataset expects %d", len(input), d.inputDims)
	}
	if len(target) != d.targetDims {
		return fmt.Errorf("target has %d dims, dataset expects %d", len(target), d.targetDims)
	}
	d.examples = append(d.examples, Example{
		Input:  append([]float64(nil), input...),
		Target: append([]float64(nil), target...),
	})
	return nil
}

// AddLabeled appends input with a one-hot target for the 1-based class label.
// Label 0 is reserved for the rejected (unknown) class.
func (d *Dataset) AddLabeled(input []float64, label int) error {
	if label < 1 || label > d.targetDims {
		return fmt.Errorf("class label %d out of range [1,%d]", label, d.targetDims)
	}
	target := make([]float64, d.targetDims)
	target[label-1] = 1
	return d.Add(input, target)
}

// Len returns the number of examples.
func (d *Dataset) Len() int { return len(d.examples) }

// InputDims returns the input dimensionality.
func (d *Dataset) InputDims() int { return d.inputDims }

// TargetDims returns the target dimensionality.
func (d *Dataset) TargetDims() int { return d.targetDims }

// At returns example i. The returned slices alias the dataset.
func (d *Dataset) At(i int) Example { return d.examples[i] }

// Clone returns a deep copy.
func (d *Dataset) Clone() *Dataset {
	c := New(d.inputDims, d.targetDims)
	c.examples = make([]Example, len(d.examples))
	for i, e := range d.examples {
		c.examples[i] = Example{
			Input:  append([]float64(nil), e.Input...),
			Target: append([]float64(nil), e.Target...),
		}
	}
	return c
}

// Partition keeps floor(Len*percentKept/100) randomly chosen examples in d
// and returns the removed complement. Example order inside each part
// follows the shuffle drawn from rng.
func (d *Dataset) Partition(percentKept float64, rng *rand.Rand) (*Dataset, error) {
	if percentKept < 0 || percentKept > 100 {
		return nil, fmt.Errorf("partition percentage must be in [0,100], got %v", percentKept)
	}

	n := len(d.examples)
	keep := int(math.Floor(float64(n) * percentKept / 100))

	idx := rng.Perm(n)
	kept := make([]Example, 0, keep)
	rest := New(d.inputDims, d.targetDims)
	rest.examples = make([]Example, 0, n-keep)
	for i, j := range idx {
		if i < keep {
			kept = append(kept, d.examples[j])
		} else {
			rest.examples = append(rest.examples, d.examples[j])
		}
	}
	d.examples = kept
	return rest, nil
}

// InputRanges returns the per-dimension (min, max) of the inputs.
func (d *Dataset) InputRanges() []Range {
	return ranges(d.examples, d.inputDims, func(e Example) []float64 { return e.Input })
}

// TargetRanges returns the per-dimension (min, max) of the targets.
func (d *Dataset) TargetRanges() []Range {
	return ranges(d.examples, d.targetDims, func(e Example) []float64 { return e.Target })
}

func ranges(examples []Example, dims int, pick func(Example) []float64) []Range {
	r := make([]Range, dims)
	for i := range r {
		r[i] = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	}
	for _, e := range examples {
		for i, v := range pick(e) {
			if v < r[i].Min {
				r[i].Min = v
			}
			if v > r[i].Max {
				r[i].Max = v
			}
		}
	}
	return r
}

// Scale maps every input from inRanges into [inLo, inHi] and every target
// from targetRanges into [targetLo, targetHi], in place.
func (d *Dataset) Scale(inRanges []Range, inLo, inHi float64, targetRanges []Range, targetLo, targetHi float64) error {
	if len(inRanges) != d.inputDims || len(targetRanges) != d.targetDims {
		return fmt.Errorf("range count mismatch: got %d/%d, want %d/%d",
			len(inRanges), len(targetRanges), d.inputDims, d.targetDims)
	}
	for _, e := range d.examples {
		for i, r := range inRanges {
			e.Input[i] = Scale(e.Input[i], r.Min, r.Max, inLo, inHi, false)
		}
		for i, r := range targetRanges {
			e.Target[i] = Scale(e.Target[i], r.Min, r.Max, targetLo, targetHi, false)
		}
	}
	return nil
}
