package mlp

import "github.com/pkg/errors"

// Error classes returned by the trainer. Use errors.Is to test for them.
var (
	// ErrConfiguration reports an invalid network or training setting.
	ErrConfiguration = errors.New("mlp: configuration error")
	// ErrData reports a dataset that cannot be trained on.
	ErrData = errors.New("mlp: data error")
	// ErrNumericDivergence reports that every restart produced NaN weights.
	ErrNumericDivergence = errors.New("mlp: numeric divergence")
	// ErrDimension reports an input vector of the wrong size.
	ErrDimension = errors.New("mlp: dimension mismatch")
	// ErrNotTrained reports use of a model before a successful Train.
	ErrNotTrained = errors.New("mlp: model not trained")
)
