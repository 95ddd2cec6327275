// Package loss provides the error measures used to score training epochs.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SquaredError returns sum((yTrue - yPred)^2).
func SquaredError(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("SquaredError: prediction and target must have same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return sum
}

// RMSE converts an accumulated squared error over n samples to a root mean.
func RMSE(sse float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Sqrt(sse / float64(n))
}

// Accuracy returns the percentage of correct predictions.
func Accuracy(correct, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(correct) / float64(n) * 100
}

// SameClass reports whether the winning output matches the winning target.
func SameClass(yPred, yTrue []float64) bool {
	return floats.MaxIdx(yPred) == floats.MaxIdx(yTrue)
}
