// Package gomlp re-exports the types needed to train and run a
// single-hidden-layer perceptron.
package gomlp

import (
	"io"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
	"github.com/FlavioCFOliveira/gomlp/internal/dataset"
	"github.com/FlavioCFOliveira/gomlp/internal/logging"
	"github.com/FlavioCFOliveira/gomlp/internal/mlp"
	"github.com/FlavioCFOliveira/gomlp/internal/net"
)

// Re-export common types and functions for easier access
type (
	Model      = mlp.MLP
	Config     = mlp.Config
	Mode       = mlp.Mode
	Option     = mlp.Option
	Prediction = mlp.Prediction
	Dataset    = dataset.Dataset
	Activation = activations.Kind
	Callback   = net.Callback
	Progress   = net.Progress
	Logger     = logging.Logger
)

// Modes
const (
	Regression     = mlp.Regression
	Classification = mlp.Classification
)

// Activations
const (
	Linear         = activations.Linear
	Sigmoid        = activations.Sigmoid
	BipolarSigmoid = activations.BipolarSigmoid
	Tanh           = activations.Tanh
)

// Errors
var (
	ErrConfiguration     = mlp.ErrConfiguration
	ErrData              = mlp.ErrData
	ErrNumericDivergence = mlp.ErrNumericDivergence
	ErrDimension         = mlp.ErrDimension
	ErrNotTrained        = mlp.ErrNotTrained
)

// Model creation
func New(cfg Config, opts ...Option) (*Model, error) {
	return mlp.New(cfg, opts...)
}

func DefaultConfig(numInputs, numHidden, numOutputs int) Config {
	return mlp.DefaultConfig(numInputs, numHidden, numOutputs)
}

func LoadConfig(filename string, base Config) (Config, error) {
	return mlp.LoadConfig(filename, base)
}

func WithLogger(l *Logger) Option {
	return mlp.WithLogger(l)
}

func WithCallbacks(cb ...Callback) Option {
	return mlp.WithCallbacks(cb...)
}

// Datasets
func NewDataset(inputDims, targetDims int) *Dataset {
	return dataset.New(inputDims, targetDims)
}

func NewClassificationDataset(inputDims, numClasses int) *Dataset {
	return dataset.NewClassification(inputDims, numClasses)
}

func LoadCSV(filename string, targetCols []int, hasHeader bool) (*Dataset, error) {
	return dataset.LoadCSV(filename, targetCols, hasHeader)
}

func LoadClassificationCSV(filename string, labelCol, numClasses int, hasHeader bool) (*Dataset, error) {
	return dataset.LoadClassificationCSV(filename, labelCol, numClasses, hasHeader)
}

// Callbacks
func ProgressLogger(w io.Writer, interval int) net.Logger {
	return net.Logger{W: w, Interval: interval}
}

func ModelCheckpoint(filename string) *net.ModelCheckpoint {
	return net.NewModelCheckpoint(filename)
}

func CSVLogger(filename string, append bool) *net.CSVLogger {
	return net.NewCSVLogger(filename, append)
}

// Logging
func NewLogger(cfg logging.Config) *Logger {
	return logging.New(cfg)
}

func DefaultLogConfig() logging.Config {
	return logging.DefaultConfig()
}

// Model Persistence
func Load(filename string, opts ...Option) (*Model, error) {
	return mlp.Load(filename, opts...)
}
