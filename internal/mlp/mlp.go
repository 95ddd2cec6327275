// Package mlp trains and runs a three-layer perceptron for regression or
// classification.
package mlp

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/gomlp/internal/logging"
	"github.com/FlavioCFOliveira/gomlp/internal/net"
)

// Random streams derived from Config.Seed. Restart r uses stream r.
const (
	initStream      = math.MaxUint64 - 1
	partitionStream = math.MaxUint64
)

// EpochError is the error of one epoch on the training and validation
// splits: 100-accuracy for classification, RMSE for regression. Without
// a validation split both values are the training error.
type EpochError struct {
	Train      float64
	Validation float64
}

// RestartResult records how one restart ended.
type RestartResult struct {
	Restart  int
	Epochs   int
	Error    float64
	Diverged bool
	History  []EpochError
}

// MLP is a trainable single-hidden-layer perceptron.
type MLP struct {
	cfg       Config
	net       *net.Network
	log       *logging.Logger
	callbacks []net.Callback

	trained       bool
	trainingError float64
	history       []EpochError
	restarts      []RestartResult

	nullRejectionMu        float64
	nullRejectionSigma     float64
	nullRejectionThreshold float64
}

// Option customises an MLP.
type Option func(*MLP)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(m *MLP) { m.log = l }
}

// WithCallbacks adds training callbacks, called in order once per epoch.
func WithCallbacks(cb ...net.Callback) Option {
	return func(m *MLP) { m.callbacks = append(m.callbacks, cb...) }
}

// New validates cfg and builds an untrained model.
func New(cfg Config, opts ...Option) (*MLP, error) {
	m := &MLP{cfg: cfg, log: logging.Discard()}
	for _, o := range opts {
		o(m)
	}
	if err := cfg.Validate(); err != nil {
		m.log.Error("invalid configuration", "err", err)
		return nil, err
	}

	n, err := net.New(cfg.Topology(), rand.New(rand.NewPCG(cfg.Seed, initStream)))
	if err != nil {
		return nil, errors.Wrap(ErrConfiguration, err.Error())
	}
	n.SetScaling(cfg.EnableScaling)
	m.net = n
	return m, nil
}

// Config returns the model configuration.
func (m *MLP) Config() Config { return m.cfg }

// Network returns the live network. It is replaced by each successful Train.
func (m *MLP) Network() *net.Network { return m.net }

// Trained reports whether Train has completed successfully.
func (m *MLP) Trained() bool { return m.trained }

// TrainingError returns the final error of the selected restart.
func (m *MLP) TrainingError() float64 { return m.trainingError }

// History returns the per-epoch errors of the selected restart.
func (m *MLP) History() []EpochError { return m.history }

// Restarts returns the outcome of every restart of the last Train call,
// including diverged ones.
func (m *MLP) Restarts() []RestartResult { return m.restarts }

// NullRejectionThreshold returns the value below which Predict reports
// class 0. It is calibrated on raw winning network outputs but compared
// against the normalised max likelihood, so the two are on different
// scales; with two classes the max likelihood is 1 unless both outputs tie.
func (m *MLP) NullRejectionThreshold() float64 { return m.nullRejectionThreshold }

// NullRejectionStats returns the mean and sample standard deviation of the
// winning outputs measured during calibration.
func (m *MLP) NullRejectionStats() (mu, sigma float64) {
	return m.nullRejectionMu, m.nullRejectionSigma
}

// SetNullRejection enables or disables null rejection at prediction time.
func (m *MLP) SetNullRejection(on bool) { m.cfg.UseNullRejection = on }

// SetNullRejectionCoeff changes the coefficient and recomputes the
// threshold from the calibrated statistics.
func (m *MLP) SetNullRejectionCoeff(coeff float64) error {
	if !(coeff > 0) {
		return errors.Wrapf(ErrConfiguration, "NullRejectionCoeff must be > 0, got %v", coeff)
	}
	m.cfg.NullRejectionCoeff = coeff
	m.nullRejectionThreshold = m.nullRejectionMu - m.nullRejectionSigma*coeff
	return nil
}

// Reset drops the per-run training records (history and restart outcomes)
// but keeps the trained network and its calibration.
func (m *MLP) Reset() {
	m.history = nil
	m.restarts = nil
}

// Clear returns the model to its untrained state with freshly initialised
// weights. The configuration is kept.
func (m *MLP) Clear() error {
	n, err := net.New(m.cfg.Topology(), rand.New(rand.NewPCG(m.cfg.Seed, initStream)))
	if err != nil {
		return errors.Wrap(ErrConfiguration, err.Error())
	}
	n.SetScaling(m.cfg.EnableScaling)

	m.Reset()
	m.net = n
	m.trained = false
	m.trainingError = 0
	m.nullRejectionMu = 0
	m.nullRejectionSigma = 0
	m.nullRejectionThreshold = 0
	return nil
}
