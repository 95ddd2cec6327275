package mlp

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
	"github.com/FlavioCFOliveira/gomlp/internal/net"
	"github.com/FlavioCFOliveira/gomlp/internal/opt"
)

// Mode selects how targets are interpreted.
type Mode int

const (
	// Regression trains against real valued targets and scores by RMSE.
	Regression Mode = iota
	// Classification trains against one-hot targets and scores by accuracy.
	Classification
)

func (m Mode) String() string {
	switch m {
	case Regression:
		return "regression"
	case Classification:
		return "classification"
	}
	return "unknown"
}

// Config holds the network shape and every training setting. It is set
// once before Train.
type Config struct {
	Mode Mode

	NumInputs  int
	NumHidden  int
	NumOutputs int

	InputActivation  activations.Kind
	HiddenActivation activations.Kind
	OutputActivation activations.Kind
	Gamma            float64
	MinWeight        float64
	MaxWeight        float64

	NumRandomTrainingIterations int
	MaxNumEpochs                int
	MinNumEpochs                int
	MinChange                   float64
	LearningRate                float64
	Momentum                    float64

	UseValidationSet       bool
	ValidationSetSize      float64
	RandomiseTrainingOrder bool
	EnableScaling          bool

	UseNullRejection   bool
	NullRejectionCoeff float64

	// Seed drives the validation split and every restart's weights.
	Seed uint64
}

// DefaultConfig returns the usual settings for a numInputs-numHidden-numOutputs
// network: linear input and output, tanh hidden layer.
func DefaultConfig(numInputs, numHidden, numOutputs int) Config {
	return Config{
		Mode:                        Regression,
		NumInputs:                   numInputs,
		NumHidden:                   numHidden,
		NumOutputs:                  numOutputs,
		InputActivation:             activations.Linear,
		HiddenActivation:            activations.Tanh,
		OutputActivation:            activations.Linear,
		Gamma:                       2,
		MinWeight:                   -0.1,
		MaxWeight:                   0.1,
		NumRandomTrainingIterations: 10,
		MaxNumEpochs:                500,
		MinNumEpochs:                10,
		MinChange:                   1e-5,
		LearningRate:                0.1,
		Momentum:                    0.5,
		UseValidationSet:            true,
		ValidationSetSize:           20,
		RandomiseTrainingOrder:      true,
		EnableScaling:               true,
		NullRejectionCoeff:          3,
		Seed:                        1,
	}
}

// Topology returns the network shape described by c.
func (c Config) Topology() net.Topology {
	return net.Topology{
		NumInputs:        c.NumInputs,
		NumHidden:        c.NumHidden,
		NumOutputs:       c.NumOutputs,
		InputActivation:  c.InputActivation,
		HiddenActivation: c.HiddenActivation,
		OutputActivation: c.OutputActivation,
		Gamma:            c.Gamma,
		MinWeight:        c.MinWeight,
		MaxWeight:        c.MaxWeight,
	}
}

// Rule returns the weight update rule.
func (c Config) Rule() opt.Momentum {
	return opt.Momentum{LearningRate: c.LearningRate, Momentum: c.Momentum}
}

// Validate reports the first violated setting wrapped in ErrConfiguration.
func (c Config) Validate() error {
	if c.Mode != Regression && c.Mode != Classification {
		return errors.Wrapf(ErrConfiguration, "unknown mode %d", c.Mode)
	}
	if err := c.Topology().Validate(); err != nil {
		return errors.Wrap(ErrConfiguration, err.Error())
	}
	if !(c.Gamma > 0) {
		return errors.Wrapf(ErrConfiguration, "gamma must be > 0, got %v", c.Gamma)
	}
	if c.NumRandomTrainingIterations <= 0 {
		return errors.Wrapf(ErrConfiguration, "NumRandomTrainingIterations must be > 0, got %d", c.NumRandomTrainingIterations)
	}
	if c.MaxNumEpochs <= 0 {
		return errors.Wrapf(ErrConfiguration, "MaxNumEpochs must be > 0, got %d", c.MaxNumEpochs)
	}
	if c.MinNumEpochs < 0 {
		return errors.Wrapf(ErrConfiguration, "MinNumEpochs must be >= 0, got %d", c.MinNumEpochs)
	}
	if c.MinChange < 0 {
		return errors.Wrapf(ErrConfiguration, "MinChange must be >= 0, got %v", c.MinChange)
	}
	if err := c.Rule().Validate(); err != nil {
		return errors.Wrap(ErrConfiguration, err.Error())
	}
	if c.ValidationSetSize < 0 || c.ValidationSetSize > 100 {
		return errors.Wrapf(ErrConfiguration, "ValidationSetSize must be in [0,100], got %v", c.ValidationSetSize)
	}
	if !(c.NullRejectionCoeff > 0) {
		return errors.Wrapf(ErrConfiguration, "NullRejectionCoeff must be > 0, got %v", c.NullRejectionCoeff)
	}
	return nil
}

// fileConfig is the JSON layout of a Config, with activation names.
type fileConfig struct {
	Mode             string `json:"mode"`
	InputActivation  string `json:"input_activation"`
	HiddenActivation string `json:"hidden_activation"`
	OutputActivation string `json:"output_activation"`

	NumInputs                   *int     `json:"num_inputs"`
	NumHidden                   *int     `json:"num_hidden"`
	NumOutputs                  *int     `json:"num_outputs"`
	Gamma                       *float64 `json:"gamma"`
	MinWeight                   *float64 `json:"min_weight"`
	MaxWeight                   *float64 `json:"max_weight"`
	NumRandomTrainingIterations *int     `json:"num_random_training_iterations"`
	MaxNumEpochs                *int     `json:"max_num_epochs"`
	MinNumEpochs                *int     `json:"min_num_epochs"`
	MinChange                   *float64 `json:"min_change"`
	LearningRate                *float64 `json:"learning_rate"`
	Momentum                    *float64 `json:"momentum"`
	UseValidationSet            *bool    `json:"use_validation_set"`
	ValidationSetSize           *float64 `json:"validation_set_size"`
	RandomiseTrainingOrder      *bool    `json:"randomise_training_order"`
	EnableScaling               *bool    `json:"enable_scaling"`
	UseNullRejection            *bool    `json:"use_null_rejection"`
	NullRejectionCoeff          *float64 `json:"null_rejection_coeff"`
	Seed                        *uint64  `json:"seed"`
}

// LoadConfig reads a JSON config file. Fields absent from the file keep
// the values already in base.
func LoadConfig(filename string, base Config) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return base, errors.Wrap(err, "reading config")
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return base, errors.Wrapf(ErrConfiguration, "parsing %s: %v", filename, err)
	}

	c := base
	switch fc.Mode {
	case "":
	case "regression":
		c.Mode = Regression
	case "classification":
		c.Mode = Classification
	default:
		return base, errors.Wrapf(ErrConfiguration, "unknown mode %q", fc.Mode)
	}
	for _, a := range []struct {
		name string
		dst  *activations.Kind
	}{
		{fc.InputActivation, &c.InputActivation},
		{fc.HiddenActivation, &c.HiddenActivation},
		{fc.OutputActivation, &c.OutputActivation},
	} {
		if a.name == "" {
			continue
		}
		k, err := activations.Parse(a.name)
		if err != nil {
			return base, errors.Wrap(ErrConfiguration, err.Error())
		}
		*a.dst = k
	}

	setInt(&c.NumInputs, fc.NumInputs)
	setInt(&c.NumHidden, fc.NumHidden)
	setInt(&c.NumOutputs, fc.NumOutputs)
	setInt(&c.NumRandomTrainingIterations, fc.NumRandomTrainingIterations)
	setInt(&c.MaxNumEpochs, fc.MaxNumEpochs)
	setInt(&c.MinNumEpochs, fc.MinNumEpochs)
	setFloat(&c.Gamma, fc.Gamma)
	setFloat(&c.MinWeight, fc.MinWeight)
	setFloat(&c.MaxWeight, fc.MaxWeight)
	setFloat(&c.MinChange, fc.MinChange)
	setFloat(&c.LearningRate, fc.LearningRate)
	setFloat(&c.Momentum, fc.Momentum)
	setFloat(&c.ValidationSetSize, fc.ValidationSetSize)
	setFloat(&c.NullRejectionCoeff, fc.NullRejectionCoeff)
	setBool(&c.UseValidationSet, fc.UseValidationSet)
	setBool(&c.RandomiseTrainingOrder, fc.RandomiseTrainingOrder)
	setBool(&c.EnableScaling, fc.EnableScaling)
	setBool(&c.UseNullRejection, fc.UseNullRejection)
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	return c, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
