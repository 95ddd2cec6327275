package mlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig(4, 8, 3)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.1, cfg.Rule().LearningRate)
	assert.Equal(t, 0.5, cfg.Rule().Momentum)
	assert.Equal(t, 8, cfg.Topology().NumHidden)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"mode", func(c *Config) { c.Mode = Mode(7) }},
		{"no inputs", func(c *Config) { c.NumInputs = 0 }},
		{"no hidden", func(c *Config) { c.NumHidden = 0 }},
		{"no outputs", func(c *Config) { c.NumOutputs = 0 }},
		{"activation", func(c *Config) { c.HiddenActivation = activations.Kind(9) }},
		{"gamma", func(c *Config) { c.Gamma = 0 }},
		{"weights", func(c *Config) { c.MinWeight, c.MaxWeight = 0.5, -0.5 }},
		{"restarts", func(c *Config) { c.NumRandomTrainingIterations = 0 }},
		{"max epochs", func(c *Config) { c.MaxNumEpochs = 0 }},
		{"min epochs", func(c *Config) { c.MinNumEpochs = -1 }},
		{"min change", func(c *Config) { c.MinChange = -1e-3 }},
		{"learning rate", func(c *Config) { c.LearningRate = 0 }},
		{"momentum", func(c *Config) { c.Momentum = 1.5 }},
		{"validation size", func(c *Config) { c.ValidationSetSize = 101 }},
		{"null rejection", func(c *Config) { c.NullRejectionCoeff = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(2, 3, 1)
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrConfiguration), "got %v", err)

			_, err = New(cfg)
			assert.True(t, errors.Is(err, ErrConfiguration), "got %v", err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(filename, []byte(`{
		"mode": "classification",
		"hidden_activation": "sigmoid",
		"output_activation": "BipolarSigmoid",
		"num_hidden": 12,
		"learning_rate": 0.05,
		"use_validation_set": false,
		"min_weight": -0.5,
		"max_weight": 0.5,
		"seed": 42
	}`), 0o644))

	base := DefaultConfig(4, 6, 3)
	cfg, err := LoadConfig(filename, base)
	require.NoError(t, err)

	assert.Equal(t, Classification, cfg.Mode)
	assert.Equal(t, activations.Linear, cfg.InputActivation)
	assert.Equal(t, activations.Sigmoid, cfg.HiddenActivation)
	assert.Equal(t, activations.BipolarSigmoid, cfg.OutputActivation)
	assert.Equal(t, 4, cfg.NumInputs)
	assert.Equal(t, 12, cfg.NumHidden)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, base.Momentum, cfg.Momentum)
	assert.False(t, cfg.UseValidationSet)
	assert.Equal(t, -0.5, cfg.MinWeight)
	assert.Equal(t, uint64(42), cfg.Seed)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	base := DefaultConfig(2, 2, 1)

	_, err := LoadConfig(filepath.Join(dir, "missing.json"), base)
	assert.Error(t, err)

	for name, body := range map[string]string{
		"syntax.json":     `{"mode": `,
		"mode.json":       `{"mode": "clustering"}`,
		"activation.json": `{"hidden_activation": "relu"}`,
	} {
		filename := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(filename, []byte(body), 0o644))
		cfg, err := LoadConfig(filename, base)
		assert.True(t, errors.Is(err, ErrConfiguration), "%s: %v", name, err)
		assert.Equal(t, base, cfg)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "regression", Regression.String())
	assert.Equal(t, "classification", Classification.String())
	assert.Equal(t, "unknown", Mode(3).String())
}
