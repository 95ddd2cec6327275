package mlp

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/gomlp/internal/net"
)

// modelFile is the gob layout of a saved model.
type modelFile struct {
	Config  Config
	Network net.State

	Trained       bool
	TrainingError float64

	NullRejectionMu        float64
	NullRejectionSigma     float64
	NullRejectionThreshold float64
}

// Encode writes the model using gob encoding. Training history is not saved.
func (m *MLP) Encode(w io.Writer) error {
	f := modelFile{
		Config:                 m.cfg,
		Network:                m.net.State(),
		Trained:                m.trained,
		TrainingError:          m.trainingError,
		NullRejectionMu:        m.nullRejectionMu,
		NullRejectionSigma:     m.nullRejectionSigma,
		NullRejectionThreshold: m.nullRejectionThreshold,
	}
	return errors.Wrap(gob.NewEncoder(w).Encode(f), "encoding model")
}

// Decode reads a model written by Encode.
func Decode(r io.Reader, opts ...Option) (*MLP, error) {
	var f modelFile
	if err := gob.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decoding model")
	}
	if err := f.Config.Validate(); err != nil {
		return nil, err
	}
	n, err := net.FromState(f.Network)
	if err != nil {
		return nil, errors.Wrap(ErrConfiguration, err.Error())
	}
	if n.NumInputs() != f.Config.NumInputs || n.NumOutputs() != f.Config.NumOutputs {
		return nil, errors.Wrap(ErrConfiguration, "network shape does not match config")
	}

	m, err := New(f.Config, opts...)
	if err != nil {
		return nil, err
	}
	m.net = n
	m.trained = f.Trained
	m.trainingError = f.TrainingError
	m.nullRejectionMu = f.NullRejectionMu
	m.nullRejectionSigma = f.NullRejectionSigma
	m.nullRejectionThreshold = f.NullRejectionThreshold
	return m, nil
}

// Save writes the model to a file.
func (m *MLP) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer file.Close()

	return m.Encode(file)
}

// Load reads a model from a file written by Save.
func Load(filename string, opts ...Option) (*MLP, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return Decode(file, opts...)
}
