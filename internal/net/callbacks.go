package net

import (
	"fmt"
	"io"
	"math"
)

// Progress is reported once per training epoch.
type Progress struct {
	Restart          int
	Epoch            int
	Metric           float64
	TrainMetric      float64
	ValidationMetric float64

	// Network is the live model of the running restart, with scaling set
	// as the trained model will use it. Callbacks must not keep it past
	// the call; use Clone or Save instead.
	Network *Network
}

// Callback defines the interface for training callbacks. Calls are made
// synchronously on the training goroutine and must return promptly.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnEpochEnd(p Progress)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network) {}
func (c BaseCallback) OnTrainEnd(n *Network)   {}
func (c BaseCallback) OnEpochEnd(p Progress)   {}

// ProgressFunc adapts a function to a Callback that only sees epochs.
type ProgressFunc func(p Progress)

func (f ProgressFunc) OnTrainBegin(n *Network) {}
func (f ProgressFunc) OnTrainEnd(n *Network)   {}
func (f ProgressFunc) OnEpochEnd(p Progress)   { f(p) }

// ModelCheckpoint saves the model whenever an epoch metric is the best so
// far across all restarts.
type ModelCheckpoint struct {
	BaseCallback
	Filename string

	bestMetric float64
	saved      int
	err        error
}

func NewModelCheckpoint(filename string) *ModelCheckpoint {
	return &ModelCheckpoint{
		Filename:   filename,
		bestMetric: math.Inf(1),
	}
}

func (c *ModelCheckpoint) OnEpochEnd(p Progress) {
	if !(p.Metric < c.bestMetric) {
		return
	}
	c.bestMetric = p.Metric
	if err := p.Network.Save(c.Filename); err != nil {
		c.err = err
		return
	}
	c.saved++
}

// Saved returns how many checkpoints were written.
func (c *ModelCheckpoint) Saved() int { return c.saved }

// Err returns the last save error, if any.
func (c *ModelCheckpoint) Err() error { return c.err }

// Logger prints training progress every Interval epochs.
type Logger struct {
	BaseCallback
	W        io.Writer
	Interval int
}

func (c Logger) OnEpochEnd(p Progress) {
	if c.W == nil || c.Interval <= 0 || p.Epoch%c.Interval != 0 {
		return
	}
	fmt.Fprintf(c.W, "Restart %d Epoch %d: error = %.6f (train %.6f, validation %.6f)\n",
		p.Restart, p.Epoch, p.Metric, p.TrainMetric, p.ValidationMetric)
}
