package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCategories(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, DefaultConfig())

	l.Info("started", "samples", 4)
	l.Warning("empty split")
	l.Error("failed")
	l.Debug("hidden")
	l.Training("epoch", "epoch", 1)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Contains(t, out, "msg=started")
	assert.Contains(t, out, "samples=4")
	assert.Contains(t, out, "category=warning")
	assert.Contains(t, out, "level=ERROR")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "category=training")
}

func TestSetEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, Config{})

	l.Training("epoch")
	assert.Empty(t, buf.String())

	l.SetEnabled(Training, true)
	assert.True(t, l.Enabled(Training))
	l.Training("epoch", "error", 0.5)
	assert.Contains(t, buf.String(), "category=training")
	assert.Contains(t, buf.String(), "level=DEBUG")

	l.SetEnabled(Training, false)
	buf.Reset()
	l.Training("epoch")
	assert.Empty(t, buf.String())
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, DefaultConfig()).With("model", "xor")

	l.Info("done")
	assert.Contains(t, buf.String(), "model=xor")
}

func TestDiscardAndNil(t *testing.T) {
	l := Discard()
	for c := Info; c < numCategories; c++ {
		assert.False(t, l.Enabled(c), c.String())
	}

	var nilLogger *Logger
	assert.False(t, nilLogger.Enabled(Info))
	assert.NotPanics(t, func() { nilLogger.Info("ignored") })

	assert.Equal(t, "unknown", Category(99).String())
	assert.False(t, l.Enabled(Category(-1)))
}
