package dataset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinearDataset(t *testing.T, n int) *Dataset {
	t.Helper()
	d := New(2, 1)
	for i := 0; i < n; i++ {
		x := float64(i)
		require.NoError(t, d.Add([]float64{x, -x}, []float64{2 * x}))
	}
	return d
}

func TestAddChecksDimensions(t *testing.T) {
	d := New(2, 1)
	assert.NoError(t, d.Add([]float64{1, 2}, []float64{3}))
	assert.Error(t, d.Add([]float64{1}, []float64{3}))
	assert.Error(t, d.Add([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, 1, d.Len())
}

func TestAddCopiesInput(t *testing.T) {
	d := New(1, 1)
	in := []float64{1}
	require.NoError(t, d.Add(in, []float64{0}))
	in[0] = 5
	assert.Equal(t, 1.0, d.At(0).Input[0])
}

func TestAddLabeled(t *testing.T) {
	d := NewClassification(1, 3)
	require.NoError(t, d.AddLabeled([]float64{0.5}, 2))
	assert.Equal(t, []float64{0, 1, 0}, d.At(0).Target)

	assert.Error(t, d.AddLabeled([]float64{0.5}, 0))
	assert.Error(t, d.AddLabeled([]float64{0.5}, 4))
}

func TestPartition(t *testing.T) {
	d := newLinearDataset(t, 10)
	rest, err := d.Partition(80, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	assert.Equal(t, 8, d.Len())
	assert.Equal(t, 2, rest.Len())
	assert.Equal(t, d.InputDims(), rest.InputDims())

	seen := map[float64]bool{}
	for _, part := range []*Dataset{d, rest} {
		for i := 0; i < part.Len(); i++ {
			seen[part.At(i).Input[0]] = true
		}
	}
	assert.Len(t, seen, 10, "every example ends up in exactly one part")
}

func TestPartitionDeterministic(t *testing.T) {
	a := newLinearDataset(t, 20)
	b := newLinearDataset(t, 20)
	ra, err := a.Partition(75, rand.New(rand.NewPCG(4, 2)))
	require.NoError(t, err)
	rb, err := b.Partition(75, rand.New(rand.NewPCG(4, 2)))
	require.NoError(t, err)

	for i := 0; i < ra.Len(); i++ {
		assert.Equal(t, ra.At(i), rb.At(i))
	}
}

func TestPartitionEdges(t *testing.T) {
	d := newLinearDataset(t, 3)
	rest, err := d.Partition(100, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 0, rest.Len())

	_, err = d.Partition(101, rand.New(rand.NewPCG(1, 1)))
	assert.Error(t, err)
}

func TestRanges(t *testing.T) {
	d := newLinearDataset(t, 5)
	assert.Equal(t, []Range{{0, 4}, {-4, 0}}, d.InputRanges())
	assert.Equal(t, []Range{{0, 8}}, d.TargetRanges())
}

func TestScaleDataset(t *testing.T) {
	d := newLinearDataset(t, 5)
	require.NoError(t, d.Scale(d.InputRanges(), 0, 1, d.TargetRanges(), -1, 1))

	assert.InDeltaSlice(t, []float64{0.5, 0.5}, d.At(2).Input, 1e-12)
	assert.InDeltaSlice(t, []float64{0}, d.At(2).Target, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0}, d.At(4).Input, 1e-12)
	assert.InDeltaSlice(t, []float64{1}, d.At(4).Target, 1e-12)

	assert.Error(t, d.Scale(nil, 0, 1, nil, 0, 1))
}

func TestClone(t *testing.T) {
	d := newLinearDataset(t, 2)
	c := d.Clone()
	d.At(0).Input[0] = 42
	assert.Equal(t, 0.0, c.At(0).Input[0])
}
