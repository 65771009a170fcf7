package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ShapeMustMatchData(t *testing.T) {
	t.Parallel()
	a, err := New([]int{2, 3}, make([]float32, 6))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 6, a.Len())

	_, err = New([]int{2, 3}, make([]float32, 5))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = New([]int{-1}, nil)
	assert.Error(t, err)
}

func TestZerosAndScalar(t *testing.T) {
	t.Parallel()
	z := Zeros(2, 2, 3)
	assert.Equal(t, 12, z.Len())
	assert.Equal(t, 3, z.Rank())
	assert.Equal(t, 3, z.Dim(2))

	s := Scalar(1.5)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, float32(1.5), s.Data()[0])
}

func TestMean(t *testing.T) {
	t.Parallel()
	a, err := New([]int{4}, []float32{1, 2, 3, 4})
	require.NoError(t, err)

	mean, err := a.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, mean, 1e-6)

	_, err = FloatArray{}.Mean()
	assert.Error(t, err)
}
