package tensor

import (
	"errors"
	"fmt"
)

var ErrShapeMismatch = errors.New("tensor: data length does not match shape")

// FloatArray is a dense float32 tensor with a fixed shape. Instances are
// treated as immutable once constructed; they are passed by value between
// pipeline stages and never mutated in place.
type FloatArray struct {
	shape []int
	data  []float32
}

// New constructs a FloatArray from a shape and backing data. The data slice
// is retained, not copied; the caller must not modify it afterwards.
func New(shape []int, data []float32) (FloatArray, error) {
	n := 1
	for _, dim := range shape {
		if dim < 0 {
			return FloatArray{}, fmt.Errorf("tensor: negative dimension %d", dim)
		}
		n *= dim
	}
	if n != len(data) {
		return FloatArray{}, fmt.Errorf("%w: shape %v wants %d values, got %d",
			ErrShapeMismatch, shape, n, len(data))
	}
	return FloatArray{shape: append([]int(nil), shape...), data: data}, nil
}

// Zeros returns a zero-filled FloatArray with the given shape.
func Zeros(shape ...int) FloatArray {
	n := 1
	for _, dim := range shape {
		if dim < 0 {
			n = 0
			break
		}
		n *= dim
	}
	a, _ := New(shape, make([]float32, n))
	return a
}

// Scalar returns a rank-0 FloatArray holding a single value.
func Scalar(v float32) FloatArray {
	a, _ := New(nil, []float32{v})
	return a
}

// Shape returns a copy of the tensor's dimensions.
func (a FloatArray) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Rank returns the number of dimensions.
func (a FloatArray) Rank() int {
	return len(a.shape)
}

// Dim returns the size of dimension i.
func (a FloatArray) Dim(i int) int {
	return a.shape[i]
}

// Len returns the total number of elements.
func (a FloatArray) Len() int {
	return len(a.data)
}

// Data exposes the backing values. Callers must not modify the returned
// slice.
func (a FloatArray) Data() []float32 {
	return a.data
}

// Mean returns the arithmetic mean of all elements. An empty tensor yields
// an error rather than NaN.
func (a FloatArray) Mean() (float32, error) {
	if len(a.data) == 0 {
		return 0, errors.New("tensor: mean of empty array")
	}
	var sum float64
	for _, v := range a.data {
		sum += float64(v)
	}
	return float32(sum / float64(len(a.data))), nil
}
