package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	s, err := New([]float64{0, 0.01, 0.02}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, s, 3)

	assert.Equal(t, []float64{0, 0.01, 0.02}, s.Timestamps())
	assert.Equal(t, []float64{1, 2, 3}, s.Values())
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil, nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := New([]float64{0, 1}, []float64{1})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNew_DuplicateTimestamp(t *testing.T) {
	_, err := New([]float64{0, 0.01, 0.01}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrNonMonotonicTime)
}

func TestNew_DecreasingTimestamp(t *testing.T) {
	_, err := New([]float64{0, 0.02, 0.01}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrNonMonotonicTime)
}
