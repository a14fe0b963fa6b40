// Package timeseries loads single-channel biomedical recordings into
// uniform time/value series and exports conditioned results. Parsing
// normalizes the messy timestamp formats found in exported CSV files;
// the downstream pipeline only ever sees elapsed seconds and numeric
// values.
package timeseries

import (
	"errors"
	"fmt"
)

// Sample is one recorded point: elapsed seconds since the start of
// the recording and the measured value.
type Sample struct {
	T float64 // seconds since start
	V float64
}

// Series is an ordered, non-empty sequence of samples with strictly
// increasing timestamps.
type Series []Sample

// ErrUnsupportedFormat is returned when the input cannot be
// interpreted as time+value pairs.
var ErrUnsupportedFormat = errors.New("timeseries: input is not interpretable as time+value pairs")

// ErrNonMonotonicTime is returned when normalized timestamps repeat
// or decrease. Such inputs are a data-quality problem and are never
// silently accepted.
var ErrNonMonotonicTime = errors.New("timeseries: timestamps are not strictly increasing")

// Timestamps returns the elapsed-seconds column as a new slice.
func (s Series) Timestamps() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = smp.T
	}
	return out
}

// Values returns the value column as a new slice.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = smp.V
	}
	return out
}

// New builds a Series from parallel timestamp and value slices,
// enforcing the non-empty and strictly-increasing invariants.
func New(timestamps, values []float64) (Series, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps vs %d values",
			ErrUnsupportedFormat, len(timestamps), len(values))
	}
	if len(timestamps) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrUnsupportedFormat)
	}

	s := make(Series, len(timestamps))
	for i := range timestamps {
		if i > 0 && timestamps[i] <= timestamps[i-1] {
			return nil, fmt.Errorf("%w: sample %d (t=%g) does not advance past t=%g",
				ErrNonMonotonicTime, i, timestamps[i], timestamps[i-1])
		}
		s[i] = Sample{T: timestamps[i], V: values[i]}
	}

	return s, nil
}
