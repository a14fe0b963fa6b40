// Package timing derives an effective sampling rate from recorded
// timestamps. Real recordings carry minor inter-sample jitter, so the
// rate is estimated from the mean successive difference and rounded
// to the integer rate the filter design expects.
package timing

import (
	"errors"
	"math"
)

// ErrInsufficientData is returned when fewer than two timestamps are
// available; a sampling interval is undefined.
var ErrInsufficientData = errors.New("timing: need at least 2 timestamps to estimate a sampling rate")

// ErrDegenerateTiming is returned when the mean successive difference
// is zero or negative, which indicates duplicate or non-monotonic
// timestamps rather than a usable recording.
var ErrDegenerateTiming = errors.New("timing: non-positive mean sampling interval")

// Estimate returns round(1/mean(diff(timestamps))) in Hz.
//
// Timestamps are elapsed seconds since the start of the recording.
// Averaging the differences smooths out jitter; the result is snapped
// to an integer rate.
func Estimate(timestamps []float64) (int, error) {
	if len(timestamps) < 2 {
		return 0, ErrInsufficientData
	}

	// mean(diff) telescopes to (last-first)/(n-1).
	mean := (timestamps[len(timestamps)-1] - timestamps[0]) / float64(len(timestamps)-1)
	if mean <= 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
		return 0, ErrDegenerateTiming
	}

	fs := int(math.Round(1 / mean))
	if fs <= 0 {
		return 0, ErrDegenerateTiming
	}

	return fs, nil
}

// IntervalStats summarizes the successive timestamp differences of a
// recording. Used for data-quality reporting alongside the estimate.
type IntervalStats struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	Jitter float64 // standard deviation of the intervals
}

// Intervals computes IntervalStats over the successive differences.
// Requires at least two timestamps.
func Intervals(timestamps []float64) (IntervalStats, error) {
	if len(timestamps) < 2 {
		return IntervalStats{}, ErrInsufficientData
	}

	n := len(timestamps) - 1
	st := IntervalStats{Count: n}

	// Welford accumulation over the differences.
	var mean, m2 float64
	for i := 1; i < len(timestamps); i++ {
		d := timestamps[i] - timestamps[i-1]
		if i == 1 {
			st.Min, st.Max = d, d
		}
		if d < st.Min {
			st.Min = d
		}
		if d > st.Max {
			st.Max = d
		}

		delta := d - mean
		mean += delta / float64(i)
		m2 += delta * (d - mean)
	}

	st.Mean = mean
	if n > 1 {
		st.Jitter = math.Sqrt(m2 / float64(n))
	}

	return st, nil
}
