package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// PeakAmplitude returns max |v| over the middle portion of data,
// skipping skip samples at each end. Edge regions of a zero-phase
// filtered signal carry residual transients and are excluded from
// amplitude checks.
func PeakAmplitude(data []float64, skip int) float64 {
	peak := 0.0
	for i := skip; i < len(data)-skip; i++ {
		if a := math.Abs(data[i]); a > peak {
			peak = a
		}
	}
	return peak
}

// ZeroCrossings returns the indices i where data changes sign between
// i-1 and i, over the middle portion of data (skip samples excluded
// at each end).
func ZeroCrossings(data []float64, skip int) []int {
	var crossings []int
	for i := skip + 1; i < len(data)-skip; i++ {
		if (data[i-1] < 0 && data[i] >= 0) || (data[i-1] > 0 && data[i] <= 0) {
			crossings = append(crossings, i)
		}
	}
	return crossings
}
