// Package testutil provides deterministic signal builders and
// numeric assertions shared by the filter and pipeline tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SyntheticECG generates an ECG-like waveform (non-clinical): a slow
// baseline plus Gaussian P, QRS and T deflections repeated at the
// given heart rate, with optional deterministic noise.
func SyntheticECG(sampleRate, heartRateBPM, noise float64, length int) []float64 {
	out := make([]float64, length)
	cycleHz := heartRateBPM / 60.0
	rng := rand.New(rand.NewSource(42))

	phase := 0.0
	for i := range out {
		t := phase

		baseline := 0.05 * math.Sin(2*math.Pi*0.33*t)
		p := 0.08 * gauss(t, 0.18, 0.03)
		q := -0.12 * gauss(t, 0.30, 0.01)
		r := 1.00 * gauss(t, 0.32, 0.008)
		s := -0.25 * gauss(t, 0.35, 0.012)
		tw := 0.25 * gauss(t, 0.60, 0.06)

		out[i] = baseline + p + q + r + s + tw + noise*(rng.Float64()*2-1)

		phase += cycleHz / sampleRate
		if phase >= 1 {
			phase -= 1
		}
	}

	return out
}

// UniformTimestamps returns length timestamps spaced dt seconds apart,
// starting at zero.
func UniformTimestamps(dt float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

func gauss(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}
