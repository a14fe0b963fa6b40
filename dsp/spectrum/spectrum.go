// Package spectrum computes one-sided magnitude spectra of recorded
// signals. It backs the conditioning report (dominant frequency and
// band power before/after filtering) and the attenuation checks in
// the pipeline tests.
package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Analysis holds a one-sided magnitude spectrum with its bin spacing.
type Analysis struct {
	Magnitude  []float64 // bins 0 (DC) .. Nyquist
	BinHz      float64
	SampleRate float64
	FFTSize    int
}

// Analyze computes the Hann-windowed magnitude spectrum of signal,
// zero-padded to the next power of two.
func Analyze(signal []float64, sampleRate float64) (*Analysis, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("spectrum: empty signal")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be positive: %g", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v*hann(i, len(signal)), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return &Analysis{
		Magnitude:  mag,
		BinHz:      sampleRate / float64(fftSize),
		SampleRate: sampleRate,
		FFTSize:    fftSize,
	}, nil
}

// DominantFrequency returns the frequency of the strongest non-DC bin.
func (a *Analysis) DominantFrequency() float64 {
	maxBin := 1
	for i := 2; i < len(a.Magnitude); i++ {
		if a.Magnitude[i] > a.Magnitude[maxBin] {
			maxBin = i
		}
	}

	return float64(maxBin) * a.BinHz
}

// BandPower sums squared magnitudes over [lowHz, highHz].
func (a *Analysis) BandPower(lowHz, highHz float64) float64 {
	if highHz < lowHz {
		lowHz, highHz = highHz, lowHz
	}

	lo := int(math.Ceil(lowHz / a.BinHz))
	hi := int(math.Floor(highHz / a.BinHz))
	if lo < 0 {
		lo = 0
	}
	if hi > len(a.Magnitude)-1 {
		hi = len(a.Magnitude) - 1
	}

	power := 0.0
	for i := lo; i <= hi; i++ {
		power += a.Magnitude[i] * a.Magnitude[i]
	}

	return power
}

func hann(i, n int) float64 {
	if n <= 1 {
		return 1
	}

	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
