package zerophase

import (
	"errors"
	"math"
	"testing"

	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/biquad"
	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/design/band"
	"github.com/Sivabala06/Biomedical-signal-Filtering/internal/testutil"
)

func ecgSections(t *testing.T, fs float64) []biquad.Coefficients {
	t.Helper()
	sections, err := band.Design(band.ECG, fs)
	if err != nil {
		t.Fatalf("design: %v", err)
	}
	return sections
}

func TestApply_PreservesLength(t *testing.T) {
	fs := 250.0
	in := testutil.DeterministicSine(10, fs, 1, 5000)
	out, err := Apply(in, ecgSections(t, fs))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("length=%d, want %d", len(out), len(in))
	}
}

func TestApply_PassbandToneSurvives(t *testing.T) {
	fs := 250.0
	in := testutil.DeterministicSine(10, fs, 1, 5000)
	out, err := Apply(in, ecgSections(t, fs))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Skip half a second at each end; measure amplitude in the middle.
	peak := testutil.PeakAmplitude(out, int(fs/2))
	if peak < 0.95 {
		t.Fatalf("passband peak=%v, want > 0.95", peak)
	}
}

func TestApply_ZeroPhase_CrossingsUnshifted(t *testing.T) {
	fs := 250.0
	in := testutil.DeterministicSine(10, fs, 1, 5000)
	out, err := Apply(in, ecgSections(t, fs))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	skip := int(fs)
	inCross := testutil.ZeroCrossings(in, skip)
	outCross := testutil.ZeroCrossings(out, skip)
	if len(inCross) != len(outCross) {
		t.Fatalf("crossing count: in=%d out=%d", len(inCross), len(outCross))
	}
	for i := range inCross {
		if d := inCross[i] - outCross[i]; d < -1 || d > 1 {
			t.Fatalf("crossing %d shifted by %d samples", i, d)
		}
	}
}

func TestApply_StopbandToneAttenuated(t *testing.T) {
	fs := 250.0
	// 100 Hz is more than twice the 45 Hz upper edge.
	in := testutil.DeterministicSine(100, fs, 1, 5000)
	out, err := Apply(in, ecgSections(t, fs))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	peak := testutil.PeakAmplitude(out, int(fs/2))
	if peak > 0.05 {
		t.Fatalf("stopband peak=%v, want < 0.05", peak)
	}
}

func TestApply_DriftRemoved(t *testing.T) {
	fs := 250.0
	n := 5000
	in := make([]float64, n)
	tone := testutil.DeterministicSine(10, fs, 1, n)
	for i := range in {
		// Passband tone riding on a constant offset.
		in[i] = 2.0 + tone[i]
	}

	out, err := Apply(in, ecgSections(t, fs))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// The highpass stage removes the offset: mean of the middle
	// portion should be near zero.
	sum := 0.0
	skip := int(fs)
	for i := skip; i < n-skip; i++ {
		sum += out[i]
	}
	mean := sum / float64(n-2*skip)
	if math.Abs(mean) > 0.05 {
		t.Fatalf("residual offset=%v, want ~0", mean)
	}
}

func TestApply_SyntheticECGFinite(t *testing.T) {
	fs := 250.0
	in := testutil.SyntheticECG(fs, 72, 0.02, 10000)
	out, err := Apply(in, ecgSections(t, fs))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(out) != 10000 {
		t.Fatalf("length=%d, want 10000", len(out))
	}
	testutil.RequireFinite(t, out)
}

func TestApply_TooShortInput(t *testing.T) {
	fs := 250.0
	sections := ecgSections(t, fs)
	short := make([]float64, 6*len(sections)) // not greater than pad

	_, err := Apply(short, sections)
	var le *LengthError
	if !errors.As(err, &le) {
		t.Fatalf("error=%v, want *LengthError", err)
	}
	if le.Len != len(short) || le.MinLen != 6*len(sections) {
		t.Fatalf("diagnostics: %+v", le)
	}
}

func TestApply_PadLengthOption(t *testing.T) {
	fs := 250.0
	sections := ecgSections(t, fs)

	in := testutil.DeterministicSine(10, fs, 1, 200)
	if _, err := Apply(in, sections, WithPadLength(199)); err != nil {
		t.Fatalf("pad below length should pass: %v", err)
	}
	if _, err := Apply(in, sections, WithPadLength(200)); err == nil {
		t.Fatal("pad equal to length should fail")
	}
}

func TestApply_InputUntouched(t *testing.T) {
	fs := 250.0
	in := testutil.DeterministicSine(10, fs, 1, 1000)
	orig := append([]float64(nil), in...)

	if _, err := Apply(in, ecgSections(t, fs)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}
