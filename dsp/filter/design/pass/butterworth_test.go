package pass

import (
	"math"
	"testing"

	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestButterworthLP_SectionCount(t *testing.T) {
	sr := 250.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2
		got := ButterworthLP(40, order, sr)
		if len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworthHP_SectionCount(t *testing.T) {
	sr := 250.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2
		got := ButterworthHP(1, order, sr)
		if len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworth_OddOrder_HasFirstOrderSection(t *testing.T) {
	sr := 250.0
	for _, order := range []int{1, 3, 5} {
		got := ButterworthLP(30, order, sr)
		last := got[len(got)-1]
		if last.B2 != 0 || last.A2 != 0 {
			t.Fatalf("order %d: final section not first-order: %+v", order, last)
		}
	}
}

func TestButterworthLP_Minus3dBAtCutoff(t *testing.T) {
	sr := 250.0
	freq := 45.0
	for _, order := range []int{1, 2, 3, 4, 6} {
		chain := biquad.NewChain(ButterworthLP(freq, order, sr))
		got := chain.MagnitudeDB(freq, sr)
		if !almostEqual(got, -3.01, 0.1) {
			t.Fatalf("order %d: cutoff=%v dB, want ~-3", order, got)
		}
	}
}

func TestButterworthHP_Minus3dBAtCutoff(t *testing.T) {
	sr := 250.0
	freq := 0.5
	for _, order := range []int{1, 2, 4} {
		chain := biquad.NewChain(ButterworthHP(freq, order, sr))
		got := chain.MagnitudeDB(freq, sr)
		if !almostEqual(got, -3.01, 0.1) {
			t.Fatalf("order %d: cutoff=%v dB, want ~-3", order, got)
		}
	}
}

func TestButterworthLP_HigherOrderSteeperRolloff(t *testing.T) {
	sr := 250.0
	freq := 30.0
	prevAtten := 0.0
	for _, order := range []int{1, 2, 4, 6} {
		chain := biquad.NewChain(ButterworthLP(freq, order, sr))
		atten := -chain.MagnitudeDB(2*freq, sr)
		if atten <= prevAtten {
			t.Fatalf("order %d: attenuation %v dB not steeper than %v dB", order, atten, prevAtten)
		}
		prevAtten = atten
	}
}

func TestButterworthLP_MatchesAnalogPrototype(t *testing.T) {
	// |H(f)|^2 = 1 / (1 + (f/fc)^(2n)) for the analog prototype; the
	// bilinear design should track it closely well below Nyquist.
	sr := 1000.0
	fc := 45.0
	order := 4
	chain := biquad.NewChain(ButterworthLP(fc, order, sr))

	for _, f := range []float64{5, 20, 45, 60, 90} {
		want := 1 / (1 + math.Pow(f/fc, float64(2*order)))
		got := math.Pow(chain.Magnitude(f, sr), 2)
		if math.Abs(got-want) > 0.02 {
			t.Fatalf("f=%v: |H|^2=%v, analog prototype=%v", f, got, want)
		}
	}
}

func TestButterworth_AllSectionsStable(t *testing.T) {
	for _, sr := range []float64{100, 250, 500, 1000} {
		for _, order := range []int{1, 2, 4, 8} {
			for _, c := range ButterworthLP(sr/8, order, sr) {
				if !c.IsStable() {
					t.Fatalf("LP sr=%v order=%d: unstable %+v", sr, order, c)
				}
			}
			for _, c := range ButterworthHP(sr/100, order, sr) {
				if !c.IsStable() {
					t.Fatalf("HP sr=%v order=%d: unstable %+v", sr, order, c)
				}
			}
		}
	}
}

func TestButterworth_InvalidInputs(t *testing.T) {
	if got := ButterworthLP(40, -1, 250); got != nil {
		t.Fatal("expected nil for negative order")
	}
	if got := ButterworthHP(40, 0, 250); got != nil {
		t.Fatal("expected nil for zero order")
	}
}

func TestButterworthQ_KnownValues(t *testing.T) {
	// Order 2, index 0: Q = 1/(2*sin(pi/4)) = 1/sqrt(2)
	got := butterworthQ(2, 0)
	want := 1 / math.Sqrt2
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("order=2 index=0: Q=%.10f, want %.10f", got, want)
	}

	// Order 4: Q values 1.3066, 0.5412 (standard table)
	if got := butterworthQ(4, 0); !almostEqual(got, 1.3066, 1e-4) {
		t.Fatalf("order=4 index=0: Q=%v", got)
	}
	if got := butterworthQ(4, 1); !almostEqual(got, 0.5412, 1e-4) {
		t.Fatalf("order=4 index=1: Q=%v", got)
	}
}
