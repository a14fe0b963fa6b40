// Package zerophase applies a biquad cascade forward and backward
// over a finite recording so the net phase response is zero. Feature
// timing in biomedical signals (QRS complexes, EEG transients) is
// preserved at the cost of squaring the magnitude response.
package zerophase

import (
	"fmt"

	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/biquad"
)

// LengthError reports an input too short for the edge handling the
// cascade requires.
type LengthError struct {
	Len    int
	MinLen int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("zerophase: input of %d samples is too short (need more than %d)", e.Len, e.MinLen)
}

// Option configures Apply.
type Option func(*config)

type config struct {
	padLen int
}

// WithPadLength overrides the edge padding length in samples.
// Non-positive values restore the default of 6 samples per section.
func WithPadLength(n int) Option {
	return func(cfg *config) { cfg.padLen = n }
}

// Apply runs the cascade over values forward, then backward, and
// returns a new slice of identical length. The input is extended at
// both ends by odd reflection and each section starts from its DC
// steady state, so edge transients stay inside the padding.
//
// Returns *LengthError when len(values) is not greater than the
// padding length.
func Apply(values []float64, sections []biquad.Coefficients, opts ...Option) ([]float64, error) {
	cfg := config{padLen: 6 * len(sections)}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.padLen <= 0 {
		cfg.padLen = 6 * len(sections)
	}

	n := len(values)
	pad := cfg.padLen
	if n <= pad {
		return nil, &LengthError{Len: n, MinLen: pad}
	}

	chain := biquad.NewChain(sections)

	buf := padOddReflect(values, pad)

	// Forward pass, anchored to the first padded sample.
	chain.ResetToDC(buf[0])
	chain.ProcessBlock(buf)

	// Backward pass over the reversed forward output.
	reverse(buf)
	chain.ResetToDC(buf[0])
	chain.ProcessBlock(buf)
	reverse(buf)

	out := make([]float64, n)
	copy(out, buf[pad:pad+n])

	return out, nil
}

// padOddReflect extends values by pad samples on each side using odd
// reflection about the end points: 2*x[0] - x[k] on the left and
// 2*x[n-1] - x[n-1-k] on the right. This keeps the extension
// continuous in value and slope, which limits edge ringing.
func padOddReflect(values []float64, pad int) []float64 {
	n := len(values)
	buf := make([]float64, n+2*pad)

	first := values[0]
	last := values[n-1]
	for i := 0; i < pad; i++ {
		buf[pad-1-i] = 2*first - values[i+1]
		buf[pad+n+i] = 2*last - values[n-2-i]
	}
	copy(buf[pad:], values)

	return buf
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
