// Package biquad implements second-order IIR filter sections and
// cascades of them. Sections use the Direct Form II Transposed
// structure, which keeps the delay line short and is numerically
// well-behaved for the low-order Butterworth cascades used by the
// bandpass conditioning stages.
package biquad
