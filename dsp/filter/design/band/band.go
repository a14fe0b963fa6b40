// Package band designs the bandpass conditioning filters for
// biomedical recordings. Band edges and filter order are fixed per
// signal type; the sample rate is whatever the recording was measured
// at, so the band must be validated against Nyquist before design.
package band

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/biquad"
	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/design/pass"
)

// SignalType selects a fixed bandpass preset.
type SignalType string

const (
	ECG SignalType = "ecg"
	EEG SignalType = "eeg"
)

// Preset holds the fixed band edges and order for one signal type.
type Preset struct {
	LowcutHz  float64
	HighcutHz float64
	Order     int
}

// presets is the process-wide lookup table. EEG uses a 1 Hz lower
// edge, which is safer against slow drift than the ECG setting.
var presets = map[SignalType]Preset{
	ECG: {LowcutHz: 0.5, HighcutHz: 45.0, Order: 4},
	EEG: {LowcutHz: 1.0, HighcutHz: 30.0, Order: 4},
}

// ErrUnsupportedSignalType is returned for signal types outside the
// preset table.
var ErrUnsupportedSignalType = errors.New("band: unsupported signal type (choose ecg or eeg)")

// RangeError reports a band that cannot be realized at the given
// sample rate, typically because the rate is below twice the upper
// band edge.
type RangeError struct {
	SampleRate float64
	LowcutHz   float64
	HighcutHz  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("band: invalid filter range: fs=%g, low=%g, high=%g",
		e.SampleRate, e.LowcutHz, e.HighcutHz)
}

// ParseSignalType converts user input to a SignalType. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseSignalType(s string) (SignalType, error) {
	st := SignalType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSignalType, s)
	}

	return st, nil
}

// PresetFor returns the preset for a signal type.
func PresetFor(st SignalType) (Preset, error) {
	p, ok := presets[st]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnsupportedSignalType, st)
	}

	return p, nil
}

// Design produces the bandpass cascade for a signal type at the given
// sample rate: a highpass Butterworth at the lower band edge followed
// by a lowpass Butterworth at the upper edge, each of the preset
// order. The composite response is maximally flat in the passband and
// monotonic in the stopbands.
//
// Returns ErrUnsupportedSignalType for unknown types and *RangeError
// when the normalized band edges violate 0 < low < high < 1.
func Design(st SignalType, sampleRate float64) ([]biquad.Coefficients, error) {
	p, err := PresetFor(st)
	if err != nil {
		return nil, err
	}

	nyquist := sampleRate / 2
	low := p.LowcutHz / nyquist
	high := p.HighcutHz / nyquist
	if !(0 < low && low < high && high < 1) {
		return nil, &RangeError{
			SampleRate: sampleRate,
			LowcutHz:   p.LowcutHz,
			HighcutHz:  p.HighcutHz,
		}
	}

	sections := pass.ButterworthHP(p.LowcutHz, p.Order, sampleRate)
	sections = append(sections, pass.ButterworthLP(p.HighcutHz, p.Order, sampleRate)...)

	return sections, nil
}
