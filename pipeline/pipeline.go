// Package pipeline sequences the signal-conditioning stages: sampling
// rate estimation, bandpass design for the signal type, and zero-phase
// application. It owns no I/O; loading and presentation live with the
// caller.
package pipeline

import (
	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/design/band"
	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/zerophase"
	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/timing"
	"github.com/Sivabala06/Biomedical-signal-Filtering/timeseries"
)

// Result is the conditioned output of one pipeline run. Original and
// Filtered are aligned with the input series sample for sample.
type Result struct {
	SampleRate int
	Original   []float64
	Filtered   []float64
}

// Run conditions one recording: estimates the sampling rate from the
// series timestamps, designs the bandpass preset for the signal type
// at that rate, and applies it with zero phase distortion.
//
// Stage failures abort the run and surface the originating error
// unchanged; the causes are deterministic input-quality or
// configuration problems, so there is nothing to retry.
func Run(series timeseries.Series, signalType band.SignalType) (Result, error) {
	fs, err := timing.Estimate(series.Timestamps())
	if err != nil {
		return Result{}, err
	}

	sections, err := band.Design(signalType, float64(fs))
	if err != nil {
		return Result{}, err
	}

	values := series.Values()
	filtered, err := zerophase.Apply(values, sections)
	if err != nil {
		return Result{}, err
	}

	return Result{
		SampleRate: fs,
		Original:   values,
		Filtered:   filtered,
	}, nil
}
