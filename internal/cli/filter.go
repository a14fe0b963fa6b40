package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/filter/design/band"
	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/spectrum"
	"github.com/Sivabala06/Biomedical-signal-Filtering/dsp/timing"
	"github.com/Sivabala06/Biomedical-signal-Filtering/pipeline"
	"github.com/Sivabala06/Biomedical-signal-Filtering/timeseries"
)

var (
	filterInput    string
	filterType     string
	filterOutput   string
	filterEDF      string
	filterSkipRows int
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Condition a recording and export the filtered signal",
	RunE:  runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVarP(&filterInput, "input", "i", "", "Path to the recording (.csv)")
	filterCmd.Flags().StringVarP(&filterType, "type", "t", "", "Signal type: ecg or eeg")
	filterCmd.Flags().StringVarP(&filterOutput, "output", "o", "", "Output CSV path (empty: from config)")
	filterCmd.Flags().StringVar(&filterEDF, "edf", "", "Optional EDF export path")
	filterCmd.Flags().IntVar(&filterSkipRows, "skip-rows", -1, "Header rows to skip (-1: from config)")

	_ = filterCmd.MarkFlagRequired("input")
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	if !rootCmd.PersistentFlags().Changed("log-level") {
		if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			log = log.Level(level)
		}
	}

	if filterType == "" {
		filterType = cfg.SignalType
	}
	if filterOutput == "" {
		filterOutput = cfg.Output
	}
	if filterSkipRows < 0 {
		filterSkipRows = cfg.SkipRows
	}

	signalType, err := band.ParseSignalType(filterType)
	if err != nil {
		return err
	}

	f, err := os.Open(filterInput)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	series, err := timeseries.ParseCSV(f, timeseries.WithSkipRows(filterSkipRows))
	if err != nil {
		return err
	}
	log.Info().Str("input", filterInput).Int("samples", len(series)).Msg("recording loaded")

	res, err := pipeline.Run(series, signalType)
	if err != nil {
		return err
	}
	log.Info().Int("fs_hz", res.SampleRate).Str("type", string(signalType)).Msg("signal conditioned")

	reportTiming(series)
	reportSpectrum(res)

	if err := exportCSV(filterOutput, series, res.Filtered); err != nil {
		return err
	}
	log.Info().Str("output", filterOutput).Msg("filtered signal written")

	if filterEDF != "" {
		if err := exportEDF(filterEDF, cfg.EDF.Label, res); err != nil {
			return err
		}
		log.Info().Str("output", filterEDF).Msg("EDF export written")
	}

	return nil
}

func reportTiming(series timeseries.Series) {
	st, err := timing.Intervals(series.Timestamps())
	if err != nil {
		return
	}
	log.Debug().
		Float64("mean_interval_s", st.Mean).
		Float64("min_interval_s", st.Min).
		Float64("max_interval_s", st.Max).
		Float64("jitter_s", st.Jitter).
		Msg("timestamp intervals")
}

func reportSpectrum(res pipeline.Result) {
	fs := float64(res.SampleRate)

	before, err := spectrum.Analyze(res.Original, fs)
	if err != nil {
		log.Warn().Err(err).Msg("spectrum analysis skipped")
		return
	}
	after, err := spectrum.Analyze(res.Filtered, fs)
	if err != nil {
		log.Warn().Err(err).Msg("spectrum analysis skipped")
		return
	}

	log.Info().
		Float64("dominant_hz_before", before.DominantFrequency()).
		Float64("dominant_hz_after", after.DominantFrequency()).
		Msg("spectral summary")
}

func exportCSV(path string, series timeseries.Series, filtered []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := timeseries.WriteCSV(f, series, filtered); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func exportEDF(path, label string, res pipeline.Result) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create edf output: %w", err)
	}

	if err := timeseries.WriteEDF(f, label, res.SampleRate, time.Now().UTC(), res.Filtered); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
