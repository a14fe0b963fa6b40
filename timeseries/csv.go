package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseOption configures ParseCSV.
type ParseOption func(*parseConfig)

type parseConfig struct {
	skipRows int
}

// WithSkipRows sets how many leading rows (titles, units) to discard
// before data begins. Exported recordings typically carry two.
func WithSkipRows(n int) ParseOption {
	return func(cfg *parseConfig) {
		if n >= 0 {
			cfg.skipRows = n
		}
	}
}

// ParseCSV reads a two-column recording (timestamp, value) into a
// Series.
//
// Timestamp fields may be clock strings ("hh:mm:ss", "mm:ss", with
// optional fractional seconds and stray quote characters) or plain
// numeric seconds. Bare mm:ss stamps are extended with an hours
// component. Timestamps are rebased so the first sample is at t=0.
//
// Rows whose value fails numeric coercion are dropped; rows whose
// timestamp cannot be parsed make the input uninterpretable and
// produce ErrUnsupportedFormat, as do inputs with no usable rows.
// Duplicate or decreasing timestamps produce ErrNonMonotonicTime.
func ParseCSV(r io.Reader, opts ...ParseOption) (Series, error) {
	cfg := parseConfig{skipRows: 2}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var timestamps, values []float64

	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}

		row++
		if row <= cfg.skipRows {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d column(s), need 2",
				ErrUnsupportedFormat, row, len(record))
		}

		t, err := parseTimestamp(record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrUnsupportedFormat, row, err)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			// Value failed coercion: drop the row.
			continue
		}

		timestamps = append(timestamps, t)
		values = append(values, v)
	}

	if len(timestamps) == 0 {
		return nil, fmt.Errorf("%w: no usable rows", ErrUnsupportedFormat)
	}

	// Rebase to elapsed seconds since the first sample.
	start := timestamps[0]
	for i := range timestamps {
		timestamps[i] -= start
	}

	return New(timestamps, values)
}

// parseTimestamp converts a raw timestamp field to seconds. Stray
// quote characters are stripped and a missing hour component is
// filled in before parsing.
func parseTimestamp(field string) (float64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(field, "'", ""))
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	// Plain numeric seconds.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	// Clock format: extend mm:ss to hh:mm:ss.
	if strings.Count(s, ":") == 1 {
		s = "00:" + s
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("timestamp %q is neither seconds nor a clock string", field)
	}

	hours, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad hours in %q", field)
	}
	minutes, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, fmt.Errorf("bad minutes in %q", field)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("bad seconds in %q", field)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// WriteCSV writes the original and conditioned signals side by side:
// Time_sec, Signal, Filtered_Signal. The two signals must be aligned
// with the series.
func WriteCSV(w io.Writer, series Series, filtered []float64) error {
	if len(filtered) != len(series) {
		return fmt.Errorf("timeseries: filtered length %d does not match series length %d",
			len(filtered), len(series))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Time_sec", "Signal", "Filtered_Signal"}); err != nil {
		return fmt.Errorf("timeseries: write header: %w", err)
	}

	for i, smp := range series {
		rec := []string{
			strconv.FormatFloat(smp.T, 'g', -1, 64),
			strconv.FormatFloat(smp.V, 'g', -1, 64),
			strconv.FormatFloat(filtered[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("timeseries: write row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
