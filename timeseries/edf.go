package timeseries

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/OpenPSG/edf"
)

// WriteEDF exports a conditioned signal as a single-channel EDF
// recording with one-second data records of fs samples each. The
// physical range is taken from the data; a trailing partial record is
// padded with the last sample value so record boundaries stay exact.
func WriteEDF(w io.WriteSeeker, label string, fs int, startTime time.Time, values []float64) error {
	if fs <= 0 {
		return fmt.Errorf("timeseries: edf export needs a positive sampling rate, got %d", fs)
	}
	if len(values) == 0 {
		return fmt.Errorf("timeseries: edf export needs a non-empty signal")
	}

	physMin, physMax := values[0], values[0]
	for _, v := range values {
		physMin = math.Min(physMin, v)
		physMax = math.Max(physMax, v)
	}
	if physMin == physMax {
		// A flat signal still needs a non-degenerate calibration range.
		physMin--
		physMax++
	}

	hdr := edf.Header{
		Version:            edf.Version0,
		RecordingID:        "conditioned biomedical signal",
		StartTime:          startTime,
		DataRecordDuration: time.Second,
		SignalCount:        1,
		Signals: []edf.SignalHeader{
			{
				Label:             label,
				PhysicalDimension: "uV",
				PhysicalMin:       physMin,
				PhysicalMax:       physMax,
				DigitalMin:        -32768,
				DigitalMax:        32767,
				SamplesPerRecord:  fs,
			},
		},
	}

	ew, err := edf.Create(w, hdr)
	if err != nil {
		return fmt.Errorf("timeseries: edf create: %w", err)
	}

	record := make([]float64, fs)
	for off := 0; off < len(values); off += fs {
		n := copy(record, values[off:])
		for i := n; i < fs; i++ {
			record[i] = values[len(values)-1]
		}
		if err := ew.WriteRecord([][]float64{record}); err != nil {
			return fmt.Errorf("timeseries: edf record at sample %d: %w", off, err)
		}
	}

	if err := ew.Close(); err != nil {
		return fmt.Errorf("timeseries: edf close: %w", err)
	}

	return nil
}
