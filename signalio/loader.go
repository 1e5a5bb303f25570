package signalio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/suwarna-wave/motor-vibration-fault-detector/logging"
)

// ErrRateUnavailable is returned when a sampling rate cannot be inferred
// from the time column: fewer than two time points, or a non-positive
// median sample interval
var ErrRateUnavailable = errors.New("sampling rate unavailable")

// SignalData is one loaded vibration record: the acceleration samples,
// the optional time axis, and the sampling rate inferred from it.
// SampleRate is 0 when no rate could be inferred.
type SignalData struct {
	Time       []float64 `json:"time,omitempty"`
	Samples    []float64 `json:"samples"`
	SampleRate float64   `json:"sample_rate"`
}

// HasRate reports whether a usable sampling rate was inferred
func (sd *SignalData) HasRate() bool {
	return sd.SampleRate > 0
}

// Load reads a vibration CSV. The file must have a header row; the
// acceleration column is the one named "accel", falling back to the last
// column. A column named "time" is optional and, when present, is used to
// infer the sampling rate as the reciprocal of the median interval between
// consecutive time points. SampleRate is left at 0 when inference is not
// possible; callers decide whether that is fatal.
func Load(path string) (*SignalData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening signal file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s: empty file, expected a header row (e.g. time,accel)", path)
	}

	header := records[0]
	accelCol := -1
	timeCol := -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "accel":
			accelCol = i
		case "time":
			timeCol = i
		}
	}
	if accelCol < 0 {
		// Fallback: last column holds the values
		accelCol = len(header) - 1
	}

	rows := records[1:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	data := &SignalData{
		Samples: make([]float64, 0, len(rows)),
	}
	if timeCol >= 0 {
		data.Time = make([]float64, 0, len(rows))
	}

	for i, row := range rows {
		if accelCol >= len(row) {
			return nil, fmt.Errorf("%s: row %d has %d fields, need at least %d", path, i+2, len(row), accelCol+1)
		}

		accel, err := strconv.ParseFloat(strings.TrimSpace(row[accelCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad accel value %q", path, i+2, row[accelCol])
		}
		data.Samples = append(data.Samples, accel)

		if timeCol >= 0 {
			t, err := strconv.ParseFloat(strings.TrimSpace(row[timeCol]), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad time value %q", path, i+2, row[timeCol])
			}
			data.Time = append(data.Time, t)
		}
	}

	if timeCol >= 0 {
		rate, err := InferSampleRate(data.Time)
		if err != nil {
			logging.Debug("Sampling rate inference failed", logging.Fields{
				"path": path,
			})
		} else {
			data.SampleRate = rate
		}
	}

	return data, nil
}

// InferSampleRate derives a sampling rate from a time axis as the
// reciprocal of the median of consecutive differences. The median makes
// the estimate robust to the occasional dropped or duplicated sample.
// Returns ErrRateUnavailable when fewer than two time points exist or the
// median interval is not positive.
func InferSampleRate(times []float64) (float64, error) {
	if len(times) < 2 {
		return 0, ErrRateUnavailable
	}

	diffs := make([]float64, len(times)-1)
	for i := 1; i < len(times); i++ {
		diffs[i-1] = times[i] - times[i-1]
	}
	sort.Float64s(diffs)

	var dt float64
	mid := len(diffs) / 2
	if len(diffs)%2 == 0 {
		dt = (diffs[mid-1] + diffs[mid]) / 2.0
	} else {
		dt = diffs[mid]
	}

	if dt <= 0 {
		return 0, ErrRateUnavailable
	}
	return 1.0 / dt, nil
}
