package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TimeFeatures computes time-domain vibration statistics from a raw
// acceleration buffer. All methods are pure functions of the input slice:
// no state is kept between calls and the buffer is never modified.
//
// These four statistics are the standard time-domain indicators for rotating
// machinery condition monitoring:
// - RMS: overall vibration severity
// - Peak-to-peak: total excursion range
// - Kurtosis: impulsiveness (bearing defects produce repetitive impacts)
// - Crest factor: peak-to-RMS ratio, another impulsiveness proxy
type TimeFeatures struct{}

// NewTimeFeatures creates a new time-domain feature calculator
func NewTimeFeatures() *TimeFeatures {
	return &TimeFeatures{}
}

// RMS calculates root mean square: sqrt(mean(x^2))
func (tf *TimeFeatures) RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0.0
	}

	sumSquares := 0.0
	for _, val := range x {
		sumSquares += val * val
	}

	return math.Sqrt(sumSquares / float64(len(x)))
}

// PeakToPeak calculates max(x) - min(x)
func (tf *TimeFeatures) PeakToPeak(x []float64) float64 {
	if len(x) == 0 {
		return 0.0
	}

	return floats.Max(x) - floats.Min(x)
}

// Kurtosis calculates the fourth standardized moment E[((x-mu)/sigma)^4]
// using the population standard deviation. A normal-ish signal sits around
// 3; repetitive impacts drive it well above that.
//
// A constant signal has zero variance, where the moment is undefined;
// 0 is returned in that case rather than NaN.
func (tf *TimeFeatures) Kurtosis(x []float64) float64 {
	if len(x) == 0 {
		return 0.0
	}

	mean := stat.Mean(x, nil)
	sigma := stat.PopStdDev(x, nil)
	if sigma == 0 {
		return 0.0
	}

	sum := 0.0
	for _, val := range x {
		z := (val - mean) / sigma
		z2 := z * z
		sum += z2 * z2
	}

	return sum / float64(len(x))
}

// CrestFactor calculates max(|x|) / RMS. Typical values are 3-5 for a
// healthy machine and above 6 for impulsive faults. Returns 0 for a
// zero-RMS signal.
func (tf *TimeFeatures) CrestFactor(x []float64) float64 {
	if len(x) == 0 {
		return 0.0
	}

	rms := tf.RMS(x)
	if rms == 0 {
		return 0.0
	}

	peak := 0.0
	for _, val := range x {
		abs := math.Abs(val)
		if abs > peak {
			peak = abs
		}
	}

	return peak / rms
}
