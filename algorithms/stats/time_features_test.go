package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq, amplitude, sampleRate float64, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		t := float64(i) / sampleRate
		x[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}
	return x
}

func TestZeroSignal(t *testing.T) {
	tf := NewTimeFeatures()
	x := make([]float64, 500)

	assert.Equal(t, 0.0, tf.RMS(x))
	assert.Equal(t, 0.0, tf.PeakToPeak(x))
	assert.Equal(t, 0.0, tf.Kurtosis(x))
	assert.Equal(t, 0.0, tf.CrestFactor(x))
}

func TestConstantSignal(t *testing.T) {
	tf := NewTimeFeatures()
	x := make([]float64, 200)
	for i := range x {
		x[i] = 2.5
	}

	assert.Equal(t, 0.0, tf.PeakToPeak(x))
	// Zero variance: kurtosis is overridden to 0 rather than NaN
	assert.Equal(t, 0.0, tf.Kurtosis(x))
	assert.InDelta(t, 2.5, tf.RMS(x), 1e-12)
	assert.InDelta(t, 1.0, tf.CrestFactor(x), 1e-12)
}

func TestSinusoid(t *testing.T) {
	tf := NewTimeFeatures()
	// 10 Hz unit sine over exactly 10 full periods
	x := sine(10, 1.0, 1000, 1000)

	assert.InDelta(t, 1.0/math.Sqrt2, tf.RMS(x), 1e-6)
	// A sinusoid is platykurtic: well below the normal-distribution value of 3
	assert.InDelta(t, 1.5, tf.Kurtosis(x), 1e-6)
	assert.InDelta(t, math.Sqrt2, tf.CrestFactor(x), 1e-6)
	assert.InDelta(t, 2.0, tf.PeakToPeak(x), 1e-6)
}

func TestImpulseKurtosis(t *testing.T) {
	tf := NewTimeFeatures()
	x := make([]float64, 1000)
	x[300] = 1.0

	require.Greater(t, tf.Kurtosis(x), 10.0)
}

func TestEmptyInput(t *testing.T) {
	tf := NewTimeFeatures()

	assert.Equal(t, 0.0, tf.RMS(nil))
	assert.Equal(t, 0.0, tf.PeakToPeak(nil))
	assert.Equal(t, 0.0, tf.Kurtosis(nil))
	assert.Equal(t, 0.0, tf.CrestFactor(nil))
}

func TestPeakToPeakAsymmetric(t *testing.T) {
	tf := NewTimeFeatures()
	x := []float64{-0.5, 0.1, 2.0, -1.5, 0.3}

	assert.InDelta(t, 3.5, tf.PeakToPeak(x), 1e-12)
}
