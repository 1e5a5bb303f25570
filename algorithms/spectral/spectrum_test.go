package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTone(sampleRate float64, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		t := float64(i) / sampleRate
		x[i] = math.Sin(2*math.Pi*10*t) + 0.5*math.Sin(2*math.Pi*20*t)
	}
	return x
}

func TestComputeShape(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	spec, err := sa.Compute(twoTone(1000, 2000), 1000)
	require.NoError(t, err)

	assert.Len(t, spec.Frequencies, 1001)
	assert.Equal(t, len(spec.Frequencies), len(spec.Magnitudes))
	assert.Equal(t, 0.0, spec.Frequencies[0])
	assert.InDelta(t, 500.0, spec.Frequencies[len(spec.Frequencies)-1], 1e-9)
	assert.InDelta(t, 500.0, spec.Nyquist(), 1e-9)
}

func TestComputeOddLength(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	spec, err := sa.Compute(make([]float64, 1001), 1000)
	require.NoError(t, err)

	// N/2+1 bins with integer division
	assert.Len(t, spec.Frequencies, 501)
}

func TestComputeRejectsBadInput(t *testing.T) {
	sa := NewSpectrumAnalyzer()

	_, err := sa.Compute(nil, 1000)
	assert.Error(t, err)

	_, err = sa.Compute([]float64{1, 2, 3}, 0)
	assert.Error(t, err)

	_, err = sa.Compute([]float64{1, 2, 3}, -5)
	assert.Error(t, err)
}

func TestPeakAmplitudeTwoTone(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	spec, err := sa.Compute(twoTone(1000, 2000), 1000)
	require.NoError(t, err)

	// Amplitude normalization: a sinusoid of amplitude A reports ~A
	assert.Greater(t, spec.PeakAmplitude(10, 2.0), 0.8)
	assert.Greater(t, spec.PeakAmplitude(20, 2.0), 0.4)
	assert.InDelta(t, 1.0, spec.PeakAmplitude(10, 2.0), 1e-6)
	assert.InDelta(t, 0.5, spec.PeakAmplitude(20, 2.0), 1e-6)
}

func TestPeakAmplitudeAboveNyquist(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	spec, err := sa.Compute(twoTone(1000, 2000), 1000)
	require.NoError(t, err)

	// Search window entirely above Nyquist contains no bins
	assert.Equal(t, 0.0, spec.PeakAmplitude(600, 2.0))
}

func TestBandEnergy(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	spec, err := sa.Compute(twoTone(1000, 2000), 1000)
	require.NoError(t, err)

	// The 10 Hz tone carries magnitude 1.0 and the 20 Hz tone 0.5:
	// band energies are the squared magnitudes
	assert.InDelta(t, 1.0, spec.BandEnergy(8, 12), 1e-6)
	assert.InDelta(t, 0.25, spec.BandEnergy(18, 22), 1e-6)
	assert.InDelta(t, 1.25, spec.BandEnergy(0, spec.Nyquist()), 1e-6)

	// Empty band
	assert.Equal(t, 0.0, spec.BandEnergy(300, 200))
}

func TestCentroid(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	spec, err := sa.Compute(twoTone(1000, 2000), 1000)
	require.NoError(t, err)

	// Magnitude-weighted mean of 10 Hz (weight 1.0) and 20 Hz (weight 0.5)
	assert.InDelta(t, (10.0*1.0+20.0*0.5)/1.5, spec.Centroid(), 0.01)
}

func TestCentroidZeroSpectrum(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	spec, err := sa.Compute(make([]float64, 1000), 1000)
	require.NoError(t, err)

	assert.Equal(t, 0.0, spec.Centroid())
}
