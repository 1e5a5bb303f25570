package spectral

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Spectrum holds a one-sided amplitude spectrum: parallel frequency and
// magnitude slices of equal length. Magnitudes are amplitude-normalized
// (2/N scaling) so a pure sinusoid of amplitude A reports a magnitude of
// approximately A at its frequency bin.
type Spectrum struct {
	Frequencies []float64 `json:"frequencies"` // Bin center frequencies (Hz)
	Magnitudes  []float64 `json:"magnitudes"`  // Amplitude per bin
	SampleRate  float64   `json:"sample_rate"` // Sampling rate of the source signal (Hz)
	NumSamples  int       `json:"num_samples"` // Length of the source signal
}

// SpectrumAnalyzer computes one-sided magnitude spectra and band-limited
// scalar features from them
type SpectrumAnalyzer struct {
	fft *FFT
}

// NewSpectrumAnalyzer creates a new spectrum analyzer
func NewSpectrumAnalyzer() *SpectrumAnalyzer {
	return &SpectrumAnalyzer{
		fft: NewFFT(),
	}
}

// Compute computes the one-sided magnitude spectrum of x sampled at
// sampleRate. Bins are k*fs/N for k = 0..N/2, with magnitude 2/N * |X_k|.
func (sa *SpectrumAnalyzer) Compute(x []float64, sampleRate float64) (*Spectrum, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", sampleRate)
	}

	n := len(x)
	fftResult := sa.fft.Compute(x)

	// Positive frequencies only, DC and Nyquist included
	numBins := n/2 + 1

	freqs := make([]float64, numBins)
	mags := make([]float64, numBins)

	scale := 2.0 / float64(n)
	for k := 0; k < numBins; k++ {
		freqs[k] = float64(k) * sampleRate / float64(n)
		mags[k] = cmplx.Abs(fftResult[k]) * scale
	}

	return &Spectrum{
		Frequencies: freqs,
		Magnitudes:  mags,
		SampleRate:  sampleRate,
		NumSamples:  n,
	}, nil
}

// BandEnergy sums squared magnitudes over bins whose frequency falls in
// [fLow, fHigh], both edges inclusive. Returns 0 when no bins qualify.
func (s *Spectrum) BandEnergy(fLow, fHigh float64) float64 {
	energy := 0.0
	for i, f := range s.Frequencies {
		if f >= fLow && f <= fHigh {
			energy += s.Magnitudes[i] * s.Magnitudes[i]
		}
	}
	return energy
}

// PeakAmplitude returns the maximum magnitude among bins within
// [fCenter-bandwidth, fCenter+bandwidth]. The tolerance window exists
// because the bin spacing fs/N rarely lands exactly on the target
// frequency; the window must capture the true peak without absorbing
// adjacent harmonics. Returns 0 when the window contains no bins, e.g.
// a target above Nyquist.
func (s *Spectrum) PeakAmplitude(fCenter, bandwidth float64) float64 {
	fLow := fCenter - bandwidth
	fHigh := fCenter + bandwidth

	var window []float64
	for i, f := range s.Frequencies {
		if f >= fLow && f <= fHigh {
			window = append(window, s.Magnitudes[i])
		}
	}

	if len(window) == 0 {
		return 0.0
	}
	return floats.Max(window)
}

// Centroid returns the magnitude-weighted mean frequency, the spectrum's
// center of mass. A higher centroid means more high-frequency content.
// Returns 0 for an all-zero spectrum.
func (s *Spectrum) Centroid() float64 {
	totalMagnitude := 0.0
	weighted := 0.0
	for i, f := range s.Frequencies {
		weighted += f * s.Magnitudes[i]
		totalMagnitude += s.Magnitudes[i]
	}

	if totalMagnitude == 0 {
		return 0.0
	}
	return weighted / totalMagnitude
}

// Nyquist returns the highest resolvable frequency, half the sampling rate
func (s *Spectrum) Nyquist() float64 {
	return s.SampleRate / 2.0
}
