package diagnosis

import (
	"fmt"

	"github.com/suwarna-wave/motor-vibration-fault-detector/algorithms/spectral"
	"github.com/suwarna-wave/motor-vibration-fault-detector/algorithms/stats"
	"github.com/suwarna-wave/motor-vibration-fault-detector/logging"
)

// IndicatorSet is the complete set of fault indicators extracted from one
// vibration signal. It is the single contract point between signal data and
// the classifier: nothing downstream of extraction touches raw samples.
//
// JSON keys follow the conventional indicator names used in vibration
// analysis reports.
type IndicatorSet struct {
	RMS              float64 `json:"rms"`
	PeakToPeak       float64 `json:"peak_to_peak"`
	Kurtosis         float64 `json:"kurtosis"`
	CrestFactor      float64 `json:"crest_factor"`
	Amplitude1X      float64 `json:"1x_amplitude"`
	Amplitude2X      float64 `json:"2x_amplitude"`
	HFEnergy         float64 `json:"hf_energy"`
	LFEnergy         float64 `json:"lf_energy"`
	SpectralCentroid float64 `json:"spectral_centroid"`
	TotalEnergy      float64 `json:"total_energy"`
}

// DefaultIndicatorSet returns the neutral indicator set: every indicator at
// its "nothing detected" value. Kurtosis is seeded with 3.0 because that is
// the normal-signal baseline; a zero kurtosis would itself look anomalous.
// Callers assembling an IndicatorSet by hand should start from this.
func DefaultIndicatorSet() IndicatorSet {
	return IndicatorSet{Kurtosis: 3.0}
}

// Rounded returns a copy with every indicator rounded to the given number
// of decimal places. Display convenience only; classification and scoring
// always run on unrounded values.
func (is IndicatorSet) Rounded(places int) IndicatorSet {
	return IndicatorSet{
		RMS:              roundTo(is.RMS, places),
		PeakToPeak:       roundTo(is.PeakToPeak, places),
		Kurtosis:         roundTo(is.Kurtosis, places),
		CrestFactor:      roundTo(is.CrestFactor, places),
		Amplitude1X:      roundTo(is.Amplitude1X, places),
		Amplitude2X:      roundTo(is.Amplitude2X, places),
		HFEnergy:         roundTo(is.HFEnergy, places),
		LFEnergy:         roundTo(is.LFEnergy, places),
		SpectralCentroid: roundTo(is.SpectralCentroid, places),
		TotalEnergy:      roundTo(is.TotalEnergy, places),
	}
}

// ExtractorConfig holds the fixed frequency bands and the narrowband search
// tolerance used when deriving indicators from the spectrum
type ExtractorConfig struct {
	SearchBandwidth float64 `json:"search_bandwidth"` // +-Hz window around 1x and 2x targets
	HFBandLow       float64 `json:"hf_band_low"`      // Lower edge of the high-frequency band (Hz)
	LFBandHigh      float64 `json:"lf_band_high"`     // Upper edge of the low-frequency band (Hz)
}

// DefaultExtractorConfig returns the standard band layout: +-2 Hz narrowband
// search, high-frequency band from 100 Hz to Nyquist, low-frequency band
// from DC to 50 Hz
func DefaultExtractorConfig() *ExtractorConfig {
	return &ExtractorConfig{
		SearchBandwidth: 2.0,
		HFBandLow:       100.0,
		LFBandHigh:      50.0,
	}
}

// IndicatorExtractor aggregates time-domain and frequency-domain features
// into one IndicatorSet
type IndicatorExtractor struct {
	config   *ExtractorConfig
	time     *stats.TimeFeatures
	spectrum *spectral.SpectrumAnalyzer
	logger   logging.Logger
}

// NewIndicatorExtractor creates an indicator extractor with the given
// configuration. A nil config selects DefaultExtractorConfig.
func NewIndicatorExtractor(config *ExtractorConfig) *IndicatorExtractor {
	if config == nil {
		config = DefaultExtractorConfig()
	}

	return &IndicatorExtractor{
		config:   config,
		time:     stats.NewTimeFeatures(),
		spectrum: spectral.NewSpectrumAnalyzer(),
		logger: logging.WithFields(logging.Fields{
			"component": "indicator_extractor",
		}),
	}
}

// Extract computes the full indicator set for one signal buffer.
// runningFreq is the machine's nominal rotational frequency (Hz), the
// reference for the 1x and 2x narrowband searches.
func (ie *IndicatorExtractor) Extract(samples []float64, sampleRate, runningFreq float64) (IndicatorSet, error) {
	if len(samples) == 0 {
		return IndicatorSet{}, fmt.Errorf("empty signal")
	}
	if sampleRate <= 0 {
		return IndicatorSet{}, fmt.Errorf("sample rate must be positive, got %v", sampleRate)
	}

	logger := ie.logger.WithFields(logging.Fields{
		"samples":      len(samples),
		"sample_rate":  sampleRate,
		"running_freq": runningFreq,
	})
	logger.Debug("Extracting fault indicators")

	spec, err := ie.spectrum.Compute(samples, sampleRate)
	if err != nil {
		return IndicatorSet{}, fmt.Errorf("spectrum computation failed: %w", err)
	}

	indicators := IndicatorSet{
		RMS:         ie.time.RMS(samples),
		PeakToPeak:  ie.time.PeakToPeak(samples),
		Kurtosis:    ie.time.Kurtosis(samples),
		CrestFactor: ie.time.CrestFactor(samples),

		// Imbalance indicator: energy at the running frequency
		Amplitude1X: spec.PeakAmplitude(runningFreq, ie.config.SearchBandwidth),
		// Misalignment indicator: energy at the second harmonic
		Amplitude2X: spec.PeakAmplitude(2*runningFreq, ie.config.SearchBandwidth),

		HFEnergy:         spec.BandEnergy(ie.config.HFBandLow, spec.Nyquist()),
		LFEnergy:         spec.BandEnergy(0.0, ie.config.LFBandHigh),
		SpectralCentroid: spec.Centroid(),
		TotalEnergy:      spec.BandEnergy(0.0, spec.Nyquist()),
	}

	logger.Debug("Indicator extraction completed", logging.Fields{
		"rms":          indicators.RMS,
		"kurtosis":     indicators.Kurtosis,
		"1x_amplitude": indicators.Amplitude1X,
		"2x_amplitude": indicators.Amplitude2X,
	})

	return indicators, nil
}
