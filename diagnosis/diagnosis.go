package diagnosis

import (
	"fmt"

	"github.com/suwarna-wave/motor-vibration-fault-detector/logging"
)

// DefaultRunningFreq is the assumed machine rotational frequency (Hz) when
// the caller does not supply one
const DefaultRunningFreq = 30.0

// DiagnosisConfig holds configuration for the full diagnostic pipeline
type DiagnosisConfig struct {
	ExtractorConfig  *ExtractorConfig  `json:"extractor_config"`
	ClassifierConfig *ClassifierConfig `json:"classifier_config"`
}

// DefaultDiagnosisConfig returns the standard pipeline configuration
func DefaultDiagnosisConfig() *DiagnosisConfig {
	return &DiagnosisConfig{
		ExtractorConfig:  DefaultExtractorConfig(),
		ClassifierConfig: DefaultClassifierConfig(),
	}
}

// Diagnoser runs the complete vibration diagnostic pipeline:
// signal -> indicators -> classification -> health score -> report.
//
// A Diagnoser holds no per-call state; diagnosing the same buffer twice
// yields identical reports, and concurrent calls on distinct buffers are
// safe without coordination.
type Diagnoser struct {
	config     *DiagnosisConfig
	extractor  *IndicatorExtractor
	classifier *Classifier
	scorer     *HealthScorer
	logger     logging.Logger
}

// NewDiagnoser creates a diagnoser with the given configuration.
// A nil config selects DefaultDiagnosisConfig.
func NewDiagnoser(config *DiagnosisConfig) *Diagnoser {
	if config == nil {
		config = DefaultDiagnosisConfig()
	}

	return &Diagnoser{
		config:     config,
		extractor:  NewIndicatorExtractor(config.ExtractorConfig),
		classifier: NewClassifier(config.ClassifierConfig),
		scorer:     NewHealthScorer(),
		logger: logging.WithFields(logging.Fields{
			"component": "diagnoser",
		}),
	}
}

// Diagnose runs the full pipeline on one acceleration buffer sampled at
// sampleRate, using runningFreq as the 1x reference.
//
// The signal must be non-empty and the sample rate positive; both are
// rejected up front rather than letting undefined statistics propagate
// as NaN.
func (d *Diagnoser) Diagnose(samples []float64, sampleRate, runningFreq float64) (*Report, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", sampleRate)
	}

	logger := d.logger.WithFields(logging.Fields{
		"samples":      len(samples),
		"sample_rate":  sampleRate,
		"running_freq": runningFreq,
	})
	logger.Debug("Starting diagnosis")

	indicators, err := d.extractor.Extract(samples, sampleRate, runningFreq)
	if err != nil {
		return nil, fmt.Errorf("indicator extraction failed: %w", err)
	}

	classification := d.classifier.Classify(indicators)
	healthScore := d.scorer.Score(indicators, classification)
	report := CompileReport(indicators, classification, healthScore)

	logger.Debug("Diagnosis completed", logging.Fields{
		"health_score":  report.HealthScore,
		"status":        report.Status,
		"primary_fault": report.PrimaryFault.String(),
		"confidence":    report.Confidence,
	})

	return report, nil
}

// Diagnose runs the pipeline with the default configuration. Convenience
// entry point for callers that need no customization.
func Diagnose(samples []float64, sampleRate, runningFreq float64) (*Report, error) {
	return NewDiagnoser(nil).Diagnose(samples, sampleRate, runningFreq)
}
