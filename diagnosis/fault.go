package diagnosis

import (
	"encoding/json"
	"math"
)

// FaultType represents the detectable machine fault categories
type FaultType int

const (
	// FaultNormal means no fault rule fired
	FaultNormal FaultType = iota

	// FaultImbalance is rotor imbalance, dominant 1x energy
	FaultImbalance

	// FaultMisalignment is shaft misalignment, dominant 2x energy
	FaultMisalignment

	// FaultBearing is a rolling-element bearing defect, impulsive and
	// high-frequency
	FaultBearing

	// FaultMultiple is the derived category when two or more faults fire;
	// it is never detected on its own
	FaultMultiple
)

func (ft FaultType) String() string {
	switch ft {
	case FaultNormal:
		return "NORMAL"
	case FaultImbalance:
		return "IMBALANCE"
	case FaultMisalignment:
		return "MISALIGNMENT"
	case FaultBearing:
		return "BEARING"
	case FaultMultiple:
		return "MULTIPLE"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders fault types by name so reports stay readable
func (ft FaultType) MarshalJSON() ([]byte, error) {
	return json.Marshal(ft.String())
}

// Classification is the outcome of the fault decision rules
type Classification struct {
	// Primary is the single headline fault: NORMAL when nothing fired,
	// the fired fault when exactly one fired, MULTIPLE otherwise
	Primary FaultType `json:"primary"`

	// Detected lists every fired fault in fixed check order
	// (imbalance, misalignment, bearing); never contains NORMAL or MULTIPLE
	Detected []FaultType `json:"detected"`

	// Confidence in [0,1]
	Confidence float64 `json:"confidence"`
}

// ClassifierConfig holds the decision thresholds. Thresholds are strict
// lower bounds: an indicator exactly at its threshold does not fire.
type ClassifierConfig struct {
	// Narrowband amplitude thresholds and the full-scale amplitudes that
	// map to confidence 1.0
	Amp1XThreshold float64 `json:"amp_1x_threshold"`
	Amp1XFullScale float64 `json:"amp_1x_full_scale"`
	Amp2XThreshold float64 `json:"amp_2x_threshold"`
	Amp2XFullScale float64 `json:"amp_2x_full_scale"`

	KurtosisThreshold    float64 `json:"kurtosis_threshold"`
	CrestFactorThreshold float64 `json:"crest_factor_threshold"`
	HFEnergyThreshold    float64 `json:"hf_energy_threshold"`

	KurtosisWeight    float64 `json:"kurtosis_weight"`
	CrestFactorWeight float64 `json:"crest_factor_weight"`
	HFEnergyWeight    float64 `json:"hf_energy_weight"`
	BearingGate       float64 `json:"bearing_gate"` // weighted score above which bearing fires

	NormalConfidence float64 `json:"normal_confidence"` // fixed confidence when nothing fires
}

// DefaultClassifierConfig returns the standard engineering thresholds
func DefaultClassifierConfig() *ClassifierConfig {
	return &ClassifierConfig{
		Amp1XThreshold: 0.4,
		Amp1XFullScale: 0.8,
		Amp2XThreshold: 0.3,
		Amp2XFullScale: 0.6,

		KurtosisThreshold:    4.0,
		CrestFactorThreshold: 6.0,
		HFEnergyThreshold:    0.02,

		KurtosisWeight:    0.4,
		CrestFactorWeight: 0.3,
		HFEnergyWeight:    0.3,
		BearingGate:       0.5,

		NormalConfidence: 0.9,
	}
}

// Classifier applies the fixed threshold rules to an indicator set.
// Classification is a pure function with no failure modes: every rule
// degrades to "did not fire" on neutral inputs.
type Classifier struct {
	config *ClassifierConfig
}

// NewClassifier creates a classifier with the given thresholds.
// A nil config selects DefaultClassifierConfig.
func NewClassifier(config *ClassifierConfig) *Classifier {
	if config == nil {
		config = DefaultClassifierConfig()
	}
	return &Classifier{config: config}
}

// Classify runs the three independent fault rules and resolves the primary
// fault. Rules are not mutually exclusive; any subset may fire.
func (c *Classifier) Classify(indicators IndicatorSet) Classification {
	cfg := c.config

	var detected []FaultType
	scores := make(map[FaultType]float64)

	// Imbalance: dominant running-frequency component
	if indicators.Amplitude1X > cfg.Amp1XThreshold {
		detected = append(detected, FaultImbalance)
		scores[FaultImbalance] = math.Min(1.0, indicators.Amplitude1X/cfg.Amp1XFullScale)
	}

	// Misalignment: dominant second harmonic
	if indicators.Amplitude2X > cfg.Amp2XThreshold {
		detected = append(detected, FaultMisalignment)
		scores[FaultMisalignment] = math.Min(1.0, indicators.Amplitude2X/cfg.Amp2XFullScale)
	}

	// Bearing: weighted evidence of impulsiveness plus high-frequency energy.
	// The gate is checked only after all three terms are summed.
	bearingScore := 0.0
	if indicators.Kurtosis > cfg.KurtosisThreshold {
		bearingScore += cfg.KurtosisWeight
	}
	if indicators.CrestFactor > cfg.CrestFactorThreshold {
		bearingScore += cfg.CrestFactorWeight
	}
	if indicators.HFEnergy > cfg.HFEnergyThreshold {
		bearingScore += cfg.HFEnergyWeight
	}
	if bearingScore > cfg.BearingGate {
		detected = append(detected, FaultBearing)
		scores[FaultBearing] = math.Min(1.0, bearingScore)
	}

	switch len(detected) {
	case 0:
		return Classification{
			Primary:    FaultNormal,
			Confidence: cfg.NormalConfidence,
		}
	case 1:
		return Classification{
			Primary:    detected[0],
			Detected:   detected,
			Confidence: scores[detected[0]],
		}
	default:
		maxScore := 0.0
		for _, s := range scores {
			if s > maxScore {
				maxScore = s
			}
		}
		return Classification{
			Primary:    FaultMultiple,
			Detected:   detected,
			Confidence: maxScore,
		}
	}
}
