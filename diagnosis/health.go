package diagnosis

import "math"

// HealthScorer converts indicators plus a classification into a 0-100
// machine health score. 100 is perfect health, 0 is critical condition.
//
// The score starts at 100 and accumulates independent additive penalties:
// severity penalties on RMS, kurtosis and crest factor, a fault-type
// penalty scaled by confidence, and a total-energy penalty. All threshold
// comparisons are strict. The running total is clamped to [0, 100] and
// rounded half away from zero.
type HealthScorer struct{}

// NewHealthScorer creates a new health scorer
func NewHealthScorer() *HealthScorer {
	return &HealthScorer{}
}

// Score computes the health score for one diagnosis
func (hs *HealthScorer) Score(indicators IndicatorSet, classification Classification) int {
	score := 100.0

	// Vibration severity. Normal: < 0.3, warning: 0.3-0.6, critical: > 0.6
	if indicators.RMS > 0.6 {
		score -= 30
	} else if indicators.RMS > 0.3 {
		score -= 15
	}

	// Impulsiveness. Normal: ~3, high: > 5, critical: > 8
	if indicators.Kurtosis > 8 {
		score -= 20
	} else if indicators.Kurtosis > 5 {
		score -= 10
	}

	// Peak impacts. Normal: 3-5, warning: 5-8, critical: > 8
	if indicators.CrestFactor > 8 {
		score -= 15
	} else if indicators.CrestFactor > 6 {
		score -= 8
	}

	// Fault-type penalty, scaled by confidence except for MULTIPLE which
	// carries a fixed deduction regardless of individual confidences
	switch classification.Primary {
	case FaultNormal:
		// No penalty
	case FaultImbalance:
		score -= 15 * classification.Confidence
	case FaultMisalignment:
		score -= 20 * classification.Confidence
	case FaultBearing:
		score -= 35 * classification.Confidence
	case FaultMultiple:
		score -= 40
	}

	// Excessive overall spectral energy
	if indicators.TotalEnergy > 0.5 {
		score -= 10
	}

	score = math.Max(0.0, math.Min(100.0, score))

	// math.Round rounds half away from zero
	return int(math.Round(score))
}
