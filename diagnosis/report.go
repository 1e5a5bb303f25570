package diagnosis

import "math"

// HealthStatus is the qualitative label derived from the numeric health score
type HealthStatus string

const (
	StatusHealthy    HealthStatus = "HEALTHY"
	StatusAcceptable HealthStatus = "ACCEPTABLE"
	StatusWarning    HealthStatus = "WARNING"
	StatusCritical   HealthStatus = "CRITICAL"
)

// StatusForScore maps a health score to its status label.
// Breakpoints are fixed: >= 85 HEALTHY, >= 70 ACCEPTABLE, >= 50 WARNING,
// below that CRITICAL.
func StatusForScore(score int) HealthStatus {
	switch {
	case score >= 85:
		return StatusHealthy
	case score >= 70:
		return StatusAcceptable
	case score >= 50:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// Report is the complete diagnostic output for one signal. Constructed once
// per diagnosis call and read-only thereafter. Confidence is rounded to 3
// decimals and indicators to 4 for display; classification and scoring run
// on the unrounded values.
type Report struct {
	HealthScore     int          `json:"health_score"`
	Status          HealthStatus `json:"status"`
	PrimaryFault    FaultType    `json:"primary_fault"`
	DetectedFaults  []FaultType  `json:"detected_faults"`
	Confidence      float64      `json:"confidence"`
	Indicators      IndicatorSet `json:"indicators"`
	Recommendations []string     `json:"recommendations"`
}

// CompileReport assembles the report from the pipeline's intermediate
// results
func CompileReport(indicators IndicatorSet, classification Classification, healthScore int) *Report {
	return &Report{
		HealthScore:     healthScore,
		Status:          StatusForScore(healthScore),
		PrimaryFault:    classification.Primary,
		DetectedFaults:  classification.Detected,
		Confidence:      roundTo(classification.Confidence, 3),
		Indicators:      indicators.Rounded(4),
		Recommendations: recommendations(classification, healthScore),
	}
}

// recommendations generates the maintenance advice lines. Rules fire
// independently in fixed order; every applicable line is included.
func recommendations(classification Classification, healthScore int) []string {
	var recs []string

	if classification.Primary == FaultNormal {
		recs = append(recs,
			"Machine operating normally",
			"Continue routine monitoring")
	}

	if faultDetected(classification.Detected, FaultImbalance) {
		recs = append(recs,
			"Imbalance detected - check rotor balance",
			"Inspect for uneven mass distribution")
	}

	if faultDetected(classification.Detected, FaultMisalignment) {
		recs = append(recs,
			"Misalignment detected - check shaft alignment",
			"Verify coupling and bearing alignment")
	}

	if faultDetected(classification.Detected, FaultBearing) {
		recs = append(recs,
			"Bearing fault indicators present",
			"Inspect bearings for wear/damage",
			"Consider bearing replacement soon")
	}

	if len(classification.Detected) > 1 {
		recs = append(recs, "Multiple fault indicators - priority inspection needed")
	}

	if healthScore < 50 {
		recs = append(recs, "CRITICAL: schedule immediate maintenance")
	} else if healthScore < 70 {
		recs = append(recs, "Plan maintenance within next scheduled window")
	}

	return recs
}

func faultDetected(detected []FaultType, fault FaultType) bool {
	for _, ft := range detected {
		if ft == fault {
			return true
		}
	}
	return false
}

// roundTo rounds v to the given number of decimal places
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
