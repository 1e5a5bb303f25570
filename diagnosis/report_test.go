package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBreakpoints(t *testing.T) {
	assert.Equal(t, StatusHealthy, StatusForScore(100))
	assert.Equal(t, StatusHealthy, StatusForScore(85))
	assert.Equal(t, StatusAcceptable, StatusForScore(84))
	assert.Equal(t, StatusAcceptable, StatusForScore(70))
	assert.Equal(t, StatusWarning, StatusForScore(69))
	assert.Equal(t, StatusWarning, StatusForScore(50))
	assert.Equal(t, StatusCritical, StatusForScore(49))
	assert.Equal(t, StatusCritical, StatusForScore(0))
}

func TestRecommendationsNormal(t *testing.T) {
	recs := recommendations(Classification{Primary: FaultNormal, Confidence: 0.9}, 100)

	require.Len(t, recs, 2)
	assert.Equal(t, "Machine operating normally", recs[0])
	assert.Equal(t, "Continue routine monitoring", recs[1])
}

func TestRecommendationsBearingCritical(t *testing.T) {
	classification := Classification{
		Primary:    FaultBearing,
		Detected:   []FaultType{FaultBearing},
		Confidence: 1.0,
	}
	recs := recommendations(classification, 45)

	require.Len(t, recs, 4)
	assert.Equal(t, "Bearing fault indicators present", recs[0])
	assert.Equal(t, "Inspect bearings for wear/damage", recs[1])
	assert.Equal(t, "Consider bearing replacement soon", recs[2])
	assert.Equal(t, "CRITICAL: schedule immediate maintenance", recs[3])
}

func TestRecommendationsMultiple(t *testing.T) {
	classification := Classification{
		Primary:    FaultMultiple,
		Detected:   []FaultType{FaultImbalance, FaultMisalignment},
		Confidence: 1.0,
	}
	recs := recommendations(classification, 65)

	// 2 imbalance + 2 misalignment + priority line + maintenance window line
	require.Len(t, recs, 6)
	assert.Equal(t, "Imbalance detected - check rotor balance", recs[0])
	assert.Equal(t, "Misalignment detected - check shaft alignment", recs[2])
	assert.Equal(t, "Multiple fault indicators - priority inspection needed", recs[4])
	assert.Equal(t, "Plan maintenance within next scheduled window", recs[5])
}

func TestRecommendationsMaintenanceWindowExclusive(t *testing.T) {
	classification := Classification{
		Primary:    FaultImbalance,
		Detected:   []FaultType{FaultImbalance},
		Confidence: 0.6,
	}

	// Below 50 only the immediate line appears, not both
	recs := recommendations(classification, 40)
	assert.Contains(t, recs, "CRITICAL: schedule immediate maintenance")
	assert.NotContains(t, recs, "Plan maintenance within next scheduled window")

	// Between 50 and 69 only the planning line
	recs = recommendations(classification, 60)
	assert.NotContains(t, recs, "CRITICAL: schedule immediate maintenance")
	assert.Contains(t, recs, "Plan maintenance within next scheduled window")

	// At 70 and above neither
	recs = recommendations(classification, 70)
	assert.NotContains(t, recs, "CRITICAL: schedule immediate maintenance")
	assert.NotContains(t, recs, "Plan maintenance within next scheduled window")
}

func TestCompileReportRounding(t *testing.T) {
	indicators := DefaultIndicatorSet()
	indicators.RMS = 0.123456789
	indicators.Amplitude1X = 0.98765432

	classification := Classification{
		Primary:    FaultImbalance,
		Detected:   []FaultType{FaultImbalance},
		Confidence: 0.7654321,
	}

	report := CompileReport(indicators, classification, 80)

	assert.Equal(t, 80, report.HealthScore)
	assert.Equal(t, StatusAcceptable, report.Status)
	assert.Equal(t, FaultImbalance, report.PrimaryFault)
	assert.InDelta(t, 0.765, report.Confidence, 1e-12)
	assert.InDelta(t, 0.1235, report.Indicators.RMS, 1e-12)
	assert.InDelta(t, 0.9877, report.Indicators.Amplitude1X, 1e-12)
}
