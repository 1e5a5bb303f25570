package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthScorerPerfect(t *testing.T) {
	hs := NewHealthScorer()
	score := hs.Score(DefaultIndicatorSet(), Classification{Primary: FaultNormal, Confidence: 0.9})

	assert.Equal(t, 100, score)
}

func TestHealthScorerSeverityPenalties(t *testing.T) {
	hs := NewHealthScorer()
	normal := Classification{Primary: FaultNormal, Confidence: 0.9}

	indicators := DefaultIndicatorSet()
	indicators.RMS = 0.31
	assert.Equal(t, 85, hs.Score(indicators, normal))

	indicators.RMS = 0.61
	assert.Equal(t, 70, hs.Score(indicators, normal))

	// Thresholds are strict: exactly 0.6 takes the lower penalty
	indicators.RMS = 0.6
	assert.Equal(t, 85, hs.Score(indicators, normal))

	indicators = DefaultIndicatorSet()
	indicators.Kurtosis = 5.5
	assert.Equal(t, 90, hs.Score(indicators, normal))
	indicators.Kurtosis = 8.5
	assert.Equal(t, 80, hs.Score(indicators, normal))

	indicators = DefaultIndicatorSet()
	indicators.CrestFactor = 6.5
	assert.Equal(t, 92, hs.Score(indicators, normal))
	indicators.CrestFactor = 8.5
	assert.Equal(t, 85, hs.Score(indicators, normal))

	indicators = DefaultIndicatorSet()
	indicators.TotalEnergy = 0.6
	assert.Equal(t, 90, hs.Score(indicators, normal))
}

func TestHealthScorerFaultPenalties(t *testing.T) {
	hs := NewHealthScorer()
	indicators := DefaultIndicatorSet()

	score := hs.Score(indicators, Classification{Primary: FaultImbalance, Confidence: 1.0})
	assert.Equal(t, 85, score)

	score = hs.Score(indicators, Classification{Primary: FaultMisalignment, Confidence: 1.0})
	assert.Equal(t, 80, score)

	score = hs.Score(indicators, Classification{Primary: FaultBearing, Confidence: 1.0})
	assert.Equal(t, 65, score)

	// MULTIPLE is a fixed deduction, confidence is ignored
	score = hs.Score(indicators, Classification{Primary: FaultMultiple, Confidence: 0.3})
	assert.Equal(t, 60, score)
}

func TestHealthScorerRoundsHalfAwayFromZero(t *testing.T) {
	hs := NewHealthScorer()
	indicators := DefaultIndicatorSet()

	// 100 - 15*0.5 = 92.5 rounds away from zero to 93
	score := hs.Score(indicators, Classification{Primary: FaultImbalance, Confidence: 0.5})
	assert.Equal(t, 93, score)
}

func TestHealthScorerClampsToZero(t *testing.T) {
	hs := NewHealthScorer()

	// Every penalty at once: 30+20+15+35+10 exceeds 100
	indicators := IndicatorSet{
		RMS:         0.7,
		Kurtosis:    9.0,
		CrestFactor: 9.0,
		TotalEnergy: 0.6,
	}
	score := hs.Score(indicators, Classification{Primary: FaultBearing, Confidence: 1.0})
	assert.Equal(t, 0, score)
}
