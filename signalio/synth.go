package signalio

import (
	"math"
	"math/rand"
)

// SynthConfig describes a synthetic vibration signal. The defaults model a
// machine running at 30 Hz sampled at 2 kHz for 3 seconds with a clean
// 1x rotation component and light broadband noise; the fault switches
// superimpose the corresponding signatures.
type SynthConfig struct {
	SampleRate float64 `json:"sample_rate"` // Samples per second
	Duration   float64 `json:"duration"`    // Signal length in seconds
	BaseFreq   float64 `json:"base_freq"`   // Running frequency (1x) in Hz
	NoiseLevel float64 `json:"noise_level"` // Gaussian noise amplitude

	Imbalance    bool `json:"imbalance"`    // Extra 1x energy
	Misalignment bool `json:"misalignment"` // Extra 2x harmonic energy
	Bearing      bool `json:"bearing"`      // HF resonance plus impulsive spikes

	Seed int64 `json:"seed"` // RNG seed, fixed for reproducible data sets
}

// DefaultSynthConfig returns the standard healthy-machine configuration
func DefaultSynthConfig() *SynthConfig {
	return &SynthConfig{
		SampleRate: 2000,
		Duration:   3.0,
		BaseFreq:   30.0,
		NoiseLevel: 0.05,
		Seed:       42,
	}
}

// Generate produces the time axis and acceleration samples for the
// configured condition. Output is fully determined by the config,
// including the seed.
func Generate(config *SynthConfig) (times, samples []float64) {
	if config == nil {
		config = DefaultSynthConfig()
	}

	rng := rand.New(rand.NewSource(config.Seed))

	n := int(config.Duration * config.SampleRate)
	times = make([]float64, n)
	samples = make([]float64, n)

	for i := range times {
		times[i] = float64(i) / config.SampleRate
	}

	// Base 1x rotation vibration
	for i, t := range times {
		samples[i] = 0.2 * math.Sin(2*math.Pi*config.BaseFreq*t)
	}

	// Imbalance: strong 1x energy
	if config.Imbalance {
		for i, t := range times {
			samples[i] += 0.6 * math.Sin(2*math.Pi*config.BaseFreq*t)
		}
	}

	// Misalignment: strong 2x harmonic energy
	if config.Misalignment {
		for i, t := range times {
			samples[i] += 0.45 * math.Sin(2*math.Pi*2*config.BaseFreq*t)
		}
	}

	// Bearing: high-frequency resonance plus impulsive spikes
	if config.Bearing {
		const resonanceFreq = 350.0
		for i, t := range times {
			samples[i] += 0.12 * math.Sin(2*math.Pi*resonanceFreq*t)
		}

		numSpikes := n / 250
		if numSpikes < 8 {
			numSpikes = 8
		}
		if numSpikes > n {
			numSpikes = n
		}
		for _, idx := range rng.Perm(n)[:numSpikes] {
			magnitude := 1.5 + rng.Float64()
			if rng.Intn(2) == 0 {
				magnitude = -magnitude
			}
			samples[idx] += magnitude
		}
	}

	for i := range samples {
		samples[i] += config.NoiseLevel * rng.NormFloat64()
	}

	return times, samples
}
