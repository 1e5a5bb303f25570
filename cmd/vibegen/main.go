package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/suwarna-wave/motor-vibration-fault-detector/signalio"
)

func main() {
	outDir := flag.String("out", "sample_data", "Output directory for generated CSV files")
	sampleRate := flag.Float64("sample-rate", 2000, "Sampling rate in Hz")
	duration := flag.Float64("duration", 3.0, "Signal duration in seconds")
	baseFreq := flag.Float64("base-freq", 30.0, "Machine running frequency in Hz")
	flag.Parse()

	conditions := []struct {
		name   string
		seed   int64
		adjust func(*signalio.SynthConfig)
	}{
		{"normal.csv", 1, func(c *signalio.SynthConfig) {}},
		{"imbalance.csv", 2, func(c *signalio.SynthConfig) { c.Imbalance = true }},
		{"misalignment.csv", 3, func(c *signalio.SynthConfig) { c.Misalignment = true }},
		{"bearing.csv", 4, func(c *signalio.SynthConfig) { c.Bearing = true }},
	}

	for _, cond := range conditions {
		config := signalio.DefaultSynthConfig()
		config.SampleRate = *sampleRate
		config.Duration = *duration
		config.BaseFreq = *baseFreq
		config.Seed = cond.seed
		cond.adjust(config)

		times, samples := signalio.Generate(config)

		path := filepath.Join(*outDir, cond.name)
		if err := signalio.Write(path, times, samples); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generated sample vibration CSVs in %s/\n", *outDir)
	for _, cond := range conditions {
		fmt.Printf("   - %s\n", cond.name)
	}
}
