package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/suwarna-wave/motor-vibration-fault-detector/diagnosis"
	"github.com/suwarna-wave/motor-vibration-fault-detector/logging"
	"github.com/suwarna-wave/motor-vibration-fault-detector/signalio"
)

// fileReport pairs a diagnostic report with its source file for the
// summary table and JSON output
type fileReport struct {
	Filename   string            `json:"filename"`
	SampleRate float64           `json:"sample_rate"`
	Report     *diagnosis.Report `json:"report"`
}

func main() {
	pattern := flag.String("pattern", "sample_data/*.csv", "Glob pattern for vibration CSV files")
	runningFreq := flag.Float64("running-freq", diagnosis.DefaultRunningFreq, "Machine running frequency in Hz")
	jsonOut := flag.Bool("json", false, "Emit reports as JSON instead of text")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.SetLevel(level)

	files, err := filepath.Glob(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad pattern %q: %v\n", *pattern, err)
		os.Exit(1)
	}
	sort.Strings(files)

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No files found matching: %s\n", *pattern)
		fmt.Fprintln(os.Stderr, "Run vibegen first to generate sample data")
		os.Exit(1)
	}

	if !*jsonOut {
		printSeparator("=")
		fmt.Println("MOTOR VIBRATION FAULT DETECTOR")
		fmt.Println("Predictive Maintenance Analysis System")
		printSeparator("=")
		fmt.Printf("\nAnalyzing %d file(s) with running frequency = %g Hz\n", len(files), *runningFreq)
	}

	diagnoser := diagnosis.NewDiagnoser(nil)

	var results []fileReport
	for _, path := range files {
		data, err := signalio.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			continue
		}

		if !data.HasRate() {
			fmt.Fprintf(os.Stderr, "Warning: could not infer sampling frequency from %s, skipping\n", path)
			continue
		}

		report, err := diagnoser.Diagnose(data.Samples, data.SampleRate, *runningFreq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			continue
		}

		result := fileReport{
			Filename:   filepath.Base(path),
			SampleRate: data.SampleRate,
			Report:     report,
		}
		results = append(results, result)

		if !*jsonOut {
			printReport(result)
		}
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(results) > 1 {
		printSummary(results)
	}
}

func printSeparator(char string) {
	fmt.Println(strings.Repeat(char, 70))
}

// statusMarker gives a terse textual severity marker per status label
func statusMarker(status diagnosis.HealthStatus) string {
	switch status {
	case diagnosis.StatusHealthy:
		return "[OK]"
	case diagnosis.StatusAcceptable:
		return "[ok]"
	case diagnosis.StatusWarning:
		return "[!!]"
	case diagnosis.StatusCritical:
		return "[XX]"
	default:
		return "[??]"
	}
}

func printReport(result fileReport) {
	report := result.Report

	fmt.Printf("\nFile: %s\n", result.Filename)
	printSeparator("-")

	fmt.Printf("\n%s HEALTH SCORE: %d/100 (%s)\n", statusMarker(report.Status), report.HealthScore, report.Status)
	fmt.Printf("PRIMARY FAULT: %s\n", report.PrimaryFault)

	if len(report.DetectedFaults) > 0 {
		fmt.Print("DETECTED FAULTS: ")
		for i, fault := range report.DetectedFaults {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(fault)
		}
		fmt.Println()
		fmt.Printf("CONFIDENCE: %.1f%%\n", report.Confidence*100)
	} else {
		fmt.Println("DETECTED FAULTS: None")
	}

	ind := report.Indicators
	fmt.Println("\nKEY INDICATORS:")
	fmt.Printf("   RMS Energy:      %.4f\n", ind.RMS)
	fmt.Printf("   Kurtosis:        %.4f\n", ind.Kurtosis)
	fmt.Printf("   Crest Factor:    %.4f\n", ind.CrestFactor)
	fmt.Printf("   1x Amplitude:    %.4f\n", ind.Amplitude1X)
	fmt.Printf("   2x Amplitude:    %.4f\n", ind.Amplitude2X)
	fmt.Printf("   HF Energy:       %.4f\n", ind.HFEnergy)

	fmt.Println("\nRECOMMENDATIONS:")
	for _, rec := range report.Recommendations {
		fmt.Printf("   %s\n", rec)
	}

	printSeparator("-")
}

func printSummary(results []fileReport) {
	fmt.Println()
	printSeparator("=")
	fmt.Println("SUMMARY COMPARISON")
	printSeparator("=")

	fmt.Printf("\n%-20s %-8s %-12s %-15s\n", "Filename", "Health", "Status", "Primary Fault")
	printSeparator("-")

	for _, r := range results {
		name := r.Filename
		if len(name) > 18 {
			name = name[:18]
		}
		fmt.Printf("%-20s %-8s %-12s %-15s\n",
			name,
			fmt.Sprintf("%d/100", r.Report.HealthScore),
			r.Report.Status,
			r.Report.PrimaryFault)
	}

	printSeparator("=")
}
