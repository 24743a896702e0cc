// Package main provides the bench detection insights tool. It prints the
// distilled findings of the latest calibration round and writes the
// recommended detection-pipeline configuration as a JSON artifact.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ousposer/ousposer/internal/insights"
)

func main() {
	outputDir := flag.String("output", ".", "Output directory for the insights artifact")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Bench Detection Insights Tool\n\n")
		fmt.Fprintf(os.Stderr, "Prints the key findings of the calibrated bench detection constants\n")
		fmt.Fprintf(os.Stderr, "and writes the recommended configuration to %s.\n\n", insights.InsightsFileName)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	in := insights.Default()
	in.Print()

	path := filepath.Join(*outputDir, insights.InsightsFileName)
	if err := in.WriteJSON(path); err != nil {
		log.Fatalf("Failed to write insights: %v", err)
	}
	fmt.Printf("\nDetailed insights saved to %s\n", path)
}
