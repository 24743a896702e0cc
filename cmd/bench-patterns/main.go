// Package main provides the bench pattern analysis tool. It joins the raw
// Paris street-furniture export with the manually validated bench clusters,
// mines the joined set for geometric and spatial regularities, and emits a
// tuned detection rule set for the downstream pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ousposer/ousposer/internal/furniture"
	"github.com/ousposer/ousposer/internal/patterns"
	"github.com/ousposer/ousposer/internal/report"
	"github.com/ousposer/ousposer/internal/rundb"
)

// Config holds the settings for one analysis run.
type Config struct {
	RawPath         string
	ClustersPath    string
	DetectionsPath  string
	CalibrationPath string
	OutputDir       string
	DBPath          string
	ExportCSV       bool
	ExportCharts    bool
	ExportPlots     bool
	Verbose         bool
}

func parseFlags() Config {
	config := Config{}

	flag.StringVar(&config.RawPath, "raw", "", "Path to the raw street-furniture JSON export (required)")
	flag.StringVar(&config.ClustersPath, "clusters", "", "Path to the manual clusters JSON file (required)")
	flag.StringVar(&config.DetectionsPath, "detections", "", "Optional detection-results JSON for comparison")
	flag.StringVar(&config.CalibrationPath, "calibration", "", "Optional calibration overrides JSON")
	flag.StringVar(&config.OutputDir, "output", ".", "Output directory for artifacts")
	flag.StringVar(&config.DBPath, "db", "", "SQLite database path (optional, for run persistence)")
	flag.BoolVar(&config.ExportCSV, "csv", false, "Export joined per-component features to CSV")
	flag.BoolVar(&config.ExportCharts, "charts", false, "Export interactive HTML charts")
	flag.BoolVar(&config.ExportPlots, "plots", false, "Export histogram PNGs")
	flag.BoolVar(&config.Verbose, "v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Bench Pattern Analysis Tool\n\n")
		fmt.Fprintf(os.Stderr, "Joins the raw street-furniture export with manually validated bench\n")
		fmt.Fprintf(os.Stderr, "clusters and derives detection rules:\n")
		fmt.Fprintf(os.Stderr, "  1. Load and validate both inputs\n")
		fmt.Fprintf(os.Stderr, "  2. Compute per-component envelope features\n")
		fmt.Fprintf(os.Stderr, "  3. Summarise canonical dimensions per point count\n")
		fmt.Fprintf(os.Stderr, "  4. Measure inter-component spacing per cluster size\n")
		fmt.Fprintf(os.Stderr, "  5. Generate the detection rule set\n")
		fmt.Fprintf(os.Stderr, "  6. Optionally compare against external detection results\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -raw furniture.json -clusters manual_clusters.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -raw furniture.json -clusters manual.json -detections detected.json -csv -charts\n", os.Args[0])
	}

	flag.Parse()
	return config
}

func main() {
	config := parseFlags()

	if config.RawPath == "" || config.ClustersPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -raw and -clusters are required")
		flag.Usage()
		os.Exit(1)
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	artifact, comps, err := run(config)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if err := export(config, artifact, comps); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}

// run executes the full pipeline: load, join, analyse, report.
func run(config Config) (*report.Artifact, []patterns.BenchComponent, error) {
	cal := patterns.DefaultCalibration()
	if config.CalibrationPath != "" {
		loaded, err := patterns.LoadCalibration(config.CalibrationPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load calibration: %w", err)
		}
		cal = loaded
	}

	log.Printf("Loading manual clusters from %s", config.ClustersPath)
	clusters, err := furniture.LoadManualClusters(config.ClustersPath)
	if err != nil {
		return nil, nil, err
	}
	benches := furniture.BenchClusters(clusters)
	log.Printf("Loaded %d manual clusters (%d bench clusters)", len(clusters), len(benches))

	log.Printf("Loading raw street furniture data from %s", config.RawPath)
	raw, err := furniture.LoadRawComponents(config.RawPath)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Processing %d total components", len(raw))

	comps := patterns.Extract(raw, clusters)
	log.Printf("Joined %d bench components with cluster info", len(comps))

	patternRows := patterns.CountPatterns(comps)
	spacingRows := patterns.AnalyzeSpacing(clusters, comps)
	profiles := patterns.CanonicalDimensions(comps, cal)
	geometric := patterns.GeometricPatterns(clusters, comps)
	rules := patterns.GenerateRules(profiles, geometric, cal)
	baseline := patterns.ComputeBaseline(clusters)

	validation := report.ValidationPatterns{Baseline: baseline}
	if config.DetectionsPath != "" {
		results, err := furniture.LoadDetectionResults(config.DetectionsPath)
		if err != nil {
			return nil, nil, err
		}
		metrics := patterns.CompareDetections(clusters, results)
		validation.Comparison = &metrics
	}

	report.PrintPatternAnalysis(patternRows)
	report.PrintSpatialAnalysis(spacingRows)
	report.PrintCanonicalDimensions(profiles, comps)
	report.PrintBaseline(baseline)
	if validation.Comparison != nil {
		report.PrintComparison(*validation.Comparison)
	}

	artifact := &report.Artifact{
		PatternAnalysis:     patternRows,
		SpatialAnalysis:     spacingRows,
		CanonicalDimensions: profiles,
		ValidationPatterns:  validation,
		DetectionRules:      rules,
		Summary:             report.BuildSummary(comps),
	}
	report.PrintSummary(artifact.Summary)

	return artifact, comps, nil
}

// export writes the requested artifacts.
func export(config Config, artifact *report.Artifact, comps []patterns.BenchComponent) error {
	jsonPath := filepath.Join(config.OutputDir, report.ResultsFileName)
	if err := artifact.WriteJSON(jsonPath); err != nil {
		return err
	}
	fmt.Printf("\nResults saved to %s\n", jsonPath)

	if config.ExportCSV {
		csvPath := filepath.Join(config.OutputDir, "bench_components.csv")
		if err := report.WriteComponentsCSV(csvPath, comps); err != nil {
			return fmt.Errorf("write CSV: %w", err)
		}
		fmt.Printf("CSV components: %s\n", csvPath)
	}

	if config.ExportCharts {
		chartPath := filepath.Join(config.OutputDir, "bench_patterns.html")
		if err := report.WriteChartsHTML(chartPath, artifact.PatternAnalysis, comps); err != nil {
			return fmt.Errorf("write charts: %w", err)
		}
		fmt.Printf("Charts: %s\n", chartPath)
	}

	if config.ExportPlots {
		if err := report.WriteDimensionPlots(config.OutputDir, comps); err != nil {
			return fmt.Errorf("write plots: %w", err)
		}
		fmt.Printf("Histogram plots: %s\n", config.OutputDir)
	}

	if config.DBPath != "" {
		runID, err := rundb.PersistRun(config.DBPath, config.RawPath, config.ClustersPath, artifact, comps)
		if err != nil {
			log.Printf("Warning: database persistence failed: %v", err)
		} else if config.Verbose {
			log.Printf("Persisted run %s to %s", runID, config.DBPath)
		}
	}

	return nil
}
