// Package report renders the analysis outputs: the console summary, the
// JSON and CSV artifacts, and the optional chart files.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ousposer/ousposer/internal/patterns"
)

// ResultsFileName is the default name of the main JSON artifact.
const ResultsFileName = "bench_pattern_analysis_results.json"

// ValidationPatterns wraps the manual baseline and, when a detection-results
// artifact was supplied, the comparison metrics.
type ValidationPatterns struct {
	Baseline   patterns.Baseline           `json:"baseline"`
	Comparison *patterns.ComparisonMetrics `json:"comparison,omitempty"`
}

// Summary gives the headline counts of an analysis run.
type Summary struct {
	TotalBenchComponents int         `json:"total_bench_components"`
	UniqueClusters       int         `json:"unique_clusters"`
	ComponentCounts      map[int]int `json:"component_count_distribution"`
}

// Artifact is the full machine-readable output of an analysis run. Every
// field is a plain Go scalar, slice or map, so the JSON carries no
// library-specific numeric types.
type Artifact struct {
	PatternAnalysis     []patterns.PatternCount           `json:"pattern_analysis"`
	SpatialAnalysis     []patterns.ClusterSpacing         `json:"spatial_analysis"`
	CanonicalDimensions map[int]patterns.DimensionProfile `json:"canonical_dimensions"`
	ValidationPatterns  ValidationPatterns                `json:"validation_patterns"`
	DetectionRules      patterns.DetectionRules           `json:"detection_rules"`
	Summary             Summary                           `json:"summary"`
}

// BuildSummary derives the headline counts from the joined component set.
func BuildSummary(components []patterns.BenchComponent) Summary {
	summary := Summary{
		TotalBenchComponents: len(components),
		ComponentCounts:      make(map[int]int),
	}

	clusterIDs := make(map[int]bool)
	for _, c := range components {
		clusterIDs[c.Cluster.ClusterID] = true
		summary.ComponentCounts[c.Cluster.ComponentCount]++
	}
	summary.UniqueClusters = len(clusterIDs)

	return summary
}

// WriteJSON serialises the artifact with indentation, matching the layout
// consumed by the insight tooling.
func (a *Artifact) WriteJSON(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
