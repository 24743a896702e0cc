package patterns

import (
	"github.com/ousposer/ousposer/internal/furniture"
)

// Baseline summarises the manually validated bench set: how many clusters
// and components exist, and how they distribute across cluster sizes and
// arrondissements.
type Baseline struct {
	ManualClusters   int         `json:"manual_clusters"`
	ManualComponents int         `json:"manual_components"`
	ComponentCounts  map[int]int `json:"component_count_distribution"`
	Arrondissements  map[int]int `json:"arrondissement_distribution"`
}

// ComputeBaseline builds the validation baseline from the manual clusters.
func ComputeBaseline(clusters []furniture.ManualCluster) Baseline {
	benches := furniture.BenchClusters(clusters)

	baseline := Baseline{
		ManualClusters:  len(benches),
		ComponentCounts: make(map[int]int),
		Arrondissements: make(map[int]int),
	}

	ids := make(map[int]bool)
	for _, c := range benches {
		baseline.ComponentCounts[c.ComponentCount]++
		baseline.Arrondissements[c.Arrondissement]++
		for _, id := range c.ComponentIDs {
			ids[id] = true
		}
	}
	baseline.ManualComponents = len(ids)

	return baseline
}

// ComparisonMetrics are the set-overlap diagnostics between the manual
// baseline and an external detection run. Purely diagnostic: the numbers
// never feed back into rule generation.
type ComparisonMetrics struct {
	ManualClusters          int     `json:"manual_clusters"`
	ManualComponents        int     `json:"manual_components"`
	DetectedBenches         int     `json:"detected_benches"`
	DetectedComponents      int     `json:"detected_components"`
	TruePositives           int     `json:"true_positives"`
	FalseNegatives          int     `json:"false_negatives"`
	PotentialFalsePositives int     `json:"potential_false_positives"`
	Recall                  float64 `json:"recall"`
	Precision               float64 `json:"precision"`
}

// CompareDetections computes overlap, recall and precision between the
// manual bench components and a detection-results artifact. Both ratios are
// 0 when their denominator is empty; an empty detected set is a valid input,
// not an error.
func CompareDetections(clusters []furniture.ManualCluster, results []furniture.DistrictDetections) ComparisonMetrics {
	benches := furniture.BenchClusters(clusters)

	manual := make(map[int]bool)
	for _, c := range benches {
		for _, id := range c.ComponentIDs {
			manual[id] = true
		}
	}

	detected := furniture.DetectedComponentIDs(results)

	metrics := ComparisonMetrics{
		ManualClusters:     len(benches),
		ManualComponents:   len(manual),
		DetectedBenches:    furniture.CountDetectedBenches(results),
		DetectedComponents: len(detected),
	}

	for id := range manual {
		if detected[id] {
			metrics.TruePositives++
		} else {
			metrics.FalseNegatives++
		}
	}
	for id := range detected {
		if !manual[id] {
			metrics.PotentialFalsePositives++
		}
	}

	if len(manual) > 0 {
		metrics.Recall = float64(metrics.TruePositives) / float64(len(manual))
	}
	if len(detected) > 0 {
		metrics.Precision = float64(metrics.TruePositives) / float64(len(detected))
	}

	return metrics
}
