// Package insights distils the bench pattern analysis into actionable
// detection constants: the key findings from the latest calibration round,
// the recommended detection-pipeline configuration, and the phased
// detection strategy. All values here are hand-validated calibration
// constants, recorded as editable configuration rather than recomputed.
package insights

import (
	"encoding/json"
	"fmt"
	"os"
)

// InsightsFileName is the default name of the insights artifact.
const InsightsFileName = "bench_detection_insights.json"

// Tolerance is a ±meter band around a canonical dimension.
type Tolerance struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// SingleComponentFinding records the canonical profile of one-piece benches
// sharing a point count.
type SingleComponentFinding struct {
	Count            int        `json:"count"`
	EnvelopeLength   float64    `json:"envelope_length"`
	EnvelopeWidth    float64    `json:"envelope_width"`
	AspectRatioRange [2]float64 `json:"aspect_ratio_range"`
	TotalLength      float64    `json:"total_length"`
	Tolerance2Pct    Tolerance  `json:"tolerance_2pct"`
}

// MultiComponentFinding records the spatial profile of benches assembled
// from several components.
type MultiComponentFinding struct {
	Count        int     `json:"count"`
	Pattern      []int   `json:"pattern"`
	Distance     float64 `json:"distance,omitempty"`
	MaxDistance  float64 `json:"max_distance,omitempty"`
	SuggestedEps float64 `json:"suggested_eps,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
}

// Findings bundles the validated observations from the calibration dataset.
type Findings struct {
	SingleComponent map[string]SingleComponentFinding `json:"single_component_benches"`
	MultiComponent  map[string]MultiComponentFinding  `json:"multi_component_patterns"`
}

// SingleBenchConfig is the recommended single-component detection config.
type SingleBenchConfig struct {
	LengthCanonicalMeters    float64 `json:"lengthCanonicalMeters"`
	WidthCanonicalMeters     float64 `json:"widthCanonicalMeters"`
	SimilarityToleranceRatio float64 `json:"similarityToleranceRatio"`
	MinPointCount            int     `json:"minPointCount"`
	LengthMin                float64 `json:"lengthMin"`
	LengthMax                float64 `json:"lengthMax"`
}

// MultiPieceConfig is the recommended multi-piece component filter config.
type MultiPieceConfig struct {
	LengthMin                      float64 `json:"lengthMin"`
	LengthMax                      float64 `json:"lengthMax"`
	LengthSimilarityToleranceRatio float64 `json:"lengthSimilarityToleranceRatio"`
}

// ClusterConfig is the recommended density-clustering config.
type ClusterConfig struct {
	EpsMeters             float64 `json:"epsMeters"`
	TwoComponentEpsMeters float64 `json:"twoComponentEpsMeters"`
	MinPoints             int     `json:"minPoints"`
}

// BackrestConfig is the recommended backrest validation config.
type BackrestConfig struct {
	OffsetMinMeters           float64 `json:"offsetMinMeters"`
	OffsetMaxMeters           float64 `json:"offsetMaxMeters"`
	AngleParallelToleranceDeg float64 `json:"angleParallelToleranceDeg"`
	StraightnessMin           float64 `json:"straightnessMin"`
}

// ConfigUpdates is the full recommended detection-pipeline configuration.
type ConfigUpdates struct {
	SingleBench SingleBenchConfig `json:"singleBench"`
	MultiPiece  MultiPieceConfig  `json:"multiPiece"`
	Cluster     ClusterConfig     `json:"cluster"`
	Backrest    BackrestConfig    `json:"backrest"`
}

// Baseline counts the validated examples the constants were tuned against.
type Baseline struct {
	TotalBenchClusters   int `json:"total_bench_clusters"`
	TotalBenchComponents int `json:"total_bench_components"`
	SingleComponent      int `json:"single_component"`
	MultiComponent       int `json:"multi_component"`
}

// Insights is the full machine-readable insight artifact.
type Insights struct {
	Findings           Findings      `json:"findings"`
	ConfigUpdates      ConfigUpdates `json:"config_updates"`
	Algorithm          string        `json:"algorithm"`
	ValidationBaseline Baseline      `json:"validation_baseline"`
}

// Default returns the insights recorded from the 2025-08 calibration round
// over the manually validated Paris bench set.
func Default() Insights {
	return Insights{
		Findings: Findings{
			SingleComponent: map[string]SingleComponentFinding{
				"5_point": {
					Count:            6,
					EnvelopeLength:   2.98,
					EnvelopeWidth:    1.69,
					AspectRatioRange: [2]float64{0.40, 0.89},
					TotalLength:      7.13,
					Tolerance2Pct:    Tolerance{Length: 0.060, Width: 0.034},
				},
				"7_point": {
					Count:            14,
					EnvelopeLength:   2.32,
					EnvelopeWidth:    1.60,
					AspectRatioRange: [2]float64{0.39, 1.00},
					TotalLength:      8.69,
					Tolerance2Pct:    Tolerance{Length: 0.046, Width: 0.032},
				},
			},
			MultiComponent: map[string]MultiComponentFinding{
				"2_component": {
					Count:      16,
					Pattern:    []int{2, 5},
					Distance:   0.10,
					Confidence: 0.96,
				},
				"4_component": {
					Count:        6,
					Pattern:      []int{2, 2, 2, 2},
					MaxDistance:  3.29,
					SuggestedEps: 3.57,
					Confidence:   0.90,
				},
				"5_component": {
					Count:        25,
					Pattern:      []int{2, 2, 2, 2, 2},
					MaxDistance:  2.51,
					SuggestedEps: 3.24,
					Confidence:   0.85,
				},
				"6_component": {
					Count:        14,
					Pattern:      []int{2, 2, 2, 2, 2, 2},
					MaxDistance:  2.84,
					SuggestedEps: 3.35,
					Confidence:   0.90,
				},
			},
		},
		ConfigUpdates: ConfigUpdates{
			SingleBench: SingleBenchConfig{
				LengthCanonicalMeters:    2.32,
				WidthCanonicalMeters:     1.60,
				SimilarityToleranceRatio: 0.02,
				MinPointCount:            5,
				LengthMin:                5.0,
				LengthMax:                10.0,
			},
			MultiPiece: MultiPieceConfig{
				LengthMin:                      0.5,
				LengthMax:                      8.0,
				LengthSimilarityToleranceRatio: 0.02,
			},
			Cluster: ClusterConfig{
				EpsMeters:             3.5,
				TwoComponentEpsMeters: 0.13,
				MinPoints:             1,
			},
			Backrest: BackrestConfig{
				OffsetMinMeters:           0.25,
				OffsetMaxMeters:           0.40,
				AngleParallelToleranceDeg: 4,
				StraightnessMin:           0.98,
			},
		},
		Algorithm: detectionAlgorithm,
		ValidationBaseline: Baseline{
			TotalBenchClusters:   81,
			TotalBenchComponents: 285,
			SingleComponent:      20,
			MultiComponent:       61,
		},
	}
}

const detectionAlgorithm = `
1. SINGLE-COMPONENT DETECTION (Highest Priority):
   - Filter components with 7 points AND envelope 2.32±0.05m × 1.60±0.03m
   - Filter components with 5 points AND envelope 2.98±0.06m × 1.69±0.03m
   - Use oriented-envelope measurements for precise matching
   - Confidence: 95-98%

2. TWO-COMPONENT DETECTION:
   - Density clustering with eps=0.13m (very tight)
   - Validate [2,5] point pattern
   - Check frame (2-point) + backrest (5-point) geometry
   - Confidence: 96%

3. MULTI-COMPONENT DETECTION:
   - Density clustering with eps=3.5m
   - Filter for 4/5/6-component clusters
   - All components must have 2 points
   - Validate rectangle frame (4 components)
   - Validate 1-2 backrest lines (parallel, inside frame)
   - Confidence: 85-90%

4. GEOMETRIC VALIDATION:
   - Rectangle: parallel/orthogonal tolerance ±4-5°
   - Length similarity: ±2% tolerance
   - Backrest offset: 0.25-0.40m from frame
   - Backrest straightness: ≥98%
`

// WriteJSON serialises the insights artifact.
func (in Insights) WriteJSON(path string) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal insights: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write insights: %w", err)
	}
	return nil
}

// Print writes the human-readable insight summary to stdout.
func (in Insights) Print() {
	fmt.Println("========== Bench Detection Insights ==========")

	fmt.Println("\nSingle-component benches:")
	for _, key := range []string{"7_point", "5_point"} {
		f, ok := in.Findings.SingleComponent[key]
		if !ok {
			continue
		}
		fmt.Printf("  %s: %d examples\n", key, f.Count)
		fmt.Printf("    Envelope: %.2fm × %.2fm\n", f.EnvelopeLength, f.EnvelopeWidth)
		fmt.Printf("    Tolerance: ±%.3fm × ±%.3fm\n", f.Tolerance2Pct.Length, f.Tolerance2Pct.Width)
	}

	fmt.Println("\nMulti-component benches:")
	for _, key := range []string{"2_component", "4_component", "5_component", "6_component"} {
		f, ok := in.Findings.MultiComponent[key]
		if !ok {
			continue
		}
		fmt.Printf("  %s: %d examples, pattern %v", key, f.Count, f.Pattern)
		if f.SuggestedEps > 0 {
			fmt.Printf(", eps=%.2fm", f.SuggestedEps)
		}
		fmt.Println()
	}

	fmt.Println("\nDetection strategy:")
	fmt.Println(in.Algorithm)

	fmt.Printf("Validation baseline: %d clusters, %d components (%d single, %d multi)\n",
		in.ValidationBaseline.TotalBenchClusters,
		in.ValidationBaseline.TotalBenchComponents,
		in.ValidationBaseline.SingleComponent,
		in.ValidationBaseline.MultiComponent)
	fmt.Println("==============================================")
}
