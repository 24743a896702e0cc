package patterns

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SingleComponentRule matches a one-piece bench by point count and canonical
// envelope dimensions with a tolerance band.
type SingleComponentRule struct {
	PointCount              int     `json:"point_count"`
	EnvelopeLengthCanonical float64 `json:"envelope_length_canonical"`
	EnvelopeWidthCanonical  float64 `json:"envelope_width_canonical"`
	EnvelopeLengthTolerance float64 `json:"envelope_length_tolerance_2pct"`
	EnvelopeWidthTolerance  float64 `json:"envelope_width_tolerance_2pct"`
	AspectRatioMin          float64 `json:"aspect_ratio_min"`
	AspectRatioMax          float64 `json:"aspect_ratio_max"`
	TotalLengthMin          float64 `json:"total_length_min"`
	TotalLengthMax          float64 `json:"total_length_max"`
	Confidence              float64 `json:"confidence"`
	SampleCount             int     `json:"sample_count"`
}

// ClusteringRule suggests a density-clustering radius for benches assembled
// from a given number of components. The radius is one standard deviation
// above the mean of observed maximum intra-cluster distances — deliberately
// generous to avoid splitting real benches.
type ClusteringRule struct {
	ComponentCount       int     `json:"component_count"`
	MaxDistanceMean      float64 `json:"max_distance_mean"`
	MaxDistanceStd       float64 `json:"max_distance_std"`
	SuggestedEpsMeters   float64 `json:"suggested_eps_meters"`
	TypicalPointPatterns [][]int `json:"typical_point_patterns"`
	Confidence           float64 `json:"confidence"`
	SampleCount          int     `json:"sample_count"`
}

// RectangleFrameValidation holds the fixed thresholds for validating a
// four-sided bench frame. Derived from domain inspection, not fitted.
type RectangleFrameValidation struct {
	MinComponents            int     `json:"min_components"`
	ParallelToleranceDeg     float64 `json:"parallel_tolerance_deg"`
	OrthogonalToleranceDeg   float64 `json:"orthogonal_tolerance_deg"`
	LengthSimilarityTolRatio float64 `json:"length_similarity_tolerance_ratio"`
}

// BackrestValidation holds the fixed thresholds for validating a backrest
// line relative to its frame.
type BackrestValidation struct {
	StraightnessMin           float64 `json:"straightness_min"`
	ParallelAngleToleranceDeg float64 `json:"parallel_angle_tolerance_deg"`
	OffsetMinMeters           float64 `json:"offset_min_meters"`
	OffsetMaxMeters           float64 `json:"offset_max_meters"`
	LengthSimilarityTolRatio  float64 `json:"length_similarity_tolerance_ratio"`
}

// GeometricValidation bundles the literal geometric thresholds reproduced
// into the rule set.
type GeometricValidation struct {
	RectangleFrame RectangleFrameValidation `json:"rectangle_frame_validation"`
	Backrest       BackrestValidation       `json:"backrest_validation"`
}

// DefaultGeometricValidation returns the hand-assigned geometric thresholds.
func DefaultGeometricValidation() GeometricValidation {
	return GeometricValidation{
		RectangleFrame: RectangleFrameValidation{
			MinComponents:            4,
			ParallelToleranceDeg:     4,
			OrthogonalToleranceDeg:   5,
			LengthSimilarityTolRatio: 0.02,
		},
		Backrest: BackrestValidation{
			StraightnessMin:           0.98,
			ParallelAngleToleranceDeg: 4,
			OffsetMinMeters:           0.25,
			OffsetMaxMeters:           0.40,
			LengthSimilarityTolRatio:  0.02,
		},
	}
}

// DefaultConfidenceScoring maps each detection method to its hand-assigned
// confidence score.
func DefaultConfidenceScoring() map[string]float64 {
	return map[string]float64{
		"single_component_envelope_canonical": 0.98,
		"single_component_length_fallback":    0.90,
		"two_component_frame_backrest":        0.96,
		"rectangle_validation_4_component":    0.90,
		"rect_with_backrest_5_component":      0.85,
		"rect_with_2_backrests_6_component":   0.90,
	}
}

// DetectionRules is the declarative rule set handed to the detection
// pipeline.
type DetectionRules struct {
	SingleComponent map[string]SingleComponentRule `json:"single_component_benches"`
	MultiComponent  map[string]ClusteringRule      `json:"multi_component_clustering"`
	Geometric       GeometricValidation            `json:"geometric_validation"`
	Confidence      map[string]float64             `json:"confidence_scoring"`
}

// GenerateRules derives the full detection rule set from the canonical
// dimension profiles and the multi-component geometric patterns. Groups with
// no examples produce no rule.
func GenerateRules(profiles map[int]DimensionProfile, geometric map[int][]ClusterGeometry, cal *Calibration) DetectionRules {
	if cal == nil {
		cal = DefaultCalibration()
	}

	rules := DetectionRules{
		SingleComponent: make(map[string]SingleComponentRule, len(profiles)),
		MultiComponent:  make(map[string]ClusteringRule, len(geometric)),
		Geometric:       DefaultGeometricValidation(),
		Confidence:      DefaultConfidenceScoring(),
	}

	sigma := *cal.TotalLengthSigmaHalfWidth
	for pointCount, profile := range profiles {
		confidence := *cal.FallbackPointConfidence
		if pointCount == *cal.PreferredPointCount {
			confidence = *cal.PreferredPointConfidence
		}

		rules.SingleComponent[fmt.Sprintf("%d_point", pointCount)] = SingleComponentRule{
			PointCount:              pointCount,
			EnvelopeLengthCanonical: profile.EnvelopeLength.Mean,
			EnvelopeWidthCanonical:  profile.EnvelopeWidth.Mean,
			EnvelopeLengthTolerance: profile.EnvelopeLengthTolerance,
			EnvelopeWidthTolerance:  profile.EnvelopeWidthTolerance,
			AspectRatioMin:          profile.AspectRatio.Min,
			AspectRatioMax:          profile.AspectRatio.Max,
			TotalLengthMin:          profile.TotalLength.Mean - sigma*profile.TotalLength.Std,
			TotalLengthMax:          profile.TotalLength.Mean + sigma*profile.TotalLength.Std,
			Confidence:              confidence,
			SampleCount:             profile.Count,
		}
	}

	for componentCount, patterns := range geometric {
		if len(patterns) == 0 {
			continue
		}

		maxDistances := make([]float64, len(patterns))
		for i, p := range patterns {
			maxDistances[i] = p.MaxDistanceM
		}
		mean := stat.Mean(maxDistances, nil)
		std := stat.PopStdDev(maxDistances, nil)

		confidence := *cal.MultiComponentConfidence
		if componentCount == 2 {
			confidence = *cal.TwoComponentConfidence
		}

		rules.MultiComponent[fmt.Sprintf("%d_component", componentCount)] = ClusteringRule{
			ComponentCount:       componentCount,
			MaxDistanceMean:      mean,
			MaxDistanceStd:       std,
			SuggestedEpsMeters:   mean + std,
			TypicalPointPatterns: distinctPatterns(patterns),
			Confidence:           confidence,
			SampleCount:          len(patterns),
		}
	}

	return rules
}

// distinctPatterns returns the unique point-count signatures observed within
// a component-count group, sorted for deterministic output.
func distinctPatterns(patterns []ClusterGeometry) [][]int {
	seen := make(map[string][]int)
	for _, p := range patterns {
		seen[fmt.Sprint(p.PointCountPattern)] = p.PointCountPattern
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	distinct := make([][]int, 0, len(seen))
	for _, k := range keys {
		distinct = append(distinct, seen[k])
	}
	return distinct
}
