package patterns

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Calibration holds the hand-tuned constants attached to derived rules.
// These are editable configuration, not computed values: the confidences
// come from manual validation rounds and the geometric thresholds from
// domain inspection of the Paris dataset. Fields are pointers so a partial
// JSON file can override just the values it names.
type Calibration struct {
	// Tolerance band applied to canonical envelope dimensions.
	ToleranceRatio *float64 `json:"tolerance_ratio,omitempty"`

	// Single-component rule confidences. The point count observed most
	// often in the validated set gets the higher score.
	PreferredPointCount       *int     `json:"preferred_point_count,omitempty"`
	PreferredPointConfidence  *float64 `json:"preferred_point_confidence,omitempty"`
	FallbackPointConfidence   *float64 `json:"fallback_point_confidence,omitempty"`
	TwoComponentConfidence    *float64 `json:"two_component_confidence,omitempty"`
	MultiComponentConfidence  *float64 `json:"multi_component_confidence,omitempty"`
	TotalLengthSigmaHalfWidth *float64 `json:"total_length_sigma_half_width,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// DefaultCalibration returns the constants used by the calibration runs
// that produced the current detection pipeline configuration.
func DefaultCalibration() *Calibration {
	return &Calibration{
		ToleranceRatio:            ptrFloat64(0.02),
		PreferredPointCount:       ptrInt(7),
		PreferredPointConfidence:  ptrFloat64(0.98),
		FallbackPointConfidence:   ptrFloat64(0.95),
		TwoComponentConfidence:    ptrFloat64(0.90),
		MultiComponentConfidence:  ptrFloat64(0.85),
		TotalLengthSigmaHalfWidth: ptrFloat64(2),
	}
}

// LoadCalibration loads calibration overrides from a JSON file and merges
// them over the defaults. Fields omitted from the file keep their default
// values, so partial configs are safe.
func LoadCalibration(path string) (*Calibration, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("calibration file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read calibration file: %w", err)
	}

	var overrides Calibration
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse calibration file %s: %w", cleanPath, err)
	}

	cfg := DefaultCalibration()
	cfg.Merge(&overrides)
	return cfg, nil
}

// Merge overlays non-nil fields from other onto c.
func (c *Calibration) Merge(other *Calibration) {
	if other == nil {
		return
	}
	if other.ToleranceRatio != nil {
		c.ToleranceRatio = other.ToleranceRatio
	}
	if other.PreferredPointCount != nil {
		c.PreferredPointCount = other.PreferredPointCount
	}
	if other.PreferredPointConfidence != nil {
		c.PreferredPointConfidence = other.PreferredPointConfidence
	}
	if other.FallbackPointConfidence != nil {
		c.FallbackPointConfidence = other.FallbackPointConfidence
	}
	if other.TwoComponentConfidence != nil {
		c.TwoComponentConfidence = other.TwoComponentConfidence
	}
	if other.MultiComponentConfidence != nil {
		c.MultiComponentConfidence = other.MultiComponentConfidence
	}
	if other.TotalLengthSigmaHalfWidth != nil {
		c.TotalLengthSigmaHalfWidth = other.TotalLengthSigmaHalfWidth
	}
}
