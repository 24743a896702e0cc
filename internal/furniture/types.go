// Package furniture defines the typed records for the Paris street-furniture
// dataset and the manually validated bench clusters, together with the JSON
// loaders that validate them. Records are immutable once loaded.
package furniture

import (
	"fmt"

	"github.com/paulmach/orb"
)

// RawComponent is one street-furniture record from the open-data export.
// Each record carries a single polyline geometry with at least two points.
type RawComponent struct {
	ObjectID int      `json:"objectid"`
	GeoShape GeoShape `json:"geo_shape"`
}

// GeoShape wraps the GeoJSON-style geometry envelope used by the export.
type GeoShape struct {
	Geometry Geometry `json:"geometry"`
}

// Geometry holds the polyline coordinates as [lon, lat] pairs.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// LineString converts the raw coordinate pairs to an orb.LineString.
// Extra dimensions beyond lon/lat are dropped.
func (g Geometry) LineString() orb.LineString {
	ls := make(orb.LineString, len(g.Coordinates))
	for i, c := range g.Coordinates {
		ls[i] = orb.Point{c[0], c[1]}
	}
	return ls
}

// Validate checks that the record carries a usable polyline.
func (r RawComponent) Validate() error {
	if len(r.GeoShape.Geometry.Coordinates) < 2 {
		return fmt.Errorf("component %d: geometry has %d coordinates, need at least 2",
			r.ObjectID, len(r.GeoShape.Geometry.Coordinates))
	}
	for i, c := range r.GeoShape.Geometry.Coordinates {
		if len(c) < 2 {
			return fmt.Errorf("component %d: coordinate %d has %d values, need lon and lat",
				r.ObjectID, i, len(c))
		}
	}
	return nil
}

// ManualCluster is a human-validated grouping of components judged to form
// one physical piece of furniture. Read-only input, never mutated.
type ManualCluster struct {
	ID             int     `json:"id"`
	Type           string  `json:"type"`
	ComponentIDs   []int   `json:"component_ids"`
	ComponentCount int     `json:"component_count"`
	TotalLength    float64 `json:"total_length"`
	Arrondissement int     `json:"arrondissement"`
	Confidence     float64 `json:"confidence"`
}

// Validate checks the required fields of a manual cluster.
func (c ManualCluster) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("cluster %d: missing type", c.ID)
	}
	if len(c.ComponentIDs) == 0 {
		return fmt.Errorf("cluster %d: empty component_ids", c.ID)
	}
	return nil
}

// ClusterTypeBenches is the only cluster category in scope for analysis.
const ClusterTypeBenches = "benches"

// BenchClusters filters manual clusters down to the bench category.
func BenchClusters(clusters []ManualCluster) []ManualCluster {
	var benches []ManualCluster
	for _, c := range clusters {
		if c.Type == ClusterTypeBenches {
			benches = append(benches, c)
		}
	}
	return benches
}

// DistrictDetections is one per-arrondissement entry from an external
// detection-results artifact. All fields are optional in the source format.
type DistrictDetections struct {
	Arrondissement int             `json:"arrondissement"`
	Benches        []DetectedBench `json:"benches,omitempty"`
}

// DetectedBench is one machine-detected bench with its component ids.
type DetectedBench struct {
	Components []int `json:"components,omitempty"`
}

// DetectedComponentIDs flattens all component ids referenced by the
// detection results into a set. Entries without benches or components
// contribute nothing.
func DetectedComponentIDs(results []DistrictDetections) map[int]bool {
	ids := make(map[int]bool)
	for _, district := range results {
		for _, bench := range district.Benches {
			for _, id := range bench.Components {
				ids[id] = true
			}
		}
	}
	return ids
}

// CountDetectedBenches returns the total number of detected benches across
// all districts.
func CountDetectedBenches(results []DistrictDetections) int {
	n := 0
	for _, district := range results {
		n += len(district.Benches)
	}
	return n
}
