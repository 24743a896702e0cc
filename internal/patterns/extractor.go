// Package patterns mines the joined bench dataset for the statistical and
// spatial regularities that drive programmatic bench detection: canonical
// envelope dimensions per point count, inter-component spacing per cluster
// size, and the derived detection rule set.
package patterns

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/ousposer/ousposer/internal/furniture"
	"github.com/ousposer/ousposer/internal/geom"
)

// ClusterInfo is the manual-cluster metadata joined onto a component.
type ClusterInfo struct {
	ClusterID      int     `json:"cluster_id"`
	ComponentCount int     `json:"component_count"`
	Arrondissement int     `json:"arrondissement"`
	TotalLength    float64 `json:"total_length"`
	Confidence     float64 `json:"confidence"`
}

// BenchComponent is a raw furniture record augmented with its geometric
// features and the manual cluster it belongs to. Immutable once computed.
type BenchComponent struct {
	ObjectID        int     `json:"objectid"`
	PointCount      int     `json:"point_count"`
	PathLengthM     float64 `json:"length_m"`
	EnvelopeLengthM float64 `json:"envelope_length_m"`
	EnvelopeWidthM  float64 `json:"envelope_width_m"`
	AspectRatio     float64 `json:"aspect_ratio"`

	Cluster ClusterInfo `json:"cluster"`

	line orb.LineString
}

// Line returns the component's polyline geometry.
func (c BenchComponent) Line() orb.LineString {
	return c.line
}

// Centroid returns the length-weighted centroid of the component.
func (c BenchComponent) Centroid() orb.Point {
	return geom.Centroid(c.line)
}

// Extract joins raw components to bench clusters by object id and computes
// per-component geometric features. Only components referenced by some bench
// cluster are retained — a hard filter, not a sample. Cluster references to
// ids absent from the raw dataset are silently dropped: the join simply
// produces fewer components. Each id maps to at most one cluster, so
// components are never double-counted.
func Extract(raw []furniture.RawComponent, clusters []furniture.ManualCluster) []BenchComponent {
	benches := furniture.BenchClusters(clusters)

	idToCluster := make(map[int]ClusterInfo)
	for _, cluster := range benches {
		for _, id := range cluster.ComponentIDs {
			idToCluster[id] = ClusterInfo{
				ClusterID:      cluster.ID,
				ComponentCount: cluster.ComponentCount,
				Arrondissement: cluster.Arrondissement,
				TotalLength:    cluster.TotalLength,
				Confidence:     cluster.Confidence,
			}
		}
	}

	var components []BenchComponent
	for _, r := range raw {
		info, ok := idToCluster[r.ObjectID]
		if !ok {
			continue
		}

		ls := r.GeoShape.Geometry.LineString()
		length, width := geom.Envelope(ls)

		components = append(components, BenchComponent{
			ObjectID:        r.ObjectID,
			PointCount:      len(ls),
			PathLengthM:     geom.PathLengthMeters(ls),
			EnvelopeLengthM: length,
			EnvelopeWidthM:  width,
			AspectRatio:     geom.AspectRatio(length, width),
			Cluster:         info,
			line:            ls,
		})
	}

	return components
}

// ByObjectID indexes components by object id for cluster-wise lookups.
func ByObjectID(components []BenchComponent) map[int]BenchComponent {
	index := make(map[int]BenchComponent, len(components))
	for _, c := range components {
		index[c.ObjectID] = c
	}
	return index
}

// PatternCount is one row of the point-count distribution, grouped by the
// owning cluster's component count.
type PatternCount struct {
	ComponentCount int `json:"component_count"`
	PointCount     int `json:"point_count"`
	Count          int `json:"count"`
}

// CountPatterns groups retained components by (component count, point count)
// and returns the distribution sorted by both keys.
func CountPatterns(components []BenchComponent) []PatternCount {
	type key struct{ componentCount, pointCount int }
	counts := make(map[key]int)
	for _, c := range components {
		counts[key{c.Cluster.ComponentCount, c.PointCount}]++
	}

	rows := make([]PatternCount, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, PatternCount{
			ComponentCount: k.componentCount,
			PointCount:     k.pointCount,
			Count:          n,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ComponentCount != rows[j].ComponentCount {
			return rows[i].ComponentCount < rows[j].ComponentCount
		}
		return rows[i].PointCount < rows[j].PointCount
	})
	return rows
}
