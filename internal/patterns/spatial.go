package patterns

import (
	"sort"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ousposer/ousposer/internal/furniture"
	"github.com/ousposer/ousposer/internal/geom"
)

// ClusterSpacing records the centroid-distance statistics of one
// multi-component bench cluster.
type ClusterSpacing struct {
	ClusterID      int     `json:"cluster_id"`
	ComponentCount int     `json:"component_count"`
	MinDistanceM   float64 `json:"min_distance"`
	MaxDistanceM   float64 `json:"max_distance"`
	MeanDistanceM  float64 `json:"mean_distance"`
	Arrondissement int     `json:"arrondissement"`
}

// AnalyzeSpacing computes pairwise centroid distances for every bench
// cluster with more than one component. Clusters whose join produced fewer
// than two components are skipped, not zero-filled.
func AnalyzeSpacing(clusters []furniture.ManualCluster, components []BenchComponent) []ClusterSpacing {
	index := ByObjectID(components)

	var rows []ClusterSpacing
	for _, cluster := range furniture.BenchClusters(clusters) {
		if cluster.ComponentCount <= 1 {
			continue
		}

		centroids := clusterCentroids(cluster, index)
		if len(centroids) < 2 {
			continue
		}

		distances := geom.PairwiseDistancesMeters(centroids)
		rows = append(rows, ClusterSpacing{
			ClusterID:      cluster.ID,
			ComponentCount: cluster.ComponentCount,
			MinDistanceM:   floats.Min(distances),
			MaxDistanceM:   floats.Max(distances),
			MeanDistanceM:  stat.Mean(distances, nil),
			Arrondissement: cluster.Arrondissement,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ClusterID < rows[j].ClusterID })
	return rows
}

// clusterCentroids resolves a cluster's component ids against the joined
// dataset and returns the centroids that exist. Missing ids are skipped.
func clusterCentroids(cluster furniture.ManualCluster, index map[int]BenchComponent) []orb.Point {
	var centroids []orb.Point
	for _, id := range cluster.ComponentIDs {
		if c, ok := index[id]; ok {
			centroids = append(centroids, c.Centroid())
		}
	}
	return centroids
}

// ClusterGeometry captures the per-cluster geometric pattern of a
// multi-component bench: the sorted point-count signature of its members
// plus their envelope dimensions and spacing.
type ClusterGeometry struct {
	ClusterID         int       `json:"cluster_id"`
	PointCountPattern []int     `json:"point_count_pattern"`
	EnvelopeLengths   []float64 `json:"envelope_lengths"`
	EnvelopeWidths    []float64 `json:"envelope_widths"`
	AspectRatios      []float64 `json:"aspect_ratios"`
	MinDistanceM      float64   `json:"min_distance_m"`
	MaxDistanceM      float64   `json:"max_distance_m"`
	MeanDistanceM     float64   `json:"mean_distance_m"`
	TotalLength       float64   `json:"total_cluster_length"`
	Arrondissement    int       `json:"arrondissement"`
}

// GeometricPatterns groups multi-component bench clusters by component count
// and describes each cluster's geometry. Clusters with no joined components
// are skipped.
func GeometricPatterns(clusters []furniture.ManualCluster, components []BenchComponent) map[int][]ClusterGeometry {
	index := ByObjectID(components)

	groups := make(map[int][]ClusterGeometry)
	for _, cluster := range furniture.BenchClusters(clusters) {
		if cluster.ComponentCount <= 1 {
			continue
		}

		var members []BenchComponent
		for _, id := range cluster.ComponentIDs {
			if c, ok := index[id]; ok {
				members = append(members, c)
			}
		}
		if len(members) == 0 {
			continue
		}

		pattern := make([]int, len(members))
		lengths := make([]float64, len(members))
		widths := make([]float64, len(members))
		aspects := make([]float64, len(members))
		centroids := make([]orb.Point, len(members))
		for i, m := range members {
			pattern[i] = m.PointCount
			lengths[i] = m.EnvelopeLengthM
			widths[i] = m.EnvelopeWidthM
			aspects[i] = m.AspectRatio
			centroids[i] = m.Centroid()
		}
		sort.Ints(pattern)

		g := ClusterGeometry{
			ClusterID:         cluster.ID,
			PointCountPattern: pattern,
			EnvelopeLengths:   lengths,
			EnvelopeWidths:    widths,
			AspectRatios:      aspects,
			TotalLength:       cluster.TotalLength,
			Arrondissement:    cluster.Arrondissement,
		}
		if distances := geom.PairwiseDistancesMeters(centroids); len(distances) > 0 {
			g.MinDistanceM = floats.Min(distances)
			g.MaxDistanceM = floats.Max(distances)
			g.MeanDistanceM = stat.Mean(distances, nil)
		}

		groups[cluster.ComponentCount] = append(groups[cluster.ComponentCount], g)
	}

	return groups
}
