package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ousposer/ousposer/internal/furniture"
)

func TestComputeBaseline(t *testing.T) {
	clusters := []furniture.ManualCluster{
		{ID: 1, Type: furniture.ClusterTypeBenches, ComponentIDs: []int{1, 2}, ComponentCount: 2, Arrondissement: 11},
		{ID: 2, Type: furniture.ClusterTypeBenches, ComponentIDs: []int{3}, ComponentCount: 1, Arrondissement: 11},
		{ID: 3, Type: "trash_cans", ComponentIDs: []int{4}, ComponentCount: 1, Arrondissement: 12},
	}

	baseline := ComputeBaseline(clusters)
	assert.Equal(t, 2, baseline.ManualClusters)
	assert.Equal(t, 3, baseline.ManualComponents)
	assert.Equal(t, map[int]int{1: 1, 2: 1}, baseline.ComponentCounts)
	assert.Equal(t, map[int]int{11: 2}, baseline.Arrondissements)
}

func TestCompareDetections(t *testing.T) {
	clusters := []furniture.ManualCluster{
		{ID: 1, Type: furniture.ClusterTypeBenches, ComponentIDs: []int{1, 2, 3}, ComponentCount: 3},
	}

	t.Run("partial overlap", func(t *testing.T) {
		results := []furniture.DistrictDetections{
			{Arrondissement: 1, Benches: []furniture.DetectedBench{{Components: []int{2, 3, 4}}}},
		}

		m := CompareDetections(clusters, results)
		assert.Equal(t, 3, m.ManualComponents)
		assert.Equal(t, 3, m.DetectedComponents)
		assert.Equal(t, 1, m.DetectedBenches)
		assert.Equal(t, 2, m.TruePositives)
		assert.Equal(t, 1, m.FalseNegatives)
		assert.Equal(t, 1, m.PotentialFalsePositives)
		assert.InDelta(t, 2.0/3.0, m.Recall, 1e-12)
		assert.InDelta(t, 2.0/3.0, m.Precision, 1e-12)
	})

	t.Run("empty detected set", func(t *testing.T) {
		m := CompareDetections(clusters, nil)
		assert.Equal(t, 0, m.DetectedComponents)
		assert.Equal(t, 0.0, m.Precision)
		assert.Equal(t, 0.0, m.Recall)
		assert.Equal(t, 3, m.FalseNegatives)
	})

	t.Run("empty manual set", func(t *testing.T) {
		results := []furniture.DistrictDetections{
			{Benches: []furniture.DetectedBench{{Components: []int{5}}}},
		}
		m := CompareDetections(nil, results)
		assert.Equal(t, 0.0, m.Recall)
		assert.Equal(t, 0.0, m.Precision)
		assert.Equal(t, 1, m.PotentialFalsePositives)
	})
}

func TestAnalyzeSpacing(t *testing.T) {
	raw := []furniture.RawComponent{
		rawComponent(1, line(2.350, 48.850, 0.00001, 2)...),
		rawComponent(2, line(2.350, 48.851, 0.00001, 2)...), // 0.001° north of component 1
		rawComponent(3, line(2.360, 48.850, 0.00001, 5)...),
	}
	clusters := []furniture.ManualCluster{
		{ID: 1, Type: furniture.ClusterTypeBenches, ComponentIDs: []int{1, 2}, ComponentCount: 2, Arrondissement: 4},
		{ID: 2, Type: furniture.ClusterTypeBenches, ComponentIDs: []int{3}, ComponentCount: 1},
		{ID: 3, Type: furniture.ClusterTypeBenches, ComponentIDs: []int{98, 99}, ComponentCount: 2}, // nothing joins
	}

	comps := Extract(raw, clusters)
	rows := AnalyzeSpacing(clusters, comps)

	// Single-component clusters and clusters whose members are missing from
	// the raw data produce no row.
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 1, row.ClusterID)
	assert.Equal(t, 2, row.ComponentCount)
	assert.Equal(t, 4, row.Arrondissement)
	// Centroids are 0.001° apart in latitude: 111 m under the flat scaling.
	assert.InDelta(t, 111.0, row.MinDistanceM, 1e-6)
	assert.InDelta(t, 111.0, row.MaxDistanceM, 1e-6)
	assert.InDelta(t, 111.0, row.MeanDistanceM, 1e-6)
}

func TestGeometricPatterns(t *testing.T) {
	raw := []furniture.RawComponent{
		rawComponent(1, line(2.350, 48.850, 0.00001, 2)...),
		rawComponent(2, line(2.350, 48.8501, 0.00001, 5)...),
	}
	clusters := []furniture.ManualCluster{
		{ID: 7, Type: furniture.ClusterTypeBenches, ComponentIDs: []int{2, 1}, ComponentCount: 2,
			TotalLength: 3.1, Arrondissement: 9},
	}

	comps := Extract(raw, clusters)
	groups := GeometricPatterns(clusters, comps)

	require.Contains(t, groups, 2)
	require.Len(t, groups[2], 1)
	g := groups[2][0]
	assert.Equal(t, 7, g.ClusterID)
	// The signature is sorted regardless of component_ids order.
	assert.Equal(t, []int{2, 5}, g.PointCountPattern)
	assert.Equal(t, 3.1, g.TotalLength)
	assert.Greater(t, g.MaxDistanceM, 0.0)
}
