package insights

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFindings(t *testing.T) {
	in := Default()

	seven, ok := in.Findings.SingleComponent["7_point"]
	require.True(t, ok)
	assert.Equal(t, 14, seven.Count)
	assert.InDelta(t, 2.32, seven.EnvelopeLength, 1e-12)
	assert.InDelta(t, 1.60, seven.EnvelopeWidth, 1e-12)

	five, ok := in.Findings.SingleComponent["5_point"]
	require.True(t, ok)
	assert.Equal(t, 6, five.Count)
	assert.InDelta(t, 2.98, five.EnvelopeLength, 1e-12)
	assert.InDelta(t, 1.69, five.EnvelopeWidth, 1e-12)

	two, ok := in.Findings.MultiComponent["2_component"]
	require.True(t, ok)
	assert.Equal(t, []int{2, 5}, two.Pattern)
	assert.InDelta(t, 0.96, two.Confidence, 1e-12)
}

func TestDefaultConfigUpdates(t *testing.T) {
	cfg := Default().ConfigUpdates

	assert.InDelta(t, 0.02, cfg.SingleBench.SimilarityToleranceRatio, 1e-12)
	assert.Equal(t, 5, cfg.SingleBench.MinPointCount)
	assert.InDelta(t, 3.5, cfg.Cluster.EpsMeters, 1e-12)
	assert.InDelta(t, 0.13, cfg.Cluster.TwoComponentEpsMeters, 1e-12)
	assert.Equal(t, 1, cfg.Cluster.MinPoints)
	assert.InDelta(t, 0.25, cfg.Backrest.OffsetMinMeters, 1e-12)
	assert.InDelta(t, 0.40, cfg.Backrest.OffsetMaxMeters, 1e-12)
	assert.InDelta(t, 0.98, cfg.Backrest.StraightnessMin, 1e-12)
}

func TestDefaultBaseline(t *testing.T) {
	b := Default().ValidationBaseline

	assert.Equal(t, 81, b.TotalBenchClusters)
	assert.Equal(t, 285, b.TotalBenchComponents)
	assert.Equal(t, 20, b.SingleComponent)
	assert.Equal(t, 61, b.MultiComponent)
	assert.Equal(t, b.TotalBenchClusters, b.SingleComponent+b.MultiComponent)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), InsightsFileName)
	require.NoError(t, Default().WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"findings", "config_updates", "algorithm", "validation_baseline"} {
		assert.Contains(t, decoded, key)
	}

	// Config keys follow the detection pipeline's camelCase convention.
	var cfg map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["config_updates"], &cfg))
	assert.Contains(t, cfg["singleBench"], "lengthCanonicalMeters")
	assert.Contains(t, cfg["cluster"], "epsMeters")
	assert.Contains(t, cfg["backrest"], "angleParallelToleranceDeg")
}

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), InsightsFileName)
	original := Default()
	require.NoError(t, original.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Insights
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
