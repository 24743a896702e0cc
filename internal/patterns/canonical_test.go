package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleBench builds a single-component bench with preset features.
func singleBench(id, pointCount int, length, width, total float64) BenchComponent {
	return BenchComponent{
		ObjectID:        id,
		PointCount:      pointCount,
		PathLengthM:     total,
		EnvelopeLengthM: length,
		EnvelopeWidthM:  width,
		AspectRatio:     width / length,
		Cluster:         ClusterInfo{ClusterID: id, ComponentCount: 1},
	}
}

func TestCanonicalDimensions(t *testing.T) {
	comps := []BenchComponent{
		singleBench(1, 7, 2.0, 1.0, 8.0),
		singleBench(2, 7, 3.0, 2.0, 9.0),
		singleBench(3, 5, 2.98, 1.69, 7.13),
		// Multi-component members never contribute to canonical profiles.
		{ObjectID: 4, PointCount: 7, EnvelopeLengthM: 50, Cluster: ClusterInfo{ComponentCount: 2}},
	}

	profiles := CanonicalDimensions(comps, nil)
	require.Len(t, profiles, 2)

	seven := profiles[7]
	assert.Equal(t, 2, seven.Count)
	assert.InDelta(t, 2.5, seven.EnvelopeLength.Mean, 1e-12)
	assert.InDelta(t, 0.5, seven.EnvelopeLength.Std, 1e-12) // population std
	assert.InDelta(t, 2.0, seven.EnvelopeLength.Min, 1e-12)
	assert.InDelta(t, 3.0, seven.EnvelopeLength.Max, 1e-12)
	assert.InDelta(t, 8.5, seven.TotalLength.Mean, 1e-12)

	// The tolerance is exactly 2% of the mean. It is a detection heuristic,
	// not a bound on the observed range, which may well exceed it.
	assert.InDelta(t, 0.02*seven.EnvelopeLength.Mean, seven.EnvelopeLengthTolerance, 1e-15)
	assert.InDelta(t, 0.02*seven.EnvelopeWidth.Mean, seven.EnvelopeWidthTolerance, 1e-15)
	assert.Greater(t, seven.EnvelopeLength.Max-seven.EnvelopeLength.Min, 2*seven.EnvelopeLengthTolerance)

	five := profiles[5]
	assert.Equal(t, 1, five.Count)
	assert.InDelta(t, 2.98, five.EnvelopeLength.Mean, 1e-12)
	assert.InDelta(t, 0.0, five.EnvelopeLength.Std, 1e-12)
}

func TestCanonicalDimensionsEmptyGroupOmitted(t *testing.T) {
	// No single-component benches at all: the map is empty, no zero entries.
	comps := []BenchComponent{
		{ObjectID: 1, PointCount: 2, Cluster: ClusterInfo{ComponentCount: 4}},
	}
	profiles := CanonicalDimensions(comps, nil)
	assert.Empty(t, profiles)
}

func TestCanonicalDimensionsCustomTolerance(t *testing.T) {
	cal := DefaultCalibration()
	cal.ToleranceRatio = ptrFloat64(0.05)

	comps := []BenchComponent{singleBench(1, 7, 2.0, 1.0, 8.0)}
	profiles := CanonicalDimensions(comps, cal)

	require.Contains(t, profiles, 7)
	assert.InDelta(t, 0.05*2.0, profiles[7].EnvelopeLengthTolerance, 1e-15)
}

func TestSortedPointCounts(t *testing.T) {
	profiles := map[int]DimensionProfile{7: {}, 2: {}, 5: {}}
	assert.Equal(t, []int{2, 5, 7}, SortedPointCounts(profiles))
}

func TestSummarise(t *testing.T) {
	d := Summarise([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, d.Mean, 1e-12)
	assert.InDelta(t, 1.118033988749895, d.Std, 1e-12) // sqrt(5)/2, population
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 4.0, d.Max)
}
