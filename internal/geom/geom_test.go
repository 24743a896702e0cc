package geom

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	// 0.001° lon by 0.0005° lat: length is the longer extent.
	ls := orb.LineString{{2.350, 48.850}, {2.351, 48.8505}}
	length, width := Envelope(ls)
	assert.InDelta(t, 111.0, length, 1e-9)
	assert.InDelta(t, 55.5, width, 1e-9)
	assert.GreaterOrEqual(t, length, width)
}

func TestEnvelopeLatDominant(t *testing.T) {
	// Taller than wide: the latitude extent becomes the length.
	ls := orb.LineString{{2.350, 48.850}, {2.3501, 48.851}}
	length, width := Envelope(ls)
	assert.InDelta(t, 111.0, length, 1e-9)
	assert.InDelta(t, 11.1, width, 1e-9)
}

func TestAspectRatio(t *testing.T) {
	assert.InDelta(t, 0.5, AspectRatio(111.0, 55.5), 1e-9)

	// Zero-length envelope must yield 0, not NaN or an error.
	assert.Equal(t, 0.0, AspectRatio(0, 0))

	// Width is defined as the shorter extent, so the ratio stays in [0,1].
	ls := orb.LineString{{2.0, 48.0}, {2.001, 48.0007}}
	length, width := Envelope(ls)
	ratio := AspectRatio(length, width)
	assert.GreaterOrEqual(t, ratio, 0.0)
	assert.LessOrEqual(t, ratio, 1.0)
}

func TestPathLengthMeters(t *testing.T) {
	ls := orb.LineString{{2.350, 48.850}, {2.351, 48.850}}
	assert.InDelta(t, 111.0, PathLengthMeters(ls), 1e-9)

	// Multi-segment path sums segment lengths.
	zig := orb.LineString{{0, 0}, {0.001, 0}, {0.001, 0.001}}
	assert.InDelta(t, 222.0, PathLengthMeters(zig), 1e-9)
}

func TestCentroid(t *testing.T) {
	ls := orb.LineString{{0, 0}, {0.002, 0}}
	c := Centroid(ls)
	assert.InDelta(t, 0.001, c[0], 1e-12)
	assert.InDelta(t, 0.0, c[1], 1e-12)

	// A zero-length polyline yields its first point, not a division by zero.
	degenerate := orb.LineString{{1.5, 48.0}, {1.5, 48.0}}
	c = Centroid(degenerate)
	assert.Equal(t, orb.Point{1.5, 48.0}, c)

	assert.Equal(t, orb.Point{}, Centroid(nil))
}

func TestPairwiseDistancesMeters(t *testing.T) {
	points := []orb.Point{{0, 0}, {0.001, 0}, {0, 0.001}}
	distances := PairwiseDistancesMeters(points)
	require.Len(t, distances, 3)
	assert.InDelta(t, 111.0, distances[0], 1e-9)
	assert.InDelta(t, 111.0, distances[1], 1e-9)
	assert.InDelta(t, 156.9777, distances[2], 1e-3)

	assert.Nil(t, PairwiseDistancesMeters([]orb.Point{{1, 1}}))
	assert.Nil(t, PairwiseDistancesMeters(nil))
}
