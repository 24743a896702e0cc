// Package geom provides the geometric derivations used by the bench pattern
// analysis: path lengths, envelope dimensions and centroid distances, all in
// approximate meters.
package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// MetersPerDegree is the flat equirectangular degree-to-meter factor used
// throughout the analysis. It is only valid near the dataset's latitude band
// (Paris, ~48.85°N). Downstream tolerance constants were calibrated against
// values produced with this factor, so it must not be replaced with a proper
// projection.
const MetersPerDegree = 111000.0

// PathLengthMeters returns the polyline length of ls in approximate meters.
func PathLengthMeters(ls orb.LineString) float64 {
	return planar.Length(ls) * MetersPerDegree
}

// Envelope returns the axis-aligned bounding-box dimensions of ls in
// approximate meters. Length is the longer extent, width the shorter, so
// width <= length always holds.
func Envelope(ls orb.LineString) (lengthM, widthM float64) {
	b := ls.Bound()
	dx := (b.Max[0] - b.Min[0]) * MetersPerDegree
	dy := (b.Max[1] - b.Min[1]) * MetersPerDegree
	if dx >= dy {
		return dx, dy
	}
	return dy, dx
}

// AspectRatio returns width/length, or 0 for a zero-length envelope.
// A degenerate envelope (single repeated point) is not an error.
func AspectRatio(lengthM, widthM float64) float64 {
	if lengthM == 0 {
		return 0
	}
	return widthM / lengthM
}

// Centroid returns the length-weighted centroid of ls. A zero-length
// polyline (all points coincident) yields its first point rather than a
// division by zero.
func Centroid(ls orb.LineString) orb.Point {
	if len(ls) == 0 {
		return orb.Point{}
	}
	if planar.Length(ls) == 0 {
		return ls[0]
	}
	center, _ := planar.CentroidArea(ls)
	return center
}

// PairwiseDistancesMeters returns the n*(n-1)/2 pairwise Euclidean distances
// between the points, in approximate meters. Distances are computed in
// degree space and scaled, matching the calibration of the clustering radii.
func PairwiseDistancesMeters(points []orb.Point) []float64 {
	if len(points) < 2 {
		return nil
	}
	distances := make([]float64, 0, len(points)*(len(points)-1)/2)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			distances = append(distances, planar.Distance(points[i], points[j])*MetersPerDegree)
		}
	}
	return distances
}
