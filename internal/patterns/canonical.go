package patterns

import "sort"

// DimensionProfile summarises the envelope geometry of single-component
// benches sharing a point count. The tolerance values are 2% of the mean
// (by default) — a detection heuristic, not a bound on the observed range.
type DimensionProfile struct {
	Count int `json:"count"`

	EnvelopeLength Distribution `json:"envelope_length"`
	EnvelopeWidth  Distribution `json:"envelope_width"`
	AspectRatio    Distribution `json:"aspect_ratio"`
	TotalLength    Distribution `json:"total_length"`

	EnvelopeLengthTolerance float64 `json:"envelope_length_tolerance"`
	EnvelopeWidthTolerance  float64 `json:"envelope_width_tolerance"`
}

// CanonicalDimensions computes a DimensionProfile for each distinct point
// count among single-component benches. Point counts with no examples
// produce no entry: absence means insufficient data, not zero confidence.
func CanonicalDimensions(components []BenchComponent, cal *Calibration) map[int]DimensionProfile {
	if cal == nil {
		cal = DefaultCalibration()
	}
	tolerance := *cal.ToleranceRatio

	byPointCount := make(map[int][]BenchComponent)
	for _, c := range components {
		if c.Cluster.ComponentCount != 1 {
			continue
		}
		byPointCount[c.PointCount] = append(byPointCount[c.PointCount], c)
	}

	profiles := make(map[int]DimensionProfile, len(byPointCount))
	for pointCount, group := range byPointCount {
		lengths := make([]float64, len(group))
		widths := make([]float64, len(group))
		aspects := make([]float64, len(group))
		totals := make([]float64, len(group))
		for i, c := range group {
			lengths[i] = c.EnvelopeLengthM
			widths[i] = c.EnvelopeWidthM
			aspects[i] = c.AspectRatio
			totals[i] = c.PathLengthM
		}

		profile := DimensionProfile{
			Count:          len(group),
			EnvelopeLength: Summarise(lengths),
			EnvelopeWidth:  Summarise(widths),
			AspectRatio:    Summarise(aspects),
			TotalLength:    Summarise(totals),
		}
		profile.EnvelopeLengthTolerance = profile.EnvelopeLength.Mean * tolerance
		profile.EnvelopeWidthTolerance = profile.EnvelopeWidth.Mean * tolerance

		profiles[pointCount] = profile
	}

	return profiles
}

// SortedPointCounts returns the profile keys in ascending order, for
// deterministic reporting.
func SortedPointCounts(profiles map[int]DimensionProfile) []int {
	counts := make([]int, 0, len(profiles))
	for pc := range profiles {
		counts = append(counts, pc)
	}
	sort.Ints(counts)
	return counts
}
