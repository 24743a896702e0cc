package patterns

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution summarises one observed quantity within a group.
// Std is the population standard deviation, matching the calibration runs
// that produced the downstream detection constants.
type Distribution struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Summarise computes a Distribution over the samples. The caller must not
// pass an empty slice; groups with no members are omitted upstream rather
// than summarised as zeros.
func Summarise(samples []float64) Distribution {
	return Distribution{
		Mean: stat.Mean(samples, nil),
		Std:  stat.PopStdDev(samples, nil),
		Min:  floats.Min(samples),
		Max:  floats.Max(samples),
	}
}
