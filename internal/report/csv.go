package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/ousposer/ousposer/internal/patterns"
)

// WriteComponentsCSV exports the joined per-component features for
// inspection in spreadsheet tools.
func WriteComponentsCSV(path string, components []patterns.BenchComponent) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"objectid", "point_count", "length_m",
		"envelope_length_m", "envelope_width_m", "aspect_ratio",
		"cluster_id", "component_count", "arrondissement",
		"total_length", "confidence",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, c := range components {
		row := []string{
			strconv.Itoa(c.ObjectID),
			strconv.Itoa(c.PointCount),
			strconv.FormatFloat(c.PathLengthM, 'f', 3, 64),
			strconv.FormatFloat(c.EnvelopeLengthM, 'f', 3, 64),
			strconv.FormatFloat(c.EnvelopeWidthM, 'f', 3, 64),
			strconv.FormatFloat(c.AspectRatio, 'f', 3, 64),
			strconv.Itoa(c.Cluster.ClusterID),
			strconv.Itoa(c.Cluster.ComponentCount),
			strconv.Itoa(c.Cluster.Arrondissement),
			strconv.FormatFloat(c.Cluster.TotalLength, 'f', 2, 64),
			strconv.FormatFloat(c.Cluster.Confidence, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
