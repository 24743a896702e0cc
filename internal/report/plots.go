package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ousposer/ousposer/internal/patterns"
)

// histogramBins keeps the envelope histograms readable at the dataset's
// scale (tens to hundreds of samples per group).
const histogramBins = 16

// WriteDimensionPlots saves histogram PNGs of the envelope length, envelope
// width and aspect ratio over the joined component set.
func WriteDimensionPlots(outputDir string, comps []patterns.BenchComponent) error {
	if len(comps) == 0 {
		return nil
	}

	lengths := make(plotter.Values, len(comps))
	widths := make(plotter.Values, len(comps))
	aspects := make(plotter.Values, len(comps))
	for i, c := range comps {
		lengths[i] = c.EnvelopeLengthM
		widths[i] = c.EnvelopeWidthM
		aspects[i] = c.AspectRatio
	}

	plots := []struct {
		name   string
		title  string
		xLabel string
		values plotter.Values
	}{
		{"envelope_length_hist.png", "Envelope length", "meters", lengths},
		{"envelope_width_hist.png", "Envelope width", "meters", widths},
		{"aspect_ratio_hist.png", "Aspect ratio", "width / length", aspects},
	}

	for _, spec := range plots {
		p := plot.New()
		p.Title.Text = spec.title
		p.X.Label.Text = spec.xLabel
		p.Y.Label.Text = "components"

		h, err := plotter.NewHist(spec.values, histogramBins)
		if err != nil {
			return fmt.Errorf("build %s: %w", spec.name, err)
		}
		p.Add(h)

		out := filepath.Join(outputDir, spec.name)
		if err := p.Save(8*vg.Inch, 5*vg.Inch, out); err != nil {
			return fmt.Errorf("save %s: %w", spec.name, err)
		}
	}

	return nil
}
