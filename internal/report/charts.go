package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ousposer/ousposer/internal/patterns"
)

// WriteChartsHTML renders an interactive chart page for the run: a bar chart
// of the point-count distribution and a scatter of envelope dimensions.
func WriteChartsHTML(path string, rows []patterns.PatternCount, comps []patterns.BenchComponent) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Bench Pattern Analysis", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Point-count patterns", Subtitle: "grouped by cluster component count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	x := make([]string, len(rows))
	y := make([]opts.BarData, len(rows))
	for i, row := range rows {
		x[i] = fmt.Sprintf("%dc/%dp", row.ComponentCount, row.PointCount)
		y[i] = opts.BarData{Value: row.Count}
	}
	bar.SetXAxis(x).
		AddSeries("components", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Envelope dimensions", Subtitle: "length vs width, meters"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Length (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Width (m)", NameLocation: "middle", NameGap: 30}),
	)

	data := make([]opts.ScatterData, len(comps))
	for i, c := range comps {
		data[i] = opts.ScatterData{Value: []interface{}{c.EnvelopeLengthM, c.EnvelopeWidthM}}
	}
	scatter.AddSeries("envelopes", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	page := components.NewPage()
	page.AddCharts(bar, scatter)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}
