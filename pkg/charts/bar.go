package charts

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BarChartOptions describe one vertical bar chart.
type BarChartOptions struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string

	// Colors are cycled per bar. Empty uses DefaultPalette.
	Colors []color.Color

	// ShowValues draws each bar's value above it.
	ShowValues bool

	BarWidth vg.Length
}

// BarChart draws one bar per label. Each bar gets its own colour by
// drawing it as a single-value chart offset along X.
func BarChart(labels []string, values []float64, opts BarChartOptions) (*plot.Plot, error) {
	if len(labels) != len(values) {
		return nil, errors.New("labels and values must be the same length")
	}
	if len(labels) == 0 {
		return nil, errors.New("no values to chart")
	}

	colors := opts.Colors
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	barWidth := opts.BarWidth
	if barWidth == 0 {
		barWidth = vg.Points(25)
	}

	p := plot.New()
	ApplyTitle(p, opts.Title, opts.Subtitle)
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	for i, value := range values {
		bar, err := plotter.NewBarChart(plotter.Values{value}, barWidth)
		if err != nil {
			return nil, err
		}

		bar.XMin = float64(i)
		bar.Color = colors[i%len(colors)]
		bar.LineStyle.Width = 0

		p.Add(bar)
	}

	if opts.ShowValues {
		valueLabels := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(values)),
			Labels: make([]string, len(values)),
		}
		for i, value := range values {
			valueLabels.XYs[i] = plotter.XY{X: float64(i), Y: value}
			valueLabels.Labels[i] = fmt.Sprintf("%.2f", value)
		}

		labelPlotter, err := plotter.NewLabels(valueLabels)
		if err != nil {
			return nil, err
		}
		p.Add(labelPlotter)
	}

	p.NominalX(labels...)
	p.Y.Min = 0

	return p, nil
}
