package charts

import (
	"errors"
	"image/color"

	"github.com/railreport/railreport/pkg/stats/descriptive"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LineChartOptions describe a line chart over ordered categories, for
// example fiscal periods.
type LineChartOptions struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string

	Color color.Color

	// PointColors colors the marker of each point individually, for
	// example by fiscal quarter parity. Empty means every marker takes
	// the line color; otherwise one color per value is required.
	PointColors []color.Color

	// Trend overlays a dashed least-squares line fitted to the series.
	Trend bool
}

// LineChart plots the values in label order, with point markers and an
// optional trend line.
func LineChart(labels []string, values []float64, opts LineChartOptions) (*plot.Plot, error) {
	if len(labels) != len(values) {
		return nil, errors.New("labels and values must be the same length")
	}
	if len(labels) == 0 {
		return nil, errors.New("no values to chart")
	}
	if len(opts.PointColors) > 0 && len(opts.PointColors) != len(values) {
		return nil, errors.New("point colors and values must be the same length")
	}

	lineColor := opts.Color
	if lineColor == nil {
		lineColor = DefaultPalette[0]
	}

	p := plot.New()
	ApplyTitle(p, opts.Title, opts.Subtitle)
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	points := make(plotter.XYs, len(values))
	for i, value := range values {
		points[i] = plotter.XY{X: float64(i), Y: value}
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return nil, err
	}
	line.Color = lineColor
	line.Width = vg.Points(1.5)
	p.Add(line)

	if len(opts.PointColors) == 0 {
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return nil, err
		}
		scatter.Color = lineColor
		p.Add(scatter)
	} else if err := addColoredMarkers(p, points, opts.PointColors); err != nil {
		return nil, err
	}

	if opts.Trend && len(values) >= 2 {
		if err := addTrendLine(p, points); err != nil {
			return nil, err
		}
	}

	p.NominalX(labels...)

	return p, nil
}

// addColoredMarkers draws the point markers as one scatter per distinct
// color, in first-seen order.
func addColoredMarkers(p *plot.Plot, points plotter.XYs, pointColors []color.Color) error {
	var order []color.Color
	groups := map[color.Color]plotter.XYs{}
	for i, point := range points {
		markerColor := pointColors[i]
		if _, seen := groups[markerColor]; !seen {
			order = append(order, markerColor)
		}
		groups[markerColor] = append(groups[markerColor], point)
	}

	for _, markerColor := range order {
		scatter, err := plotter.NewScatter(groups[markerColor])
		if err != nil {
			return err
		}
		scatter.Color = markerColor

		p.Add(scatter)
	}

	return nil
}

// addTrendLine fits y over the category index and overlays the fit as a
// dashed line across the full x range.
func addTrendLine(p *plot.Plot, points plotter.XYs) error {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, point := range points {
		xs[i] = point.X
		ys[i] = point.Y
	}

	fit, err := descriptive.FitLinearRegression(xs, ys)
	if err != nil {
		return err
	}

	trend, err := plotter.NewLine(plotter.XYs{
		{X: xs[0], Y: fit.Predict(xs[0])},
		{X: xs[len(xs)-1], Y: fit.Predict(xs[len(xs)-1])},
	})
	if err != nil {
		return err
	}

	trend.Color = color.Gray{Y: 0x50}
	trend.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}

	p.Add(trend)
	p.Legend.Add("trend", trend)
	p.Legend.Top = true

	return nil
}
