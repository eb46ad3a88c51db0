package charts

import (
	"errors"

	"github.com/railreport/railreport/pkg/stats/descriptive"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxChartOptions describe a box and whisker chart built from
// pre-aggregated box components.
type BoxChartOptions struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string

	BoxWidth vg.Length
}

// BoxChart draws one box per BoxplotStats group. The boxes carry their
// own quartiles and whiskers, so the plotter's re-derived statistics are
// overwritten with ours.
func BoxChart(boxes []descriptive.BoxplotStats, opts BoxChartOptions) (*plot.Plot, error) {
	if len(boxes) == 0 {
		return nil, errors.New("no boxes to chart")
	}

	boxWidth := opts.BoxWidth
	if boxWidth == 0 {
		boxWidth = vg.Points(30)
	}

	p := plot.New()
	ApplyTitle(p, opts.Title, opts.Subtitle)
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	labels := make([]string, len(boxes))
	for i, box := range boxes {
		labels[i] = box.Group

		// The plotter needs the whisker ends and outliers as raw values
		// so the axis range covers them.
		values := plotter.Values{box.LowerWhisker, box.UpperWhisker}
		values = append(values, box.Outliers...)

		boxPlotter, err := plotter.NewBoxPlot(boxWidth, float64(i), values)
		if err != nil {
			return nil, err
		}

		boxPlotter.Median = box.Median
		boxPlotter.Quartile1 = box.Q1
		boxPlotter.Quartile3 = box.Q3
		boxPlotter.AdjLow = box.LowerWhisker
		boxPlotter.AdjHigh = box.UpperWhisker
		boxPlotter.Min = minFloat(box.LowerWhisker, box.Outliers)
		boxPlotter.Max = maxFloat(box.UpperWhisker, box.Outliers)

		outside := make([]int, len(box.Outliers))
		for j := range box.Outliers {
			outside[j] = 2 + j
		}
		boxPlotter.Outside = outside

		p.Add(boxPlotter)
	}

	p.NominalX(labels...)

	return p, nil
}

func minFloat(initial float64, values []float64) float64 {
	min := initial
	for _, value := range values {
		if value < min {
			min = value
		}
	}

	return min
}

func maxFloat(initial float64, values []float64) float64 {
	max := initial
	for _, value := range values {
		if value > max {
			max = value
		}
	}

	return max
}
