package charts

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/montanaflynn/stats"
	"github.com/railreport/railreport/pkg/stats/descriptive"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// HistogramSeries is one layer of a histogram chart.
type HistogramSeries struct {
	Name   string
	Values []float64
}

// HistogramOptions describe a binned histogram, optionally layering
// several series on shared bin edges.
type HistogramOptions struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string

	// BinWidth is required; the bin edges snap to multiples of it so the
	// layers line up.
	BinWidth float64

	// Colors are cycled per series. Empty uses DefaultPalette.
	Colors []color.Color

	// SigmaLines draws vertical markers at mean±n*std of the first
	// series for each listed n.
	SigmaLines []float64
}

// HistogramChart bins each series with the shared bin width and layers
// them translucently on one plot.
func HistogramChart(series []HistogramSeries, opts HistogramOptions) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, errors.New("no series to chart")
	}

	colors := opts.Colors
	if len(colors) == 0 {
		colors = DefaultPalette
	}

	p := plot.New()
	ApplyTitle(p, opts.Title, opts.Subtitle)
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	maxCount := 0

	for i, s := range series {
		bins, err := descriptive.BinValues(s.Values, opts.BinWidth)
		if err != nil {
			return nil, fmt.Errorf("binning series %s: %w", s.Name, err)
		}

		histogramBins := make([]plotter.HistogramBin, len(bins))
		for j, bin := range bins {
			histogramBins[j] = plotter.HistogramBin{
				Min:    bin.Start,
				Max:    bin.End,
				Weight: float64(bin.Count),
			}
			if bin.Count > maxCount {
				maxCount = bin.Count
			}
		}

		fill := colors[i%len(colors)]
		if len(series) > 1 {
			fill = WithAlpha(fill, 0xa0)
		}

		histogram := &plotter.Histogram{
			Bins:      histogramBins,
			Width:     float64(len(bins)) * opts.BinWidth,
			FillColor: fill,
			LineStyle: plotter.DefaultLineStyle,
		}

		p.Add(histogram)
	}

	if len(opts.SigmaLines) > 0 {
		if err := addSigmaLines(p, series[0].Values, opts.SigmaLines, float64(maxCount)); err != nil {
			return nil, err
		}
	}

	p.Legend.Top = true
	p.Y.Min = 0

	return p, nil
}

// addSigmaLines marks mean±n*std with dashed vertical lines.
func addSigmaLines(p *plot.Plot, values []float64, sigmas []float64, height float64) error {
	mean, err := stats.Mean(values)
	if err != nil {
		return err
	}
	std, err := stats.StandardDeviationSample(values)
	if err != nil {
		return err
	}

	for _, n := range sigmas {
		var marker *plotter.Line
		for _, x := range []float64{mean - n*std, mean + n*std} {
			line, err := plotter.NewLine(plotter.XYs{
				{X: x, Y: 0},
				{X: x, Y: height},
			})
			if err != nil {
				return err
			}

			line.LineStyle = draw.LineStyle{
				Color:  color.Gray{Y: 0x60},
				Width:  vg.Points(1),
				Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
			}

			p.Add(line)
			marker = line
		}

		p.Legend.Add(fmt.Sprintf("mean ± %.0fσ", n), marker)
	}

	return nil
}
