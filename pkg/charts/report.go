package charts

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/railreport/railreport/pkg/otp"
	"github.com/railreport/railreport/pkg/stats/calculator"
	"github.com/railreport/railreport/pkg/stats/descriptive"
	"gonum.org/v1/plot"
)

// The standard report bins minutes-late figures into 5 minute buckets.
const reportBinWidth = 5

// GenerateReport renders the standard chart set into the output
// directory: per-service-line bar and box charts, the minutes-late
// histogram, the quarterly trend line, and a tiled report page.
func GenerateReport(arrivals []otp.StationArrival, outputDirectory string) error {
	summary, err := calculator.ComputeSummary(arrivals,
		[]string{calculator.FieldTotalDetraining, calculator.FieldLateDetraining},
		[]calculator.AggFunc{calculator.AggSum},
		calculator.DefaultPrecision)
	if err != nil {
		return err
	}
	subtitle := FormatSummarySubtitle(summary)

	barPlot, err := serviceLineBarChart(arrivals, subtitle)
	if err != nil {
		return err
	}

	boxPlot, err := serviceLineBoxChart(arrivals, subtitle)
	if err != nil {
		return err
	}

	histogramPlot, err := minutesLateHistogram(arrivals, subtitle)
	if err != nil {
		return err
	}

	linePlot, err := quarterlyTrendChart(arrivals, subtitle)
	if err != nil {
		return err
	}

	pages := map[string]*plot.Plot{
		"bar_service_lines.png":  barPlot,
		"box_service_lines.png":  boxPlot,
		"histogram_min_late.png": histogramPlot,
		"line_quarterly.png":     linePlot,
	}
	for filename, page := range pages {
		if err := SavePNG(page, filepath.Join(outputDirectory, filename)); err != nil {
			return err
		}
	}

	return SaveGridPNG([][]*plot.Plot{
		{barPlot, boxPlot},
		{histogramPlot, linePlot},
	}, filepath.Join(outputDirectory, "report.png"))
}

// ReportChart builds one of the standard report charts by kind: bar,
// box, histogram or line.
func ReportChart(kind string, arrivals []otp.StationArrival) (*plot.Plot, error) {
	summary, err := calculator.ComputeSummary(arrivals,
		[]string{calculator.FieldTotalDetraining, calculator.FieldLateDetraining},
		[]calculator.AggFunc{calculator.AggSum},
		calculator.DefaultPrecision)
	if err != nil {
		return nil, err
	}
	subtitle := FormatSummarySubtitle(summary)

	switch kind {
	case "bar":
		return serviceLineBarChart(arrivals, subtitle)
	case "box":
		return serviceLineBoxChart(arrivals, subtitle)
	case "histogram":
		return minutesLateHistogram(arrivals, subtitle)
	case "line":
		return quarterlyTrendChart(arrivals, subtitle)
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
}

func serviceLineBarChart(arrivals []otp.StationArrival, subtitle string) (*plot.Plot, error) {
	summaries, err := calculator.ComputeSummaryByGroup(arrivals, calculator.GroupByServiceLine,
		[]string{calculator.FieldTotalDetraining},
		[]calculator.AggFunc{calculator.AggSum},
		calculator.GroupOptions{})
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(summaries))
	values := make([]float64, len(summaries))
	for i, s := range summaries {
		labels[i] = s.Group
		values[i] = s.Aggregates[calculator.FieldTotalDetraining+" sum"]
	}

	return BarChart(labels, values, BarChartOptions{
		Title:      "Detraining customers by service line",
		Subtitle:   subtitle,
		YLabel:     "Detraining customers",
		ShowValues: true,
	})
}

func serviceLineBoxChart(arrivals []otp.StationArrival, subtitle string) (*plot.Plot, error) {
	groups := map[string][]float64{}
	for _, arrival := range arrivals {
		if arrival.LateDetrainingCustomers > 0 && !math.IsNaN(arrival.AvgMinLate) {
			groups[arrival.ServiceLine] = append(groups[arrival.ServiceLine], arrival.AvgMinLate)
		}
	}

	boxes, err := descriptive.BoxplotByGroup(groups, descriptive.DefaultWhiskerCoefficient)
	if err != nil {
		return nil, err
	}

	return BoxChart(boxes, BoxChartOptions{
		Title:    "Minutes late by service line",
		Subtitle: subtitle,
		YLabel:   "Average minutes late",
	})
}

func minutesLateHistogram(arrivals []otp.StationArrival, subtitle string) (*plot.Plot, error) {
	var minutesLate []float64
	for _, arrival := range arrivals {
		if arrival.LateDetrainingCustomers > 0 && !math.IsNaN(arrival.AvgMinLate) {
			minutesLate = append(minutesLate, arrival.AvgMinLate)
		}
	}

	return HistogramChart([]HistogramSeries{
		{Name: "Average minutes late", Values: minutesLate},
	}, HistogramOptions{
		Title:      "Distribution of minutes late",
		Subtitle:   subtitle,
		XLabel:     "Average minutes late",
		YLabel:     "Station arrivals",
		BinWidth:   reportBinWidth,
		SigmaLines: []float64{1, 2},
	})
}

func quarterlyTrendChart(arrivals []otp.StationArrival, subtitle string) (*plot.Plot, error) {
	averages := calculator.QuarterlyAvgMinLate(arrivals, calculator.DefaultPrecision)

	parityColors := [2]color.Color{DefaultPalette[0], DefaultPalette[1]}

	labels := make([]string, len(averages))
	values := make([]float64, len(averages))
	pointColors := make([]color.Color, len(averages))
	for i, average := range averages {
		labels[i] = average.Period
		values[i] = average.AvgMinLate
		pointColors[i] = AlternatingPeriodColor(average.Period, parityColors)
	}

	return LineChart(labels, values, LineChartOptions{
		Title:       "Average minutes late per fiscal quarter",
		Subtitle:    subtitle,
		XLabel:      "Fiscal quarter",
		YLabel:      "Average minutes late",
		PointColors: pointColors,
		Trend:       true,
	})
}
