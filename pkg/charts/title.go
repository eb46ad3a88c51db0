package charts

import (
	"fmt"

	"github.com/railreport/railreport/pkg/stats/calculator"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// FormatSummarySubtitle builds the standard chart subtitle out of a
// summary row, e.g.
//
//	total: 1,234,567; on time: 1,000,000 (81.00%); late: 234,567 (19.00%) | mean mins late: 48.52
func FormatSummarySubtitle(summary calculator.Summary) string {
	total := int(summary.Aggregates[calculator.FieldTotalDetraining+" sum"])
	late := int(summary.Aggregates[calculator.FieldLateDetraining+" sum"])
	onTime := total - late

	latePct, onTimePct := 0.0, 0.0
	if total > 0 {
		latePct = float64(late) / float64(total) * 100
		onTimePct = float64(onTime) / float64(total) * 100
	}

	return fmt.Sprintf("total: %s; on time: %s (%.2f%%); late: %s (%.2f%%) | mean mins late: %.2f",
		groupDigits(total), groupDigits(onTime), onTimePct,
		groupDigits(late), latePct, summary.MeanMinLate)
}

// ApplyTitle sets a chart title with an optional smaller subtitle line.
func ApplyTitle(p *plot.Plot, title string, subtitle string) {
	text := title
	if subtitle != "" {
		text += "\n" + subtitle
	}

	p.Title.Text = text
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(6)
}

// groupDigits renders n with thousands separators.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return "-" + groupDigits(-n)
	}

	var grouped []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digit)
	}

	return string(grouped)
}
