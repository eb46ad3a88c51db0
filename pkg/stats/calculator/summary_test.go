package calculator

import (
	"math"
	"testing"

	"github.com/railreport/railreport/pkg/otp"
)

func testArrivals() []otp.StationArrival {
	return []otp.StationArrival{
		{
			ServiceLine: "Long Distance", ArrivalStationCode: "ATL",
			FiscalYear: 2024, FiscalQuarter: 1,
			TotalDetrainingCustomers: 100, LateDetrainingCustomers: 20, AvgMinLate: 30,
		},
		{
			ServiceLine: "Long Distance", ArrivalStationCode: "NYP",
			FiscalYear: 2024, FiscalQuarter: 2,
			TotalDetrainingCustomers: 200, LateDetrainingCustomers: 30, AvgMinLate: 50,
		},
		{
			ServiceLine: "State Supported", ArrivalStationCode: "CHI",
			FiscalYear: 2024, FiscalQuarter: 1,
			TotalDetrainingCustomers: 100, LateDetrainingCustomers: 0, AvgMinLate: math.NaN(),
		},
	}
}

func TestComputeSummary(t *testing.T) {
	summary, err := ComputeSummary(testArrivals(),
		[]string{FieldTotalDetraining, FieldLateDetraining},
		[]AggFunc{AggSum, AggMean}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TrainArrivals != 3 {
		t.Errorf("TrainArrivals = %d, want 3", summary.TrainArrivals)
	}
	if got := summary.Aggregates[FieldTotalDetraining+" sum"]; got != 400 {
		t.Errorf("total sum = %v, want 400", got)
	}
	if got := summary.Aggregates[FieldLateDetraining+" sum"]; got != 50 {
		t.Errorf("late sum = %v, want 50", got)
	}
	if got := summary.Aggregates[FieldTotalDetraining+" mean"]; !almostEqual(got, 400.0/3, 1e-3) {
		t.Errorf("total mean = %v, want %v", got, 400.0/3)
	}

	if !almostEqual(summary.LateToTotalRatio, 0.125, 1e-9) {
		t.Errorf("LateToTotalRatio = %v, want 0.125", summary.LateToTotalRatio)
	}
	if summary.TotalOnTimeDetraining != 350 {
		t.Errorf("TotalOnTimeDetraining = %v, want 350", summary.TotalOnTimeDetraining)
	}

	// Only the two records with late customers carry a minutes figure.
	if !almostEqual(summary.MeanMinLate, 40, 1e-9) {
		t.Errorf("MeanMinLate = %v, want 40", summary.MeanMinLate)
	}
}

func TestComputeSummaryMissingMinutes(t *testing.T) {
	// The station with no late customers carries NaN minutes; the
	// aggregates must cover the two real figures only.
	summary, err := ComputeSummary(testArrivals(),
		[]string{FieldAvgMinLate},
		[]AggFunc{AggMean, AggCount, AggMin, AggMax}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := summary.Aggregates[FieldAvgMinLate+" mean"]; !almostEqual(got, 40, 1e-9) {
		t.Errorf("mean = %v, want 40", got)
	}
	if got := summary.Aggregates[FieldAvgMinLate+" count"]; got != 2 {
		t.Errorf("count = %v, want 2", got)
	}
	if got := summary.Aggregates[FieldAvgMinLate+" min"]; got != 30 {
		t.Errorf("min = %v, want 30", got)
	}
	if got := summary.Aggregates[FieldAvgMinLate+" max"]; got != 50 {
		t.Errorf("max = %v, want 50", got)
	}
}

func TestComputeSummaryAllMinutesMissing(t *testing.T) {
	arrivals := []otp.StationArrival{
		{TotalDetrainingCustomers: 10, AvgMinLate: math.NaN()},
		{TotalDetrainingCustomers: 20, AvgMinLate: math.NaN()},
	}

	summary, err := ComputeSummary(arrivals,
		[]string{FieldAvgMinLate}, []AggFunc{AggSum, AggMean, AggCount}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// JSON output carries no NaN: empty aggregates collapse to zero.
	if got := summary.Aggregates[FieldAvgMinLate+" sum"]; got != 0 {
		t.Errorf("sum = %v, want 0", got)
	}
	if got := summary.Aggregates[FieldAvgMinLate+" mean"]; got != 0 {
		t.Errorf("mean = %v, want 0", got)
	}
	if got := summary.Aggregates[FieldAvgMinLate+" count"]; got != 0 {
		t.Errorf("count = %v, want 0", got)
	}
}

func TestComputeSummaryUnknownField(t *testing.T) {
	if _, err := ComputeSummary(testArrivals(), []string{"Colour"}, []AggFunc{AggSum}, 0); err == nil {
		t.Fatal("expected an error")
	}
}

func TestComputeSummaryUnknownFunction(t *testing.T) {
	if _, err := ComputeSummary(testArrivals(), []string{FieldTotalDetraining}, []AggFunc{"median-ish"}, 0); err == nil {
		t.Fatal("expected an error")
	}
}

func TestComputeSummaryNoLateRecords(t *testing.T) {
	arrivals := []otp.StationArrival{
		{TotalDetrainingCustomers: 10, LateDetrainingCustomers: 0, AvgMinLate: math.NaN()},
	}

	summary, err := ComputeSummary(arrivals, nil, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.MeanMinLate != 0 {
		t.Errorf("MeanMinLate = %v, want 0 when no record is late", summary.MeanMinLate)
	}
}

func TestComputeSummaryByGroup(t *testing.T) {
	summaries, err := ComputeSummaryByGroup(testArrivals(), GroupByServiceLine,
		[]string{FieldTotalDetraining}, []AggFunc{AggSum},
		GroupOptions{TotalArrivals: 3, TotalDetraining: 400})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("got %d groups, want 2", len(summaries))
	}

	longDistance := summaries[0]
	if longDistance.Group != "Long Distance" {
		t.Fatalf("first group is %q, want Long Distance", longDistance.Group)
	}
	if got := longDistance.Aggregates[FieldTotalDetraining+" sum"]; got != 300 {
		t.Errorf("Long Distance total = %v, want 300", got)
	}
	if !almostEqual(longDistance.TrainArrivalRatio, 2.0/3, 1e-3) {
		t.Errorf("TrainArrivalRatio = %v, want 2/3", longDistance.TrainArrivalRatio)
	}
	if !almostEqual(longDistance.DetrainingRatio, 0.75, 1e-9) {
		t.Errorf("DetrainingRatio = %v, want 0.75", longDistance.DetrainingRatio)
	}

	if summaries[1].Group != "State Supported" {
		t.Errorf("second group is %q, want State Supported", summaries[1].Group)
	}
}

func almostEqual(a float64, b float64, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
