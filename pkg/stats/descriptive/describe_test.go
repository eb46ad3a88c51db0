package descriptive

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	description, err := Describe("test column", values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if description.NonNull != 8 || description.Missing != 0 {
		t.Errorf("NonNull/Missing = %d/%d, want 8/0", description.NonNull, description.Missing)
	}
	if !almostEqual(description.Mean, 5) {
		t.Errorf("Mean = %v, want 5", description.Mean)
	}
	if !almostEqual(description.Median, 4.5) {
		t.Errorf("Median = %v, want 4.5", description.Median)
	}
	if description.Mode != 4 {
		t.Errorf("Mode = %v, want 4", description.Mode)
	}
	if description.Min != 2 || description.Max != 9 {
		t.Errorf("Min/Max = %v/%v, want 2/9", description.Min, description.Max)
	}
	if !almostEqual(description.Range, 7) {
		t.Errorf("Range = %v, want 7", description.Range)
	}
	if !almostEqual(description.IQR, description.Q3-description.Q1) {
		t.Errorf("IQR = %v, want Q3-Q1", description.IQR)
	}
	if !almostEqual(description.Std, math.Sqrt(description.Variance)) {
		t.Errorf("Std = %v, want sqrt(Variance)", description.Std)
	}
}

func TestDescribeMissingValues(t *testing.T) {
	values := []float64{1, math.NaN(), 3, math.NaN(), 5}

	description, err := Describe("with gaps", values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if description.NonNull != 3 {
		t.Errorf("NonNull = %d, want 3", description.NonNull)
	}
	if description.Missing != 2 {
		t.Errorf("Missing = %d, want 2", description.Missing)
	}
	if !almostEqual(description.Mean, 3) {
		t.Errorf("Mean = %v, want 3 over the non-missing values", description.Mean)
	}
}

func TestDescribeEmpty(t *testing.T) {
	if _, err := Describe("empty", nil); err == nil {
		t.Error("expected an error for empty input")
	}
	if _, err := Describe("all missing", []float64{math.NaN()}); err == nil {
		t.Error("expected an error when every value is missing")
	}
}

func TestSampleSkewness(t *testing.T) {
	// Symmetric data has zero skew.
	if got := sampleSkewness([]float64{1, 2, 3, 4, 5}, 3); !almostEqual(got, 0) {
		t.Errorf("skewness = %v, want 0", got)
	}

	if got := sampleSkewness([]float64{1, 2}, 1.5); !math.IsNaN(got) {
		t.Errorf("skewness of two samples = %v, want NaN", got)
	}
}

func TestSampleKurtosis(t *testing.T) {
	if got := sampleKurtosis([]float64{1, 2, 3}, 2); !math.IsNaN(got) {
		t.Errorf("kurtosis of three samples = %v, want NaN", got)
	}

	// Constant data has no second moment to normalise by.
	if got := sampleKurtosis([]float64{2, 2, 2, 2}, 2); !math.IsNaN(got) {
		t.Errorf("kurtosis of constant data = %v, want NaN", got)
	}
}
