package descriptive

import "testing"

func TestFitLinearRegression(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 3, 5, 7}

	fit, err := FitLinearRegression(xs, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(fit.Slope, 2) {
		t.Errorf("Slope = %v, want 2", fit.Slope)
	}
	if !almostEqual(fit.Intercept, 1) {
		t.Errorf("Intercept = %v, want 1", fit.Intercept)
	}
	if !almostEqual(fit.Predict(10), 21) {
		t.Errorf("Predict(10) = %v, want 21", fit.Predict(10))
	}
}

func TestFitLinearRegressionNoisy(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2.1, 3.9, 6.2, 7.8, 10.1}

	fit, err := FitLinearRegression(xs, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fit.Slope < 1.8 || fit.Slope > 2.2 {
		t.Errorf("Slope = %v, want roughly 2", fit.Slope)
	}
}

func TestFitLinearRegressionErrors(t *testing.T) {
	if _, err := FitLinearRegression([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected an error for mismatched lengths")
	}
	if _, err := FitLinearRegression([]float64{1}, []float64{1}); err == nil {
		t.Error("expected an error for a single point")
	}
	if _, err := FitLinearRegression([]float64{2, 2}, []float64{1, 3}); err == nil {
		t.Error("expected an error when x has no spread")
	}
}
