package descriptive

import "errors"

// LinearRegression is a least squares fit of y on x.
type LinearRegression struct {
	Slope     float64
	Intercept float64
}

// FitLinearRegression fits y = Slope*x + Intercept.
func FitLinearRegression(xs []float64, ys []float64) (LinearRegression, error) {
	if len(xs) != len(ys) {
		return LinearRegression{}, errors.New("mismatched series lengths")
	}
	if len(xs) < 2 {
		return LinearRegression{}, errors.New("need at least two points")
	}

	n := float64(len(xs))

	xMean, yMean := 0.0, 0.0
	for i := range xs {
		xMean += xs[i]
		yMean += ys[i]
	}
	xMean /= n
	yMean /= n

	sxx, sxy := 0.0, 0.0
	for i := range xs {
		dx := xs[i] - xMean
		sxx += dx * dx
		sxy += dx * (ys[i] - yMean)
	}

	if sxx == 0 {
		return LinearRegression{}, errors.New("x values have no spread")
	}

	slope := sxy / sxx

	return LinearRegression{
		Slope:     slope,
		Intercept: yMean - slope*xMean,
	}, nil
}

// Predict evaluates the fitted line at x.
func (l LinearRegression) Predict(x float64) float64 {
	return l.Slope*x + l.Intercept
}
