package descriptive

import (
	"errors"
	"math"
)

// Bin is one fixed-width histogram bin covering [Start, End).
type Bin struct {
	Start  float64
	End    float64
	Center float64
	Count  int
}

// MakeBins builds bin edges of the given width spanning the data. The
// edges are snapped to multiples of the width, so several series binned
// with the same width line up.
func MakeBins(values []float64, width float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, errors.New("no values to bin")
	}
	if width <= 0 {
		return nil, errors.New("bin width must be positive")
	}

	min, max := values[0], values[0]
	for _, value := range values {
		if value < min {
			min = value
		}
		if value > max {
			max = value
		}
	}

	start := math.Floor(min/width) * width
	end := math.Ceil(max/width) * width
	if end == start {
		end += width
	}

	count := int(math.Round((end-start)/width)) + 1
	edges := make([]float64, count)
	for i := range edges {
		edges[i] = start + float64(i)*width
	}

	return edges, nil
}

// BinValues bins the values into fixed-width bins, counting occurrences
// per bin. A value sitting exactly on the final edge lands in the last
// bin rather than overflowing it.
func BinValues(values []float64, width float64) ([]Bin, error) {
	edges, err := MakeBins(values, width)
	if err != nil {
		return nil, err
	}

	numBins := len(edges) - 1
	bins := make([]Bin, numBins)
	for i := 0; i < numBins; i++ {
		bins[i] = Bin{
			Start:  edges[i],
			End:    edges[i+1],
			Center: (edges[i] + edges[i+1]) / 2,
		}
	}

	for _, value := range values {
		index := int((value - edges[0]) / width)
		if value == edges[numBins] || index >= numBins {
			index = numBins - 1
		}

		bins[index].Count++
	}

	return bins, nil
}
