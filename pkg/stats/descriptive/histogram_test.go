package descriptive

import "testing"

func TestMakeBins(t *testing.T) {
	edges, err := MakeBins([]float64{3, 7, 12}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{0, 5, 10, 15}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges %v, want %v", len(edges), edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("edges = %v, want %v", edges, want)
		}
	}
}

func TestMakeBinsDegenerate(t *testing.T) {
	// All values on one multiple of the width still yield one real bin.
	edges, err := MakeBins([]float64{10, 10}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(edges) != 2 || edges[0] != 10 || edges[1] != 15 {
		t.Fatalf("edges = %v, want [10 15]", edges)
	}
}

func TestMakeBinsErrors(t *testing.T) {
	if _, err := MakeBins(nil, 5); err == nil {
		t.Error("expected an error for empty input")
	}
	if _, err := MakeBins([]float64{1, 2}, 0); err == nil {
		t.Error("expected an error for zero width")
	}
	if _, err := MakeBins([]float64{1, 2}, -1); err == nil {
		t.Error("expected an error for negative width")
	}
}

func TestBinValues(t *testing.T) {
	bins, err := BinValues([]float64{1, 2, 6, 7, 8, 12}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Edges 0,5,10,15 -> three bins.
	if len(bins) != 3 {
		t.Fatalf("got %d bins, want 3", len(bins))
	}

	wantCounts := []int{2, 3, 1}
	for i, want := range wantCounts {
		if bins[i].Count != want {
			t.Errorf("bin %d count = %d, want %d", i, bins[i].Count, want)
		}
	}

	if bins[0].Start != 0 || bins[0].End != 5 || bins[0].Center != 2.5 {
		t.Errorf("bin 0 = %+v, want [0,5) centred on 2.5", bins[0])
	}
}

func TestBinValuesMaxOnFinalEdge(t *testing.T) {
	// 10 sits exactly on the last edge; it lands in the last real bin
	// instead of growing a trailing empty bin.
	bins, err := BinValues([]float64{0, 10}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bins) != 2 {
		t.Fatalf("got %d bins, want 2", len(bins))
	}
	if bins[0].Count != 1 || bins[1].Count != 1 {
		t.Errorf("counts = %d/%d, want 1/1", bins[0].Count, bins[1].Count)
	}
}
