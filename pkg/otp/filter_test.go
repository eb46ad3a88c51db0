package otp

import "testing"

func testArrivals() []StationArrival {
	return []StationArrival{
		{FiscalYear: 2023, FiscalQuarter: 4, ServiceLine: "Long Distance", Service: "Crescent", TrainNumber: 19, ArrivalStationCode: "ATL", State: "Georgia"},
		{FiscalYear: 2024, FiscalQuarter: 1, ServiceLine: "Long Distance", Service: "Crescent", TrainNumber: 20, ArrivalStationCode: "NYP", State: "New York"},
		{FiscalYear: 2024, FiscalQuarter: 2, ServiceLine: "State Supported", Service: "Wolverine", TrainNumber: 350, ArrivalStationCode: "CHI", State: "Illinois"},
		{FiscalYear: 2024, FiscalQuarter: 3, ServiceLine: "State Supported", Service: "Wolverine", TrainNumber: 0, ArrivalStationCode: "DET", State: "Michigan"},
	}
}

func TestFilterStationArrivals(t *testing.T) {
	testCases := []struct {
		name string
		opts FilterOptions

		expectError bool
		expectCodes []string
	}{
		{
			name:        "no criteria returns everything",
			opts:        FilterOptions{},
			expectCodes: []string{"ATL", "NYP", "CHI", "DET"},
		},
		{
			name:        "by service line",
			opts:        FilterOptions{Field: "ServiceLine", Value: "State Supported"},
			expectCodes: []string{"CHI", "DET"},
		},
		{
			name:        "zero is a valid filter value",
			opts:        FilterOptions{Field: "TrainNumber", Value: 0},
			expectCodes: []string{"DET"},
		},
		{
			name:        "by year",
			opts:        FilterOptions{Year: 2024},
			expectCodes: []string{"NYP", "CHI", "DET"},
		},
		{
			name:        "by year and quarters",
			opts:        FilterOptions{Year: 2024, Quarters: []int{1, 3}},
			expectCodes: []string{"NYP", "DET"},
		},
		{
			name:        "field and year combine",
			opts:        FilterOptions{Field: "Service", Value: "Wolverine", Year: 2024, Quarters: []int{2}},
			expectCodes: []string{"CHI"},
		},
		{
			name:        "unknown field",
			opts:        FilterOptions{Field: "Colour", Value: "red"},
			expectError: true,
		},
		{
			name:        "field without value",
			opts:        FilterOptions{Field: "Service"},
			expectError: true,
		},
		{
			name:        "quarters without year",
			opts:        FilterOptions{Quarters: []int{1}},
			expectError: true,
		},
		{
			name:        "quarter out of range",
			opts:        FilterOptions{Year: 2024, Quarters: []int{5}},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			filtered, err := FilterStationArrivals(testArrivals(), testCase.opts)

			if testCase.expectError {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(filtered) != len(testCase.expectCodes) {
				t.Fatalf("got %d records, want %d", len(filtered), len(testCase.expectCodes))
			}
			for i, code := range testCase.expectCodes {
				if filtered[i].ArrivalStationCode != code {
					t.Errorf("record %d is %s, want %s", i, filtered[i].ArrivalStationCode, code)
				}
			}
		})
	}
}

func TestFilterWrappers(t *testing.T) {
	arrivals := testArrivals()

	crescent, err := ByService(arrivals, "Crescent", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(crescent) != 2 {
		t.Errorf("got %d Crescent records, want 2", len(crescent))
	}

	station, err := ByStation(arrivals, "CHI", 2024, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(station) != 1 || station[0].ArrivalStationCode != "CHI" {
		t.Errorf("got %v, want single CHI record", station)
	}

	train, err := ByTrainNumber(arrivals, 20, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(train) != 1 || train[0].ArrivalStationCode != "NYP" {
		t.Errorf("got %v, want single NYP record", train)
	}
}
