package otp

import "testing"

func TestLookupCountry(t *testing.T) {
	testCases := []struct {
		jurisdiction string
		expect       string
	}{
		{"New York", "United States"},
		{"District of Columbia", "United States"},
		{"Ontario", "Canada"},
		{"British Columbia", "Canada"},
		{"Narnia", ""},
		{"", ""},
	}

	for _, testCase := range testCases {
		if got := LookupCountry(testCase.jurisdiction); got != testCase.expect {
			t.Errorf("LookupCountry(%q) = %q, want %q", testCase.jurisdiction, got, testCase.expect)
		}
	}
}

func TestLookupRegionDivision(t *testing.T) {
	testCases := []struct {
		jurisdiction   string
		expectRegion   string
		expectDivision string
	}{
		{"Massachusetts", "Northeast", "New England"},
		{"Illinois", "Midwest", "East North Central"},
		{"Texas", "South", "West South Central"},
		{"California", "West", "Pacific"},
		{"Quebec", "", ""},
		{"Narnia", "", ""},
	}

	for _, testCase := range testCases {
		region, division := LookupRegionDivision(testCase.jurisdiction)
		if region != testCase.expectRegion || division != testCase.expectDivision {
			t.Errorf("LookupRegionDivision(%q) = (%q, %q), want (%q, %q)",
				testCase.jurisdiction, region, division, testCase.expectRegion, testCase.expectDivision)
		}
	}
}

func TestFormatYearQuarter(t *testing.T) {
	if got := FormatYearQuarter(2024, 3); got != "2024Q3" {
		t.Errorf("FormatYearQuarter(2024, 3) = %q, want 2024Q3", got)
	}
}

func TestFiscalPeriod(t *testing.T) {
	arrival := StationArrival{FiscalYear: 2023, FiscalQuarter: 1}
	if got := arrival.FiscalPeriod(); got != "2023Q1" {
		t.Errorf("FiscalPeriod() = %q, want 2023Q1", got)
	}
}
