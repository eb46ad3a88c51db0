package otp

// US Census Bureau regions and divisions, keyed by division.
var divisionStates = map[string][]string{
	"New England": {
		"Connecticut", "Maine", "Massachusetts", "New Hampshire",
		"Rhode Island", "Vermont",
	},
	"Middle Atlantic": {
		"New Jersey", "New York", "Pennsylvania",
	},
	"East North Central": {
		"Illinois", "Indiana", "Michigan", "Ohio", "Wisconsin",
	},
	"West North Central": {
		"Iowa", "Kansas", "Minnesota", "Missouri", "Nebraska",
		"North Dakota", "South Dakota",
	},
	"South Atlantic": {
		"Delaware", "District of Columbia", "Florida", "Georgia",
		"Maryland", "North Carolina", "South Carolina", "Virginia",
		"West Virginia",
	},
	"East South Central": {
		"Alabama", "Kentucky", "Mississippi", "Tennessee",
	},
	"West South Central": {
		"Arkansas", "Louisiana", "Oklahoma", "Texas",
	},
	"Mountain": {
		"Arizona", "Colorado", "Idaho", "Montana", "Nevada",
		"New Mexico", "Utah", "Wyoming",
	},
	"Pacific": {
		"Alaska", "California", "Hawaii", "Oregon", "Washington",
	},
}

var divisionRegion = map[string]string{
	"New England":        "Northeast",
	"Middle Atlantic":    "Northeast",
	"East North Central": "Midwest",
	"West North Central": "Midwest",
	"South Atlantic":     "South",
	"East South Central": "South",
	"West South Central": "South",
	"Mountain":           "West",
	"Pacific":            "West",
}

// Provinces reachable on cross-border services (Maple Leaf, Cascades,
// Adirondack).
var canadianProvinces = []string{
	"Alberta", "British Columbia", "Manitoba", "New Brunswick",
	"Newfoundland and Labrador", "Nova Scotia", "Ontario",
	"Prince Edward Island", "Quebec", "Saskatchewan",
}

var stateDivision = map[string]string{}
var provinceSet = map[string]bool{}

func init() {
	for division, states := range divisionStates {
		for _, state := range states {
			stateDivision[state] = division
		}
	}
	for _, province := range canadianProvinces {
		provinceSet[province] = true
	}
}

// LookupCountry maps a state or province name to its country. Unknown
// jurisdictions return an empty string.
func LookupCountry(jurisdiction string) string {
	if _, ok := stateDivision[jurisdiction]; ok {
		return "United States"
	}
	if provinceSet[jurisdiction] {
		return "Canada"
	}

	return ""
}

// LookupRegionDivision maps a US state to its census region and division.
// Non-US jurisdictions return empty strings.
func LookupRegionDivision(jurisdiction string) (string, string) {
	division, ok := stateDivision[jurisdiction]
	if !ok {
		return "", ""
	}

	return divisionRegion[division], division
}
