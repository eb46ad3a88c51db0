package otp

import "fmt"

// FormatYearQuarter joins a fiscal year and quarter for axis ticks and
// grouping keys, e.g. FormatYearQuarter(2024, 3) == "2024Q3".
func FormatYearQuarter(year int, quarter int) string {
	return fmt.Sprintf("%dQ%d", year, quarter)
}
