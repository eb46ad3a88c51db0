package fraotp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/railreport/railreport/pkg/util"
)

// FindNonNumericValues scans a raw CSV for the unique values in a numeric
// column that fail float parsing. Blank cells count as non-numeric, they
// are the usual culprit.
func FindNonNumericValues(reader io.Reader, column string) ([]string, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return nil, err
	}

	columnIndex := -1
	for i, name := range header {
		if util.NormalizeString(name) == column {
			columnIndex = i
			break
		}
	}
	if columnIndex == -1 {
		return nil, fmt.Errorf("no column %q in file", column)
	}

	seen := map[string]bool{}
	var nonNumeric []string
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if columnIndex >= len(row) {
			continue
		}

		value := row[columnIndex]
		if _, err := strconv.ParseFloat(value, 64); err != nil && !seen[value] {
			seen[value] = true
			nonNumeric = append(nonNumeric, value)
		}
	}

	return nonNumeric, nil
}
