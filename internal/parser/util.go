package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// readRows tokenizes raw CSV text into rows of string fields. Rows may
// have varying field counts (each dialect validates its own columns),
// quoted fields may span lines, and fully empty lines are skipped.
// Malformed quoting propagates as a tokenization error.
func readRows(content string, comma rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = comma
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenization failed: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// dateRange derives the statement date range from the first and last
// row of an already-filtered row list, in source order. Out-of-order
// input yields a structurally valid but unsorted range on purpose.
func dateRange(rows [][]string, extract func([]string) string) (from, to string) {
	if len(rows) == 0 {
		return "", ""
	}
	return extract(rows[0]), extract(rows[len(rows)-1])
}

// shortRow reports a row that lacks the columns a dialect requires.
func shortRow(bank string, rowNum, got, want int) error {
	return fmt.Errorf("%s: row %d has %d columns, want at least %d", bank, rowNum, got, want)
}
