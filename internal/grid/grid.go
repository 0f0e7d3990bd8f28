// Package grid implements the coordinate system for garden plots.
//
// A garden is a rectangular grid of unit squares addressed by
// spreadsheet-style labels: a letter column followed by a numeric row
// ("B3" = column 2, row 3). Columns use bijective base-26 encoding —
// there is no zero digit, so A=1 … Z=26, AA=27, AB=28 and so on.
// Grids wider than 26 columns are legal, so multi-letter columns are
// handled everywhere; nothing special-cases a single letter.
package grid

import (
	"regexp"
	"strconv"
	"strings"
)

// labelPattern matches one or more letters followed by one or more digits,
// case-insensitively. Anything else is not a square label.
var labelPattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// EncodeColumn converts a 1-based column index to its letter label
// (1→"A", 26→"Z", 27→"AA"). Returns "" for n < 1.
func EncodeColumn(n int) string {
	if n < 1 {
		return ""
	}
	var letters []byte
	for n > 0 {
		n--
		letters = append([]byte{byte('A' + n%26)}, letters...)
		n /= 26
	}
	return string(letters)
}

// DecodeColumn converts a letter label back to its 1-based column index
// ("A"→1, "AA"→27). The label may be lowercase. Returns InvalidLabelError
// for empty input or any non-letter character.
func DecodeColumn(label string) (int, error) {
	if label == "" {
		return 0, &InvalidLabelError{Label: label}
	}
	n := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, &InvalidLabelError{Label: label}
		}
		n = n*26 + int(r-'A'+1)
	}
	return n, nil
}

// ParseLabel splits a raw square label into its letter and row parts.
// Leading/trailing whitespace is ignored and letters are uppercased.
// Returns InvalidLabelError if the input is not letters-then-digits.
func ParseLabel(raw string) (letters string, row int, err error) {
	trimmed := strings.TrimSpace(raw)
	m := labelPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", 0, &InvalidLabelError{Label: raw}
	}
	row, err = strconv.Atoi(m[2])
	if err != nil {
		// Row part too large for an int — treat like any malformed label.
		return "", 0, &InvalidLabelError{Label: raw}
	}
	return strings.ToUpper(m[1]), row, nil
}

// Validate checks that label addresses a square inside a columns×rows
// garden and returns the normalized (trimmed, uppercased) label.
func Validate(label string, columns, rows int) (string, error) {
	letters, row, err := ParseLabel(label)
	if err != nil {
		return "", err
	}

	col, err := DecodeColumn(letters)
	if err != nil {
		return "", err
	}
	if col < 1 || col > columns {
		return "", &ColumnOutOfRangeError{Label: letters + strconv.Itoa(row), Columns: columns}
	}
	if row < 1 || row > rows {
		return "", &RowOutOfRangeError{Label: letters + strconv.Itoa(row), Rows: rows}
	}

	return letters + strconv.Itoa(row), nil
}

// ValidateAll validates every label against the garden extent, failing
// fast on the first invalid one. On success it returns the normalized
// labels in input order.
func ValidateAll(labels []string, columns, rows int) ([]string, error) {
	normalized := make([]string, 0, len(labels))
	for _, label := range labels {
		n, err := Validate(label, columns, rows)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}
	return normalized, nil
}
