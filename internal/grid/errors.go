package grid

import "fmt"

// InvalidLabelError reports input that does not parse as a square label.
type InvalidLabelError struct {
	Label string
}

func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("invalid square label %q: expected letters followed by a row number (e.g. B3)", e.Label)
}

// ColumnOutOfRangeError reports a label whose column lies outside the
// garden extent. The message names the valid letter range so the caller
// can surface it directly.
type ColumnOutOfRangeError struct {
	Label   string
	Columns int
}

func (e *ColumnOutOfRangeError) Error() string {
	return fmt.Sprintf("column of %q is out of range: valid columns are A-%s", e.Label, EncodeColumn(e.Columns))
}

// RowOutOfRangeError reports a label whose row lies outside the garden extent.
type RowOutOfRangeError struct {
	Label string
	Rows  int
}

func (e *RowOutOfRangeError) Error() string {
	return fmt.Sprintf("row of %q is out of range: valid rows are 1-%d", e.Label, e.Rows)
}
