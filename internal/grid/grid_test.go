package grid

import (
	"errors"
	"strings"
	"testing"
)

// --- EncodeColumn ---

func TestEncodeColumn_KnownValues(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
	}
	for _, c := range cases {
		if got := EncodeColumn(c.n); got != c.want {
			t.Errorf("EncodeColumn(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestEncodeColumn_NonPositive(t *testing.T) {
	if got := EncodeColumn(0); got != "" {
		t.Errorf("EncodeColumn(0) = %q, want empty", got)
	}
	if got := EncodeColumn(-5); got != "" {
		t.Errorf("EncodeColumn(-5) = %q, want empty", got)
	}
}

func TestEncodeColumn_RoundTrip(t *testing.T) {
	for n := 1; n <= 10000; n++ {
		label := EncodeColumn(n)
		got, err := DecodeColumn(label)
		if err != nil {
			t.Fatalf("DecodeColumn(%q) error: %v", label, err)
		}
		if got != n {
			t.Fatalf("round-trip of %d via %q = %d", n, label, got)
		}
	}
}

func TestEncodeColumn_Monotonic(t *testing.T) {
	// Spreadsheet column order is shorter-before-longer, then alphabetical.
	prev := EncodeColumn(1)
	for n := 2; n <= 10000; n++ {
		cur := EncodeColumn(n)
		if len(cur) < len(prev) || (len(cur) == len(prev) && cur <= prev) {
			t.Fatalf("EncodeColumn not monotonic at %d: %q then %q", n, prev, cur)
		}
		prev = cur
	}
}

// --- DecodeColumn ---

func TestDecodeColumn_Lowercase(t *testing.T) {
	got, err := DecodeColumn("aa")
	if err != nil {
		t.Fatalf("DecodeColumn(aa) error: %v", err)
	}
	if got != 27 {
		t.Errorf("DecodeColumn(aa) = %d, want 27", got)
	}
}

func TestDecodeColumn_Invalid(t *testing.T) {
	for _, label := range []string{"", "A1", "4", "B-", "á"} {
		_, err := DecodeColumn(label)
		var invalid *InvalidLabelError
		if !errors.As(err, &invalid) {
			t.Errorf("DecodeColumn(%q) error = %v, want InvalidLabelError", label, err)
		}
	}
}

// --- ParseLabel ---

func TestParseLabel_Normalizes(t *testing.T) {
	letters, row, err := ParseLabel("  b12 ")
	if err != nil {
		t.Fatalf("ParseLabel error: %v", err)
	}
	if letters != "B" || row != 12 {
		t.Errorf("ParseLabel = (%q, %d), want (B, 12)", letters, row)
	}
}

func TestParseLabel_MultiLetter(t *testing.T) {
	letters, row, err := ParseLabel("AB3")
	if err != nil {
		t.Fatalf("ParseLabel error: %v", err)
	}
	if letters != "AB" || row != 3 {
		t.Errorf("ParseLabel = (%q, %d), want (AB, 3)", letters, row)
	}
}

func TestParseLabel_Invalid(t *testing.T) {
	for _, raw := range []string{"", "3B", "B", "12", "B 3", "B3C"} {
		_, _, err := ParseLabel(raw)
		var invalid *InvalidLabelError
		if !errors.As(err, &invalid) {
			t.Errorf("ParseLabel(%q) error = %v, want InvalidLabelError", raw, err)
		}
	}
}

// --- Validate ---

func TestValidate_InRange(t *testing.T) {
	got, err := Validate("B3", 4, 4)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if got != "B3" {
		t.Errorf("Validate = %q, want B3", got)
	}
}

func TestValidate_NormalizesCase(t *testing.T) {
	got, err := Validate(" b3 ", 4, 4)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if got != "B3" {
		t.Errorf("Validate = %q, want B3", got)
	}
}

func TestValidate_ColumnOutOfRange(t *testing.T) {
	_, err := Validate("E1", 4, 4)
	var oor *ColumnOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("Validate(E1) error = %v, want ColumnOutOfRangeError", err)
	}
	// The message must report the valid letter range.
	if want := "A-D"; !contains(err.Error(), want) {
		t.Errorf("error %q should mention %q", err.Error(), want)
	}
}

func TestValidate_RowOutOfRange(t *testing.T) {
	_, err := Validate("B9", 4, 4)
	var oor *RowOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("Validate(B9) error = %v, want RowOutOfRangeError", err)
	}
	if want := "1-4"; !contains(err.Error(), want) {
		t.Errorf("error %q should mention %q", err.Error(), want)
	}
}

func TestValidate_RowZero(t *testing.T) {
	_, err := Validate("A0", 4, 4)
	var oor *RowOutOfRangeError
	if !errors.As(err, &oor) {
		t.Errorf("Validate(A0) error = %v, want RowOutOfRangeError", err)
	}
}

func TestValidate_InvalidLabel(t *testing.T) {
	_, err := Validate("3B", 4, 4)
	var invalid *InvalidLabelError
	if !errors.As(err, &invalid) {
		t.Errorf("Validate(3B) error = %v, want InvalidLabelError", err)
	}
}

func TestValidate_WideGrid(t *testing.T) {
	// 30 columns: AA (27) is legal, AE (31) is not.
	got, err := Validate("AA5", 30, 10)
	if err != nil {
		t.Fatalf("Validate(AA5) error: %v", err)
	}
	if got != "AA5" {
		t.Errorf("Validate = %q, want AA5", got)
	}

	_, err = Validate("AE5", 30, 10)
	var oor *ColumnOutOfRangeError
	if !errors.As(err, &oor) {
		t.Errorf("Validate(AE5) error = %v, want ColumnOutOfRangeError", err)
	}
	if want := "A-AD"; !contains(err.Error(), want) {
		t.Errorf("error %q should mention %q", err.Error(), want)
	}
}

// --- ValidateAll ---

func TestValidateAll_Success(t *testing.T) {
	got, err := ValidateAll([]string{"a1", "B2", " c3"}, 4, 4)
	if err != nil {
		t.Fatalf("ValidateAll error: %v", err)
	}
	want := []string{"A1", "B2", "C3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ValidateAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidateAll_FailsFast(t *testing.T) {
	_, err := ValidateAll([]string{"A1", "E1", "3B"}, 4, 4)
	var oor *ColumnOutOfRangeError
	if !errors.As(err, &oor) {
		t.Errorf("ValidateAll error = %v, want ColumnOutOfRangeError for E1", err)
	}
}

func TestValidateAll_Empty(t *testing.T) {
	got, err := ValidateAll(nil, 4, 4)
	if err != nil {
		t.Fatalf("ValidateAll(nil) error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ValidateAll(nil) = %v, want empty", got)
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
