package planting

import (
	"reflect"
	"testing"
)

// --- ValidateStatus ---

func TestValidateStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusHarvested, StatusFailed} {
		if err := ValidateStatus(s); err != nil {
			t.Errorf("ValidateStatus(%s) error: %v", s, err)
		}
	}
}

func TestValidateStatus_Invalid(t *testing.T) {
	if err := ValidateStatus("growing"); err == nil {
		t.Error("ValidateStatus(growing) should fail")
	}
}

func TestOccupied(t *testing.T) {
	if !StatusActive.Occupied() {
		t.Error("active should occupy its square")
	}
	if StatusHarvested.Occupied() {
		t.Error("harvested should not occupy its square")
	}
	if StatusFailed.Occupied() {
		t.Error("failed should not occupy its square")
	}
}

// --- FindConflicts ---

func TestFindConflicts_FlagsOnlyOccupiedSquares(t *testing.T) {
	active := []Occupancy{{Square: "A1", Plant: "Tomato"}}
	got := FindConflicts(active, []string{"A1", "A2"})
	want := []string{"A1 already has active planting: Tomato"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindConflicts = %v, want %v", got, want)
	}
}

func TestFindConflicts_EmptyCandidates(t *testing.T) {
	active := []Occupancy{{Square: "A1", Plant: "Tomato"}}
	if got := FindConflicts(active, nil); got != nil {
		t.Errorf("FindConflicts with no candidates = %v, want nil", got)
	}
}

func TestFindConflicts_NoActive(t *testing.T) {
	if got := FindConflicts(nil, []string{"A1"}); got != nil {
		t.Errorf("FindConflicts with no active plantings = %v, want nil", got)
	}
}

func TestFindConflicts_PreservesCandidateOrder(t *testing.T) {
	active := []Occupancy{
		{Square: "B2", Plant: "Kale"},
		{Square: "A1", Plant: "Tomato"},
	}
	got := FindConflicts(active, []string{"A1", "B2"})
	want := []string{
		"A1 already has active planting: Tomato",
		"B2 already has active planting: Kale",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindConflicts = %v, want %v", got, want)
	}
}

func TestFindConflicts_ReportsAllTies(t *testing.T) {
	// Two active plantings in one square already violate the norm —
	// both must be reported, not just the first.
	active := []Occupancy{
		{Square: "A1", Plant: "Tomato"},
		{Square: "A1", Plant: "Basil"},
	}
	got := FindConflicts(active, []string{"A1"})
	want := []string{
		"A1 already has active planting: Tomato",
		"A1 already has active planting: Basil",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindConflicts = %v, want %v", got, want)
	}
}

func TestFindConflicts_NormalizesCandidateLabels(t *testing.T) {
	active := []Occupancy{{Square: "A1", Plant: "Tomato"}}
	got := FindConflicts(active, []string{" a1 "})
	want := []string{"A1 already has active planting: Tomato"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindConflicts = %v, want %v", got, want)
	}
}

func TestFindConflicts_RepeatedCandidate(t *testing.T) {
	active := []Occupancy{{Square: "A1", Plant: "Tomato"}}
	got := FindConflicts(active, []string{"A1", "A1"})
	if len(got) != 2 {
		t.Errorf("repeated candidate should warn twice, got %v", got)
	}
}
