// Package planting holds the planting status enum and the conflict
// detector for garden squares.
//
// Succession planting is allowed by design: a square can hold many
// plantings across a season. Only plantings with status "active" occupy
// their square; harvested and failed plantings free it. The conflict
// detector therefore warns, it never blocks.
package planting

import (
	"fmt"
	"strings"
)

// --- Status enum ---

// Status tracks the lifecycle of a planting. A planting is created
// active; harvested and failed are terminal.
type Status string

const (
	StatusActive    Status = "active"
	StatusHarvested Status = "harvested"
	StatusFailed    Status = "failed"
)

// validStatuses is the set of allowed planting statuses.
var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusHarvested: true,
	StatusFailed:    true,
}

// ValidateStatus returns an error if the status is not recognized.
func ValidateStatus(s Status) error {
	if !validStatuses[s] {
		return fmt.Errorf("invalid planting status %q: must be one of: active, harvested, failed", s)
	}
	return nil
}

// Occupied reports whether a planting with this status counts as
// occupying its square for conflict purposes.
func (s Status) Occupied() bool {
	return s == StatusActive
}

// --- Conflict detection ---

// Occupancy is one active planting's claim on a square: the normalized
// square label plus the plant growing there.
type Occupancy struct {
	Square string
	Plant  string
}

// FindConflicts returns one advisory warning per candidate square that
// already has an active planting, in candidate order. If a square
// somehow holds several active plantings, all of them are reported.
// An empty candidate list (or no active plantings) yields nil.
func FindConflicts(active []Occupancy, candidates []string) []string {
	if len(active) == 0 || len(candidates) == 0 {
		return nil
	}

	bySquare := make(map[string][]string, len(active))
	for _, occ := range active {
		key := normalize(occ.Square)
		bySquare[key] = append(bySquare[key], occ.Plant)
	}

	var warnings []string
	for _, candidate := range candidates {
		label := normalize(candidate)
		for _, plant := range bySquare[label] {
			warnings = append(warnings, fmt.Sprintf("%s already has active planting: %s", label, plant))
		}
	}
	return warnings
}

func normalize(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}
