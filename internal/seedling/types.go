// Package seedling tracks indoor seedling trays through their growth
// lifecycle. Seedlings are garden-independent: they belong to a user,
// not a plot, until they are transplanted into a garden square.
//
// The lifecycle is a strict forward progression:
//
//	sown → germinated → true_leaves → hardening → transplanted
//
// plus an absorbing failed state reachable from any non-terminal phase.
// transplanted and failed are terminal.
package seedling

import (
	"fmt"
	"time"
)

// --- Phase enum ---

// Phase is one step in a seedling's growth lifecycle.
type Phase string

const (
	PhaseSown         Phase = "sown"
	PhaseGerminated   Phase = "germinated"
	PhaseTrueLeaves   Phase = "true_leaves"
	PhaseHardening    Phase = "hardening"
	PhaseTransplanted Phase = "transplanted"
	PhaseFailed       Phase = "failed"
)

// PhaseOrder is the forward progression, in order. failed sits outside
// the order as the absorbing failure state.
var PhaseOrder = []Phase{
	PhaseSown,
	PhaseGerminated,
	PhaseTrueLeaves,
	PhaseHardening,
	PhaseTransplanted,
}

// phaseRank maps each ordered phase to its position. failed has no rank.
var phaseRank = func() map[Phase]int {
	m := make(map[Phase]int, len(PhaseOrder))
	for i, p := range PhaseOrder {
		m[p] = i
	}
	return m
}()

// ValidatePhase returns an error if the phase is not recognized.
func ValidatePhase(p Phase) error {
	if p == PhaseFailed {
		return nil
	}
	if _, ok := phaseRank[p]; !ok {
		return fmt.Errorf("invalid seedling phase %q: must be one of: sown, germinated, true_leaves, hardening, transplanted, failed", p)
	}
	return nil
}

// Terminal reports whether no further transitions are accepted from p
// (aside from the idempotent failed→failed re-mark).
func Terminal(p Phase) bool {
	return p == PhaseTransplanted || p == PhaseFailed
}

// --- Seedling record ---

// Seedling is a batch of indoor-grown plants tracked through the
// lifecycle. PlantingID links the batch to the planting created when it
// was transplanted, and stays empty until then.
type Seedling struct {
	ID             string
	Plant          string
	Variety        string
	Count          int
	Phase          Phase
	SownOn         time.Time
	PhaseChangedOn time.Time
	PlantingID     string
}

// New creates a seedling batch in the initial sown phase. The phase
// change date starts equal to the sowing date.
func New(plant, variety string, count int, sownOn time.Time) *Seedling {
	if sownOn.IsZero() {
		sownOn = timeNow()
	}
	return &Seedling{
		Plant:          plant,
		Variety:        variety,
		Count:          count,
		Phase:          PhaseSown,
		SownOn:         sownOn,
		PhaseChangedOn: sownOn,
	}
}
