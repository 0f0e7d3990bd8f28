package seedling

import (
	"fmt"
	"time"
)

// --- State machine for the seedling lifecycle ---
//
// "Is this forward progress?" is a single rank comparison: a transition
// is accepted iff the target is failed (from a non-terminal phase) or
// has a strictly higher rank than the current phase. Same-phase
// transitions are rejected, so re-applying an already-applied
// transition is a no-op failure rather than a silent rewrite.

// InvalidTransitionError reports a rejected phase transition, carrying
// both phases for diagnostics.
type InvalidTransitionError struct {
	Current   Phase
	Requested Phase
}

func (e *InvalidTransitionError) Error() string {
	if Terminal(e.Current) {
		return fmt.Sprintf("seedling phase %q is terminal: cannot transition to %q", e.Current, e.Requested)
	}
	return fmt.Sprintf("cannot transition seedling from %q to %q: phases only move forward", e.Current, e.Requested)
}

// CanTransition reports whether a seedling in phase current may move to
// target. Rules:
//   - transplanted accepts nothing (terminal).
//   - failed accepts only the idempotent re-mark to failed.
//   - failed is reachable from any other phase.
//   - otherwise the target must be strictly later in PhaseOrder.
func CanTransition(current, target Phase) bool {
	if current == PhaseTransplanted {
		return false
	}
	if current == PhaseFailed {
		return target == PhaseFailed
	}
	if target == PhaseFailed {
		return true
	}
	cr, ok := phaseRank[current]
	if !ok {
		return false
	}
	tr, ok := phaseRank[target]
	if !ok {
		return false
	}
	return tr > cr
}

// AllowedTargets returns the phases reachable from current, in order.
// Useful for rendering precise error messages.
func AllowedTargets(current Phase) []Phase {
	var targets []Phase
	for _, p := range PhaseOrder {
		if CanTransition(current, p) {
			targets = append(targets, p)
		}
	}
	if CanTransition(current, PhaseFailed) && current != PhaseFailed {
		targets = append(targets, PhaseFailed)
	}
	return targets
}

// Transition moves the seedling to target, setting the phase change
// date (defaulting to now when the zero time is given). A planting
// reference is recorded only on the transition into transplanted; it is
// accepted without referential validation — that is the persistence
// layer's concern. Transplanting without a planting reference is
// accepted; callers may warn about it.
func Transition(s *Seedling, target Phase, on time.Time, plantingID string) error {
	if err := ValidatePhase(target); err != nil {
		return err
	}
	if !CanTransition(s.Phase, target) {
		return &InvalidTransitionError{Current: s.Phase, Requested: target}
	}

	if on.IsZero() {
		on = timeNow()
	}
	s.Phase = target
	s.PhaseChangedOn = on
	if target == PhaseTransplanted && plantingID != "" {
		s.PlantingID = plantingID
	}
	return nil
}
