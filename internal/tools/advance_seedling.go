package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/seedling"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// AdvanceSeedlingTool handles the advance_seedling MCP tool.
type AdvanceSeedlingTool struct {
	store *store.Store
}

// NewAdvanceSeedlingTool creates an AdvanceSeedlingTool.
func NewAdvanceSeedlingTool(s *store.Store) *AdvanceSeedlingTool {
	return &AdvanceSeedlingTool{store: s}
}

// Definition returns the MCP tool definition for advance_seedling.
func (t *AdvanceSeedlingTool) Definition() mcp.Tool {
	return mcp.NewTool("advance_seedling",
		mcp.WithDescription(
			"Move a seedling batch to a later growth phase. Phases only move forward "+
				"(sown → germinated → true_leaves → hardening → transplanted); 'failed' can be "+
				"set from any non-terminal phase. When transplanting, link the planting created "+
				"with add_planting via planting_id.",
		),
		mcp.WithString("seedling_id",
			mcp.Required(),
			mcp.Description("The seedling batch's ID"),
		),
		mcp.WithString("phase",
			mcp.Required(),
			mcp.Description("Target phase: germinated, true_leaves, hardening, transplanted, or failed"),
		),
		mcp.WithString("changed_on",
			mcp.Description("Phase change date as YYYY-MM-DD (default: today)"),
		),
		mcp.WithString("planting_id",
			mcp.Description("Planting to link when phase is 'transplanted'"),
		),
	)
}

// Handle processes the advance_seedling tool call.
func (t *AdvanceSeedlingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seedlingID := strings.TrimSpace(req.GetString("seedling_id", ""))
	if seedlingID == "" {
		return mcp.NewToolResultError("'seedling_id' is required"), nil
	}
	target := seedling.Phase(strings.TrimSpace(req.GetString("phase", "")))

	changedOn, err := dateArg(req, "changed_on", timeNow())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sd, err := t.store.GetSeedling(ctx, seedlingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("seedling %q not found", seedlingID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load seedling: %v", err)), nil
	}

	plantingID := strings.TrimSpace(req.GetString("planting_id", ""))
	if err := seedling.Transition(sd, target, changedOn, plantingID); err != nil {
		var invalid *seedling.InvalidTransitionError
		if errors.As(err, &invalid) {
			msg := invalid.Error()
			if targets := seedling.AllowedTargets(sd.Phase); len(targets) > 0 {
				parts := make([]string, len(targets))
				for i, p := range targets {
					parts[i] = string(p)
				}
				msg += fmt.Sprintf(" (allowed: %s)", strings.Join(parts, ", "))
			}
			return mcp.NewToolResultError(msg), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.store.UpdateSeedlingPhase(ctx, sd); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save seedling: %v", err)), nil
	}

	msg := fmt.Sprintf("%s seedlings moved to %s (as of %s).", sd.Plant, sd.Phase, sd.PhaseChangedOn.Format(dateLayout))
	if sd.Phase == seedling.PhaseTransplanted {
		if sd.PlantingID != "" {
			msg += fmt.Sprintf(" Linked planting: %s.", sd.PlantingID)
		} else {
			// Accepted, but unusual — surface it instead of dropping it silently.
			msg += " ⚠️ No planting linked — if these went into a garden, create the planting and pass planting_id."
		}
	}
	return mcp.NewToolResultText(msg), nil
}
