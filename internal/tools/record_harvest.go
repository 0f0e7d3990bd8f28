package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/planting"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// RecordHarvestTool handles the record_harvest MCP tool.
type RecordHarvestTool struct {
	store *store.Store
}

// NewRecordHarvestTool creates a RecordHarvestTool.
func NewRecordHarvestTool(s *store.Store) *RecordHarvestTool {
	return &RecordHarvestTool{store: s}
}

// Definition returns the MCP tool definition for record_harvest.
func (t *RecordHarvestTool) Definition() mcp.Tool {
	return mcp.NewTool("record_harvest",
		mcp.WithDescription(
			"Log a harvest against a planting. The log is append-only and does not change the "+
				"planting's status unless mark_harvested is set (use it when the bed is done).",
		),
		mcp.WithString("planting_id",
			mcp.Required(),
			mcp.Description("The planting's ID"),
		),
		mcp.WithString("amount",
			mcp.Required(),
			mcp.Description("What was picked (e.g. '6 fruits', 'one basket')"),
		),
		mcp.WithNumber("weight_grams",
			mcp.Description("Optional weight in grams"),
		),
		mcp.WithString("notes",
			mcp.Description("Optional notes (taste, condition, pests)"),
		),
		mcp.WithString("harvested_on",
			mcp.Description("Harvest date as YYYY-MM-DD (default: today)"),
		),
		mcp.WithBoolean("mark_harvested",
			mcp.Description("Also mark the planting harvested, freeing its square (default: false)"),
		),
	)
}

// Handle processes the record_harvest tool call.
func (t *RecordHarvestTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plantingID := strings.TrimSpace(req.GetString("planting_id", ""))
	amount := strings.TrimSpace(req.GetString("amount", ""))
	if plantingID == "" {
		return mcp.NewToolResultError("'planting_id' is required"), nil
	}
	if amount == "" {
		return mcp.NewToolResultError("'amount' is required"), nil
	}

	harvestedOn, err := dateArg(req, "harvested_on", timeNow())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var weight *int
	if w := intArg(req, "weight_grams", 0); w != 0 {
		if w < 0 {
			return mcp.NewToolResultError("'weight_grams' must be positive"), nil
		}
		weight = &w
	}

	// Resolve the planting first so a bad ID fails before the insert.
	p, err := t.store.GetPlanting(ctx, plantingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("planting %q not found", plantingID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load planting: %v", err)), nil
	}

	h := &store.Harvest{
		PlantingID:  p.ID,
		HarvestedOn: harvestedOn,
		Amount:      amount,
		WeightGrams: weight,
		Notes:       strings.TrimSpace(req.GetString("notes", "")),
	}
	if err := t.store.AddHarvest(ctx, h); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record harvest: %v", err)), nil
	}

	msg := fmt.Sprintf("Harvest recorded for %s at %s: %s.", p.Plant, p.Square, amount)
	if log, err := t.store.ListHarvests(ctx, p.ID); err == nil && len(log) > 1 {
		msg += fmt.Sprintf(" (%d harvests logged for this planting.)", len(log))
	}
	if boolArg(req, "mark_harvested", false) {
		if err := t.store.UpdatePlantingStatus(ctx, p.ID, planting.StatusHarvested); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("harvest recorded, but failed to mark planting harvested: %v", err)), nil
		}
		msg += fmt.Sprintf(" Planting marked harvested — %s is free again.", p.Square)
	}
	return mcp.NewToolResultText(msg), nil
}
