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

// UpdatePlantingTool handles the update_planting MCP tool.
type UpdatePlantingTool struct {
	store *store.Store
}

// NewUpdatePlantingTool creates an UpdatePlantingTool.
func NewUpdatePlantingTool(s *store.Store) *UpdatePlantingTool {
	return &UpdatePlantingTool{store: s}
}

// Definition returns the MCP tool definition for update_planting.
func (t *UpdatePlantingTool) Definition() mcp.Tool {
	return mcp.NewTool("update_planting",
		mcp.WithDescription(
			"Change a planting's status. Marking it 'harvested' or 'failed' frees its square "+
				"for the next succession planting.",
		),
		mcp.WithString("planting_id",
			mcp.Required(),
			mcp.Description("The planting's ID (returned by add_planting)"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("New status: active, harvested, or failed"),
		),
	)
}

// Handle processes the update_planting tool call.
func (t *UpdatePlantingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plantingID := strings.TrimSpace(req.GetString("planting_id", ""))
	if plantingID == "" {
		return mcp.NewToolResultError("'planting_id' is required"), nil
	}

	status := planting.Status(strings.TrimSpace(req.GetString("status", "")))
	if err := planting.ValidateStatus(status); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.store.UpdatePlantingStatus(ctx, plantingID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("planting %q not found", plantingID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to update planting: %v", err)), nil
	}

	msg := fmt.Sprintf("Planting %s marked %s.", plantingID, status)
	if !status.Occupied() {
		msg += " Its square is free again."
	}
	return mcp.NewToolResultText(msg), nil
}
