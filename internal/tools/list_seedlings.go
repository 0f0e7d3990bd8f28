package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/seedling"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// ListSeedlingsTool handles the list_seedlings MCP tool.
type ListSeedlingsTool struct {
	store *store.Store
}

// NewListSeedlingsTool creates a ListSeedlingsTool.
func NewListSeedlingsTool(s *store.Store) *ListSeedlingsTool {
	return &ListSeedlingsTool{store: s}
}

// Definition returns the MCP tool definition for list_seedlings.
func (t *ListSeedlingsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_seedlings",
		mcp.WithDescription("List seedling batches, optionally filtered by phase."),
		mcp.WithString("phase",
			mcp.Description("Only show batches in this phase (sown, germinated, true_leaves, hardening, transplanted, failed)"),
		),
	)
}

// Handle processes the list_seedlings tool call.
func (t *ListSeedlingsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phase := seedling.Phase(strings.TrimSpace(req.GetString("phase", "")))
	if phase != "" {
		if err := seedling.ValidatePhase(phase); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	seedlings, err := t.store.ListSeedlings(ctx, phase)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list seedlings: %v", err)), nil
	}
	if len(seedlings) == 0 {
		if phase != "" {
			return mcp.NewToolResultText(fmt.Sprintf("No seedling batches in phase %s.", phase)), nil
		}
		return mcp.NewToolResultText("No seedling batches yet. Use start_seedlings to sow one."), nil
	}

	var b strings.Builder
	b.WriteString("Seedling batches:\n")
	for _, sd := range seedlings {
		line := fmt.Sprintf("- %d× %s", sd.Count, sd.Plant)
		if sd.Variety != "" {
			line += fmt.Sprintf(" (%s)", sd.Variety)
		}
		line += fmt.Sprintf(" — %s since %s, sown %s [%s]",
			sd.Phase, sd.PhaseChangedOn.Format(dateLayout), sd.SownOn.Format(dateLayout), sd.ID)
		if sd.PlantingID != "" {
			line += fmt.Sprintf(", planting %s", sd.PlantingID)
		}
		b.WriteString(line + "\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}
