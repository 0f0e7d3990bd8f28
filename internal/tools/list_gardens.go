package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/grid"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// ListGardensTool handles the list_gardens MCP tool.
type ListGardensTool struct {
	store *store.Store
}

// NewListGardensTool creates a ListGardensTool.
func NewListGardensTool(s *store.Store) *ListGardensTool {
	return &ListGardensTool{store: s}
}

// Definition returns the MCP tool definition for list_gardens.
func (t *ListGardensTool) Definition() mcp.Tool {
	return mcp.NewTool("list_gardens",
		mcp.WithDescription("List the user's gardens with their grid extents."),
	)
}

// Handle processes the list_gardens tool call.
func (t *ListGardensTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gardens, err := t.store.ListGardens(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list gardens: %v", err)), nil
	}
	if len(gardens) == 0 {
		return mcp.NewToolResultText("No gardens yet. Use create_garden to start one."), nil
	}

	var b strings.Builder
	b.WriteString("Gardens:\n")
	for _, g := range gardens {
		fmt.Fprintf(&b, "- %s — %q, %d×%d squares (A1-%s%d)\n",
			g.ID, g.Name, g.Columns, g.Rows, grid.EncodeColumn(g.Columns), g.Rows)
	}
	return mcp.NewToolResultText(b.String()), nil
}
