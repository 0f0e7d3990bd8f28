package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/grid"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// CreateGardenTool handles the create_garden MCP tool.
type CreateGardenTool struct {
	store *store.Store
}

// NewCreateGardenTool creates a CreateGardenTool.
func NewCreateGardenTool(s *store.Store) *CreateGardenTool {
	return &CreateGardenTool{store: s}
}

// Definition returns the MCP tool definition for create_garden.
func (t *CreateGardenTool) Definition() mcp.Tool {
	return mcp.NewTool("create_garden",
		mcp.WithDescription(
			"Create a garden: a rectangular grid of unit squares addressed by spreadsheet-style "+
				"labels (column letter + row number, e.g. B3). The grid extent is fixed at creation.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Short code for the garden (e.g. 'home', 'allotment-3')"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Display name (e.g. 'Backyard raised beds')"),
		),
		mcp.WithNumber("columns",
			mcp.Required(),
			mcp.Description("Number of columns (positive; columns are labeled A, B, … AA, AB, …)"),
		),
		mcp.WithNumber("rows",
			mcp.Required(),
			mcp.Description("Number of rows (positive; rows are numbered from 1)"),
		),
	)
}

// Handle processes the create_garden tool call.
func (t *CreateGardenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(req.GetString("id", ""))
	name := strings.TrimSpace(req.GetString("name", ""))
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	columns := intArg(req, "columns", 0)
	rows := intArg(req, "rows", 0)
	if columns < 1 {
		return mcp.NewToolResultError("'columns' must be a positive integer"), nil
	}
	if rows < 1 {
		return mcp.NewToolResultError("'rows' must be a positive integer"), nil
	}

	g := &store.Garden{ID: id, Name: name, Columns: columns, Rows: rows}
	if err := t.store.CreateGarden(ctx, g); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create garden: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Garden %q created: %d columns (A-%s) × %d rows.",
		g.ID, g.Columns, grid.EncodeColumn(g.Columns), g.Rows,
	)), nil
}
