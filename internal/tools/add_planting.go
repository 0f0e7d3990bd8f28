package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/grid"
	"github.com/philipgiuliani/sfgarden/internal/planting"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// AddPlantingTool handles the add_planting MCP tool.
type AddPlantingTool struct {
	store *store.Store
}

// NewAddPlantingTool creates an AddPlantingTool.
func NewAddPlantingTool(s *store.Store) *AddPlantingTool {
	return &AddPlantingTool{store: s}
}

// Definition returns the MCP tool definition for add_planting.
func (t *AddPlantingTool) Definition() mcp.Tool {
	return mcp.NewTool("add_planting",
		mcp.WithDescription(
			"Plant into one or more garden squares. Squares already holding an active planting "+
				"produce warnings but are never blocked — succession planting is allowed. "+
				"One planting record is created per square.",
		),
		mcp.WithString("garden_id",
			mcp.Required(),
			mcp.Description("The garden's short code"),
		),
		mcp.WithString("squares",
			mcp.Required(),
			mcp.Description("Comma-separated square labels (e.g. 'B3' or 'A1, A2, B1')"),
		),
		mcp.WithString("plant",
			mcp.Required(),
			mcp.Description("Plant name (e.g. 'Tomato')"),
		),
		mcp.WithString("variety",
			mcp.Description("Variety (e.g. 'San Marzano')"),
		),
		mcp.WithNumber("count",
			mcp.Description("Plants per square (default: 1)"),
		),
		mcp.WithString("planted_on",
			mcp.Description("Planting date as YYYY-MM-DD (default: today)"),
		),
	)
}

// Handle processes the add_planting tool call.
func (t *AddPlantingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gardenID := strings.TrimSpace(req.GetString("garden_id", ""))
	plant := strings.TrimSpace(req.GetString("plant", ""))
	if gardenID == "" {
		return mcp.NewToolResultError("'garden_id' is required"), nil
	}
	if plant == "" {
		return mcp.NewToolResultError("'plant' is required"), nil
	}

	labels := splitLabels(req.GetString("squares", ""))
	if len(labels) == 0 {
		return mcp.NewToolResultError("'squares' is required (e.g. 'A1, A2')"), nil
	}

	count := intArg(req, "count", 1)
	if count < 1 {
		return mcp.NewToolResultError("'count' must be a positive integer"), nil
	}

	plantedOn, err := dateArg(req, "planted_on", timeNow())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	g, err := t.store.GetGarden(ctx, gardenID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("garden %q not found", gardenID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load garden: %v", err)), nil
	}

	squares, err := grid.ValidateAll(labels, g.Columns, g.Rows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Conflict detection is advisory: warnings are computed against the
	// occupancy set before any insert, then the writes go through.
	activeRows, err := t.store.ActivePlantings(ctx, g.ID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load active plantings: %v", err)), nil
	}
	occupancy := make([]planting.Occupancy, len(activeRows))
	for i, p := range activeRows {
		occupancy[i] = planting.Occupancy{Square: p.Square, Plant: p.Plant}
	}
	warnings := planting.FindConflicts(occupancy, squares)

	variety := strings.TrimSpace(req.GetString("variety", ""))

	var b strings.Builder
	fmt.Fprintf(&b, "Planted %s in garden %q:\n", plant, g.ID)
	for _, square := range squares {
		p := &store.Planting{
			GardenID:  g.ID,
			Square:    square,
			Plant:     plant,
			Variety:   variety,
			Count:     count,
			PlantedOn: plantedOn,
		}
		if err := t.store.AddPlanting(ctx, p); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to add planting at %s: %v", square, err)), nil
		}
		fmt.Fprintf(&b, "- %s [%s]\n", square, p.ID)
	}

	if len(warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "⚠️ %s\n", w)
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}
