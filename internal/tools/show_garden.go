package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/grid"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// ShowGardenTool handles the show_garden MCP tool.
type ShowGardenTool struct {
	store *store.Store
}

// NewShowGardenTool creates a ShowGardenTool.
func NewShowGardenTool(s *store.Store) *ShowGardenTool {
	return &ShowGardenTool{store: s}
}

// Definition returns the MCP tool definition for show_garden.
func (t *ShowGardenTool) Definition() mcp.Tool {
	return mcp.NewTool("show_garden",
		mcp.WithDescription(
			"Show a garden as a grid with its active plantings. Render the returned markdown "+
				"table to the user; adding plant emoji to the cells is encouraged.",
		),
		mcp.WithString("garden_id",
			mcp.Required(),
			mcp.Description("The garden's short code"),
		),
	)
}

// Handle processes the show_garden tool call.
func (t *ShowGardenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gardenID := strings.TrimSpace(req.GetString("garden_id", ""))
	if gardenID == "" {
		return mcp.NewToolResultError("'garden_id' is required"), nil
	}

	g, err := t.store.GetGarden(ctx, gardenID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("garden %q not found", gardenID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load garden: %v", err)), nil
	}

	active, err := t.store.ActivePlantings(ctx, g.ID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load plantings: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", g.Name, g.ID)
	b.WriteString(renderGrid(g, active))

	if len(active) == 0 {
		b.WriteString("\nNo active plantings.\n")
	} else {
		b.WriteString("\nActive plantings:\n")
		for _, p := range active {
			line := fmt.Sprintf("- %s: %s", p.Square, p.Plant)
			if p.Variety != "" {
				line += fmt.Sprintf(" (%s)", p.Variety)
			}
			if p.Count > 1 {
				line += fmt.Sprintf(" ×%d", p.Count)
			}
			line += fmt.Sprintf(", planted %s [%s]\n", p.PlantedOn.Format(dateLayout), p.ID)
			b.WriteString(line)
		}
	}

	notes, err := t.store.ListNotes(ctx, g.ID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load notes: %v", err)), nil
	}
	if len(notes) > 0 {
		b.WriteString("\nRecent notes:\n")
		for i, n := range notes {
			if i == maxShownNotes {
				fmt.Fprintf(&b, "… and %d older notes.\n", len(notes)-maxShownNotes)
				break
			}
			line := fmt.Sprintf("- [%s] %s", n.Category, n.Body)
			if n.Square != "" {
				line += fmt.Sprintf(" (at %s)", n.Square)
			}
			b.WriteString(line + "\n")
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

// maxShownNotes caps the note list in show_garden output.
const maxShownNotes = 5

// renderGrid draws the garden as a markdown table: column letters
// across the top, row numbers down the side, active plant names in the
// cells. Several active plantings in one square are joined with "/".
func renderGrid(g *store.Garden, active []store.Planting) string {
	cells := make(map[string][]string, len(active))
	for _, p := range active {
		cells[p.Square] = append(cells[p.Square], p.Plant)
	}

	var b strings.Builder

	b.WriteString("|   |")
	for c := 1; c <= g.Columns; c++ {
		fmt.Fprintf(&b, " %s |", grid.EncodeColumn(c))
	}
	b.WriteString("\n|---|")
	for c := 1; c <= g.Columns; c++ {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for r := 1; r <= g.Rows; r++ {
		fmt.Fprintf(&b, "| %d |", r)
		for c := 1; c <= g.Columns; c++ {
			label := fmt.Sprintf("%s%d", grid.EncodeColumn(c), r)
			fmt.Fprintf(&b, " %s |", strings.Join(cells[label], "/"))
		}
		b.WriteString("\n")
	}

	return b.String()
}
