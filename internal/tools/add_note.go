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

// AddNoteTool handles the add_note MCP tool.
type AddNoteTool struct {
	store *store.Store
}

// NewAddNoteTool creates an AddNoteTool.
func NewAddNoteTool(s *store.Store) *AddNoteTool {
	return &AddNoteTool{store: s}
}

// Definition returns the MCP tool definition for add_note.
func (t *AddNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("add_note",
		mcp.WithDescription(
			"Add a note to a garden — observations, tasks, reminders, or issues. Optionally pin "+
				"it to a square or a planting.",
		),
		mcp.WithString("garden_id",
			mcp.Required(),
			mcp.Description("The garden's short code"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("The note text"),
		),
		mcp.WithString("category",
			mcp.Description("Category: observation (default), task, reminder, or issue"),
		),
		mcp.WithString("square",
			mcp.Description("Square label to pin the note to (validated against the garden extent)"),
		),
		mcp.WithString("planting_id",
			mcp.Description("Planting to pin the note to"),
		),
	)
}

// Handle processes the add_note tool call.
func (t *AddNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gardenID := strings.TrimSpace(req.GetString("garden_id", ""))
	body := strings.TrimSpace(req.GetString("body", ""))
	if gardenID == "" {
		return mcp.NewToolResultError("'garden_id' is required"), nil
	}
	if body == "" {
		return mcp.NewToolResultError("'body' is required"), nil
	}

	g, err := t.store.GetGarden(ctx, gardenID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("garden %q not found", gardenID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load garden: %v", err)), nil
	}

	square := strings.TrimSpace(req.GetString("square", ""))
	if square != "" {
		square, err = grid.Validate(square, g.Columns, g.Rows)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	n := &store.Note{
		GardenID:   g.ID,
		Category:   strings.TrimSpace(req.GetString("category", "")),
		Square:     square,
		PlantingID: strings.TrimSpace(req.GetString("planting_id", "")),
		Body:       body,
	}
	if err := t.store.AddNote(ctx, n); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add note: %v", err)), nil
	}

	msg := fmt.Sprintf("Note added to %q (%s)", g.ID, n.Category)
	if n.Square != "" {
		msg += fmt.Sprintf(" at %s", n.Square)
	}
	return mcp.NewToolResultText(msg + "."), nil
}
