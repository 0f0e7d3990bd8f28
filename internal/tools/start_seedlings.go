package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/seedling"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// StartSeedlingsTool handles the start_seedlings MCP tool.
type StartSeedlingsTool struct {
	store *store.Store
}

// NewStartSeedlingsTool creates a StartSeedlingsTool.
func NewStartSeedlingsTool(s *store.Store) *StartSeedlingsTool {
	return &StartSeedlingsTool{store: s}
}

// Definition returns the MCP tool definition for start_seedlings.
func (t *StartSeedlingsTool) Definition() mcp.Tool {
	return mcp.NewTool("start_seedlings",
		mcp.WithDescription(
			"Start a batch of indoor seedlings. Seedlings are independent of any garden until "+
				"transplanted; they begin in the 'sown' phase.",
		),
		mcp.WithString("plant",
			mcp.Required(),
			mcp.Description("Plant name (e.g. 'Tomato')"),
		),
		mcp.WithString("variety",
			mcp.Description("Variety (e.g. 'San Marzano')"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of seedlings in the batch (default: 1)"),
		),
		mcp.WithString("sown_on",
			mcp.Description("Sowing date as YYYY-MM-DD (default: today)"),
		),
	)
}

// Handle processes the start_seedlings tool call.
func (t *StartSeedlingsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plant := strings.TrimSpace(req.GetString("plant", ""))
	if plant == "" {
		return mcp.NewToolResultError("'plant' is required"), nil
	}

	count := intArg(req, "count", 1)
	if count < 1 {
		return mcp.NewToolResultError("'count' must be a positive integer"), nil
	}

	sownOn, err := dateArg(req, "sown_on", timeNow())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sd := seedling.New(plant, strings.TrimSpace(req.GetString("variety", "")), count, sownOn)
	if err := t.store.AddSeedling(ctx, sd); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to start seedlings: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Started %d× %s seedlings (phase: %s, sown %s). ID: %s",
		sd.Count, sd.Plant, sd.Phase, sd.SownOn.Format(dateLayout), sd.ID,
	)), nil
}
