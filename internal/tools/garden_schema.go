package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/schemadoc"
)

// GardenSchemaTool handles the garden_schema MCP tool. It serves the
// cached catalog-derived database guide; when introspection is down it
// degrades to the static guide rather than failing.
type GardenSchemaTool struct {
	cache *schemadoc.Cache
}

// NewGardenSchemaTool creates a GardenSchemaTool.
func NewGardenSchemaTool(cache *schemadoc.Cache) *GardenSchemaTool {
	return &GardenSchemaTool{cache: cache}
}

// Definition returns the MCP tool definition for garden_schema.
func (t *GardenSchemaTool) Definition() mcp.Tool {
	return mcp.NewTool("garden_schema",
		mcp.WithDescription(
			"Get the garden database guide: the coordinate system, write patterns, and the "+
				"structure of every table (columns, types, foreign keys, allowed values), derived "+
				"from the live database catalog. Call this before composing unusual writes.",
		),
	)
}

// Handle processes the garden_schema tool call.
func (t *GardenSchemaTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.cache.Get(ctx)), nil
}
