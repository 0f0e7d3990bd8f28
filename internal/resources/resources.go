// Package resources implements MCP resource handlers for the garden tracker.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (garden://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipgiuliani/sfgarden/internal/schemadoc"
	"github.com/philipgiuliani/sfgarden/internal/store"
)

// Handler manages garden resource endpoints.
type Handler struct {
	store *store.Store
	cache *schemadoc.Cache
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(s *store.Store, cache *schemadoc.Cache) *Handler {
	return &Handler{store: s, cache: cache}
}

// SchemaResource returns the MCP resource definition for the database guide.
func (h *Handler) SchemaResource() mcp.Resource {
	return mcp.NewResource(
		"garden://schema",
		"Garden Database Guide",
		mcp.WithResourceDescription("Coordinate system, write patterns, and table structure of the garden database"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleSchema returns the database guide as markdown.
func (h *Handler) HandleSchema(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     h.cache.Get(ctx),
		},
	}, nil
}

// GardensResource returns the MCP resource definition for the garden list.
func (h *Handler) GardensResource() mcp.Resource {
	return mcp.NewResource(
		"garden://gardens",
		"Gardens",
		mcp.WithResourceDescription("The user's gardens with their grid extents"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleGardens returns the user's gardens as JSON.
func (h *Handler) HandleGardens(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	gardens, err := h.store.ListGardens(ctx)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(gardens, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling gardens: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
