// Package tools implements the MCP tool handlers for the garden tracker.
//
// Each tool is a struct with its dependencies injected via constructor,
// a Definition() returning the mcp.Tool schema, and a Handle() that
// processes the request. Domain rules live in the grid, planting and
// seedling packages; tools translate between MCP arguments, those
// packages, and the store. Validation failures become tool error
// results, never transport errors.
package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// dateLayout is the wire format for all date parameters.
const dateLayout = "2006-01-02"

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// dateArg parses an optional YYYY-MM-DD argument, returning fallback
// when the argument is absent or blank.
func dateArg(req mcp.CallToolRequest, key string, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(req.GetString(key, ""))
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", key, raw)
	}
	return t, nil
}

// intArg extracts an integer argument, returning defaultVal if the key
// is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// splitLabels splits a comma-separated square list ("A1, B2") into its
// non-empty parts.
func splitLabels(raw string) []string {
	var labels []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
