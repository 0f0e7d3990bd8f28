// Package prompts implements MCP prompt handlers for the garden tracker.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the garden-status MCP prompt.
// It instructs the AI to read and present the current state of a garden.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("garden-status",
		mcp.WithPromptDescription(
			"Get an overview of your gardens: the grid, what's planted where, "+
				"seedlings on the windowsill, and anything that needs attention.",
		),
		mcp.WithArgument("garden_id",
			mcp.ArgumentDescription("Garden to focus on (omit to cover all gardens)"),
		),
	)
}

// Handle processes the garden-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	scope := "every garden (use `list_gardens` first)"
	if args := req.Params.Arguments; args != nil {
		if id, ok := args["garden_id"]; ok && id != "" {
			scope = fmt.Sprintf("garden '%s'", id)
		}
	}

	return &mcp.GetPromptResult{
		Description: "Garden status overview",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Give me a status report for %s.\n\n"+
						"Please:\n"+
						"1. Run `show_garden` and render the grid so I can see what's planted where\n"+
						"2. Run `list_seedlings` and tell me which batches are ready to move on\n"+
						"3. Point out plantings that have been active unusually long for their crop\n"+
						"4. Finish with a short list of suggested next actions",
					scope,
				)),
			},
		},
	}, nil
}
