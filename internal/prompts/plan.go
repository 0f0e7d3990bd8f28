package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// PlanPrompt handles the garden-plan MCP prompt.
// It guides the AI through planning and recording a planting session.
type PlanPrompt struct{}

// NewPlanPrompt creates a PlanPrompt.
func NewPlanPrompt() *PlanPrompt {
	return &PlanPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *PlanPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("garden-plan",
		mcp.WithPromptDescription(
			"Plan a planting session: pick free squares, decide what goes where, "+
				"and record the plantings once you confirm.",
		),
		mcp.WithArgument("garden_id",
			mcp.ArgumentDescription("Garden to plan for"),
		),
		mcp.WithArgument("plants",
			mcp.ArgumentDescription("What you want to plant (e.g. 'tomatoes, basil, 2 squares of carrots')"),
		),
	)
}

// Handle processes the garden-plan prompt request.
func (p *PlanPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	gardenID := "my garden"
	plants := "what I tell you"
	if args := req.Params.Arguments; args != nil {
		if id, ok := args["garden_id"]; ok && id != "" {
			gardenID = fmt.Sprintf("garden '%s'", id)
		}
		if pl, ok := args["plants"]; ok && pl != "" {
			plants = pl
		}
	}

	return &mcp.GetPromptResult{
		Description: "Plan a planting session",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Help me plan a planting session in %s for: %s.\n\n"+
						"Please:\n"+
						"1. Run `show_garden` to see which squares are free\n"+
						"2. Check `list_seedlings` for hardened batches that could be transplanted\n"+
						"3. Propose a square assignment and wait for my confirmation\n"+
						"4. Once I confirm, record everything with `add_planting` (and link any "+
						"transplanted batches via `advance_seedling`)\n"+
						"5. If a square is already occupied, show me the warning and ask before proceeding",
					gardenID, plants,
				)),
			},
		},
	}, nil
}
