// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations
// and injects them into the tools that depend on them. No business
// logic lives here — only wiring.
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/philipgiuliani/sfgarden/internal/config"
	"github.com/philipgiuliani/sfgarden/internal/prompts"
	"github.com/philipgiuliani/sfgarden/internal/resources"
	"github.com/philipgiuliani/sfgarden/internal/schemadoc"
	"github.com/philipgiuliani/sfgarden/internal/store"
	"github.com/philipgiuliani/sfgarden/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all garden tools
// registered. This is the single place where all dependencies are
// resolved.
//
// The returned cleanup function closes the database connection and
// must be called on shutdown (typically via defer). It is always
// non-nil and safe to call.
func New(ctx context.Context) (*server.MCPServer, func(), error) {
	cfg := config.Load()

	// Connects, binds the user identity for row-level isolation, and
	// runs pending migrations.
	st, err := store.Open(ctx, cfg.DatabaseDSN, cfg.UserID)
	if err != nil {
		return nil, noop, fmt.Errorf("opening store: %w", err)
	}
	cleanup := func() {
		if err := st.Close(); err != nil {
			log.Printf("WARNING: store close: %v", err)
		}
	}

	s := server.NewMCPServer(
		"sfgarden",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Garden tools ---

	createGarden := tools.NewCreateGardenTool(st)
	s.AddTool(createGarden.Definition(), createGarden.Handle)

	listGardens := tools.NewListGardensTool(st)
	s.AddTool(listGardens.Definition(), listGardens.Handle)

	showGarden := tools.NewShowGardenTool(st)
	s.AddTool(showGarden.Definition(), showGarden.Handle)

	// --- Planting tools ---

	addPlanting := tools.NewAddPlantingTool(st)
	s.AddTool(addPlanting.Definition(), addPlanting.Handle)

	updatePlanting := tools.NewUpdatePlantingTool(st)
	s.AddTool(updatePlanting.Definition(), updatePlanting.Handle)

	recordHarvest := tools.NewRecordHarvestTool(st)
	s.AddTool(recordHarvest.Definition(), recordHarvest.Handle)

	// --- Seedling tools ---

	startSeedlings := tools.NewStartSeedlingsTool(st)
	s.AddTool(startSeedlings.Definition(), startSeedlings.Handle)

	advanceSeedling := tools.NewAdvanceSeedlingTool(st)
	s.AddTool(advanceSeedling.Definition(), advanceSeedling.Handle)

	listSeedlings := tools.NewListSeedlingsTool(st)
	s.AddTool(listSeedlings.Definition(), listSeedlings.Handle)

	// --- Notes and schema ---

	addNote := tools.NewAddNoteTool(st)
	s.AddTool(addNote.Definition(), addNote.Handle)

	// The schema guide is introspected from the live database catalog
	// and cached; on catalog failure it degrades to a static guide.
	schemaCache := schemadoc.NewCache(st)
	gardenSchema := tools.NewGardenSchemaTool(schemaCache)
	s.AddTool(gardenSchema.Definition(), gardenSchema.Handle)

	// --- Register prompts ---

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	planPrompt := prompts.NewPlanPrompt()
	s.AddPrompt(planPrompt.Definition(), planPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(st, schemaCache)
	s.AddResource(resourceHandler.SchemaResource(), resourceHandler.HandleSchema)
	s.AddResource(resourceHandler.GardensResource(), resourceHandler.HandleGardens)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used when the store never opened.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the garden tracker effectively.
func serverInstructions() string {
	return `You have access to sfgarden, a square-foot gardening tracker.

## THE MODEL

A garden is a fixed rectangular grid of unit squares. Squares are
addressed spreadsheet-style: column letter(s) + row number (A1, B3,
AA12). Columns run A, B, … Z, AA, AB, …; rows are numbered from 1.
Labels are case-insensitive and stored uppercase.

Everything the user grows lives in one of three records:
- A PLANTING occupies exactly one square of one garden, from its
  planting date until it is marked harvested or failed.
- A SEEDLING BATCH is started indoors and is independent of any garden
  until transplanted. It moves forward through phases:
  sown → germinated → true_leaves → hardening → transplanted.
  Any non-terminal batch can instead be marked failed.
- A HARVEST records an amount (and optionally weight) picked from a
  planting. Harvesting does NOT end the planting unless you also mark
  it harvested — many crops are picked repeatedly.

## HOW TO WORK

- Use show_garden to see the grid before planting. Render its markdown
  table to the user; feel free to decorate plant names with emoji
  (🍅 Tomato, 🥬 Lettuce) but keep the square labels exact.
- Planting into an occupied square is ALLOWED and produces a warning,
  not an error. Succession planting is normal — relay the warning to
  the user and let them decide.
- When a batch of seedlings goes into the ground: first add_planting
  for the target squares, then advance_seedling to transplanted with
  the new planting_id so the records stay linked.
- When the user reports picking something, use record_harvest. Ask
  whether the plant is finished; only then set mark_harvested.
- Dates are YYYY-MM-DD and default to today — pass them explicitly
  when the user mentions "yesterday" or a specific date.
- Use add_note for observations, tasks, reminders, and issues the user
  mentions in passing (pest sightings, watering notes, "remember to
  thin the carrots"). Pin notes to a square or planting when possible.

## BE PROACTIVE

- If a planting has been active for a long time for its crop, ask
  whether it was harvested.
- After a harvest that ends a planting, mention that the square is
  free and suggest what could follow it in the season.
- If seedlings have sat in one phase unusually long, ask how they are
  doing.

## DATA SHAPE

Call garden_schema when you need the exact table layout, allowed
values, or foreign keys — for instance before composing an unusual
query for the user. Each user sees only their own records; IDs from
other users simply do not resolve.`
}
