package schemadoc

// Preamble is the static behavioral guide that precedes the generated
// table sections. It is also what callers get when catalog introspection
// is unavailable, so it must stand on its own.
const Preamble = `# Garden database guide

## Coordinate system

Gardens are rectangular grids of unit squares. Squares are addressed by
spreadsheet-style labels: a letter column followed by a numeric row, e.g.
"B3" is column 2, row 3. Columns run A, B, … Z, AA, AB, …; rows start
at 1. Every square label you write must lie inside the garden's declared
columns × rows extent — out-of-range labels are rejected.

## Write patterns

- A square may hold several plantings over a season (succession
  planting). Only plantings with status "active" occupy their square;
  planting into an occupied square is allowed but produces a warning.
- Mark a planting "harvested" or "failed" to free its square. Harvest
  records are an append-only log and do not change the planting's
  status unless you ask for that explicitly.
- Seedlings live in indoor trays independent of any garden. Their phase
  only moves forward (sown → germinated → true_leaves → hardening →
  transplanted); "failed" can be set from any non-terminal phase. Link
  the created planting when transplanting.

## Data isolation

Every row belongs to the authenticated user and the database enforces
that isolation itself (row-level security). You can never read or write
another user's gardens, plantings, seedlings, harvests, or notes.
`
