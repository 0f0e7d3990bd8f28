// Package store implements PostgreSQL persistence for gardens,
// plantings, seedlings, harvests, and notes.
//
// Every row carries a user_id and the schema enforces per-user
// isolation with row-level security policies keyed on the app.user_id
// connection setting; each query additionally filters by the store's
// bound user. The store also exposes the catalog introspection used by
// the schemadoc package.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/philipgiuliani/sfgarden/internal/migrations"
	"github.com/philipgiuliani/sfgarden/internal/planting"
)

// ErrNotFound is returned when a requested row does not exist (or
// belongs to another user, which looks the same from the outside).
var ErrNotFound = fmt.Errorf("not found")

// Store is a per-user handle on the garden database. All methods are
// scoped to the bound user.
type Store struct {
	db     *sql.DB
	userID string
}

// New wraps an existing database handle. Used by tests (sqlmock) and by Open.
func New(db *sql.DB, userID string) *Store {
	return &Store{db: db, userID: userID}
}

// Open connects to PostgreSQL, binds the user identity as the
// app.user_id runtime parameter (which the row-level security policies
// key on), and runs pending migrations.
func Open(ctx context.Context, dsn, userID string) (*Store, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database DSN: %w", err)
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = map[string]string{}
	}
	cfg.RuntimeParams["app.user_id"] = userID

	db := stdlib.OpenDB(*cfg)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := New(db, userID)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Migrate applies the embedded goose migrations.
func (s *Store) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	return goose.UpContext(ctx, s.db, ".")
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// --- Row types ---

// Garden is a user-owned rectangular grid of unit squares. The ID is a
// short human-chosen code ("home", "allotment-3").
type Garden struct {
	ID        string
	Name      string
	Columns   int
	Rows      int
	CreatedAt time.Time
}

// Planting is an occupancy record of a plant in a garden square.
type Planting struct {
	ID        string
	GardenID  string
	Square    string
	Plant     string
	Variety   string
	Count     int
	PlantedOn time.Time
	Status    planting.Status
	CreatedAt time.Time
}

// Harvest is one entry in a planting's append-only harvest log.
type Harvest struct {
	ID          string
	PlantingID  string
	HarvestedOn time.Time
	Amount      string
	WeightGrams *int
	Notes       string
}

// Note is an annotation on a garden, optionally pinned to a square or
// a planting.
type Note struct {
	ID         string
	GardenID   string
	Category   string
	Square     string
	PlantingID string
	Body       string
	CreatedAt  time.Time
}

// nullString maps an empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
