package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateGarden inserts a new garden. The caller chooses the ID.
func (s *Store) CreateGarden(ctx context.Context, g *Garden) error {
	query := `
		INSERT INTO gardens (id, user_id, name, columns, rows)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query,
		g.ID, s.userID, g.Name, g.Columns, g.Rows).Scan(&g.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetGarden fetches one garden by ID. Returns ErrNotFound if it does
// not exist for the bound user.
func (s *Store) GetGarden(ctx context.Context, id string) (*Garden, error) {
	query := `
		SELECT id, name, columns, rows, created_at FROM gardens
		WHERE id = $1 AND user_id = $2`

	g := &Garden{}
	err := s.db.QueryRowContext(ctx, query, id, s.userID).
		Scan(&g.ID, &g.Name, &g.Columns, &g.Rows, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

// ListGardens returns the user's gardens in creation order.
func (s *Store) ListGardens(ctx context.Context) ([]Garden, error) {
	query := `
		SELECT id, name, columns, rows, created_at FROM gardens
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, s.userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var gardens []Garden
	for rows.Next() {
		var g Garden
		if err := rows.Scan(&g.ID, &g.Name, &g.Columns, &g.Rows, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		gardens = append(gardens, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return gardens, nil
}
