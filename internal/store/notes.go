package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// noteCategories mirrors the check constraint on notes.category.
var noteCategories = map[string]bool{
	"observation": true,
	"task":        true,
	"reminder":    true,
	"issue":       true,
}

// ValidateNoteCategory returns an error if the category is not recognized.
func ValidateNoteCategory(category string) error {
	if !noteCategories[category] {
		return fmt.Errorf("invalid note category %q: must be one of: observation, task, reminder, issue", category)
	}
	return nil
}

// AddNote inserts a garden annotation. Square validation against the
// garden extent is the caller's job (it needs the garden loaded anyway).
func (s *Store) AddNote(ctx context.Context, n *Note) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Category == "" {
		n.Category = "observation"
	}
	if err := ValidateNoteCategory(n.Category); err != nil {
		return err
	}

	query := `
		INSERT INTO notes (id, user_id, garden_id, category, square, planting_id, body)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query,
		n.ID, s.userID, n.GardenID, n.Category,
		nullString(n.Square), nullString(n.PlantingID), n.Body).Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListNotes returns a garden's notes, newest first.
func (s *Store) ListNotes(ctx context.Context, gardenID string) ([]Note, error) {
	query := `
		SELECT id, garden_id, category, COALESCE(square, ''), COALESCE(planting_id::text, ''), body, created_at
		FROM notes
		WHERE garden_id = $1 AND user_id = $2
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, gardenID, s.userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.GardenID, &n.Category, &n.Square, &n.PlantingID, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return notes, nil
}
