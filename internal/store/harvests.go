package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// AddHarvest appends one entry to a planting's harvest log. It never
// touches the planting's status — callers flip that separately when
// the bed is done.
func (s *Store) AddHarvest(ctx context.Context, h *Harvest) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	query := `
		INSERT INTO harvests (id, user_id, planting_id, harvested_on, amount, weight_grams, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		h.ID, s.userID, h.PlantingID, h.HarvestedOn, h.Amount, h.WeightGrams, nullString(h.Notes))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListHarvests returns a planting's harvest log in date order.
func (s *Store) ListHarvests(ctx context.Context, plantingID string) ([]Harvest, error) {
	query := `
		SELECT id, planting_id, harvested_on, amount, weight_grams, COALESCE(notes, '')
		FROM harvests
		WHERE planting_id = $1 AND user_id = $2
		ORDER BY harvested_on`

	rows, err := s.db.QueryContext(ctx, query, plantingID, s.userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var harvests []Harvest
	for rows.Next() {
		var h Harvest
		if err := rows.Scan(&h.ID, &h.PlantingID, &h.HarvestedOn, &h.Amount, &h.WeightGrams, &h.Notes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		harvests = append(harvests, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return harvests, nil
}
