package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/philipgiuliani/sfgarden/internal/seedling"
)

// AddSeedling inserts a seedling batch. A missing ID is generated.
func (s *Store) AddSeedling(ctx context.Context, sd *seedling.Seedling) error {
	if sd.ID == "" {
		sd.ID = uuid.NewString()
	}
	if err := seedling.ValidatePhase(sd.Phase); err != nil {
		return err
	}

	query := `
		INSERT INTO seedlings (id, user_id, plant, variety, count, phase, sown_on, phase_changed_on, planting_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		sd.ID, s.userID, sd.Plant, nullString(sd.Variety), sd.Count,
		string(sd.Phase), sd.SownOn, sd.PhaseChangedOn, nullString(sd.PlantingID))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetSeedling fetches one seedling batch by ID.
func (s *Store) GetSeedling(ctx context.Context, id string) (*seedling.Seedling, error) {
	query := `
		SELECT id, plant, COALESCE(variety, ''), count, phase, sown_on, phase_changed_on, COALESCE(planting_id::text, '')
		FROM seedlings
		WHERE id = $1 AND user_id = $2`

	sd := &seedling.Seedling{}
	err := s.db.QueryRowContext(ctx, query, id, s.userID).
		Scan(&sd.ID, &sd.Plant, &sd.Variety, &sd.Count, &sd.Phase, &sd.SownOn, &sd.PhaseChangedOn, &sd.PlantingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return sd, nil
}

// ListSeedlings returns the user's seedling batches, newest sowing
// first. An empty phase means no filter.
func (s *Store) ListSeedlings(ctx context.Context, phase seedling.Phase) ([]seedling.Seedling, error) {
	query := `
		SELECT id, plant, COALESCE(variety, ''), count, phase, sown_on, phase_changed_on, COALESCE(planting_id::text, '')
		FROM seedlings
		WHERE user_id = $1 AND ($2 = '' OR phase = $2)
		ORDER BY sown_on DESC, plant`

	rows, err := s.db.QueryContext(ctx, query, s.userID, string(phase))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var seedlings []seedling.Seedling
	for rows.Next() {
		var sd seedling.Seedling
		if err := rows.Scan(&sd.ID, &sd.Plant, &sd.Variety, &sd.Count, &sd.Phase,
			&sd.SownOn, &sd.PhaseChangedOn, &sd.PlantingID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		seedlings = append(seedlings, sd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return seedlings, nil
}

// UpdateSeedlingPhase persists the phase fields after a lifecycle
// transition has been applied to sd.
func (s *Store) UpdateSeedlingPhase(ctx context.Context, sd *seedling.Seedling) error {
	query := `
		UPDATE seedlings SET phase = $1, phase_changed_on = $2, planting_id = $3
		WHERE id = $4 AND user_id = $5`

	res, err := s.db.ExecContext(ctx, query,
		string(sd.Phase), sd.PhaseChangedOn, nullString(sd.PlantingID), sd.ID, s.userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
