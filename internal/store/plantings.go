package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/philipgiuliani/sfgarden/internal/planting"
)

// AddPlanting inserts a planting. A missing ID is generated and a
// missing status defaults to active.
func (s *Store) AddPlanting(ctx context.Context, p *Planting) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = planting.StatusActive
	}
	if err := planting.ValidateStatus(p.Status); err != nil {
		return err
	}

	query := `
		INSERT INTO plantings (id, user_id, garden_id, square, plant, variety, count, planted_on, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query,
		p.ID, s.userID, p.GardenID, p.Square, p.Plant,
		nullString(p.Variety), p.Count, p.PlantedOn, string(p.Status)).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetPlanting fetches one planting by ID.
func (s *Store) GetPlanting(ctx context.Context, id string) (*Planting, error) {
	query := `
		SELECT id, garden_id, square, plant, COALESCE(variety, ''), count, planted_on, status, created_at
		FROM plantings
		WHERE id = $1 AND user_id = $2`

	p := &Planting{}
	err := s.db.QueryRowContext(ctx, query, id, s.userID).
		Scan(&p.ID, &p.GardenID, &p.Square, &p.Plant, &p.Variety, &p.Count, &p.PlantedOn, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// ActivePlantings returns a garden's plantings that currently occupy
// their squares, ordered by square then planting date.
func (s *Store) ActivePlantings(ctx context.Context, gardenID string) ([]Planting, error) {
	query := `
		SELECT id, garden_id, square, plant, COALESCE(variety, ''), count, planted_on, status, created_at
		FROM plantings
		WHERE garden_id = $1 AND user_id = $2 AND status = 'active'
		ORDER BY square, planted_on`

	rows, err := s.db.QueryContext(ctx, query, gardenID, s.userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var plantings []Planting
	for rows.Next() {
		var p Planting
		if err := rows.Scan(&p.ID, &p.GardenID, &p.Square, &p.Plant, &p.Variety,
			&p.Count, &p.PlantedOn, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		plantings = append(plantings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return plantings, nil
}

// UpdatePlantingStatus marks a planting harvested or failed (or back to
// active). Returns ErrNotFound if the planting does not exist for the
// bound user.
func (s *Store) UpdatePlantingStatus(ctx context.Context, id string, status planting.Status) error {
	if err := planting.ValidateStatus(status); err != nil {
		return err
	}

	query := `
		UPDATE plantings SET status = $1
		WHERE id = $2 AND user_id = $3`

	res, err := s.db.ExecContext(ctx, query, string(status), id, s.userID)
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
