package repository

import (
	"context"
	"fmt"

	"github.com/benx421/easydinar/internal/db"
	"github.com/benx421/easydinar/internal/models"
)

// locationRepository implements LocationRepository
type locationRepository struct {
	db db.DBTX
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(database db.DBTX) LocationRepository {
	return &locationRepository{db: database}
}

// Create inserts a location unless the same place is already listed
func (r *locationRepository) Create(ctx context.Context, location *models.Location) (bool, error) {
	query := `
		INSERT INTO branches_and_atms (name, type, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT branches_and_atms_place_key DO NOTHING
		RETURNING id
	`

	rows, err := r.db.QueryContext(ctx, query,
		location.Name,
		location.Type,
		location.Address,
		location.Latitude,
		location.Longitude,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create location: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return false, rows.Err()
	}
	if err := rows.Scan(&location.ID); err != nil {
		return false, fmt.Errorf("failed to scan location id: %w", err)
	}
	return true, rows.Err()
}

// List returns locations of the requested type, or all of them
func (r *locationRepository) List(ctx context.Context, filter models.LocationFilter) ([]*models.Location, error) {
	query := `
		SELECT id, name, type, address, latitude, longitude
		FROM branches_and_atms
		WHERE ($1 = '' OR type = $1)
		ORDER BY id
	`

	var locationType string
	if filter.Type != nil {
		locationType = string(*filter.Type)
	}

	rows, err := r.db.QueryContext(ctx, query, locationType)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Type, &l.Address, &l.Latitude, &l.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return locations, nil
}
