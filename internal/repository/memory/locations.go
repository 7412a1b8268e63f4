package memory

import (
	"context"

	"github.com/benx421/easydinar/internal/models"
)

type locationRepository struct {
	s *Store
}

func (r *locationRepository) Create(_ context.Context, location *models.Location) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, l := range r.s.locations {
		if l.Type == location.Type && l.Name == location.Name &&
			l.Latitude == location.Latitude && l.Longitude == location.Longitude {
			return false, nil
		}
	}

	location.ID = int64(len(r.s.locations)) + 1
	stored := *location
	r.s.locations = append(r.s.locations, &stored)
	return true, nil
}

func (r *locationRepository) List(_ context.Context, filter models.LocationFilter) ([]*models.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*models.Location
	for _, l := range r.s.locations {
		if filter.Type != nil && l.Type != *filter.Type {
			continue
		}
		c := *l
		out = append(out, &c)
	}
	return out, nil
}
