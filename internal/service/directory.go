package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository"
)

const unknownName = "Unknown"

// amenityTypes maps OpenStreetMap amenity tags onto directory entries
var amenityTypes = map[string]models.LocationType{
	"bank": models.LocationBranch,
	"atm":  models.LocationATM,
}

// ImportResult counts what a directory import did with each feature
type ImportResult struct {
	Imported   int
	Duplicates int
	Skipped    int
}

// DirectoryService serves the public branch and ATM directory
type DirectoryService struct {
	locations repository.LocationRepository
	logger    *slog.Logger
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(locations repository.LocationRepository, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{locations: locations, logger: logger}
}

// List returns every listed location, optionally only those of one type
func (s *DirectoryService) List(ctx context.Context, locationType *models.LocationType) ([]*models.Location, error) {
	if locationType != nil {
		switch *locationType {
		case models.LocationBranch, models.LocationATM:
		default:
			var v violations
			v.add("type", "must be branch or atm")
			return nil, v.err()
		}
	}

	locations, err := s.locations.List(ctx, models.LocationFilter{Type: locationType})
	if err != nil {
		return nil, newInternalError("failed to list locations", err)
	}
	return locations, nil
}

// ImportGeoJSON loads bank and ATM point features from an OpenStreetMap
// GeoJSON export. Unnamed places and other amenities are skipped; places
// already listed are left alone.
func (s *DirectoryService) ImportGeoJSON(ctx context.Context, r io.Reader) (ImportResult, error) {
	var result ImportResult

	data, err := io.ReadAll(r)
	if err != nil {
		return result, fmt.Errorf("read geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return result, fmt.Errorf("decode geojson: %w", err)
	}

	for _, f := range fc.Features {
		location, ok := locationFromFeature(f)
		if !ok {
			result.Skipped++
			continue
		}

		created, err := s.locations.Create(ctx, location)
		if err != nil {
			return result, fmt.Errorf("store %q: %w", location.Name, err)
		}
		if created {
			result.Imported++
		} else {
			result.Duplicates++
		}
	}

	s.logger.Info("branch directory imported",
		"imported", result.Imported,
		"duplicates", result.Duplicates,
		"skipped", result.Skipped,
	)
	return result, nil
}

func locationFromFeature(f *geojson.Feature) (*models.Location, bool) {
	point, ok := f.Geometry.(orb.Point)
	if !ok {
		return nil, false
	}

	locationType, ok := amenityTypes[f.Properties.MustString("amenity", "")]
	if !ok {
		return nil, false
	}

	name := f.Properties.MustString("name", unknownName)
	if name == "" || name == unknownName {
		return nil, false
	}

	street := f.Properties.MustString("addr:street", "Unknown Street")
	city := f.Properties.MustString("addr:city", "Unknown City")

	return &models.Location{
		Name:      name,
		Type:      locationType,
		Address:   street + ", " + city,
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	}, true
}
