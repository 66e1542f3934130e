package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/amaumene/escort/internal/domain"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

type LocationService struct {
	locations domain.LocationRepository
}

func NewLocationService(locations domain.LocationRepository) *LocationService {
	return &LocationService{locations: locations}
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return locations, nil
}

// Create stores a new location under a freshly generated id.
func (s *LocationService) Create(ctx context.Context, location domain.Location) (*domain.Location, error) {
	location.ID = uuid.NewV4().String()
	location.Name = strings.TrimSpace(location.Name)
	location.Country = strings.TrimSpace(location.Country)

	if err := location.Validate(); err != nil {
		return nil, fmt.Errorf("country is required: %w", err)
	}

	if err := s.locations.Insert(ctx, &location); err != nil {
		return nil, fmt.Errorf("creating location: %w", err)
	}

	log.WithFields(log.Fields{
		"component": "locations",
		"id":        location.ID,
		"name":      location.Name,
	}).Info("location created")
	return &location, nil
}

func (s *LocationService) Rename(ctx context.Context, id, name string) (*domain.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required: %w", domain.ErrInvalidInput)
	}

	location, err := s.locations.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("renaming location: %w", err)
	}

	location.Name = strings.TrimSpace(name)
	if err := s.locations.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("renaming location: %w", err)
	}
	return location, nil
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is required: %w", domain.ErrInvalidInput)
	}

	if err := s.locations.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}

	log.WithFields(log.Fields{
		"component": "locations",
		"id":        id,
	}).Info("location deleted")
	return nil
}
