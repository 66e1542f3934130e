package storage

import (
	"context"

	"github.com/amaumene/escort/internal/domain"
	"github.com/timshannon/bolthold"
)

type locationRepository struct {
	store *bolthold.Store
}

func NewLocationRepository(store *bolthold.Store) domain.LocationRepository {
	return &locationRepository{store: store}
}

func (r *locationRepository) Insert(ctx context.Context, location *domain.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("inserting location", r.store.Insert(location.ID, location))
}

func (r *locationRepository) Update(ctx context.Context, location *domain.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("updating location", r.store.Update(location.ID, location))
}

func (r *locationRepository) Get(ctx context.Context, id string) (*domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var location domain.Location
	if err := r.store.Get(id, &location); err != nil {
		return nil, translate("getting location", err)
	}
	return &location, nil
}

// FindAll returns locations ordered by country, then name.
func (r *locationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var locations []domain.Location
	query := (&bolthold.Query{}).SortBy("Country", "Name")
	if err := r.store.Find(&locations, query); err != nil {
		return nil, translate("finding locations", err)
	}
	return locations, nil
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("deleting location", r.store.Delete(id, &domain.Location{}))
}
