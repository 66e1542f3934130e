package storage

import (
	"context"
	"sort"

	"github.com/amaumene/escort/internal/domain"
	"github.com/timshannon/bolthold"
)

type profileRepository struct {
	store *bolthold.Store
}

func NewProfileRepository(store *bolthold.Store) domain.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("upserting profile", r.store.Upsert(profile.ID, profile))
}

func (r *profileRepository) Get(ctx context.Context, id string) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var profile domain.Profile
	if err := r.store.Get(id, &profile); err != nil {
		return nil, translate("getting profile", err)
	}
	return &profile, nil
}

// FindAll returns every profile, newest first.
func (r *profileRepository) FindAll(ctx context.Context) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var profiles []domain.Profile
	if err := r.store.Find(&profiles, nil); err != nil {
		return nil, translate("finding profiles", err)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		if !profiles[i].CreatedAt.Equal(profiles[j].CreatedAt) {
			return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
		}
		return profiles[i].Username < profiles[j].Username
	})
	return profiles, nil
}

func (r *profileRepository) FindTopRated(ctx context.Context, limit int) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	var profiles []domain.Profile
	query := (&bolthold.Query{}).SortBy("Ratings").Reverse().Limit(limit)
	if err := r.store.Find(&profiles, query); err != nil {
		return nil, translate("finding top rated profiles", err)
	}
	return profiles, nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("deleting profile", r.store.Delete(id, &domain.Profile{}))
}
