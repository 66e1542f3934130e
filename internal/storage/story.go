package storage

import (
	"context"
	"sort"

	"github.com/amaumene/escort/internal/domain"
	"github.com/timshannon/bolthold"
)

type storyRepository struct {
	store *bolthold.Store
}

func NewStoryRepository(store *bolthold.Store) domain.StoryRepository {
	return &storyRepository{store: store}
}

func (r *storyRepository) Upsert(ctx context.Context, story *domain.Story) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("upserting story", r.store.Upsert(story.ID, story))
}

func (r *storyRepository) FindRecent(ctx context.Context, limit int) ([]domain.Story, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var stories []domain.Story
	if err := r.store.Find(&stories, nil); err != nil {
		return nil, translate("finding stories", err)
	}

	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})
	if limit > 0 && len(stories) > limit {
		stories = stories[:limit]
	}
	return stories, nil
}
