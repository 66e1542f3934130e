package domain

import (
	"context"
	"time"
)

type Story struct {
	ID          string    `boltholdKey:"ID" yaml:"id"`
	Name        string    `yaml:"name"`
	Image       string    `yaml:"image"`
	HasNewStory bool      `yaml:"has_new_story"`
	CreatedAt   time.Time `yaml:"created_at"`
}

type StoryRepository interface {
	Upsert(ctx context.Context, story *Story) error
	FindRecent(ctx context.Context, limit int) ([]Story, error)
}
