package domain

import (
	"context"
	"strings"
)

type Location struct {
	ID      string `boltholdKey:"ID" json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	City    string `json:"city" yaml:"city"`
	Region  string `json:"region" yaml:"region"`
	Country string `boltholdIndex:"Country" json:"country" yaml:"country"`
}

func (l *Location) Validate() error {
	if strings.TrimSpace(l.Country) == "" {
		return ErrInvalidInput
	}
	return nil
}

type LocationRepository interface {
	Insert(ctx context.Context, location *Location) error
	Update(ctx context.Context, location *Location) error
	Get(ctx context.Context, id string) (*Location, error)
	FindAll(ctx context.Context) ([]Location, error)
	Delete(ctx context.Context, id string) error
}
