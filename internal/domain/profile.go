package domain

import (
	"context"
	"time"
)

type Profile struct {
	ID             string    `boltholdKey:"ID" yaml:"id"`
	Username       string    `yaml:"username"`
	Name           string    `yaml:"name"`
	Age            int       `yaml:"age"`
	About          string    `yaml:"about"`
	LocationName   string    `boltholdIndex:"LocationName" yaml:"location_name"`
	Price          string    `yaml:"price"`
	DressSize      int       `yaml:"dress_size"`
	HairColor      string    `yaml:"hair_color"`
	Phone          string    `yaml:"phone"`
	ProfilePicture string    `yaml:"profile_picture"`
	Services       []string  `yaml:"services"`
	IsVerified     bool      `yaml:"is_verified"`
	IsVIP          bool      `yaml:"is_vip"`
	CurrentOffer   string    `yaml:"current_offer"`
	AvailableFrom  time.Time `yaml:"available_from"`
	AvailableUntil time.Time `yaml:"available_until"`
	Ratings        float64   `yaml:"ratings"`
	CreatedAt      time.Time `yaml:"created_at"`
}

// DisplayName prefers the public name and falls back to the username.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}

// IsOnline reports whether now falls inside the availability window.
// A profile without a complete window is never online.
func (p *Profile) IsOnline(now time.Time) bool {
	if p.AvailableFrom.IsZero() || p.AvailableUntil.IsZero() {
		return false
	}
	return !now.Before(p.AvailableFrom) && !now.After(p.AvailableUntil)
}

// IsNew reports whether the profile was created in the current calendar
// month or the one before it. An unknown creation time counts as new.
func (p *Profile) IsNew(now time.Time) bool {
	if p.CreatedAt.IsZero() {
		return true
	}
	created := p.CreatedAt.In(now.Location())
	nowYear, nowMonth, _ := now.Date()
	year, month, _ := created.Date()

	switch {
	case year == nowYear:
		return month == nowMonth || month == nowMonth-1
	case year == nowYear-1 && nowMonth == time.January:
		return month == time.December
	}
	return false
}

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *Profile) error
	Get(ctx context.Context, id string) (*Profile, error)
	FindAll(ctx context.Context) ([]Profile, error)
	FindTopRated(ctx context.Context, limit int) ([]Profile, error)
	Delete(ctx context.Context, id string) error
}
