package service

import (
	"strings"
	"time"

	"github.com/amaumene/escort/internal/domain"
)

const (
	CategoryAll       = "all"
	CategoryNew       = "new"
	CategoryVIP       = "vip"
	CategoryVerified  = "verified"
	CategoryAvailable = "available"
)

type Category struct {
	Slug  string
	Label string
	match func(p *domain.Profile, now time.Time) bool
}

var categories = []Category{
	{
		Slug:  CategoryAll,
		Label: "All",
		match: func(*domain.Profile, time.Time) bool { return true },
	},
	{
		Slug:  CategoryNew,
		Label: "New",
		match: func(p *domain.Profile, now time.Time) bool { return p.IsNew(now) },
	},
	{
		Slug:  CategoryVIP,
		Label: "VIP",
		match: func(p *domain.Profile, _ time.Time) bool { return p.CurrentOffer != "" },
	},
	{
		Slug:  CategoryVerified,
		Label: "Verified",
		match: func(p *domain.Profile, _ time.Time) bool { return p.IsVerified },
	},
	{
		Slug:  CategoryAvailable,
		Label: "Available Now",
		match: func(p *domain.Profile, now time.Time) bool { return p.IsOnline(now) },
	},
}

// Categories returns the tabs in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory resolves a query slug. An empty slug means "all".
func LookupCategory(slug string) (Category, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		slug = CategoryAll
	}
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

func (c Category) Matches(p *domain.Profile, now time.Time) bool {
	if c.match == nil {
		return false
	}
	return c.match(p, now)
}
