package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/amaumene/escort/internal/domain"
	log "github.com/sirupsen/logrus"
)

const (
	featuredCount    = 3
	storyCount       = 8
	PlaceholderImage = "/static/placeholder.svg"
)

var featuredRanks = []string{"week", "day", "month"}

type ProfileCard struct {
	ID         string
	Name       string
	Age        int
	Location   string
	DressSize  int
	Price      string
	Image      string
	IsVerified bool
	IsVIP      bool
	IsOnline   bool
}

type FeaturedCard struct {
	ProfileCard
	Rank      string
	RankTitle string
}

type StoryCircle struct {
	Name        string
	Image       string
	HasNewStory bool
	IsActive    bool
}

type CategoryTab struct {
	Slug     string
	Label    string
	Selected bool
}

type IndexPage struct {
	Title      string
	Featured   []FeaturedCard
	Stories    []StoryCircle
	Categories []CategoryTab
	Selected   string
	Profiles   []ProfileCard
}

type ProfilePage struct {
	Title    string
	Card     ProfileCard
	About    string
	Phone    string
	Services []string
	Offer    string
}

type CatalogService struct {
	profiles domain.ProfileRepository
	stories  domain.StoryRepository
	clock    clock.Clock
}

func NewCatalogService(profiles domain.ProfileRepository, stories domain.StoryRepository, clk clock.Clock) *CatalogService {
	return &CatalogService{
		profiles: profiles,
		stories:  stories,
		clock:    clk,
	}
}

// IndexPage assembles the landing page for the given category slug.
// An unknown slug yields an empty grid rather than an error.
func (s *CatalogService) IndexPage(ctx context.Context, slug string) (*IndexPage, error) {
	now := s.clock.Now()

	featured, err := s.featured(ctx, now)
	if err != nil {
		return nil, err
	}

	stories, err := s.storyCircles(ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("finding profiles: %w", err)
	}

	category, ok := LookupCategory(slug)
	if !ok {
		log.WithFields(log.Fields{
			"component": "catalog",
			"category":  slug,
		}).Warn("unknown category requested")
	}

	cards := make([]ProfileCard, 0, len(profiles))
	for i := range profiles {
		if category.Matches(&profiles[i], now) {
			cards = append(cards, card(&profiles[i], now))
		}
	}

	return &IndexPage{
		Title:      "Escort Directory",
		Featured:   featured,
		Stories:    stories,
		Categories: tabs(category.Slug),
		Selected:   category.Slug,
		Profiles:   cards,
	}, nil
}

func (s *CatalogService) ProfilePage(ctx context.Context, id string) (*ProfilePage, error) {
	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", id, err)
	}

	c := card(profile, s.clock.Now())
	return &ProfilePage{
		Title:    c.Name,
		Card:     c,
		About:    profile.About,
		Phone:    profile.Phone,
		Services: profile.Services,
		Offer:    profile.CurrentOffer,
	}, nil
}

func (s *CatalogService) featured(ctx context.Context, now time.Time) ([]FeaturedCard, error) {
	top, err := s.profiles.FindTopRated(ctx, featuredCount)
	if err != nil {
		return nil, fmt.Errorf("finding featured profiles: %w", err)
	}

	out := make([]FeaturedCard, 0, len(top))
	for i := range top {
		rank := featuredRanks[i%len(featuredRanks)]
		out = append(out, FeaturedCard{
			ProfileCard: card(&top[i], now),
			Rank:        rank,
			RankTitle:   "Escort of the " + strings.ToUpper(rank[:1]) + rank[1:],
		})
	}
	return out, nil
}

func (s *CatalogService) storyCircles(ctx context.Context) ([]StoryCircle, error) {
	stories, err := s.stories.FindRecent(ctx, storyCount)
	if err != nil {
		return nil, fmt.Errorf("finding stories: %w", err)
	}

	out := make([]StoryCircle, 0, len(stories))
	for i, story := range stories {
		image := story.Image
		if image == "" {
			image = PlaceholderImage
		}
		out = append(out, StoryCircle{
			Name:        story.Name,
			Image:       image,
			HasNewStory: story.HasNewStory,
			IsActive:    i == 0,
		})
	}
	return out, nil
}

func card(p *domain.Profile, now time.Time) ProfileCard {
	image := p.ProfilePicture
	if image == "" {
		image = PlaceholderImage
	}
	return ProfileCard{
		ID:         p.ID,
		Name:       p.DisplayName(),
		Age:        p.Age,
		Location:   p.LocationName,
		DressSize:  p.DressSize,
		Price:      p.Price,
		Image:      image,
		IsVerified: p.IsVerified,
		IsVIP:      p.IsVIP,
		IsOnline:   p.IsOnline(now),
	}
}

func tabs(selected string) []CategoryTab {
	out := make([]CategoryTab, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryTab{
			Slug:     c.Slug,
			Label:    c.Label,
			Selected: c.Slug == selected,
		})
	}
	return out
}
