package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/amaumene/escort/internal/domain"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Catalog is the on-disk seed format.
type Catalog struct {
	Profiles  []domain.Profile  `yaml:"profiles"`
	Locations []domain.Location `yaml:"locations"`
	Stories   []domain.Story    `yaml:"stories"`
}

type SeedResult struct {
	Profiles  int
	Locations int
	Stories   int
}

type SeedService struct {
	profiles  domain.ProfileRepository
	locations domain.LocationRepository
	stories   domain.StoryRepository
}

func NewSeedService(profiles domain.ProfileRepository, locations domain.LocationRepository, stories domain.StoryRepository) *SeedService {
	return &SeedService{
		profiles:  profiles,
		locations: locations,
		stories:   stories,
	}
}

func (s *SeedService) ImportFile(ctx context.Context, path string) (*SeedResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	return s.Import(ctx, f)
}

// Import upserts everything in the catalog. The whole catalog is validated
// before anything is written. Entries without an id get one derived from
// their natural key, so importing the same file again updates in place.
func (s *SeedService) Import(ctx context.Context, r io.Reader) (*SeedResult, error) {
	var catalog Catalog
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := catalog.prepare(); err != nil {
		return nil, err
	}

	result := &SeedResult{}

	for i := range catalog.Profiles {
		profile := &catalog.Profiles[i]
		if err := s.profiles.Upsert(ctx, profile); err != nil {
			return result, fmt.Errorf("seeding profile %s: %w", profile.Username, err)
		}
		result.Profiles++
	}

	for i := range catalog.Locations {
		if err := s.upsertLocation(ctx, &catalog.Locations[i]); err != nil {
			return result, err
		}
		result.Locations++
	}

	for i := range catalog.Stories {
		story := &catalog.Stories[i]
		if err := s.stories.Upsert(ctx, story); err != nil {
			return result, fmt.Errorf("seeding story %s: %w", story.Name, err)
		}
		result.Stories++
	}

	log.WithFields(log.Fields{
		"component": "seed",
		"profiles":  result.Profiles,
		"locations": result.Locations,
		"stories":   result.Stories,
	}).Info("catalog imported")

	return result, nil
}

// prepare validates every entry and fills in missing ids.
func (c *Catalog) prepare() error {
	for i := range c.Profiles {
		profile := &c.Profiles[i]
		if profile.Username == "" {
			return fmt.Errorf("profile %d has no username: %w", i, domain.ErrInvalidInput)
		}
		if profile.ID == "" {
			profile.ID = seedID("profile", profile.Username)
		}
	}

	for i := range c.Locations {
		location := &c.Locations[i]
		if err := location.Validate(); err != nil {
			return fmt.Errorf("location %d has no country: %w", i, err)
		}
		if location.ID == "" {
			location.ID = seedID("location", location.Country, location.Region, location.City, location.Name)
		}
	}

	for i := range c.Stories {
		story := &c.Stories[i]
		if story.ID == "" {
			story.ID = seedID("story", story.Name, story.CreatedAt.UTC().Format(time.RFC3339Nano))
		}
	}
	return nil
}

func seedID(kind string, key ...string) string {
	return uuid.NewV5(uuid.NamespaceOID, kind+":"+strings.Join(key, "\x00")).String()
}

func (s *SeedService) upsertLocation(ctx context.Context, location *domain.Location) error {
	err := s.locations.Insert(ctx, location)
	if errors.Is(err, domain.ErrDuplicateKey) {
		err = s.locations.Update(ctx, location)
	}
	if err != nil {
		return fmt.Errorf("seeding location %s: %w", location.Name, err)
	}
	return nil
}
