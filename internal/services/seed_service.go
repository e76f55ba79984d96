package services

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"astrasafe/internal/models/db_models"
	"astrasafe/internal/repositories"
	"astrasafe/pkg/metrics"
	"astrasafe/pkg/utils"
)

type SeedServiceInterface interface {
	// Seed loads the demo directory when no place exists yet and returns how many places it inserted.
	Seed(ctx context.Context) (int, error)
}

type SeedService struct {
	seedRepo     repositories.SeedRepository
	placeService PlaceServiceInterface
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

func NewSeedService(
	seedRepo repositories.SeedRepository,
	placeService PlaceServiceInterface,
	logger *zap.Logger,
	m *metrics.Metrics,
) SeedServiceInterface {
	return &SeedService{
		seedRepo:     seedRepo,
		placeService: placeService,
		logger:       logger.Named("seed"),
		metrics:      m,
	}
}

type demoReview struct {
	rating     int
	tags       []string
	comment    string
	nightSafe  bool
	harassment bool
}

type demoPlace struct {
	place   db_models.Place
	reviews []demoReview
}

func demoDirectory() []demoPlace {
	return []demoPlace{
		{
			place: db_models.Place{
				Name: "Hotel Alma Nørrebro", City: "Copenhagen", Type: "hotel",
				Description: "Boutique hotel with a women-only floor and keycard lifts.",
				MainTags:    pq.StringArray{"women-only-floor", "24h-reception", "well-lit"},
			},
			reviews: []demoReview{
				{rating: 5, tags: []string{"well-lit", "friendly-staff"}, comment: "Felt completely at ease coming back late.", nightSafe: true},
				{rating: 4, tags: []string{"quiet"}, comment: "Staff walked me to a taxi at 2am.", nightSafe: true},
			},
		},
		{
			place: db_models.Place{
				Name: "Vesturbær", City: "Reykjavik", Type: "neighborhood",
				Description: "Residential area near the harbour, walkable and calm.",
				MainTags:    pq.StringArray{"walkable", "residential"},
			},
			reviews: []demoReview{
				{rating: 5, tags: []string{"walkable"}, comment: "Walked everywhere, day and night.", nightSafe: true},
			},
		},
		{
			place: db_models.Place{
				Name: "Kavarna Tromostovje", City: "Ljubljana", Type: "cafe",
				Description: "Riverside cafe on the main square with outdoor seating.",
				MainTags:    pq.StringArray{"central", "solo-friendly"},
			},
		},
		{
			place: db_models.Place{
				Name: "Príncipe Real", City: "Lisbon", Type: "neighborhood",
				Description: "Leafy hilltop district with gardens and small shops.",
				MainTags:    pq.StringArray{"walkable", "busy-evenings"},
			},
			reviews: []demoReview{
				{rating: 4, tags: []string{"pickpockets"}, comment: "Lovely, but watch your bag on tram 24.", nightSafe: true},
				{rating: 3, tags: []string{"poorly-lit"}, comment: "Side streets get dark after 11.", nightSafe: false},
			},
		},
		{
			place: db_models.Place{
				Name: "Seochon Hanok Stay", City: "Seoul", Type: "guesthouse",
				Description: "Traditional guesthouse run by a local family near Gyeongbokgung.",
				MainTags:    pq.StringArray{"host-on-site", "metro-nearby"},
			},
			reviews: []demoReview{
				{rating: 5, tags: []string{"host-on-site"}, comment: "Host checked in on me every evening.", nightSafe: true},
			},
		},
		{
			place: db_models.Place{
				Name: "Mile End", City: "Montreal", Type: "neighborhood",
				Description: "Bagel shops, cafes and quiet residential streets.",
				MainTags:    pq.StringArray{"walkable", "cafes"},
			},
		},
		{
			place: db_models.Place{
				Name: "Roma Norte", City: "Mexico City", Type: "neighborhood",
				Description: "Tree-lined streets with restaurants, galleries and lively nights.",
				MainTags:    pq.StringArray{"nightlife", "use-ride-share"},
			},
			reviews: []demoReview{
				{rating: 4, tags: []string{"use-ride-share"}, comment: "Fine on the main avenues, took Ubers after dark.", nightSafe: false},
				{rating: 2, tags: []string{"catcalling"}, comment: "Got catcalled a few times near the park.", harassment: true},
			},
		},
		{
			place: db_models.Place{
				Name: "Ari", City: "Bangkok", Type: "neighborhood",
				Description: "Residential district with cafes and easy BTS access.",
				MainTags:    pq.StringArray{"metro-nearby", "cafes"},
			},
			reviews: []demoReview{
				{rating: 5, tags: []string{"metro-nearby"}, comment: "Much calmer than Sukhumvit.", nightSafe: true},
			},
		},
	}
}

func (s *SeedService) Seed(ctx context.Context) (int, error) {
	inserted, err := s.seedRepo.SeedIfEmpty(ctx, demoSeed())
	// A failed seed rolls back, but listings may have been cached mid-flight.
	s.placeService.InvalidateCache()
	if err != nil {
		s.logger.Error("seed demo directory", zap.Error(err))
		return 0, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if inserted == 0 {
		s.logger.Info("directory already populated, skipping seed")
		return 0, nil
	}

	s.metrics.PlacesSeeded(inserted)
	s.logger.Info("demo directory seeded", zap.Int("places", inserted))
	return inserted, nil
}

func demoSeed() []repositories.SeedPlace {
	demo := demoDirectory()
	out := make([]repositories.SeedPlace, len(demo))
	for i, d := range demo {
		reviews := make([]db_models.Review, len(d.reviews))
		for j, r := range d.reviews {
			reviews[j] = db_models.Review{
				Rating:     r.rating,
				SafetyTags: pq.StringArray(r.tags),
				Comment:    r.comment,
				NightSafe:  r.nightSafe,
				Harassment: r.harassment,
			}
		}
		out[i] = repositories.SeedPlace{Place: d.place, Reviews: reviews}
	}
	return out
}
