package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"astrasafe/internal/persona"
	"astrasafe/pkg/metrics"
	"astrasafe/pkg/utils"
)

func TestSeedService_Seed(t *testing.T) {
	repo := &fakeSeedRepo{}
	spy := &spyPlaceService{}
	m := metrics.New()
	svc := NewSeedService(repo, spy, zap.NewNop(), m)

	n, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(demoDirectory()), n)
	assert.Equal(t, n, repo.placeCount())
	assert.NotEmpty(t, repo.reviews)
	assert.Equal(t, 1, spy.invalidations)
	assert.Equal(t, float64(n), scrapeValue(t, m, "astrasafe_directory_places_seeded_total"))

	placeIDs := map[string]bool{}
	for _, p := range repo.places {
		placeIDs[p.ID.String()] = true
	}
	for _, r := range repo.reviews {
		assert.True(t, placeIDs[r.PlaceID.String()], "review bound to a seeded place")
	}

	again, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, again)
	assert.Equal(t, n, repo.placeCount())
	assert.Equal(t, float64(n), scrapeValue(t, m, "astrasafe_directory_places_seeded_total"))
}

func TestSeedService_ConcurrentSeedInsertsOnce(t *testing.T) {
	const callers = 4
	var arrivals sync.WaitGroup
	arrivals.Add(callers)
	repo := &fakeSeedRepo{arrivals: &arrivals}
	spy := &syncSpyPlaceService{}
	svc := NewSeedService(repo, spy, zap.NewNop(), metrics.New())

	results := make([]int, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := svc.Seed(context.Background())
			assert.NoError(t, err)
			results[i] = n
		}()
	}
	wg.Wait()

	total := 0
	for _, n := range results {
		total += n
	}
	assert.Equal(t, len(demoDirectory()), total, "exactly one caller inserts")
	assert.Equal(t, len(demoDirectory()), repo.placeCount())
}

func TestSeedService_FailedReviewLeavesTableEmpty(t *testing.T) {
	repo := &fakeSeedRepo{reviewErr: errors.New("check constraint violated")}
	spy := &spyPlaceService{}
	svc := NewSeedService(repo, spy, zap.NewNop(), metrics.New())

	_, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Zero(t, repo.placeCount())
	assert.Equal(t, 1, spy.invalidations, "cache is cleared on the failure path too")

	repo.reviewErr = nil
	n, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(demoDirectory()), n, "a retry loads the full set")
	assert.NotEmpty(t, repo.reviews)
	assert.Equal(t, 2, spy.invalidations)
}

func TestSeedService_CitiesInCatalog(t *testing.T) {
	cities := persona.DefaultCatalog().Cities()
	for _, d := range demoDirectory() {
		assert.Contains(t, cities, d.place.City, d.place.Name)
	}
}
