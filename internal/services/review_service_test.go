package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"astrasafe/internal/models/request_models"
	"astrasafe/pkg/metrics"
	"astrasafe/pkg/utils"
)

type reviewFixture struct {
	places  *fakePlaceRepo
	reviews *fakeReviewRepo
	spy     *spyPlaceService
	metrics *metrics.Metrics
	svc     ReviewServiceInterface
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		places:  &fakePlaceRepo{},
		reviews: &fakeReviewRepo{},
		spy:     &spyPlaceService{},
		metrics: metrics.New(),
	}
	f.svc = NewReviewService(f.places, f.reviews, f.spy, zap.NewNop(), f.metrics)
	return f
}

func TestReviewService_AddReview(t *testing.T) {
	f := newReviewFixture()
	place := f.places.add("Hotel Alma", "Copenhagen")
	ctx := context.Background()

	got, err := f.svc.AddReview(ctx, place.ID.String(), request_models.CreateReviewRequest{
		UserID:     " traveler-7 ",
		Rating:     4,
		SafetyTags: []string{"Well Lit", "well-lit", "", "friendly staff"},
		Comment:    "  Felt safe walking back at night.  ",
		NightSafe:  true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, place.ID.String(), got.PlaceID)
	assert.Equal(t, "traveler-7", got.UserID)
	assert.Equal(t, []string{"well-lit", "friendly-staff"}, got.SafetyTags)
	assert.Equal(t, "Felt safe walking back at night.", got.Comment)
	assert.True(t, got.NightSafe)
	assert.NotEmpty(t, got.CreatedAt)

	_, err = f.svc.AddReview(ctx, place.ID.String(), request_models.CreateReviewRequest{Rating: 5})
	require.NoError(t, err)

	assert.Equal(t, 4.5, f.reviews.scores[place.ID])
	assert.Equal(t, 2, f.spy.invalidations)
	assert.Equal(t, 2.0, scrapeValue(t, f.metrics, "astrasafe_directory_reviews_created_total"))

	list, err := f.svc.ListReviews(ctx, place.ID.String())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestReviewService_AddReviewValidation(t *testing.T) {
	f := newReviewFixture()
	place := f.places.add("Hotel Alma", "Copenhagen")

	manyTags := make([]string, 11)
	for i := range manyTags {
		manyTags[i] = "tag-" + string(rune('a'+i))
	}

	cases := map[string]request_models.CreateReviewRequest{
		"zero rating":     {Rating: 0},
		"rating too high": {Rating: 6},
		"long comment":    {Rating: 3, Comment: strings.Repeat("x", 2001)},
		"long user id":    {Rating: 3, UserID: strings.Repeat("u", 65)},
		"too many tags":   {Rating: 3, SafetyTags: manyTags},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.AddReview(context.Background(), place.ID.String(), req)
			assert.ErrorIs(t, err, utils.ErrInvalidReview)
		})
	}
	assert.Empty(t, f.reviews.reviews)
	assert.Zero(t, f.spy.invalidations)
}

func TestReviewService_UnknownPlace(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	_, err := f.svc.AddReview(ctx, uuid.NewString(), request_models.CreateReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)

	_, err = f.svc.ListReviews(ctx, "nope")
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestReviewService_DatabaseError(t *testing.T) {
	f := newReviewFixture()
	place := f.places.add("Hotel Alma", "Copenhagen")
	f.reviews.err = errors.New("deadlock")

	_, err := f.svc.AddReview(context.Background(), place.ID.String(), request_models.CreateReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Zero(t, f.spy.invalidations)

	_, err = f.svc.ListReviews(context.Background(), place.ID.String())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
