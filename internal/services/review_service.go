package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"astrasafe/internal/models/db_models"
	"astrasafe/internal/models/request_models"
	"astrasafe/internal/models/response_models"
	"astrasafe/internal/persona"
	"astrasafe/internal/repositories"
	"astrasafe/pkg/metrics"
	"astrasafe/pkg/utils"
)

const (
	maxCommentLength = 2000
	maxUserIDLength  = 64
	maxSafetyTags    = 10
)

type ReviewServiceInterface interface {
	ListReviews(ctx context.Context, placeID string) ([]response_models.Review, error)
	AddReview(ctx context.Context, placeID string, request request_models.CreateReviewRequest) (response_models.Review, error)
}

type ReviewService struct {
	placeRepo    repositories.PlaceRepository
	reviewRepo   repositories.ReviewRepository
	placeService PlaceServiceInterface
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

func NewReviewService(
	placeRepo repositories.PlaceRepository,
	reviewRepo repositories.ReviewRepository,
	placeService PlaceServiceInterface,
	logger *zap.Logger,
	m *metrics.Metrics,
) ReviewServiceInterface {
	return &ReviewService{
		placeRepo:    placeRepo,
		reviewRepo:   reviewRepo,
		placeService: placeService,
		logger:       logger.Named("reviews"),
		metrics:      m,
	}
}

func (r *ReviewService) ListReviews(ctx context.Context, placeID string) ([]response_models.Review, error) {
	place, err := r.findPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	reviews, err := r.reviewRepo.ListByPlace(ctx, place.ID)
	if err != nil {
		r.logger.Error("list reviews", zap.String("place_id", placeID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.Review, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return out, nil
}

func (r *ReviewService) AddReview(ctx context.Context, placeID string, request request_models.CreateReviewRequest) (response_models.Review, error) {
	review, err := newReview(request)
	if err != nil {
		return response_models.Review{}, err
	}

	place, err := r.findPlace(ctx, placeID)
	if err != nil {
		return response_models.Review{}, err
	}
	review.PlaceID = place.ID

	if err := r.reviewRepo.CreateAndRescore(ctx, review); err != nil {
		r.logger.Error("create review", zap.String("place_id", placeID), zap.Error(err))
		return response_models.Review{}, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	r.placeService.InvalidateCache()
	r.metrics.ReviewCreated()
	r.logger.Info("review created",
		zap.String("place_id", place.ID.String()),
		zap.Int("rating", review.Rating),
		zap.Bool("harassment", review.Harassment))

	return toReviewResponse(review), nil
}

func (r *ReviewService) findPlace(ctx context.Context, placeID string) (*db_models.Place, error) {
	id, err := uuid.Parse(strings.TrimSpace(placeID))
	if err != nil {
		return nil, utils.ErrPlaceNotFound
	}
	place, err := r.placeRepo.FindByID(ctx, id)
	if err != nil {
		r.logger.Error("find place", zap.String("place_id", placeID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

func newReview(request request_models.CreateReviewRequest) (*db_models.Review, error) {
	if request.Rating < 1 || request.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", utils.ErrInvalidReview)
	}
	comment := strings.TrimSpace(request.Comment)
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment must be at most %d characters", utils.ErrInvalidReview, maxCommentLength)
	}
	userID := strings.TrimSpace(request.UserID)
	if utf8.RuneCountInString(userID) > maxUserIDLength {
		return nil, fmt.Errorf("%w: user_id must be at most %d characters", utils.ErrInvalidReview, maxUserIDLength)
	}
	tags := persona.NormalizeTags(request.SafetyTags)
	if len(tags) > maxSafetyTags {
		return nil, fmt.Errorf("%w: at most %d safety tags", utils.ErrInvalidReview, maxSafetyTags)
	}

	return &db_models.Review{
		UserID:     userID,
		Rating:     request.Rating,
		SafetyTags: pq.StringArray(tags),
		Comment:    comment,
		NightSafe:  request.NightSafe,
		Harassment: request.Harassment,
	}, nil
}

func toReviewResponse(r *db_models.Review) response_models.Review {
	tags := []string(r.SafetyTags)
	if tags == nil {
		tags = []string{}
	}
	return response_models.Review{
		ID:         r.ID.String(),
		PlaceID:    r.PlaceID.String(),
		UserID:     r.UserID,
		Rating:     r.Rating,
		SafetyTags: tags,
		Comment:    r.Comment,
		NightSafe:  r.NightSafe,
		Harassment: r.Harassment,
		CreatedAt:  utils.FormatUnixRFC3339(r.CreatedAt),
	}
}
