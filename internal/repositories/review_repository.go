package repositories

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"astrasafe/internal/models/db_models"
)

type ReviewRepository interface {
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]db_models.Review, error)
	// CreateAndRescore stores the review and refreshes the place's score and count
	// in the same transaction.
	CreateAndRescore(ctx context.Context, review *db_models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at DESC").
		Order("id ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) CreateAndRescore(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		return rescorePlace(tx, review.PlaceID)
	})
}

// rescorePlace recomputes a place's review_count and safety_score from its reviews.
func rescorePlace(tx *gorm.DB, placeID uuid.UUID) error {
	var agg struct {
		Avg   *float64
		Count int64
	}
	err := tx.Model(&db_models.Review{}).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Where("place_id = ?", placeID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"review_count": agg.Count, "safety_score": nil}
	if agg.Avg != nil {
		updates["safety_score"] = RoundScore(*agg.Avg)
	}
	return tx.Model(&db_models.Place{}).Where("id = ?", placeID).Updates(updates).Error
}

// RoundScore rounds a mean rating to one decimal place.
func RoundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
