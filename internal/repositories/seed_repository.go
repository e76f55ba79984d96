package repositories

import (
	"context"

	"gorm.io/gorm"

	"astrasafe/internal/models/db_models"
)

// seedLockKey is the transaction-scoped advisory lock that serializes seeding
// across connections and processes.
const seedLockKey int64 = 0x61737472615f73

// SeedPlace is one place of a seed set together with its reviews.
type SeedPlace struct {
	Place   db_models.Place
	Reviews []db_models.Review
}

type SeedRepository interface {
	// SeedIfEmpty inserts every place, its reviews and its score in one
	// transaction, and only when the places table is empty. It returns the
	// number of places inserted.
	SeedIfEmpty(ctx context.Context, seed []SeedPlace) (int, error)
}

type seedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) SeedRepository {
	return &seedRepository{db: db}
}

func (r *seedRepository) SeedIfEmpty(ctx context.Context, seed []SeedPlace) (int, error) {
	if len(seed) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", seedLockKey).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&db_models.Place{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		places := make([]db_models.Place, len(seed))
		for i := range seed {
			places[i] = seed[i].Place
		}
		if err := tx.CreateInBatches(&places, 100).Error; err != nil {
			return err
		}

		for i := range seed {
			if len(seed[i].Reviews) == 0 {
				continue
			}
			for _, review := range seed[i].Reviews {
				review.PlaceID = places[i].ID
				if err := tx.Create(&review).Error; err != nil {
					return err
				}
			}
			if err := rescorePlace(tx, places[i].ID); err != nil {
				return err
			}
		}

		inserted = len(places)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
