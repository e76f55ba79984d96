package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"astrasafe/internal/models/db_models"
)

// PlaceFilter fields are optional and combine with AND.
type PlaceFilter struct {
	ID    *uuid.UUID
	City  string
	Query string
}

type PlaceRepository interface {
	List(ctx context.Context, filter PlaceFilter, page, pageSize int) ([]db_models.Place, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) List(ctx context.Context, filter PlaceFilter, page, pageSize int) ([]db_models.Place, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Place{})

	if filter.ID != nil {
		q = q.Where("id = ?", *filter.ID)
	}
	if filter.City != "" {
		q = q.Where("city ILIKE ?", likePattern(filter.City))
	}
	if filter.Query != "" {
		p := likePattern(filter.Query)
		q = q.Where("name ILIKE ? OR description ILIKE ? OR array_to_string(main_tags, ' ') ILIKE ?", p, p, p)
	}

	var places []db_models.Place
	err := q.Order("safety_score DESC NULLS LAST").Order("name ASC").
		Scopes(paginate(page, pageSize)).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}

// likePattern wraps s for a substring ILIKE, escaping wildcard characters.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}
