package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"astrasafe/internal/models/db_models"
	"astrasafe/internal/models/request_models"
	"astrasafe/internal/models/response_models"
	"astrasafe/internal/repositories"
	mem "astrasafe/pkg/memcache"
	"astrasafe/pkg/utils"
)

const (
	defaultPlacePageSize = 50
	maxPlacePageSize     = 100
)

type PlaceServiceInterface interface {
	ListPlaces(ctx context.Context, query request_models.ListPlacesQuery) ([]response_models.Place, error)
	GetPlace(ctx context.Context, id string) (response_models.Place, error)
	// InvalidateCache drops cached listings after a write.
	InvalidateCache()
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
	cache     mem.Store[[]response_models.Place]
	cacheTTL  time.Duration
	logger    *zap.Logger

	// generation is bumped on every invalidation. A listing read under an older
	// generation is returned but not cached.
	generation atomic.Uint64
	// fillMu orders cache fills against invalidations.
	fillMu sync.Mutex
}

func NewPlaceService(placeRepo repositories.PlaceRepository, cache mem.Store[[]response_models.Place], cacheTTL time.Duration, logger *zap.Logger) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger.Named("places"),
	}
}

func (p *PlaceService) ListPlaces(ctx context.Context, query request_models.ListPlacesQuery) ([]response_models.Place, error) {
	page, pageSize := query.Page, query.PageSize
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPlacePageSize
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPlacePageSize {
		return nil, utils.ErrInvalidPageSize
	}

	filter := repositories.PlaceFilter{
		City:  strings.TrimSpace(query.City),
		Query: strings.TrimSpace(query.Q),
	}
	if idStr := strings.TrimSpace(query.ID); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			// No place can match a malformed id.
			return []response_models.Place{}, nil
		}
		filter.ID = &id
	}

	key := cacheKey(filter, page, pageSize)
	if cached, ok := p.cache.Get(key); ok {
		return slices.Clone(cached), nil
	}

	gen := p.generation.Load()
	places, err := p.placeRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		p.logger.Error("list places", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.Place, 0, len(places))
	for i := range places {
		out = append(out, toPlaceResponse(&places[i]))
	}
	p.fillMu.Lock()
	if p.generation.Load() == gen {
		p.cache.Set(key, out, p.cacheTTL)
	}
	p.fillMu.Unlock()
	return slices.Clone(out), nil
}

func (p *PlaceService) GetPlace(ctx context.Context, id string) (response_models.Place, error) {
	placeID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}

	place, err := p.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		p.logger.Error("find place", zap.String("place_id", id), zap.Error(err))
		return response_models.Place{}, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if place == nil {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}
	return toPlaceResponse(place), nil
}

func (p *PlaceService) InvalidateCache() {
	p.fillMu.Lock()
	defer p.fillMu.Unlock()
	p.generation.Add(1)
	p.cache.Purge()
}

func cacheKey(f repositories.PlaceFilter, page, pageSize int) string {
	id := ""
	if f.ID != nil {
		id = f.ID.String()
	}
	return fmt.Sprintf("%s|%s|%s|%d|%d", id, strings.ToLower(f.City), strings.ToLower(f.Query), page, pageSize)
}

func toPlaceResponse(p *db_models.Place) response_models.Place {
	tags := []string(p.MainTags)
	if tags == nil {
		tags = []string{}
	}
	return response_models.Place{
		ID:          p.ID.String(),
		Name:        p.Name,
		City:        p.City,
		Type:        p.Type,
		Description: p.Description,
		MainTags:    tags,
		SafetyScore: p.SafetyScore,
		ReviewCount: p.ReviewCount,
	}
}
