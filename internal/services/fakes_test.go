package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"astrasafe/internal/models/db_models"
	"astrasafe/internal/repositories"
)

// fakePlaceRepo keeps places in memory and records calls.
type fakePlaceRepo struct {
	mu        sync.Mutex
	places    []db_models.Place
	listCalls int
	lastPage  [2]int
	err       error
}

func (f *fakePlaceRepo) List(_ context.Context, filter repositories.PlaceFilter, page, pageSize int) ([]db_models.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	f.lastPage = [2]int{page, pageSize}
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Place
	for _, p := range f.places {
		if filter.ID != nil && p.ID != *filter.ID {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(filter.City)) {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Description+" "+strings.Join(p.MainTags, " ")), strings.ToLower(filter.Query)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlaceRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.places {
		if f.places[i].ID == id {
			p := f.places[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePlaceRepo) add(name, city string, tags ...string) db_models.Place {
	p := db_models.Place{Name: name, City: city, Type: "hotel", MainTags: tags}
	_ = p.BeforeCreate(nil)
	f.places = append(f.places, p)
	return p
}

// fakeReviewRepo stores reviews and rescoring results per place.
type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []db_models.Review
	scores  map[uuid.UUID]float64
	err     error
}

func (f *fakeReviewRepo) ListByPlace(_ context.Context, placeID uuid.UUID) ([]db_models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Review
	for _, r := range f.reviews {
		if r.PlaceID == placeID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (f *fakeReviewRepo) CreateAndRescore(_ context.Context, review *db_models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	_ = review.BeforeCreate(nil)
	f.reviews = append(f.reviews, *review)

	sum, n := 0, 0
	for _, r := range f.reviews {
		if r.PlaceID == review.PlaceID {
			sum += r.Rating
			n++
		}
	}
	if f.scores == nil {
		f.scores = map[uuid.UUID]float64{}
	}
	f.scores[review.PlaceID] = repositories.RoundScore(float64(sum) / float64(n))
	return nil
}

// fakeSeedRepo stages a seed and commits it only if every review is stored.
// The mutex stands in for the transaction-scoped lock.
type fakeSeedRepo struct {
	mu        sync.Mutex
	places    []db_models.Place
	reviews   []db_models.Review
	reviewErr error
	// arrivals, when set, holds every caller until all have arrived.
	arrivals *sync.WaitGroup
}

func (f *fakeSeedRepo) SeedIfEmpty(_ context.Context, seed []repositories.SeedPlace) (int, error) {
	if f.arrivals != nil {
		f.arrivals.Done()
		f.arrivals.Wait()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.places) > 0 {
		return 0, nil
	}

	var places []db_models.Place
	var reviews []db_models.Review
	for _, s := range seed {
		p := s.Place
		_ = p.BeforeCreate(nil)
		places = append(places, p)
		for _, r := range s.Reviews {
			if f.reviewErr != nil {
				return 0, f.reviewErr
			}
			r.PlaceID = p.ID
			_ = r.BeforeCreate(nil)
			reviews = append(reviews, r)
		}
	}
	f.places = append(f.places, places...)
	f.reviews = append(f.reviews, reviews...)
	return len(places), nil
}

func (f *fakeSeedRepo) placeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.places)
}

type fakeAccountRepo struct {
	accounts  map[string]db_models.Account
	findErr   error
	insertErr error
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	_ = account.BeforeCreate(nil)
	if f.accounts == nil {
		f.accounts = map[string]db_models.Account{}
	}
	f.accounts[account.Email] = *account
	return nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if a, ok := f.accounts[email]; ok {
		return &a, nil
	}
	return nil, nil
}

// spyPlaceService counts cache invalidations.
type spyPlaceService struct {
	PlaceServiceInterface
	invalidations int
}

func (s *spyPlaceService) InvalidateCache() { s.invalidations++ }

// syncSpyPlaceService is spyPlaceService for concurrent callers.
type syncSpyPlaceService struct {
	PlaceServiceInterface
	mu            sync.Mutex
	invalidations int
}

func (s *syncSpyPlaceService) InvalidateCache() {
	s.mu.Lock()
	s.invalidations++
	s.mu.Unlock()
}
