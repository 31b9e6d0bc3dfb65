package ratecache

import (
	"context"

	"shiftcore/internal/domain/credit"
	"shiftcore/internal/pkg/errs"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// RateSource is the backing fetch; both methods return intervals ordered by
// start time.
type RateSource interface {
	ListByYear(ctx context.Context, year int) ([]credit.RateInterval, error)
	ListByYearAndCategories(ctx context.Context, year int, categories []uuid.UUID) ([]credit.RateInterval, error)
}

type cacheKey struct {
	year     int
	category uuid.UUID
}

// Store caches (year, category) -> ordered rate intervals across a reporting
// batch. A missing pair caches an empty list: absence of a rate rule is a
// valid, common state, not an error. Stale entries after a rate edit are
// accepted; Clear is the explicit invalidation hook.
type Store struct {
	source RateSource
	cache  *lru.Cache
}

func New(source RateSource, size int) (*Store, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build rate cache")
	}
	return &Store{source: source, cache: cache}, nil
}

func (s *Store) Get(ctx context.Context, year int, category uuid.UUID) ([]credit.RateInterval, error) {
	if v, ok := s.cache.Get(cacheKey{year: year, category: category}); ok {
		return v.([]credit.RateInterval), nil
	}

	intervals, err := s.source.ListByYearAndCategories(ctx, year, []uuid.UUID{category})
	if err != nil {
		return nil, err
	}
	s.cache.Add(cacheKey{year: year, category: category}, intervals)
	return intervals, nil
}

// WarmBulk primes the cache with one backing query per distinct year. An
// empty category slice means "every category for that year"; otherwise only
// the not-yet-cached categories are fetched. This is the batch path that
// keeps reporting from degenerating into per-person lookups.
func (s *Store) WarmBulk(ctx context.Context, years map[int][]uuid.UUID) error {
	for year, categories := range years {
		if len(categories) == 0 {
			intervals, err := s.source.ListByYear(ctx, year)
			if err != nil {
				return err
			}
			for category, ivs := range groupByCategory(intervals) {
				s.cache.Add(cacheKey{year: year, category: category}, ivs)
			}
			continue
		}

		missing := make([]uuid.UUID, 0, len(categories))
		for _, category := range categories {
			if !s.cache.Contains(cacheKey{year: year, category: category}) {
				missing = append(missing, category)
			}
		}
		if len(missing) == 0 {
			continue
		}

		intervals, err := s.source.ListByYearAndCategories(ctx, year, missing)
		if err != nil {
			return err
		}
		grouped := groupByCategory(intervals)
		for _, category := range missing {
			// Cache empties too, so the miss path stays quiet for them.
			s.cache.Add(cacheKey{year: year, category: category}, grouped[category])
		}
	}
	return nil
}

// Clear drops every cached entry. Called after rate intervals are edited.
func (s *Store) Clear() {
	s.cache.Purge()
}

func groupByCategory(intervals []credit.RateInterval) map[uuid.UUID][]credit.RateInterval {
	grouped := make(map[uuid.UUID][]credit.RateInterval)
	for _, iv := range intervals {
		grouped[iv.CategoryID] = append(grouped[iv.CategoryID], iv)
	}
	return grouped
}
