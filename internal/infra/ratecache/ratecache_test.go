//go:build unit

package ratecache_test

import (
	"context"
	"testing"
	"time"

	"shiftcore/internal/domain/credit"
	"shiftcore/internal/infra/ratecache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource counts backing queries so the tests can assert cache behavior.
type fakeSource struct {
	byYear     map[int][]credit.RateInterval
	yearCalls  int
	rangeCalls int
}

func (f *fakeSource) ListByYear(_ context.Context, year int) ([]credit.RateInterval, error) {
	f.yearCalls++
	return f.byYear[year], nil
}

func (f *fakeSource) ListByYearAndCategories(_ context.Context, year int, categories []uuid.UUID) ([]credit.RateInterval, error) {
	f.rangeCalls++
	wanted := make(map[uuid.UUID]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}
	var out []credit.RateInterval
	for _, iv := range f.byYear[year] {
		if _, ok := wanted[iv.CategoryID]; ok {
			out = append(out, iv)
		}
	}
	return out, nil
}

func interval(category uuid.UUID, year int) credit.RateInterval {
	start := time.Date(year, 6, 1, 8, 0, 0, 0, time.UTC)
	return credit.RateInterval{
		ID:         uuid.New(),
		CategoryID: category,
		StartsAt:   start,
		EndsAt:     start.Add(12 * time.Hour),
		Rate:       decimal.NewFromInt(1),
		Year:       year,
	}
}

func TestStoreGet(t *testing.T) {
	ctx := context.Background()
	catA := uuid.New()

	source := &fakeSource{byYear: map[int][]credit.RateInterval{
		2025: {interval(catA, 2025)},
	}}
	store, err := ratecache.New(source, 16)
	require.NoError(t, err)

	t.Run("miss fetches then hit is served from cache", func(t *testing.T) {
		got, err := store.Get(ctx, 2025, catA)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, 1, source.rangeCalls)

		_, err = store.Get(ctx, 2025, catA)
		require.NoError(t, err)
		assert.Equal(t, 1, source.rangeCalls)
	})

	t.Run("absent category caches its emptiness", func(t *testing.T) {
		unknown := uuid.New()

		got, err := store.Get(ctx, 2025, unknown)
		require.NoError(t, err)
		assert.Empty(t, got)

		calls := source.rangeCalls
		_, err = store.Get(ctx, 2025, unknown)
		require.NoError(t, err)
		assert.Equal(t, calls, source.rangeCalls, "empty result should be cached")
	})
}

func TestStoreWarmBulk(t *testing.T) {
	ctx := context.Background()
	catA, catB, catC := uuid.New(), uuid.New(), uuid.New()

	newStore := func() (*ratecache.Store, *fakeSource) {
		source := &fakeSource{byYear: map[int][]credit.RateInterval{
			2024: {interval(catA, 2024)},
			2025: {interval(catA, 2025), interval(catB, 2025)},
		}}
		store, err := ratecache.New(source, 16)
		require.NoError(t, err)
		return store, source
	}

	t.Run("one query per distinct year", func(t *testing.T) {
		store, source := newStore()

		err := store.WarmBulk(ctx, map[int][]uuid.UUID{
			2024: {catA},
			2025: {catA, catB, catC},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, source.rangeCalls)

		// Everything warmed, including catC which has no rates; lookups stay
		// off the source.
		for _, c := range []uuid.UUID{catA, catB, catC} {
			_, err := store.Get(ctx, 2025, c)
			require.NoError(t, err)
		}
		assert.Equal(t, 2, source.rangeCalls)
	})

	t.Run("already-cached categories are not refetched", func(t *testing.T) {
		store, source := newStore()

		require.NoError(t, store.WarmBulk(ctx, map[int][]uuid.UUID{2025: {catA, catB}}))
		require.NoError(t, store.WarmBulk(ctx, map[int][]uuid.UUID{2025: {catA, catB}}))
		assert.Equal(t, 1, source.rangeCalls)
	})

	t.Run("empty category slice warms the whole year", func(t *testing.T) {
		store, source := newStore()

		require.NoError(t, store.WarmBulk(ctx, map[int][]uuid.UUID{2025: {}}))
		assert.Equal(t, 1, source.yearCalls)
		assert.Equal(t, 0, source.rangeCalls)

		_, err := store.Get(ctx, 2025, catA)
		require.NoError(t, err)
		_, err = store.Get(ctx, 2025, catB)
		require.NoError(t, err)
		assert.Equal(t, 0, source.rangeCalls)
	})
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	catA := uuid.New()

	source := &fakeSource{byYear: map[int][]credit.RateInterval{
		2025: {interval(catA, 2025)},
	}}
	store, err := ratecache.New(source, 16)
	require.NoError(t, err)

	_, err = store.Get(ctx, 2025, catA)
	require.NoError(t, err)
	assert.Equal(t, 1, source.rangeCalls)

	store.Clear()

	_, err = store.Get(ctx, 2025, catA)
	require.NoError(t, err)
	assert.Equal(t, 2, source.rangeCalls, "clear must force a refetch")
}
