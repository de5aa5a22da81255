package cache_test

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/storefront-pager/internal/model"
	"github.com/maxviazov/storefront-pager/internal/repository"
	"github.com/maxviazov/storefront-pager/internal/repository/cache"
	"github.com/maxviazov/storefront-pager/internal/repository/memory"
)

// fakeStore is a map-backed Store; failing switches every call to an error.
type fakeStore struct {
	mu      sync.Mutex
	data    map[string]string
	ttls    map[string]time.Duration
	failing bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

var errDown = errors.New("redis down")

func (s *fakeStore) Get(_ context.Context, key string) *goredis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return goredis.NewStringResult("", errDown)
	}
	v, ok := s.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (s *fakeStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *goredis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return goredis.NewStatusResult("", errDown)
	}
	s.data[key] = strconv.Itoa(value.(int))
	s.ttls[key] = ttl
	return goredis.NewStatusResult("OK", nil)
}

func (s *fakeStore) Incr(_ context.Context, key string) *goredis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return goredis.NewIntResult(0, errDown)
	}
	n, _ := strconv.ParseInt(s.data[key], 10, 64)
	n++
	s.data[key] = strconv.FormatInt(n, 10)
	return goredis.NewIntResult(n, nil)
}

// countSpy records how often the wrapped repository is asked to count.
type countSpy struct {
	repository.ProductRepository
	counts int
}

func (s *countSpy) Count(ctx context.Context, f repository.ProductFilter) (int, error) {
	s.counts++
	return s.ProductRepository.Count(ctx, f)
}

func seed(t *testing.T, repo repository.ProductRepository, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := repo.Create(context.Background(), model.Product{Name: n, Price: 1})
		require.NoError(t, err)
	}
}

func TestCountCache_HitsAfterFirstCount(t *testing.T) {
	spy := &countSpy{ProductRepository: memory.NewProductRepository()}
	seed(t, spy, "Shirt", "Shoes", "Hat")
	store := newFakeStore()
	repo := cache.NewCountCache(spy, store, time.Minute, zerolog.New(io.Discard))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		n, err := repo.Count(ctx, repository.ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	}
	assert.Equal(t, 1, spy.counts, "only the first count reaches the repository")

	n, err := repo.Count(ctx, repository.ProductFilter{Term: "sh"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, spy.counts, "a different filter is a different key")

	for _, ttl := range store.ttls {
		assert.Equal(t, time.Minute, ttl)
	}
}

func TestCountCache_CreateInvalidates(t *testing.T) {
	spy := &countSpy{ProductRepository: memory.NewProductRepository()}
	seed(t, spy, "Shirt")
	repo := cache.NewCountCache(spy, newFakeStore(), 0, zerolog.New(io.Discard))
	ctx := context.Background()

	n, err := repo.Count(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.Create(ctx, model.Product{Name: "Socks", Price: 2})
	require.NoError(t, err)

	n, err = repo.Count(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, spy.counts)
}

func TestCountCache_RedisFailureFallsThrough(t *testing.T) {
	spy := &countSpy{ProductRepository: memory.NewProductRepository()}
	seed(t, spy, "Shirt", "Shoes")
	store := newFakeStore()
	store.failing = true
	repo := cache.NewCountCache(spy, store, time.Minute, zerolog.New(io.Discard))
	ctx := context.Background()

	n, err := repo.Count(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = repo.Create(ctx, model.Product{Name: "Hat", Price: 3})
	require.NoError(t, err, "invalidation failure must not fail the write")
}

func TestCountCache_DelegatesOtherCalls(t *testing.T) {
	mem := memory.NewProductRepository()
	repo := cache.NewCountCache(mem, newFakeStore(), time.Minute, zerolog.New(io.Discard))
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Product{Name: "Lamp", Price: 10})
	require.NoError(t, err)
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Name)

	res, err := repo.List(ctx, repository.ProductFilter{}, repository.Page{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}
