package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/storefront-pager/internal/repository"
	"github.com/maxviazov/storefront-pager/internal/repository/memory"
)

func TestSeedDemo_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	n, err := repository.SeedDemo(ctx, repo, 25, now)
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	n, err = repository.SeedDemo(ctx, repo, 25, now)
	require.NoError(t, err)
	assert.Zero(t, n)

	total, err := repo.Count(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 25, total)

	res, err := repo.List(ctx, repository.ProductFilter{}, repository.Page{Limit: 1})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Demo product 001", res.Items[0].Name, "newest product is listed first")
}

func TestDemoProducts(t *testing.T) {
	now := time.Now()
	ps := repository.DemoProducts(5, now)
	require.Len(t, ps, 5)
	assert.True(t, ps[0].Sale)
	assert.InDelta(t, ps[0].PriceNormal*0.8, ps[0].Price, 1e-9)
	assert.True(t, ps[0].Date.After(ps[1].Date))
	assert.Empty(t, repository.DemoProducts(0, now))
}
