// Package contract holds behaviour suites every ProductRepository backend must pass.
package contract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/maxviazov/storefront-pager/internal/model"
	"github.com/maxviazov/storefront-pager/internal/repository"
)

type ProductFactory func(t *testing.T) (repository.ProductRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, products repository.ProductRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

// seedCatalog creates n products dated one minute apart, the last one newest.
func seedCatalog(t *testing.T, repo repository.ProductRepository, n int, categories ...string) []model.Product {
	t.Helper()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	out := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		p, err := repo.Create(context.Background(), model.Product{
			Name:       fmt.Sprintf("Product %02d", i),
			Price:      float64(10 + i),
			Categories: categories,
			Date:       base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		out = append(out, p)
	}
	return out
}

func RunProductRepositoryContract(t *testing.T, makeRepo ProductFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Product{Name: "Blue Suede Shoes", Price: 49.5, Categories: []string{"shoes"}})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID <= 0 || created.Date.IsZero() {
			t.Fatalf("create did not assign id/date: %+v", created)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Name != created.Name || got.Price != 49.5 {
			t.Fatalf("mismatch: %+v", got)
		}
		if len(got.Categories) != 1 || got.Categories[0] != "shoes" {
			t.Fatalf("categories lost: %+v", got.Categories)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create_duplicate_name_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.Product{Name: "Dup", Price: 1}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, model.Product{Name: "Dup", Price: 1})
		if err == nil || err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		seedCatalog(t, repo, 7)

		res, err := repo.List(ctx, repository.ProductFilter{}, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res3, err := repo.List(ctx, repository.ProductFilter{}, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list3: %v", err)
		}
		if len(res3.Items) != 1 || res3.Total != 7 {
			t.Fatalf("unexpected last page: len=%d total=%d", len(res3.Items), res3.Total)
		}
	})

	t.Run("list_newest_first", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seeded := seedCatalog(t, repo, 4)
		res, err := repo.List(context.Background(), repository.ProductFilter{}, repository.Page{Limit: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for i, p := range res.Items {
			want := seeded[len(seeded)-1-i]
			if p.ID != want.ID {
				t.Fatalf("position %d: got %q want %q", i, p.Name, want.Name)
			}
		}
	})

	t.Run("list_offset_past_end", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seedCatalog(t, repo, 5)
		res, err := repo.List(context.Background(), repository.ProductFilter{}, repository.Page{Limit: 10, Offset: 490})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 0 || res.Total != 5 {
			t.Fatalf("expected empty page with total=5, got len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("count_and_filters", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, p := range []model.Product{
			{Name: "Shirt", Price: 20, Categories: []string{"clothes"}},
			{Name: "shoes", Price: 50, Categories: []string{"clothes", "shoes"}},
			{Name: "Hat", Price: 15, Categories: []string{"clothes"}},
			{Name: "100%_Cotton", Price: 9},
			{Name: "Lamp", Price: 35, Categories: []string{"home"}},
		} {
			if _, err := repo.Create(ctx, p); err != nil {
				t.Fatalf("seed %s: %v", p.Name, err)
			}
		}

		cases := []struct {
			name   string
			filter repository.ProductFilter
			want   int
		}{
			{"all", repository.ProductFilter{}, 5},
			{"prefix case insensitive", repository.ProductFilter{Term: "SH"}, 2},
			{"category", repository.ProductFilter{Category: "clothes"}, 3},
			{"both", repository.ProductFilter{Term: "sh", Category: "shoes"}, 1},
			{"wildcards are literal", repository.ProductFilter{Term: "100%_"}, 1},
			{"percent alone matches nothing", repository.ProductFilter{Term: "%"}, 0},
			{"unknown category", repository.ProductFilter{Category: "garden"}, 0},
		}
		for _, tc := range cases {
			n, err := repo.Count(ctx, tc.filter)
			if err != nil {
				t.Fatalf("%s: count: %v", tc.name, err)
			}
			if n != tc.want {
				t.Fatalf("%s: count=%d want %d", tc.name, n, tc.want)
			}
			res, err := repo.List(ctx, tc.filter, repository.Page{Limit: 10})
			if err != nil {
				t.Fatalf("%s: list: %v", tc.name, err)
			}
			if len(res.Items) != tc.want {
				t.Fatalf("%s: list len=%d want %d", tc.name, len(res.Items), tc.want)
			}
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_visible", func(t *testing.T) {
		tx, products, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var id int64
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			p, err := products.Create(ctx, model.Product{Name: "In Tx", Price: 1})
			id = p.ID
			return err
		})
		if err != nil {
			t.Fatalf("within tx: %v", err)
		}
		if _, err := products.GetByID(ctx, id); err != nil {
			t.Fatalf("committed product not visible: %v", err)
		}
	})

	t.Run("error_propagates", func(t *testing.T) {
		tx, _, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
			return repository.ErrConflict
		})
		if err != repository.ErrConflict {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
