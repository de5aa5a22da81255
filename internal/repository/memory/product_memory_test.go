package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/maxviazov/storefront-pager/internal/model"
	"github.com/maxviazov/storefront-pager/internal/repository"
	"github.com/maxviazov/storefront-pager/internal/repository/contract"
	"github.com/maxviazov/storefront-pager/internal/repository/memory"
)

func TestProductRepository_MemoryContract(t *testing.T) {
	contract.RunProductRepositoryContract(t, func(t *testing.T) (repository.ProductRepository, func()) {
		return memory.NewProductRepository(), func() {}
	})
}

func TestTxManager_MemoryContract(t *testing.T) {
	contract.RunTxManagerContract(t, func(t *testing.T) (repository.TxManager, repository.ProductRepository, func()) {
		repo := memory.NewProductRepository()
		return repo, repo, func() {}
	})
}

func TestPinger_MemoryContract(t *testing.T) {
	contract.RunPingerContract(t, func(t *testing.T) (repository.Pinger, func()) {
		return memory.NewProductRepository(), func() {}
	})
}

func TestProductRepository_ReturnsCopies(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()
	created, err := repo.Create(ctx, model.Product{Name: "Mug", Price: 5, Categories: []string{"kitchen"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created.Categories[0] = "mutated"

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Categories[0] != "kitchen" {
		t.Fatalf("stored product was mutated through a returned value: %+v", got.Categories)
	}
}

func TestProductRepository_ConcurrentCreate(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Create(ctx, model.Product{Name: "P" + string(rune('A'+i%26)) + string(rune('a'+i/26)), Price: 1})
		}(i)
	}
	wg.Wait()
	n, err := repo.Count(ctx, repository.ProductFilter{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 50 {
		t.Fatalf("expected 50 products, got %d", n)
	}
}
