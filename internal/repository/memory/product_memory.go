// Package memory keeps catalog products in process memory. It backs the
// default storage driver and the contract suites.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/maxviazov/storefront-pager/internal/model"
	"github.com/maxviazov/storefront-pager/internal/repository"
)

type ProductRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []model.Product // kept sorted newest first
	now    func() time.Time
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{nextID: 1, now: func() time.Time { return time.Now().UTC() }}
}

func (r *ProductRepository) Create(_ context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.Name == p.Name {
			return model.Product{}, repository.ErrAlreadyExists
		}
	}

	now := r.now()
	p.ID = r.nextID
	r.nextID++
	if p.Date.IsZero() {
		p.Date = now
	}
	p.CreatedAt, p.UpdatedAt = now, now
	p.Categories = slices.Clone(p.Categories)
	p.ImageURLs = slices.Clone(p.ImageURLs)
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}

	i, _ := slices.BinarySearchFunc(r.items, p, newestFirst)
	r.items = slices.Insert(r.items, i, p)
	return clone(p), nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int64) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			return clone(it), nil
		}
	}
	return model.Product{}, repository.ErrNotFound
}

func (r *ProductRepository) Count(_ context.Context, f repository.ProductFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, it := range r.items {
		if matches(it, f) {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepository) List(_ context.Context, f repository.ProductFilter, p repository.Page) (repository.PageResult[model.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit, offset := p.Limit, p.Offset
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res := repository.PageResult[model.Product]{Items: make([]model.Product, 0, limit)}
	for _, it := range r.items {
		if !matches(it, f) {
			continue
		}
		if res.Total >= offset && len(res.Items) < limit {
			res.Items = append(res.Items, clone(it))
		}
		res.Total++
	}
	return res, nil
}

// WithinTx satisfies repository.TxManager. fn runs as is: every repository
// call takes its own lock, which is enough for a single process store.
func (r *ProductRepository) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	return fn(ctx)
}

// Ping always succeeds; memory storage is ready as soon as it exists.
func (r *ProductRepository) Ping(context.Context) error { return nil }

func matches(p model.Product, f repository.ProductFilter) bool {
	if term := strings.TrimSpace(f.Term); term != "" &&
		!strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(term)) {
		return false
	}
	if f.Category != "" && !slices.Contains(p.Categories, f.Category) {
		return false
	}
	return true
}

func newestFirst(a, b model.Product) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}

func clone(p model.Product) model.Product {
	p.Categories = slices.Clone(p.Categories)
	p.ImageURLs = slices.Clone(p.ImageURLs)
	return p
}

var (
	_ repository.ProductRepository = (*ProductRepository)(nil)
	_ repository.TxManager         = (*ProductRepository)(nil)
	_ repository.Pinger            = (*ProductRepository)(nil)
)
