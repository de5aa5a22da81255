package repository

import (
	"context"
	"strings"

	"github.com/maxviazov/storefront-pager/internal/model"
)

// Pinger is implemented by every backend the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc runs inside a transaction; repositories find the tx through ctx.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// The catalog listing counts and reads inside one boundary so the pager and the
// returned slice describe the same snapshot.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// ProductFilter narrows catalog listings. Empty fields match everything.
type ProductFilter struct {
	// Term matches products whose name starts with it, case-insensitively.
	Term string
	// Category matches products tagged with it exactly.
	Category string
}

// Key is a stable representation used for cache keys.
func (f ProductFilter) Key() string {
	return "term=" + strings.ToLower(f.Term) + "|category=" + f.Category
}

// ProductRepository declares persistence operations for catalog products.
// Listings are ordered newest first (date desc, id desc).
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	Count(ctx context.Context, f ProductFilter) (int, error)
	List(ctx context.Context, f ProductFilter, p Page) (PageResult[model.Product], error)
}
