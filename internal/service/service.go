// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/storefront-pager/internal/model"
	"github.com/maxviazov/storefront-pager/internal/pager"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// Limits applies listing defaults before the pager runs.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultLimits mirrors the pager's own default page size.
var DefaultLimits = Limits{DefaultPageSize: pager.DefaultPageSize, MaxPageSize: 100}

// PagerService exposes the pager to clients that already know their item count.
type PagerService interface {
	Describe(ctx context.Context, totalItems, currentPage, pageSize int) (pager.Descriptor, error)
}

// ProductQuery is a catalog listing request. Zero Page/PageSize mean defaults.
type ProductQuery struct {
	Page     int
	PageSize int
	Term     string
	Category string
}

// CreateProductInput carries the admin editor fields for a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	PriceNormal float64
	Reduction   int
	Sale        bool
	Categories  []string
	ImageURLs   []string
}

// CatalogService defines catalog browsing and the minimal product editor.
type CatalogService interface {
	ListProducts(ctx context.Context, q ProductQuery) (model.ProductPage, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error)
}
