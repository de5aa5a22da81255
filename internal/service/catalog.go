package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-pager/internal/model"
	"github.com/maxviazov/storefront-pager/internal/pager"
	"github.com/maxviazov/storefront-pager/internal/repository"
)

// catalogService holds catalog use-case logic: validation + orchestration, no transport / SQL details.
type catalogService struct {
	products repository.ProductRepository
	tx       repository.TxManager
	limits   Limits
	log      zerolog.Logger
}

func NewCatalogService(products repository.ProductRepository, tx repository.TxManager, limits Limits, logger zerolog.Logger) CatalogService {
	l := logger.With().Str("module", "service").Str("component", "catalog").Logger()
	return &catalogService{products: products, tx: tx, limits: limits.normalized(), log: l}
}

// ListProducts counts the matching products, lets the pager place the
// requested page and reads exactly the item range it describes.
func (s *catalogService) ListProducts(ctx context.Context, q ProductQuery) (model.ProductPage, error) {
	start := time.Now()
	term := strings.TrimSpace(q.Term)
	category := strings.ToLower(strings.TrimSpace(q.Category))

	ferrs := s.limits.validatePaging(q.Page, q.PageSize, "page", "page_size")
	if runeLen(term) > maxTermLen {
		ferrs = append(ferrs, FieldError{Field: "q", Message: "length must be <= 100"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("product listing validation failed")
		return model.ProductPage{}, err
	}

	filter := repository.ProductFilter{Term: term, Category: category}
	opts := pager.Options{CurrentPage: q.Page, PageSize: s.limits.pageSizeOrDefault(q.PageSize)}

	var out model.ProductPage
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		total, err := s.products.Count(ctx, filter)
		if err != nil {
			return err
		}
		d := pager.Compute(total, opts)
		out = model.ProductPage{Pager: d, Items: []model.Product{}}
		if d.IsEmpty() {
			return nil
		}
		res, err := s.products.List(ctx, filter, repository.Page{
			Limit:  d.EndIndex - d.StartIndex + 1,
			Offset: d.StartIndex,
		})
		if err != nil {
			return err
		}
		out.Items = res.Items
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int("page", opts.CurrentPage).Int("page_size", opts.PageSize).Str("q", term).Msg("list products failed")
		return model.ProductPage{}, err
	}

	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("total_items", out.Pager.TotalItems).
		Int("page", out.Pager.CurrentPage).
		Int("returned", len(out.Items)).
		Msg("products listed")
	return out, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.products.GetByID(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	start := time.Now()
	rawName := in.Name
	name := strings.TrimSpace(in.Name)

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := runeLen(name); ln < minNameLen || ln > maxNameLen {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be between 2 and 100"})
	}
	if in.Price < 0 {
		ferrs = append(ferrs, FieldError{Field: "price", Message: "must be >= 0"})
	}
	if in.PriceNormal < 0 {
		ferrs = append(ferrs, FieldError{Field: "price_normal", Message: "must be >= 0"})
	}
	if in.Reduction < 0 || in.Reduction > 100 {
		ferrs = append(ferrs, FieldError{Field: "reduction", Message: "must be between 0 and 100"})
	}
	for _, u := range in.ImageURLs {
		if !isValidImageURL(u) {
			ferrs = append(ferrs, FieldError{Field: "image_urls", Message: "must be absolute http(s) URLs"})
			break
		}
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Str("name_raw", rawName).Interface("field_errors", ferrs).Msg("product validation failed")
		return model.Product{}, err
	}

	priceNormal := in.PriceNormal
	if priceNormal == 0 {
		priceNormal = in.Price
	}

	var out model.Product
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.products.Create(ctx, model.Product{
			Name:        name,
			Description: strings.TrimSpace(in.Description),
			Price:       in.Price,
			PriceNormal: priceNormal,
			Reduction:   in.Reduction,
			Sale:        in.Sale,
			Categories:  normalizeCategories(in.Categories),
			ImageURLs:   in.ImageURLs,
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("name", name).Msg("create product failed")
		return model.Product{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("product_id", out.ID).Msg("product created")
	return out, nil
}
