package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-pager/internal/pager"
)

type pagerService struct {
	limits Limits
	log    zerolog.Logger
}

func NewPagerService(limits Limits, logger zerolog.Logger) PagerService {
	l := logger.With().Str("module", "service").Str("component", "pager").Logger()
	return &pagerService{limits: limits.normalized(), log: l}
}

// Describe validates the request and runs the pager. Out-of-range pages are
// not an error: the descriptor reports them as an empty page.
func (s *pagerService) Describe(_ context.Context, totalItems, currentPage, pageSize int) (pager.Descriptor, error) {
	var ferrs []FieldError
	if totalItems < 0 {
		ferrs = append(ferrs, FieldError{Field: "total_items", Message: "must be >= 0"})
	}
	ferrs = append(ferrs, s.limits.validatePaging(currentPage, pageSize, "current_page", "page_size")...)
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("pager validation failed")
		return pager.Descriptor{}, err
	}

	d := pager.Compute(totalItems, pager.Options{
		CurrentPage: currentPage,
		PageSize:    s.limits.pageSizeOrDefault(pageSize),
	})
	s.log.Debug().
		Int("total_items", d.TotalItems).
		Int("current_page", d.CurrentPage).
		Int("page_size", d.PageSize).
		Int("total_pages", d.TotalPages).
		Msg("pager computed")
	return d, nil
}
