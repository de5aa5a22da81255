package service

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	minNameLen = 2
	maxNameLen = 100
	maxTermLen = 100
)

func (l Limits) normalized() Limits {
	if l.DefaultPageSize <= 0 {
		l.DefaultPageSize = DefaultLimits.DefaultPageSize
	}
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = DefaultLimits.MaxPageSize
	}
	if l.DefaultPageSize > l.MaxPageSize {
		l.DefaultPageSize = l.MaxPageSize
	}
	return l
}

// validatePaging checks the inputs the pager trusts its callers with. Zero is
// accepted and means "use the default".
func (l Limits) validatePaging(currentPage, pageSize int, pageField, sizeField string) []FieldError {
	var ferrs []FieldError
	if currentPage < 0 {
		ferrs = append(ferrs, FieldError{Field: pageField, Message: "must be >= 1"})
	}
	switch {
	case pageSize < 0:
		ferrs = append(ferrs, FieldError{Field: sizeField, Message: "must be >= 1"})
	case pageSize > l.MaxPageSize:
		ferrs = append(ferrs, FieldError{Field: sizeField, Message: fmt.Sprintf("must be <= %d", l.MaxPageSize)})
	default:
		// (page-1)*size must fit in an int, otherwise the item range wraps to negative indexes.
		if limit := maxPage(l.pageSizeOrDefault(pageSize)); currentPage > limit {
			ferrs = append(ferrs, FieldError{Field: pageField, Message: fmt.Sprintf("must be <= %d", limit)})
		}
	}
	return ferrs
}

// maxPage is the largest page whose item range is representable for pageSize.
func maxPage(pageSize int) int { return math.MaxInt / pageSize }

func (l Limits) pageSizeOrDefault(size int) int {
	if size == 0 {
		return l.DefaultPageSize
	}
	return size
}

// normalizeCategories trims, lowercases and de-duplicates while keeping order.
func normalizeCategories(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || slices.Contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func isValidImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
