// Package pager computes page windows for bounded list controls.
// Everything here is a pure function of its inputs; there is no state between calls.
package pager

const (
	// DefaultCurrentPage is used when Options.CurrentPage is left at zero.
	DefaultCurrentPage = 1
	// DefaultPageSize is used when Options.PageSize is left at zero.
	DefaultPageSize = 10

	// maxLinks is the number of page links a window may hold.
	maxLinks = 10
)

// Options carries the optional inputs of Compute. A zero field means "not set"
// and is replaced by its default. Negative values are passed through untouched.
type Options struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

func (o Options) withDefaults() Options {
	if o.CurrentPage == 0 {
		o.CurrentPage = DefaultCurrentPage
	}
	if o.PageSize == 0 {
		o.PageSize = DefaultPageSize
	}
	return o
}

// Descriptor describes one page of a paginated list: which page links to render
// and which item indexes belong to the current page.
//
// Pages always lists 1..TotalPages and is not cut down to [StartPage, EndPage].
// Use WindowPages for the bounded list.
type Descriptor struct {
	TotalItems  int   `json:"total_items"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	StartPage   int   `json:"start_page"`
	EndPage     int   `json:"end_page"`
	StartIndex  int   `json:"start_index"`
	EndIndex    int   `json:"end_index"`
	Pages       []int `json:"pages"`
}

// Compute builds the Descriptor for totalItems items. Inputs are not validated:
// a current page past the last page is not clamped, and non-positive sizes give
// degenerate output rather than an error.
func Compute(totalItems int, opts Options) Descriptor {
	opts = opts.withDefaults()
	currentPage, pageSize := opts.CurrentPage, opts.PageSize

	totalPages := ceilDiv(totalItems, pageSize)

	var startPage, endPage int
	switch {
	case totalPages <= maxLinks:
		startPage, endPage = 1, totalPages
	case currentPage <= 6:
		startPage, endPage = 1, maxLinks
	case currentPage+4 >= totalPages:
		startPage, endPage = totalPages-9, totalPages
	default:
		startPage, endPage = currentPage-5, currentPage+4
	}

	startIndex := (currentPage - 1) * pageSize
	endIndex := min(startIndex+pageSize-1, totalItems-1)

	return Descriptor{
		TotalItems:  totalItems,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		StartPage:   startPage,
		EndPage:     endPage,
		StartIndex:  startIndex,
		EndIndex:    endIndex,
		Pages:       sequence(1, totalPages),
	}
}

// ceilDiv is ceil(a/b) over integers. A zero divisor yields zero.
func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	// Go truncates toward zero, so round up only when the exact quotient is positive.
	if r := a % b; r != 0 && (r > 0) == (b > 0) {
		q++
	}
	return q
}

// sequence returns from..to inclusive, or an empty non-nil slice.
func sequence(from, to int) []int {
	if to < from {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// WindowPages returns the page numbers StartPage..EndPage.
func (d Descriptor) WindowPages() []int {
	return sequence(d.StartPage, d.EndPage)
}

// IsEmpty reports whether the current page holds no items, which happens for
// empty lists and for pages past the end.
func (d Descriptor) IsEmpty() bool {
	return d.EndIndex < d.StartIndex
}

func (d Descriptor) HasPrevious() bool { return d.CurrentPage > 1 }

func (d Descriptor) HasNext() bool { return d.CurrentPage < d.TotalPages }

// Slice returns the items of the current page. It never panics: indexes that
// fall outside items produce a shorter or empty result.
func Slice[T any](items []T, d Descriptor) []T {
	if d.IsEmpty() || d.StartIndex >= len(items) || d.EndIndex < 0 {
		return []T{}
	}
	start := max(d.StartIndex, 0)
	end := min(d.EndIndex+1, len(items))
	return items[start:end]
}
