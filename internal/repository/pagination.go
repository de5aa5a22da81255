package repository

// Page is a limit/offset window for listing operations. The catalog service
// derives it from a pager.Descriptor: Offset is StartIndex and Limit is
// EndIndex-StartIndex+1, which is shorter than PageSize on the last page.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries one window of items and the number of rows matching the filter.
type PageResult[T any] struct {
	Items []T
	Total int
}
