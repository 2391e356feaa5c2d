package domain

// Envelope is the wrapper every affiliate API response is delivered in.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// PageCount returns the number of pages, treating a missing value as a single page.
func (p Page[T]) PageCount() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}

// Pagination carries the page number and size of a listing request.
type Pagination struct {
	Page  int
	Limit int
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalize fills in defaults for missing or non-positive values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Find returns the first item on the page matching the predicate.
func (p Page[T]) Find(match func(T) bool) (T, bool) {
	for _, item := range p.Items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
