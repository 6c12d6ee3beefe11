// Package pagination implements the page/limit contract shared by every
// paginated read model: 1-indexed pages, a default page size of 10, and a
// hard cap of 100 rows per page.
package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a validated page request.
type Params struct {
	Page  int
	Limit int
}

// Parse turns raw query-string values into Params. Anything unparseable or
// out of range falls back to defaults — a bad page number is not worth a 400
// on a discovery endpoint.
func Parse(pageStr, limitStr string) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 1 {
			p.Page = page
		}
	}
	if limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 1 {
			p.Limit = limit
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset converts the 1-indexed page into a row offset: page k of size n
// starts at row (k-1)*n.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is the envelope around one page of results plus the metadata clients
// need to render pagers.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// NewPage assembles the envelope. A nil item slice becomes an empty one so
// the JSON is always [] and never null.
func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}

	totalPages := int(total) / p.Limit
	if int(total)%p.Limit != 0 {
		totalPages++
	}

	return Page[T]{
		Items:       items,
		TotalItems:  total,
		Page:        p.Page,
		Limit:       p.Limit,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1 && total > 0,
	}
}
