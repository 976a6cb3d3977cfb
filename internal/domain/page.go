package domain

import "math"

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	// MaxPage keeps Offset within int32 for every allowed limit.
	MaxPage = math.MaxInt32 / maxPageLimit
)

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed. Limit is capped by NewPaginationParams.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional query values.
// Zero or negative values fall back to page=1, limit=20. limit is capped at
// 100 and page at MaxPage.
func NewPaginationParams(page, limit int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: defaultPageLimit}
	if page >= 1 {
		p.Page = min(page, MaxPage)
	}
	if limit >= 1 {
		p.Limit = min(limit, maxPageLimit)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of a listing plus the total number of matching rows.
type Page[T any] struct {
	Items  []T
	Total  int64
	Params PaginationParams
}
