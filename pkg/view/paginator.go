// Package view implements the interactive state of the dashboard: page
// navigation, debounced search, the client detail view, and the dynamic
// edit form. Each state type is owned by a single goroutine (the UI
// loop); asynchronous collaborator responses are re-checked for
// freshness before they touch state.
package view

import (
	"context"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// PageFetcher fetches one page of records from the backend. Page
// requests are independent; the backend holds no pagination state.
type PageFetcher interface {
	FetchPage(ctx context.Context, page, limit int) (types.PageResult, error)
}

// Paginator tracks the current page over a server-paginated record
// collection. Every page change is a round trip; nothing is cached
// locally.
type Paginator struct {
	fetcher    PageFetcher
	pageSize   int
	current    int
	totalPages int
}

// NewPaginator creates a paginator over the given fetcher. A
// non-positive pageSize falls back to the default.
func NewPaginator(fetcher PageFetcher, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	return &Paginator{
		fetcher:    fetcher,
		pageSize:   pageSize,
		current:    1,
		totalPages: 1,
	}
}

// GoTo fetches the given page, clamped to the 1-based floor. On success
// the paginator adopts the page number and total reported by the
// backend; on error its state is unchanged.
func (p *Paginator) GoTo(ctx context.Context, page int) (types.PageResult, error) {
	page = types.ClampPage(page)

	res, err := p.fetcher.FetchPage(ctx, page, p.pageSize)
	if err != nil {
		return types.PageResult{}, err
	}

	p.current = types.ClampPage(res.Page)
	p.totalPages = res.TotalPages()
	return res, nil
}

// Next fetches the page after the current one.
func (p *Paginator) Next(ctx context.Context) (types.PageResult, error) {
	return p.GoTo(ctx, p.current+1)
}

// Prev fetches the page before the current one.
func (p *Paginator) Prev(ctx context.Context) (types.PageResult, error) {
	return p.GoTo(ctx, p.current-1)
}

// Current returns the current 1-based page number.
func (p *Paginator) Current() int {
	return p.current
}

// TotalPages returns the page count from the last successful fetch.
func (p *Paginator) TotalPages() int {
	return p.totalPages
}

// PrevDisabled reports whether the previous-page control is disabled.
func (p *Paginator) PrevDisabled() bool {
	return p.current <= 1
}

// NextDisabled reports whether the next-page control is disabled.
func (p *Paginator) NextDisabled() bool {
	return p.current >= p.totalPages
}
