package types

// DefaultPageSize is the matrix page size.
const DefaultPageSize = 100

// PageResult is the paginated listing response: one window over the full
// record set plus the counters needed to derive total pages.
type PageResult struct {
	Data    []Record `json:"data"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}

// TotalPages derives the page count, floored at 1 so an empty collection
// still reads as page 1 of 1.
func (p PageResult) TotalPages() int {
	if p.PerPage <= 0 {
		return 1
	}
	n := (p.Total + p.PerPage - 1) / p.PerPage
	if n < 1 {
		return 1
	}
	return n
}

// ClampPage clamps a requested page number to the 1-based floor.
// Navigation never requests a page below 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
