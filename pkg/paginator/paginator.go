package paginator

import "math"

const (
	// DefaultPage is the page used when an invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the page size used when an invalid limit is provided.
	DefaultLimit = 25
	// MaxLimit caps the page size to prevent excessive queries.
	MaxLimit = 100
)

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page  int   `json:"page" form:"page"`   // 1-indexed page number
	Limit int64 `json:"limit" form:"limit"` // items per page
}

// Adjust normalizes the pagination parameters to valid values.
// Sets defaults if values are invalid and enforces the maximum limit.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the number of items to skip before the current page.
func (p *PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// Paginator contains pagination metadata for a query result.
type Paginator struct {
	Total       int64 `json:"total"`        // total items across all pages
	Count       int64 `json:"count"`        // items in the current page
	PerPage     int64 `json:"per_page"`     // items per page
	CurrentPage int   `json:"current_page"` // 1-indexed current page
}

// TotalPages returns the number of pages for the total item count.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// HasNextPage reports whether a next page exists.
func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage reports whether a previous page exists.
func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// ToResponse converts the paginator to a response format with calculated fields.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}

// PaginatorResponse is the wire format for pagination metadata.
type PaginatorResponse struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}
