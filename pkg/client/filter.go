package client

// FilterState tracks a list view's filters and pagination together. Changing
// the filters jumps back to the first page so the view never shows a stale
// page offset against a different result set; page-only changes keep the
// filters as they are.
type FilterState[F comparable] struct {
	filters F
	page    int
	limit   int64
}

// NewFilterState starts on page 1 with the given filters.
func NewFilterState[F comparable](filters F, limit int64) *FilterState[F] {
	return &FilterState[F]{
		filters: filters,
		page:    1,
		limit:   limit,
	}
}

// SetFilters replaces the filters. If anything changed, page resets to 1.
func (s *FilterState[F]) SetFilters(filters F) {
	if filters == s.filters {
		return
	}

	s.filters = filters
	s.page = 1
}

// SetPage moves to the given page without touching the filters.
func (s *FilterState[F]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

func (s *FilterState[F]) Filters() F { return s.filters }

func (s *FilterState[F]) Page() int { return s.page }

func (s *FilterState[F]) Limit() int64 { return s.limit }
