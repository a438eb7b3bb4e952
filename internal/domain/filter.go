package domain

// ListQuery contains the search, sort and pagination parameters shared by the
// poet, couplet and tag listings. Repositories normalize it before use.
type ListQuery struct {
	Search    string
	Lang      *Lang
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// CoupletFilter extends ListQuery with couplet-specific filters.
type CoupletFilter struct {
	ListQuery
	PoetID *int64
	Tag    *string
}

// PoetFilter extends ListQuery with poet-specific filters.
type PoetFilter struct {
	ListQuery
	Featured *bool
}

// TagFilter extends ListQuery with tag-specific filters.
type TagFilter struct {
	ListQuery
	TagType *string
}

// EventFilter narrows a timeline event listing.
type EventFilter struct {
	PeriodID *int64
	FromYear *int
	ToYear   *int
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// NewPage builds a Page and computes TotalPages. A nil items slice is
// replaced by an empty one.
func NewPage[T any](items []T, total, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
}
