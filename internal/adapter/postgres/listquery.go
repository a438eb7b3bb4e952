package postgres

import (
	"context"
	"fmt"
	"math"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/sindhipoetry/backend/internal/domain"
)

// Psql is the statement builder shared by all repositories.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps the row offset inside the int and bigint range.
	MaxPage = math.MaxInt / MaxLimit

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// ListSpec is a normalized domain.ListQuery. SortColumn is always a
// whitelisted SQL expression and safe to interpolate.
type ListSpec struct {
	Search     string
	Lang       *domain.Lang
	SortColumn string
	SortOrder  string
	Page       int
	Limit      int
}

// NewListSpec normalizes q. sortColumns maps the public sort key to its SQL
// column; unknown keys fall back to defaultSort.
func NewListSpec(q domain.ListQuery, sortColumns map[string]string, defaultSort string) ListSpec {
	s := ListSpec{
		Search: strings.TrimSpace(q.Search),
		Lang:   q.Lang,
		Page:   q.Page,
		Limit:  q.Limit,
	}

	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = sortColumns[defaultSort]
	}
	s.SortColumn = col

	switch strings.ToUpper(q.SortOrder) {
	case sortOrderASC:
		s.SortOrder = sortOrderASC
	case sortOrderDESC:
		s.SortOrder = sortOrderDESC
	default:
		s.SortOrder = sortOrderASC
	}

	if s.Limit <= 0 {
		s.Limit = DefaultLimit
	}
	if s.Limit > MaxLimit {
		s.Limit = MaxLimit
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.Page > MaxPage {
		s.Page = MaxPage
	}
	return s
}

// Offset returns the row offset of the current page.
func (s ListSpec) Offset() uint64 {
	return uint64((s.Page - 1) * s.Limit)
}

// Paginate applies ordering and paging. tiebreak keeps the order stable
// between pages.
func (s ListSpec) Paginate(b sq.SelectBuilder, tiebreak string) sq.SelectBuilder {
	if s.SortColumn != "" {
		b = b.OrderBy(s.SortColumn + " " + s.SortOrder)
	}
	if tiebreak != "" && tiebreak != s.SortColumn {
		b = b.OrderBy(tiebreak + " " + s.SortOrder)
	}
	return b.Limit(uint64(s.Limit)).Offset(s.Offset())
}

// SearchAny matches search case-insensitively against any of columns.
// Returns nil for an empty search.
func SearchAny(search string, columns ...string) sq.Sqlizer {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return nil
	}
	pattern := "%" + escapeLike(search) + "%"
	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, sq.ILike{c: pattern})
	}
	return or
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Count runs SELECT count(*) over base, which must have no columns yet.
func Count(ctx context.Context, q Querier, base sq.SelectBuilder) (int, error) {
	query, args, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return total, nil
}

// NullIfEmpty returns nil for a nil or blank string pointer. It is used by
// partial updates where ptr("") clears an optional column.
func NullIfEmpty(s *string) any {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return *s
}
