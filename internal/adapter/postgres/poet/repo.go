// Package poet implements the Poet repository using PostgreSQL.
package poet

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sindhipoetry/backend/internal/adapter/postgres"
	"github.com/sindhipoetry/backend/internal/domain"
)

// Repo provides poet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new poet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var sortColumns = map[string]string{
	"english_name": "p.english_name",
	"sindhi_name":  "p.sindhi_name",
	"birth_year":   "p.birth_year",
	"created_at":   "p.created_at",
}

// coupletCountSQL counts the Sindhi rows only so a bilingual couplet is
// counted once.
const coupletCountSQL = `(SELECT count(*) FROM couplets c WHERE c.poet_id = p.id AND c.lang = 'sd') AS couplet_count`

var poetColumns = []string{
	"p.id", "p.poet_slug", "p.sindhi_name", "p.english_name",
	"p.sindhi_laqab", "p.english_laqab", "p.birth_year", "p.death_year",
	"p.file_url", "p.is_featured", "p.created_at", "p.updated_at",
	coupletCountSQL,
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns one page of poets matching the filter.
func (r *Repo) List(ctx context.Context, f domain.PoetFilter) (domain.Page[domain.Poet], error) {
	spec := postgres.NewListSpec(f.ListQuery, sortColumns, "english_name")
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := postgres.Psql.Select().From("poets p")
	if where := postgres.SearchAny(spec.Search,
		"p.english_name", "p.sindhi_name", "p.english_laqab", "p.sindhi_laqab", "p.poet_slug"); where != nil {
		base = base.Where(where)
	}
	if f.Featured != nil {
		base = base.Where(sq.Eq{"p.is_featured": *f.Featured})
	}

	total, err := postgres.Count(ctx, q, base)
	if err != nil {
		return domain.Page[domain.Poet]{}, fmt.Errorf("list poets: %w", err)
	}

	query, args, err := spec.Paginate(base.Columns(poetColumns...), "p.id").ToSql()
	if err != nil {
		return domain.Page[domain.Poet]{}, fmt.Errorf("list poets: build: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Poet]{}, fmt.Errorf("list poets: %w", err)
	}
	defer rows.Close()

	poets, err := scanPoets(rows)
	if err != nil {
		return domain.Page[domain.Poet]{}, fmt.Errorf("list poets: %w", err)
	}

	return domain.NewPage(poets, total, spec.Page, spec.Limit), nil
}

// GetByID returns a poet by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Poet, error) {
	return r.getOne(ctx, sq.Eq{"p.id": id}, id)
}

// GetBySlug returns a poet by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Poet, error) {
	return r.getOne(ctx, sq.Eq{"p.poet_slug": slug}, slug)
}

// Exists reports whether a poet with the given id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM poets WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("poet exists: %w", err)
	}
	return exists, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.Poet, error) {
	query, args, err := postgres.Psql.Select(poetColumns...).From("poets p").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get poet: build: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	p, err := scanPoet(row)
	if err != nil {
		return nil, postgres.MapError(err, "poet", key)
	}
	return &p, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new poet and returns the persisted row.
// Returns domain.ErrAlreadyExists if the slug is taken.
func (r *Repo) Create(ctx context.Context, p *domain.Poet) (*domain.Poet, error) {
	query, args, err := postgres.Psql.Insert("poets").
		Columns("poet_slug", "sindhi_name", "english_name", "sindhi_laqab", "english_laqab",
			"birth_year", "death_year", "file_url", "is_featured").
		Values(p.Slug, p.SindhiName, p.EnglishName, postgres.NullIfEmpty(p.SindhiLaqab), postgres.NullIfEmpty(p.EnglishLaqab),
			p.BirthYear, p.DeathYear, postgres.NullIfEmpty(p.FileURL), p.IsFeatured).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create poet: build: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "poet", p.Slug)
	}

	return r.GetByID(ctx, id)
}

// Update applies a partial update. Returns domain.ErrNotFound if the poet
// does not exist.
func (r *Repo) Update(ctx context.Context, id int64, params domain.PoetUpdateParams) (*domain.Poet, error) {
	set := map[string]any{"updated_at": time.Now().UTC()}
	if params.Slug != nil {
		set["poet_slug"] = *params.Slug
	}
	if params.SindhiName != nil {
		set["sindhi_name"] = *params.SindhiName
	}
	if params.EnglishName != nil {
		set["english_name"] = *params.EnglishName
	}
	if params.SindhiLaqab != nil {
		set["sindhi_laqab"] = postgres.NullIfEmpty(params.SindhiLaqab)
	}
	if params.EnglishLaqab != nil {
		set["english_laqab"] = postgres.NullIfEmpty(params.EnglishLaqab)
	}
	if params.BirthYear != nil {
		set["birth_year"] = *params.BirthYear
	}
	if params.DeathYear != nil {
		set["death_year"] = *params.DeathYear
	}
	if params.FileURL != nil {
		set["file_url"] = postgres.NullIfEmpty(params.FileURL)
	}
	if params.IsFeatured != nil {
		set["is_featured"] = *params.IsFeatured
	}

	query, args, err := postgres.Psql.Update("poets").SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("update poet: build: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "poet", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "poet", id)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a poet and, through the foreign key, its couplets.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM poets WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "poet", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "poet", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanPoet(row pgx.Row) (domain.Poet, error) {
	var p domain.Poet
	err := row.Scan(
		&p.ID, &p.Slug, &p.SindhiName, &p.EnglishName,
		&p.SindhiLaqab, &p.EnglishLaqab, &p.BirthYear, &p.DeathYear,
		&p.FileURL, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
		&p.CoupletCount,
	)
	return p, err
}

func scanPoets(rows pgx.Rows) ([]domain.Poet, error) {
	var poets []domain.Poet
	for rows.Next() {
		p, err := scanPoet(rows)
		if err != nil {
			return nil, err
		}
		poets = append(poets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return poets, nil
}
