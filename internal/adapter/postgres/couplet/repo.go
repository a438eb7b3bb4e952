// Package couplet implements the Couplet repository using PostgreSQL.
// A logical couplet is stored as one row per language sharing couplet_slug.
package couplet

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

// Repo provides couplet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new couplet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var sortColumns = map[string]string{
	"created_at": "c.created_at",
	"slug":       "c.couplet_slug",
	"poet":       "p.english_name",
}

var coupletColumns = []string{
	"c.id", "c.poetry_id", "c.poet_id", "c.couplet_slug", "c.couplet_tags",
	"c.couplet_text", "c.lang", "c.created_at", "c.updated_at",
	"p.id", "p.poet_slug", "p.sindhi_name", "p.english_name", "p.english_laqab", "p.file_url",
}

// hasTagSQL matches a slug inside the comma-joined couplet_tags column.
const hasTagSQL = "? = ANY(string_to_array(replace(c.couplet_tags, ' ', ''), ','))"

func selectCouplets() sq.SelectBuilder {
	return postgres.Psql.Select().
		From("couplets c").
		Join("poets p ON p.id = c.poet_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns one page of couplet rows matching the filter, each with its
// poet attached.
func (r *Repo) List(ctx context.Context, f domain.CoupletFilter) (domain.Page[domain.Couplet], error) {
	spec := postgres.NewListSpec(f.ListQuery, sortColumns, "created_at")
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := selectCouplets()
	if where := postgres.SearchAny(spec.Search,
		"c.couplet_text", "c.couplet_slug", "c.couplet_tags", "p.english_name", "p.sindhi_name"); where != nil {
		base = base.Where(where)
	}
	if spec.Lang != nil {
		base = base.Where(sq.Eq{"c.lang": string(*spec.Lang)})
	}
	if f.PoetID != nil {
		base = base.Where(sq.Eq{"c.poet_id": *f.PoetID})
	}
	if f.Tag != nil && *f.Tag != "" {
		base = base.Where(sq.Expr(hasTagSQL, *f.Tag))
	}

	total, err := postgres.Count(ctx, q, base)
	if err != nil {
		return domain.Page[domain.Couplet]{}, fmt.Errorf("list couplets: %w", err)
	}

	query, args, err := spec.Paginate(base.Columns(coupletColumns...), "c.id").ToSql()
	if err != nil {
		return domain.Page[domain.Couplet]{}, fmt.Errorf("list couplets: build: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Couplet]{}, fmt.Errorf("list couplets: %w", err)
	}
	defer rows.Close()

	couplets, err := scanCouplets(rows)
	if err != nil {
		return domain.Page[domain.Couplet]{}, fmt.Errorf("list couplets: %w", err)
	}

	return domain.NewPage(couplets, total, spec.Page, spec.Limit), nil
}

// GetBySlug returns every language variant of a couplet, Sindhi first.
// Returns domain.ErrNotFound when no row carries the slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) ([]domain.Couplet, error) {
	query, args, err := selectCouplets().
		Columns(coupletColumns...).
		Where(sq.Eq{"c.couplet_slug": slug}).
		OrderBy("CASE c.lang WHEN 'sd' THEN 0 ELSE 1 END").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get couplet: build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "couplet", slug)
	}
	defer rows.Close()

	couplets, err := scanCouplets(rows)
	if err != nil {
		return nil, postgres.MapError(err, "couplet", slug)
	}
	if len(couplets) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "couplet", slug)
	}
	return couplets, nil
}

// GetByID returns a single couplet row.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Couplet, error) {
	query, args, err := selectCouplets().Columns(coupletColumns...).Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get couplet: build: %w", err)
	}

	c, err := scanCouplet(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "couplet", id)
	}
	return &c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts all rows in a single statement and returns them in
// input order. Either every row is inserted or none is.
// Returns domain.ErrAlreadyExists if a (slug, lang) pair is taken and
// domain.ErrNotFound if a poet does not exist.
func (r *Repo) CreateBatch(ctx context.Context, couplets []domain.Couplet) ([]domain.Couplet, error) {
	if len(couplets) == 0 {
		return []domain.Couplet{}, nil
	}

	b := postgres.Psql.Insert("couplets").
		Columns("poetry_id", "poet_id", "couplet_slug", "couplet_tags", "couplet_text", "lang")
	for _, c := range couplets {
		b = b.Values(c.PoetryID, c.PoetID, c.Slug, c.Tags, c.Text, string(c.Lang))
	}

	query, args, err := b.Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("create couplets: build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "couplet", couplets[0].Slug)
	}
	defer rows.Close()

	out := make([]domain.Couplet, 0, len(couplets))
	for i := 0; rows.Next(); i++ {
		c := couplets[i]
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, postgres.MapError(err, "couplet", c.Slug)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "couplet", couplets[0].Slug)
	}

	return out, nil
}

// Update applies a partial update to one couplet row.
func (r *Repo) Update(ctx context.Context, id int64, params domain.CoupletUpdateParams) (*domain.Couplet, error) {
	set := map[string]any{"updated_at": time.Now().UTC()}
	if params.PoetID != nil {
		set["poet_id"] = *params.PoetID
	}
	if params.Slug != nil {
		set["couplet_slug"] = *params.Slug
	}
	if params.Tags != nil {
		set["couplet_tags"] = *params.Tags
	}
	if params.Text != nil {
		set["couplet_text"] = *params.Text
	}

	query, args, err := postgres.Psql.Update("couplets").SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("update couplet: build: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "couplet", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "couplet", id)
	}

	return r.GetByID(ctx, id)
}

// Delete removes one couplet row.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM couplets WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "couplet", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "couplet", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanCouplet(row pgx.Row) (domain.Couplet, error) {
	var (
		c    domain.Couplet
		p    domain.Poet
		lang string
	)
	err := row.Scan(
		&c.ID, &c.PoetryID, &c.PoetID, &c.Slug, &c.Tags,
		&c.Text, &lang, &c.CreatedAt, &c.UpdatedAt,
		&p.ID, &p.Slug, &p.SindhiName, &p.EnglishName, &p.EnglishLaqab, &p.FileURL,
	)
	if err != nil {
		return domain.Couplet{}, err
	}
	c.Lang = domain.Lang(lang)
	c.Poet = &p
	return c, nil
}

func scanCouplets(rows pgx.Rows) ([]domain.Couplet, error) {
	var couplets []domain.Couplet
	for rows.Next() {
		c, err := scanCouplet(rows)
		if err != nil {
			return nil, err
		}
		couplets = append(couplets, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return couplets, nil
}
