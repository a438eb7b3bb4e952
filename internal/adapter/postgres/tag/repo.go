// Package tag implements the Tag repository using PostgreSQL. Localized
// titles live in tag_translations, one row per language.
package tag

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sindhipoetry/backend/internal/adapter/postgres"
	"github.com/sindhipoetry/backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var sortColumns = map[string]string{
	"label":      "t.label",
	"slug":       "t.slug",
	"created_at": "t.created_at",
	"usage":      "couplet_count",
}

const coupletCountSQL = `(SELECT count(*) FROM couplets c
    WHERE c.lang = 'sd' AND t.slug = ANY(string_to_array(replace(c.couplet_tags, ' ', ''), ','))) AS couplet_count`

var tagColumns = []string{
	"t.id", "t.slug", "t.label", "t.tag_type", "t.created_at",
	"COALESCE(en.title, '')", "COALESCE(en.details, '')",
	"COALESCE(sd.title, '')", "COALESCE(sd.details, '')",
	coupletCountSQL,
}

func selectTags() sq.SelectBuilder {
	return postgres.Psql.Select().
		From("tags t").
		LeftJoin("tag_translations en ON en.tag_id = t.id AND en.lang = 'en'").
		LeftJoin("tag_translations sd ON sd.tag_id = t.id AND sd.lang = 'sd'")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns one page of tags. The search matches the slug, the label and
// the title in the requested language (both languages when Lang is nil).
func (r *Repo) List(ctx context.Context, f domain.TagFilter) (domain.Page[domain.Tag], error) {
	spec := postgres.NewListSpec(f.ListQuery, sortColumns, "label")
	q := postgres.QuerierFromCtx(ctx, r.pool)

	searchCols := []string{"t.slug", "t.label", "en.title", "sd.title"}
	if spec.Lang != nil {
		searchCols = []string{"t.slug", "t.label", string(*spec.Lang) + ".title"}
	}

	base := selectTags()
	if where := postgres.SearchAny(spec.Search, searchCols...); where != nil {
		base = base.Where(where)
	}
	if f.TagType != nil && *f.TagType != "" {
		base = base.Where(sq.Eq{"t.tag_type": *f.TagType})
	}

	total, err := postgres.Count(ctx, q, base)
	if err != nil {
		return domain.Page[domain.Tag]{}, fmt.Errorf("list tags: %w", err)
	}

	query, args, err := spec.Paginate(base.Columns(tagColumns...), "t.id").ToSql()
	if err != nil {
		return domain.Page[domain.Tag]{}, fmt.Errorf("list tags: build: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Tag]{}, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return domain.Page[domain.Tag]{}, fmt.Errorf("list tags: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Tag]{}, fmt.Errorf("list tags: %w", err)
	}

	return domain.NewPage(tags, total, spec.Page, spec.Limit), nil
}

// GetBySlug returns a tag by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	return r.getOne(ctx, sq.Eq{"t.slug": slug}, slug)
}

// GetByID returns a tag by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	return r.getOne(ctx, sq.Eq{"t.id": id}, id)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.Tag, error) {
	query, args, err := selectTags().Columns(tagColumns...).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get tag: build: %w", err)
	}

	t, err := scanTag(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tag", key)
	}
	return &t, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a tag and its translations. Callers run it inside a
// transaction so the tag never exists without its titles.
func (r *Repo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	query, args, err := postgres.Psql.Insert("tags").
		Columns("slug", "label", "tag_type").
		Values(t.Slug, t.Label, t.TagType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create tag: build: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "tag", t.Slug)
	}

	if err := r.upsertTranslation(ctx, id, domain.LangEnglish, t.English); err != nil {
		return nil, err
	}
	if t.Sindhi.Title != "" {
		if err := r.upsertTranslation(ctx, id, domain.LangSindhi, t.Sindhi); err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

// Update applies a partial update to a tag and its translations.
func (r *Repo) Update(ctx context.Context, id int64, params domain.TagUpdateParams) (*domain.Tag, error) {
	set := map[string]any{}
	if params.Slug != nil {
		set["slug"] = *params.Slug
	}
	if params.Label != nil {
		set["label"] = *params.Label
	}
	if params.TagType != nil {
		set["tag_type"] = *params.TagType
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if len(set) > 0 {
		query, args, err := postgres.Psql.Update("tags").SetMap(set).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("update tag: build: %w", err)
		}
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return nil, postgres.MapError(err, "tag", id)
		}
		if tag.RowsAffected() == 0 {
			return nil, postgres.MapError(pgx.ErrNoRows, "tag", id)
		}
	}

	if params.English != nil {
		if err := r.upsertTranslation(ctx, id, domain.LangEnglish, *params.English); err != nil {
			return nil, err
		}
	}
	if params.Sindhi != nil {
		if err := r.upsertTranslation(ctx, id, domain.LangSindhi, *params.Sindhi); err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

// Delete removes a tag. Couplets keep the slug in their tag column.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "tag", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "tag", id)
	}
	return nil
}

func (r *Repo) upsertTranslation(ctx context.Context, tagID int64, lang domain.Lang, text domain.TagText) error {
	query, args, err := postgres.Psql.Insert("tag_translations").
		Columns("tag_id", "lang", "title", "details").
		Values(tagID, string(lang), text.Title, text.Details).
		Suffix("ON CONFLICT (tag_id, lang) DO UPDATE SET title = EXCLUDED.title, details = EXCLUDED.details").
		ToSql()
	if err != nil {
		return fmt.Errorf("upsert tag translation: build: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "tag_translation", tagID)
	}
	return nil
}

func scanTag(row pgx.Row) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(
		&t.ID, &t.Slug, &t.Label, &t.TagType, &t.CreatedAt,
		&t.English.Title, &t.English.Details,
		&t.Sindhi.Title, &t.Sindhi.Details,
		&t.CoupletCount,
	)
	return t, err
}
