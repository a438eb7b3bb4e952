// Package timeline implements the timeline period and event repositories
// using PostgreSQL.
package timeline

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

// Repo provides timeline persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new timeline repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var periodColumns = []string{
	"tp.id", "tp.period_slug", "tp.start_year", "tp.end_year", "tp.color_code",
	"tp.is_featured", "tp.sort_order", "tp.created_at", "tp.updated_at",
	"COALESCE(en.name, '')", "COALESCE(en.description, '')",
	"COALESCE(sd.name, '')", "COALESCE(sd.description, '')",
}

var eventColumns = []string{
	"te.id", "te.event_slug", "te.period_id", "te.event_year", "te.event_type",
	"te.importance", "te.is_featured", "te.created_at", "te.updated_at",
	"COALESCE(en.title, '')", "COALESCE(en.description, '')", "COALESCE(en.location, '')",
	"COALESCE(sd.title, '')", "COALESCE(sd.description, '')", "COALESCE(sd.location, '')",
}

func selectPeriods() sq.SelectBuilder {
	return postgres.Psql.Select(periodColumns...).
		From("timeline_periods tp").
		LeftJoin("timeline_period_translations en ON en.period_id = tp.id AND en.lang = 'en'").
		LeftJoin("timeline_period_translations sd ON sd.period_id = tp.id AND sd.lang = 'sd'")
}

func selectEvents() sq.SelectBuilder {
	return postgres.Psql.Select(eventColumns...).
		From("timeline_events te").
		LeftJoin("timeline_event_translations en ON en.event_id = te.id AND en.lang = 'en'").
		LeftJoin("timeline_event_translations sd ON sd.event_id = te.id AND sd.lang = 'sd'")
}

// ---------------------------------------------------------------------------
// Periods
// ---------------------------------------------------------------------------

// ListPeriods returns all periods ordered by sort_order then start_year.
// With withEvents each period carries its events ordered by year.
func (r *Repo) ListPeriods(ctx context.Context, withEvents bool) ([]domain.TimelinePeriod, error) {
	query, args, err := selectPeriods().OrderBy("tp.sort_order", "tp.start_year", "tp.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("list periods: build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.TimelinePeriod{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("list periods: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}

	if !withEvents || len(periods) == 0 {
		return periods, nil
	}

	events, err := r.ListEvents(ctx, domain.EventFilter{})
	if err != nil {
		return nil, err
	}
	byPeriod := make(map[int64][]domain.TimelineEvent, len(periods))
	for _, e := range events {
		byPeriod[e.PeriodID] = append(byPeriod[e.PeriodID], e)
	}
	for i := range periods {
		periods[i].Events = byPeriod[periods[i].ID]
		if periods[i].Events == nil {
			periods[i].Events = []domain.TimelineEvent{}
		}
	}
	return periods, nil
}

// GetPeriodBySlug returns a period with its events.
func (r *Repo) GetPeriodBySlug(ctx context.Context, slug string) (*domain.TimelinePeriod, error) {
	query, args, err := selectPeriods().Where(sq.Eq{"tp.period_slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get period: build: %w", err)
	}

	p, err := scanPeriod(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "timeline_period", slug)
	}

	p.Events, err = r.ListEvents(ctx, domain.EventFilter{PeriodID: &p.ID})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPeriodByID returns a period without events.
func (r *Repo) GetPeriodByID(ctx context.Context, id int64) (*domain.TimelinePeriod, error) {
	query, args, err := selectPeriods().Where(sq.Eq{"tp.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get period: build: %w", err)
	}

	p, err := scanPeriod(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "timeline_period", id)
	}
	return &p, nil
}

// CreatePeriod inserts a period with its translations. Run inside a transaction.
func (r *Repo) CreatePeriod(ctx context.Context, p *domain.TimelinePeriod) (*domain.TimelinePeriod, error) {
	query, args, err := postgres.Psql.Insert("timeline_periods").
		Columns("period_slug", "start_year", "end_year", "color_code", "is_featured", "sort_order").
		Values(p.Slug, p.StartYear, p.EndYear, postgres.NullIfEmpty(p.ColorCode), p.IsFeatured, p.SortOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create period: build: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "timeline_period", p.Slug)
	}

	if err := r.upsertPeriodText(ctx, id, domain.LangEnglish, p.English); err != nil {
		return nil, err
	}
	if p.Sindhi.Name != "" {
		if err := r.upsertPeriodText(ctx, id, domain.LangSindhi, p.Sindhi); err != nil {
			return nil, err
		}
	}

	return r.GetPeriodByID(ctx, id)
}

// UpdatePeriod applies a partial update to a period and its translations.
func (r *Repo) UpdatePeriod(ctx context.Context, id int64, params domain.PeriodUpdateParams) (*domain.TimelinePeriod, error) {
	set := map[string]any{"updated_at": time.Now().UTC()}
	if params.Slug != nil {
		set["period_slug"] = *params.Slug
	}
	if params.StartYear != nil {
		set["start_year"] = *params.StartYear
	}
	switch {
	case params.ClearEnd:
		set["end_year"] = nil
	case params.EndYear != nil:
		set["end_year"] = *params.EndYear
	}
	if params.ColorCode != nil {
		set["color_code"] = postgres.NullIfEmpty(params.ColorCode)
	}
	if params.IsFeatured != nil {
		set["is_featured"] = *params.IsFeatured
	}
	if params.SortOrder != nil {
		set["sort_order"] = *params.SortOrder
	}

	if err := r.update(ctx, "timeline_periods", "timeline_period", id, set); err != nil {
		return nil, err
	}

	if params.English != nil {
		if err := r.upsertPeriodText(ctx, id, domain.LangEnglish, *params.English); err != nil {
			return nil, err
		}
	}
	if params.Sindhi != nil {
		if err := r.upsertPeriodText(ctx, id, domain.LangSindhi, *params.Sindhi); err != nil {
			return nil, err
		}
	}

	return r.GetPeriodByID(ctx, id)
}

// DeletePeriod removes a period and its events.
func (r *Repo) DeletePeriod(ctx context.Context, id int64) error {
	return r.delete(ctx, "timeline_periods", "timeline_period", id)
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// ListEvents returns events matching the filter ordered by year.
func (r *Repo) ListEvents(ctx context.Context, f domain.EventFilter) ([]domain.TimelineEvent, error) {
	b := selectEvents().OrderBy("te.event_year", "te.importance DESC", "te.id")
	if f.PeriodID != nil {
		b = b.Where(sq.Eq{"te.period_id": *f.PeriodID})
	}
	if f.FromYear != nil {
		b = b.Where(sq.GtOrEq{"te.event_year": *f.FromYear})
	}
	if f.ToYear != nil {
		b = b.Where(sq.LtOrEq{"te.event_year": *f.ToYear})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list events: build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []domain.TimelineEvent{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// GetEventByID returns one event.
func (r *Repo) GetEventByID(ctx context.Context, id int64) (*domain.TimelineEvent, error) {
	query, args, err := selectEvents().Where(sq.Eq{"te.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get event: build: %w", err)
	}

	e, err := scanEvent(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "timeline_event", id)
	}
	return &e, nil
}

// CreateEvent inserts an event with its translations. Run inside a transaction.
func (r *Repo) CreateEvent(ctx context.Context, e *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	query, args, err := postgres.Psql.Insert("timeline_events").
		Columns("event_slug", "period_id", "event_year", "event_type", "importance", "is_featured").
		Values(e.Slug, e.PeriodID, e.Year, e.EventType, e.Importance, e.IsFeatured).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create event: build: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "timeline_event", e.Slug)
	}

	if err := r.upsertEventText(ctx, id, domain.LangEnglish, e.English); err != nil {
		return nil, err
	}
	if e.Sindhi.Title != "" {
		if err := r.upsertEventText(ctx, id, domain.LangSindhi, e.Sindhi); err != nil {
			return nil, err
		}
	}

	return r.GetEventByID(ctx, id)
}

// UpdateEvent applies a partial update to an event and its translations.
func (r *Repo) UpdateEvent(ctx context.Context, id int64, params domain.EventUpdateParams) (*domain.TimelineEvent, error) {
	set := map[string]any{"updated_at": time.Now().UTC()}
	if params.Slug != nil {
		set["event_slug"] = *params.Slug
	}
	if params.PeriodID != nil {
		set["period_id"] = *params.PeriodID
	}
	if params.Year != nil {
		set["event_year"] = *params.Year
	}
	if params.EventType != nil {
		set["event_type"] = *params.EventType
	}
	if params.Importance != nil {
		set["importance"] = *params.Importance
	}
	if params.IsFeatured != nil {
		set["is_featured"] = *params.IsFeatured
	}

	if err := r.update(ctx, "timeline_events", "timeline_event", id, set); err != nil {
		return nil, err
	}

	if params.English != nil {
		if err := r.upsertEventText(ctx, id, domain.LangEnglish, *params.English); err != nil {
			return nil, err
		}
	}
	if params.Sindhi != nil {
		if err := r.upsertEventText(ctx, id, domain.LangSindhi, *params.Sindhi); err != nil {
			return nil, err
		}
	}

	return r.GetEventByID(ctx, id)
}

// DeleteEvent removes an event.
func (r *Repo) DeleteEvent(ctx context.Context, id int64) error {
	return r.delete(ctx, "timeline_events", "timeline_event", id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) update(ctx context.Context, table, entity string, id int64, set map[string]any) error {
	query, args, err := postgres.Psql.Update(table).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("update %s: build: %w", entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

func (r *Repo) delete(ctx context.Context, table, entity string, id int64) error {
	query, args, err := postgres.Psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("delete %s: build: %w", entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

func (r *Repo) upsertPeriodText(ctx context.Context, periodID int64, lang domain.Lang, text domain.PeriodText) error {
	query, args, err := postgres.Psql.Insert("timeline_period_translations").
		Columns("period_id", "lang", "name", "description").
		Values(periodID, string(lang), text.Name, text.Description).
		Suffix("ON CONFLICT (period_id, lang) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description").
		ToSql()
	if err != nil {
		return fmt.Errorf("upsert period translation: build: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "timeline_period_translation", periodID)
	}
	return nil
}

func (r *Repo) upsertEventText(ctx context.Context, eventID int64, lang domain.Lang, text domain.EventText) error {
	query, args, err := postgres.Psql.Insert("timeline_event_translations").
		Columns("event_id", "lang", "title", "description", "location").
		Values(eventID, string(lang), text.Title, text.Description, text.Location).
		Suffix("ON CONFLICT (event_id, lang) DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description, location = EXCLUDED.location").
		ToSql()
	if err != nil {
		return fmt.Errorf("upsert event translation: build: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "timeline_event_translation", eventID)
	}
	return nil
}

func scanPeriod(row pgx.Row) (domain.TimelinePeriod, error) {
	var p domain.TimelinePeriod
	err := row.Scan(
		&p.ID, &p.Slug, &p.StartYear, &p.EndYear, &p.ColorCode,
		&p.IsFeatured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
		&p.English.Name, &p.English.Description,
		&p.Sindhi.Name, &p.Sindhi.Description,
	)
	return p, err
}

func scanEvent(row pgx.Row) (domain.TimelineEvent, error) {
	var e domain.TimelineEvent
	err := row.Scan(
		&e.ID, &e.Slug, &e.PeriodID, &e.Year, &e.EventType,
		&e.Importance, &e.IsFeatured, &e.CreatedAt, &e.UpdatedAt,
		&e.English.Title, &e.English.Description, &e.English.Location,
		&e.Sindhi.Title, &e.Sindhi.Description, &e.Sindhi.Location,
	)
	return e, err
}
