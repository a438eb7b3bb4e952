// Package security implements the security event log repository.
// Events are append-only.
package security

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

// Repo provides security event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new security event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var eventColumns = []string{"id", "event_type", "severity", "ip", "path", "user_id", "details", "created_at"}

// Insert appends an event and fills its ID and CreatedAt.
func (r *Repo) Insert(ctx context.Context, e *domain.SecurityEvent) error {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}

	query, args, err := postgres.Psql.Insert("security_events").
		Columns("event_type", "severity", "ip", "path", "user_id", "details").
		Values(string(e.Type), string(e.Severity), e.IP, e.Path, e.UserID, details).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("insert security event: build: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return postgres.MapError(err, "security_event", e.Type)
	}
	return nil
}

// List returns one page of events, newest first.
func (r *Repo) List(ctx context.Context, f domain.SecurityEventFilter) (domain.Page[domain.SecurityEvent], error) {
	spec := postgres.NewListSpec(domain.ListQuery{Page: f.Page, Limit: f.Limit, SortOrder: "DESC"},
		map[string]string{"created_at": "created_at"}, "created_at")
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := postgres.Psql.Select().From("security_events")
	if f.Type != nil {
		base = base.Where(sq.Eq{"event_type": string(*f.Type)})
	}
	if f.Severity != nil {
		base = base.Where(sq.Eq{"severity": string(*f.Severity)})
	}
	if f.Since != nil {
		base = base.Where(sq.GtOrEq{"created_at": *f.Since})
	}

	total, err := postgres.Count(ctx, q, base)
	if err != nil {
		return domain.Page[domain.SecurityEvent]{}, fmt.Errorf("list security events: %w", err)
	}

	query, args, err := spec.Paginate(base.Columns(eventColumns...), "id").ToSql()
	if err != nil {
		return domain.Page[domain.SecurityEvent]{}, fmt.Errorf("list security events: build: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.SecurityEvent]{}, fmt.Errorf("list security events: %w", err)
	}
	defer rows.Close()

	var events []domain.SecurityEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return domain.Page[domain.SecurityEvent]{}, fmt.Errorf("list security events: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.SecurityEvent]{}, fmt.Errorf("list security events: %w", err)
	}

	return domain.NewPage(events, total, spec.Page, spec.Limit), nil
}

// CountByType counts events created at or after since, grouped by type.
func (r *Repo) CountByType(ctx context.Context, since time.Time) (map[domain.SecurityEventType]int, error) {
	query, args, err := postgres.Psql.Select("event_type", "count(*)").
		From("security_events").
		Where(sq.GtOrEq{"created_at": since}).
		GroupBy("event_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("count security events: build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count security events: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.SecurityEventType]int)
	for rows.Next() {
		var (
			typ string
			n   int
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("count security events: %w", err)
		}
		counts[domain.SecurityEventType(typ)] = n
	}
	return counts, rows.Err()
}

func scanEvent(row pgx.Row) (domain.SecurityEvent, error) {
	var (
		e        domain.SecurityEvent
		typ, sev string
	)
	err := row.Scan(&e.ID, &typ, &sev, &e.IP, &e.Path, &e.UserID, &e.Details, &e.CreatedAt)
	if err != nil {
		return domain.SecurityEvent{}, err
	}
	e.Type = domain.SecurityEventType(typ)
	e.Severity = domain.Severity(sev)
	return e, nil
}
