// Package seeder loads the poet, tag and timeline catalogue from a YAML
// dataset into the database.
package seeder

import (
	"context"

	"github.com/sindhipoetry/backend/internal/domain"
)

// Repos are the write paths the pipeline needs. Lookups by slug make the
// pipeline idempotent: rows that already exist are skipped.
type Repos struct {
	Poets    PoetRepo
	Tags     TagRepo
	Timeline TimelineRepo
}

// PoetRepo is implemented by poet.Repo.
type PoetRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Poet, error)
	Create(ctx context.Context, p *domain.Poet) (*domain.Poet, error)
}

// TagRepo is implemented by tag.Repo.
type TagRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
}

// TimelineRepo is implemented by timeline.Repo.
type TimelineRepo interface {
	GetPeriodBySlug(ctx context.Context, slug string) (*domain.TimelinePeriod, error)
	CreatePeriod(ctx context.Context, p *domain.TimelinePeriod) (*domain.TimelinePeriod, error)
	CreateEvent(ctx context.Context, e *domain.TimelineEvent) (*domain.TimelineEvent, error)
}
