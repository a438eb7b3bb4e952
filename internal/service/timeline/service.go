package timeline

import (
	"context"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/domain"
)

type timelineRepo interface {
	ListPeriods(ctx context.Context, withEvents bool) ([]domain.TimelinePeriod, error)
	GetPeriodBySlug(ctx context.Context, slug string) (*domain.TimelinePeriod, error)
	GetPeriodByID(ctx context.Context, id int64) (*domain.TimelinePeriod, error)
	CreatePeriod(ctx context.Context, p *domain.TimelinePeriod) (*domain.TimelinePeriod, error)
	UpdatePeriod(ctx context.Context, id int64, params domain.PeriodUpdateParams) (*domain.TimelinePeriod, error)
	DeletePeriod(ctx context.Context, id int64) error

	ListEvents(ctx context.Context, f domain.EventFilter) ([]domain.TimelineEvent, error)
	CreateEvent(ctx context.Context, e *domain.TimelineEvent) (*domain.TimelineEvent, error)
	UpdateEvent(ctx context.Context, id int64, params domain.EventUpdateParams) (*domain.TimelineEvent, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides literary timeline operations.
type Service struct {
	repo timelineRepo
	tx   txManager
	log  *slog.Logger
}

// NewService creates a new Timeline service.
func NewService(log *slog.Logger, repo timelineRepo, tx txManager) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "timeline"),
	}
}
