package security

import (
	"context"
	"log/slog"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

type eventRepo interface {
	Insert(ctx context.Context, e *domain.SecurityEvent) error
	List(ctx context.Context, f domain.SecurityEventFilter) (domain.Page[domain.SecurityEvent], error)
	CountByType(ctx context.Context, since time.Time) (map[domain.SecurityEventType]int, error)
}

const (
	// DefaultWindow is the summary window when none is requested.
	DefaultWindow = 24 * time.Hour
	MaxWindow     = 90 * 24 * time.Hour

	maxPathLen = 512
)

// Service records and reports security events.
type Service struct {
	events eventRepo
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new Security service.
func NewService(log *slog.Logger, events eventRepo) *Service {
	return &Service{
		events: events,
		log:    log.With("service", "security"),
		now:    time.Now,
	}
}
