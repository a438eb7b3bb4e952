package couplet

import (
	"context"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/domain"
)

type coupletRepo interface {
	List(ctx context.Context, f domain.CoupletFilter) (domain.Page[domain.Couplet], error)
	GetBySlug(ctx context.Context, slug string) ([]domain.Couplet, error)
	CreateBatch(ctx context.Context, couplets []domain.Couplet) ([]domain.Couplet, error)
	Update(ctx context.Context, id int64, params domain.CoupletUpdateParams) (*domain.Couplet, error)
	Delete(ctx context.Context, id int64) error
}

type poetRepo interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// poetCache drops cached poet reads, which carry couplet counts.
type poetCache interface {
	InvalidateCache(ctx context.Context)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides couplet operations.
type Service struct {
	couplets coupletRepo
	poets    poetRepo
	cache    poetCache
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Couplet service.
func NewService(
	log *slog.Logger,
	couplets coupletRepo,
	poets poetRepo,
	cache poetCache,
	tx txManager,
) *Service {
	return &Service{
		couplets: couplets,
		poets:    poets,
		cache:    cache,
		tx:       tx,
		log:      log.With("service", "couplet"),
	}
}
