package tag

import (
	"context"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/domain"
)

type tagRepo interface {
	List(ctx context.Context, f domain.TagFilter) (domain.Page[domain.Tag], error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, id int64, params domain.TagUpdateParams) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tag catalogue operations.
type Service struct {
	tags tagRepo
	tx   txManager
	log  *slog.Logger
}

func NewService(log *slog.Logger, tags tagRepo, tx txManager) *Service {
	return &Service{
		tags: tags,
		tx:   tx,
		log:  log.With("service", "tag"),
	}
}
