package poet

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

type poetRepo interface {
	List(ctx context.Context, f domain.PoetFilter) (domain.Page[domain.Poet], error)
	GetBySlug(ctx context.Context, slug string) (*domain.Poet, error)
	Create(ctx context.Context, p *domain.Poet) (*domain.Poet, error)
	Update(ctx context.Context, id int64, params domain.PoetUpdateParams) (*domain.Poet, error)
	Delete(ctx context.Context, id int64) error
}

type listCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// cacheNamespace prefixes every poet cache key.
const cacheNamespace = "poets:"

// Service provides poet catalogue operations.
type Service struct {
	poets poetRepo
	cache listCache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService creates a new Poet service. Reads go through cache for ttl.
func NewService(log *slog.Logger, poets poetRepo, cache listCache, ttl time.Duration) *Service {
	return &Service{
		poets: poets,
		cache: cache,
		ttl:   ttl,
		log:   log.With("service", "poet"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimPtr trims whitespace keeping an empty result, which clears the field.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
