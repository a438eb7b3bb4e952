package poet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/domain"
)

// ListPoets returns one page of poets. Results are served from the cache
// when present.
func (s *Service) ListPoets(ctx context.Context, f domain.PoetFilter) (domain.Page[domain.Poet], error) {
	key, err := listKey(f)
	if err != nil {
		return domain.Page[domain.Poet]{}, fmt.Errorf("cache key: %w", err)
	}

	var page domain.Page[domain.Poet]
	if s.cached(ctx, key, &page) {
		return page, nil
	}

	page, err = s.poets.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Poet]{}, fmt.Errorf("list poets: %w", err)
	}

	s.store(ctx, key, page)
	return page, nil
}

// GetPoet returns a poet with its couplet count.
func (s *Service) GetPoet(ctx context.Context, slug string) (*domain.Poet, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	key := cacheNamespace + "slug:" + slug
	var p domain.Poet
	if s.cached(ctx, key, &p) {
		return &p, nil
	}

	poet, err := s.poets.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get poet: %w", err)
	}

	s.store(ctx, key, poet)
	return poet, nil
}

func listKey(f domain.PoetFilter) (string, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return cacheNamespace + "list:" + string(raw), nil
}

// cached decodes the value under key into dst. Cache failures count as a miss.
func (s *Service) cached(ctx context.Context, key string, dst any) bool {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.WarnContext(ctx, "cache entry corrupt", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (s *Service) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// InvalidateCache drops every cached poet read. Couplet writes call it too
// because poet listings carry couplet counts.
func (s *Service) InvalidateCache(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, cacheNamespace); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.String("error", err.Error()))
	}
}
