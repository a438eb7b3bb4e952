package couplet

import (
	"context"
	"fmt"

	"github.com/sindhipoetry/backend/internal/domain"
)

// ListCouplets returns one page of couplet rows.
func (s *Service) ListCouplets(ctx context.Context, f domain.CoupletFilter) (domain.Page[domain.Couplet], error) {
	if f.Lang != nil && !f.Lang.IsValid() {
		return domain.Page[domain.Couplet]{}, domain.NewValidationError("lang", "must be sd or en")
	}

	page, err := s.couplets.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Couplet]{}, fmt.Errorf("list couplets: %w", err)
	}
	return page, nil
}

// GetCouplet returns every language variant stored under slug.
func (s *Service) GetCouplet(ctx context.Context, slug string) ([]domain.Couplet, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	variants, err := s.couplets.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get couplet: %w", err)
	}
	return variants, nil
}
