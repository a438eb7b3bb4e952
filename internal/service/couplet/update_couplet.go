package couplet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// UpdateCouplet applies a partial update to one couplet row.
func (s *Service) UpdateCouplet(ctx context.Context, input UpdateCoupletInput) (*domain.Couplet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CoupletUpdateParams{PoetID: input.PoetID}
	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		params.Slug = &slug
	}
	if input.Tags != nil {
		tags := domain.JoinTags(domain.SplitTags(*input.Tags))
		params.Tags = &tags
	}
	if input.Text != nil {
		text := domain.NormalizeText(*input.Text)
		params.Text = &text
	}

	var updated *domain.Couplet
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if params.PoetID != nil {
			if err := s.checkPoets(txCtx, []domain.Couplet{{PoetID: *params.PoetID}}); err != nil {
				return err
			}
		}

		var updateErr error
		updated, updateErr = s.couplets.Update(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update couplet: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateCache(ctx)
	s.log.InfoContext(ctx, "couplet updated", slog.Int64("couplet_id", input.ID))

	return updated, nil
}

// DeleteCouplet removes one couplet row. The authoring workflow uses it to
// compensate a partially written couplet.
func (s *Service) DeleteCouplet(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	if err := s.couplets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete couplet: %w", err)
	}

	s.cache.InvalidateCache(ctx)
	s.log.InfoContext(ctx, "couplet deleted", slog.Int64("couplet_id", id))

	return nil
}
