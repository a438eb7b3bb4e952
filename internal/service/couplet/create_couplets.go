package couplet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// CreateCouplets normalizes and inserts all records in one transaction.
// Either every language variant is stored or none is.
func (s *Service) CreateCouplets(ctx context.Context, input CreateCoupletsInput) ([]domain.Couplet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rows := make([]domain.Couplet, len(input.Records))
	for i, r := range input.Records {
		rows[i] = domain.Couplet{
			PoetryID: r.PoetryID,
			PoetID:   r.PoetID,
			Slug:     strings.TrimSpace(r.Slug),
			Tags:     domain.JoinTags(domain.SplitTags(r.Tags)),
			Text:     domain.NormalizeText(r.Text),
			Lang:     r.Lang,
		}
	}

	var created []domain.Couplet
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkPoets(txCtx, rows); err != nil {
			return err
		}

		var createErr error
		created, createErr = s.couplets.CreateBatch(txCtx, rows)
		if createErr != nil {
			return fmt.Errorf("create couplets: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateCache(ctx)
	s.log.InfoContext(ctx, "couplets created",
		slog.String("slug", rows[0].Slug),
		slog.Int("rows", len(created)),
	)

	return created, nil
}

// checkPoets reports unknown poets as a validation error instead of a
// foreign key failure.
func (s *Service) checkPoets(ctx context.Context, rows []domain.Couplet) error {
	checked := make(map[int64]bool, 1)
	for _, r := range rows {
		if _, ok := checked[r.PoetID]; ok {
			continue
		}
		exists, err := s.poets.Exists(ctx, r.PoetID)
		if err != nil {
			return fmt.Errorf("check poet: %w", err)
		}
		if !exists {
			return domain.NewValidationError("poet_id", fmt.Sprintf("poet %d does not exist", r.PoetID))
		}
		checked[r.PoetID] = true
	}
	return nil
}
