package poet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/domain"
)

// UpdatePoet applies a partial update to a poet.
func (s *Service) UpdatePoet(ctx context.Context, input UpdatePoetInput) (*domain.Poet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PoetUpdateParams{
		Slug:         trimPtr(input.Slug),
		SindhiName:   trimPtr(input.SindhiName),
		EnglishName:  trimPtr(input.EnglishName),
		SindhiLaqab:  trimPtr(input.SindhiLaqab),
		EnglishLaqab: trimPtr(input.EnglishLaqab),
		BirthYear:    input.BirthYear,
		DeathYear:    input.DeathYear,
		FileURL:      trimPtr(input.FileURL),
		IsFeatured:   input.IsFeatured,
	}

	poet, err := s.poets.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update poet: %w", err)
	}

	s.InvalidateCache(ctx)
	s.log.InfoContext(ctx, "poet updated", slog.Int64("poet_id", input.ID))

	return poet, nil
}

// DeletePoet removes a poet together with its couplets.
func (s *Service) DeletePoet(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	if err := s.poets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete poet: %w", err)
	}

	s.InvalidateCache(ctx)
	s.log.InfoContext(ctx, "poet deleted", slog.Int64("poet_id", id))

	return nil
}
