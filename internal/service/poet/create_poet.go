package poet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// CreatePoet adds a poet to the catalogue.
func (s *Service) CreatePoet(ctx context.Context, input CreatePoetInput) (*domain.Poet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	poet, err := s.poets.Create(ctx, &domain.Poet{
		Slug:         strings.TrimSpace(input.Slug),
		SindhiName:   strings.TrimSpace(input.SindhiName),
		EnglishName:  strings.TrimSpace(input.EnglishName),
		SindhiLaqab:  trimOrNil(input.SindhiLaqab),
		EnglishLaqab: trimOrNil(input.EnglishLaqab),
		BirthYear:    input.BirthYear,
		DeathYear:    input.DeathYear,
		FileURL:      trimOrNil(input.FileURL),
		IsFeatured:   input.IsFeatured,
	})
	if err != nil {
		return nil, fmt.Errorf("create poet: %w", err)
	}

	s.InvalidateCache(ctx)
	s.log.InfoContext(ctx, "poet created",
		slog.Int64("poet_id", poet.ID),
		slog.String("slug", poet.Slug),
	)

	return poet, nil
}
