package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// ListPeriods returns all periods in display order, optionally with events.
func (s *Service) ListPeriods(ctx context.Context, withEvents bool) ([]domain.TimelinePeriod, error) {
	periods, err := s.repo.ListPeriods(ctx, withEvents)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	return periods, nil
}

// GetPeriod returns a period with its events.
func (s *Service) GetPeriod(ctx context.Context, slug string) (*domain.TimelinePeriod, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	p, err := s.repo.GetPeriodBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get period: %w", err)
	}
	return p, nil
}

// CreatePeriod creates a period and its translations in one transaction.
func (s *Service) CreatePeriod(ctx context.Context, input CreatePeriodInput) (*domain.TimelinePeriod, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.TimelinePeriod
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.repo.CreatePeriod(txCtx, &domain.TimelinePeriod{
			Slug:       strings.TrimSpace(input.Slug),
			StartYear:  input.StartYear,
			EndYear:    input.EndYear,
			ColorCode:  emptyToNil(input.ColorCode),
			IsFeatured: input.IsFeatured,
			SortOrder:  input.SortOrder,
			English:    trimPeriodText(input.English),
			Sindhi:     trimPeriodText(input.Sindhi),
		})
		if createErr != nil {
			return fmt.Errorf("create period: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "period created", slog.Int64("period_id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

// UpdatePeriod applies a partial update. The resulting year range is checked
// against the stored period.
func (s *Service) UpdatePeriod(ctx context.Context, input UpdatePeriodInput) (*domain.TimelinePeriod, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PeriodUpdateParams{
		StartYear:  input.StartYear,
		EndYear:    input.EndYear,
		ClearEnd:   input.ClearEnd,
		ColorCode:  input.ColorCode,
		IsFeatured: input.IsFeatured,
		SortOrder:  input.SortOrder,
	}
	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		params.Slug = &slug
	}
	if input.English != nil {
		t := trimPeriodText(*input.English)
		params.English = &t
	}
	if input.Sindhi != nil {
		t := trimPeriodText(*input.Sindhi)
		params.Sindhi = &t
	}

	var updated *domain.TimelinePeriod
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.repo.GetPeriodByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get period: %w", getErr)
		}
		if err := checkRange(current, params); err != nil {
			return err
		}

		var updateErr error
		updated, updateErr = s.repo.UpdatePeriod(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update period: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "period updated", slog.Int64("period_id", input.ID))
	return updated, nil
}

// DeletePeriod removes a period and its events.
func (s *Service) DeletePeriod(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	if err := s.repo.DeletePeriod(ctx, id); err != nil {
		return fmt.Errorf("delete period: %w", err)
	}

	s.log.InfoContext(ctx, "period deleted", slog.Int64("period_id", id))
	return nil
}

func checkRange(current *domain.TimelinePeriod, params domain.PeriodUpdateParams) error {
	start := current.StartYear
	if params.StartYear != nil {
		start = *params.StartYear
	}
	end := current.EndYear
	if params.EndYear != nil {
		end = params.EndYear
	}
	if params.ClearEnd {
		end = nil
	}
	if end != nil && *end < start {
		return domain.NewValidationError("end_year", "must not precede start_year")
	}
	return nil
}

func trimPeriodText(t domain.PeriodText) domain.PeriodText {
	return domain.PeriodText{Name: strings.TrimSpace(t.Name), Description: strings.TrimSpace(t.Description)}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
