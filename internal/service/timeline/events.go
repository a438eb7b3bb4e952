package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// ListEvents returns events ordered by year. A period slug narrows the
// listing to that period.
func (s *Service) ListEvents(ctx context.Context, input ListEventsInput) ([]domain.TimelineEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.EventFilter{FromYear: input.FromYear, ToYear: input.ToYear}
	if input.PeriodSlug != "" {
		p, err := s.repo.GetPeriodBySlug(ctx, input.PeriodSlug)
		if err != nil {
			return nil, fmt.Errorf("get period: %w", err)
		}
		f.PeriodID = &p.ID
	}

	events, err := s.repo.ListEvents(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// CreateEvent creates an event inside an existing period.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.TimelineEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.TimelineEvent
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.repo.CreateEvent(txCtx, &domain.TimelineEvent{
			Slug:       strings.TrimSpace(input.Slug),
			PeriodID:   input.PeriodID,
			Year:       input.Year,
			EventType:  strings.TrimSpace(input.EventType),
			Importance: input.Importance,
			IsFeatured: input.IsFeatured,
			English:    trimEventText(input.English),
			Sindhi:     trimEventText(input.Sindhi),
		})
		if createErr != nil {
			return fmt.Errorf("create event: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event created", slog.Int64("event_id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

// UpdateEvent applies a partial update to an event.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.TimelineEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.EventUpdateParams{
		PeriodID:   input.PeriodID,
		Year:       input.Year,
		Importance: input.Importance,
		IsFeatured: input.IsFeatured,
	}
	if input.Slug != nil {
		v := strings.TrimSpace(*input.Slug)
		params.Slug = &v
	}
	if input.EventType != nil {
		v := strings.TrimSpace(*input.EventType)
		params.EventType = &v
	}
	if input.English != nil {
		v := trimEventText(*input.English)
		params.English = &v
	}
	if input.Sindhi != nil {
		v := trimEventText(*input.Sindhi)
		params.Sindhi = &v
	}

	var updated *domain.TimelineEvent
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.repo.UpdateEvent(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update event: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event updated", slog.Int64("event_id", input.ID))
	return updated, nil
}

// DeleteEvent removes an event.
func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.InfoContext(ctx, "event deleted", slog.Int64("event_id", id))
	return nil
}

func trimEventText(t domain.EventText) domain.EventText {
	return domain.EventText{
		Title:       strings.TrimSpace(t.Title),
		Description: strings.TrimSpace(t.Description),
		Location:    strings.TrimSpace(t.Location),
	}
}
