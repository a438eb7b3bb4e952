package security

import (
	"context"
	"fmt"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

// ListEvents returns one page of events, newest first.
func (s *Service) ListEvents(ctx context.Context, f domain.SecurityEventFilter) (domain.Page[domain.SecurityEvent], error) {
	var errs []domain.FieldError
	if f.Type != nil && !f.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown"})
	}
	if f.Severity != nil && !f.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "unknown"})
	}
	if len(errs) > 0 {
		return domain.Page[domain.SecurityEvent]{}, domain.NewValidationErrors(errs)
	}

	page, err := s.events.List(ctx, f)
	if err != nil {
		return domain.Page[domain.SecurityEvent]{}, fmt.Errorf("list security events: %w", err)
	}
	return page, nil
}

// Summary counts events by type over the trailing window. A zero window
// means DefaultWindow.
func (s *Service) Summary(ctx context.Context, window time.Duration) (domain.SecuritySummary, error) {
	if window == 0 {
		window = DefaultWindow
	}
	if window < 0 || window > MaxWindow {
		return domain.SecuritySummary{}, domain.NewValidationError("window", "must be between 0 and 90 days")
	}

	since := s.now().UTC().Add(-window)
	counts, err := s.events.CountByType(ctx, since)
	if err != nil {
		return domain.SecuritySummary{}, fmt.Errorf("security summary: %w", err)
	}

	summary := domain.SecuritySummary{Since: since, ByType: make(map[domain.SecurityEventType]int, 4)}
	for _, typ := range []domain.SecurityEventType{
		domain.SecurityEventAuthFailure,
		domain.SecurityEventForbidden,
		domain.SecurityEventAdminWrite,
		domain.SecurityEventPanic,
	} {
		summary.ByType[typ] = counts[typ]
		summary.Total += counts[typ]
	}
	return summary, nil
}
