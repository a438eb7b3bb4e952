package security

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/domain"
)

// defaultSeverity is used when an event is recorded without one.
var defaultSeverity = map[domain.SecurityEventType]domain.Severity{
	domain.SecurityEventAuthFailure: domain.SeverityMedium,
	domain.SecurityEventForbidden:   domain.SeverityMedium,
	domain.SecurityEventAdminWrite:  domain.SeverityLow,
	domain.SecurityEventPanic:       domain.SeverityHigh,
}

// Record persists a security event.
func (s *Service) Record(ctx context.Context, ev domain.SecurityEvent) error {
	if !ev.Type.IsValid() {
		return domain.NewValidationError("event_type", "unknown")
	}
	if ev.Severity == "" {
		ev.Severity = defaultSeverity[ev.Type]
	}
	if !ev.Severity.IsValid() {
		return domain.NewValidationError("severity", "unknown")
	}
	if len(ev.Path) > maxPathLen {
		ev.Path = ev.Path[:maxPathLen]
	}

	if err := s.events.Insert(ctx, &ev); err != nil {
		return fmt.Errorf("record security event: %w", err)
	}

	level := slog.LevelInfo
	if ev.Severity == domain.SeverityHigh {
		level = slog.LevelWarn
	}
	s.log.Log(ctx, level, "security event",
		slog.String("type", ev.Type.String()),
		slog.String("severity", ev.Severity.String()),
		slog.String("ip", ev.IP),
		slog.String("path", ev.Path),
	)
	return nil
}
