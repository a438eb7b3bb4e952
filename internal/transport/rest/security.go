package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

type securityService interface {
	ListEvents(ctx context.Context, f domain.SecurityEventFilter) (domain.Page[domain.SecurityEvent], error)
	Summary(ctx context.Context, window time.Duration) (domain.SecuritySummary, error)
}

// SecurityHandler serves the security monitoring endpoints.
type SecurityHandler struct {
	svc securityService
	log *slog.Logger
}

// NewSecurityHandler creates a SecurityHandler.
func NewSecurityHandler(svc securityService, logger *slog.Logger) *SecurityHandler {
	return &SecurityHandler{svc: svc, log: logger.With("handler", "security")}
}

// Events handles GET /api/admin/security/events?type=&severity=&since=&page=&limit=.
func (h *SecurityHandler) Events(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	f := domain.SecurityEventFilter{
		Since: q.timePtr("since"),
		Page:  q.num("page"),
		Limit: q.num("limit"),
	}
	if v := q.str("type"); v != "" {
		t := domain.SecurityEventType(v)
		f.Type = &t
	}
	if v := q.str("severity"); v != "" {
		s := domain.Severity(v)
		f.Severity = &s
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListEvents(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toSecurityEventResponse))
}

// Summary handles GET /api/admin/security/summary?window=24h.
func (h *SecurityHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	window := q.duration("window")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sum, err := h.svc.Summary(r.Context(), window)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSecuritySummaryResponse(sum))
}
