package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/service/timeline"
)

type timelineService interface {
	ListPeriods(ctx context.Context, withEvents bool) ([]domain.TimelinePeriod, error)
	GetPeriod(ctx context.Context, slug string) (*domain.TimelinePeriod, error)
	CreatePeriod(ctx context.Context, input timeline.CreatePeriodInput) (*domain.TimelinePeriod, error)
	UpdatePeriod(ctx context.Context, input timeline.UpdatePeriodInput) (*domain.TimelinePeriod, error)
	DeletePeriod(ctx context.Context, id int64) error

	ListEvents(ctx context.Context, input timeline.ListEventsInput) ([]domain.TimelineEvent, error)
	CreateEvent(ctx context.Context, input timeline.CreateEventInput) (*domain.TimelineEvent, error)
	UpdateEvent(ctx context.Context, input timeline.UpdateEventInput) (*domain.TimelineEvent, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// TimelineHandler serves timeline period and event endpoints.
type TimelineHandler struct {
	svc timelineService
	log *slog.Logger
}

// NewTimelineHandler creates a TimelineHandler.
func NewTimelineHandler(svc timelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{svc: svc, log: logger.With("handler", "timeline")}
}

type periodRequest struct {
	Slug       *string     `json:"period_slug"`
	StartYear  *int        `json:"start_year"`
	EndYear    *int        `json:"end_year"`
	ClearEnd   bool        `json:"clear_end_year"`
	ColorCode  *string     `json:"color_code"`
	IsFeatured *bool       `json:"is_featured"`
	SortOrder  *int        `json:"sort_order"`
	English    *periodText `json:"english"`
	Sindhi     *periodText `json:"sindhi"`
}

type eventRequest struct {
	Slug       *string    `json:"event_slug"`
	PeriodID   *int64     `json:"period_id"`
	Year       *int       `json:"event_year"`
	EventType  *string    `json:"event_type"`
	Importance *int       `json:"importance"`
	IsFeatured *bool      `json:"is_featured"`
	English    *eventText `json:"english"`
	Sindhi     *eventText `json:"sindhi"`
}

// ListPeriods handles GET /api/timeline/periods. Events are included unless
// events=false.
func (h *TimelineHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	withEvents := q.boolPtr("events")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	periods, err := h.svc.ListPeriods(r.Context(), withEvents == nil || *withEvents)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(periods, toPeriodResponse))
}

// GetPeriod handles GET /api/timeline/periods/{slug}.
func (h *TimelineHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPeriod(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPeriodResponse(*p))
}

// ListEvents handles GET /api/timeline/events?period=&from=&to=.
func (h *TimelineHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := timeline.ListEventsInput{
		PeriodSlug: q.str("period"),
		FromYear:   q.numPtr("from"),
		ToYear:     q.numPtr("to"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.ListEvents(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(events, toEventResponse))
}

// CreatePeriod handles POST /api/admin/timeline/periods.
func (h *TimelineHandler) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req periodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.CreatePeriod(r.Context(), timeline.CreatePeriodInput{
		Slug:       deref(req.Slug),
		StartYear:  deref(req.StartYear),
		EndYear:    req.EndYear,
		ColorCode:  req.ColorCode,
		IsFeatured: deref(req.IsFeatured),
		SortOrder:  deref(req.SortOrder),
		English:    domain.PeriodText(deref(req.English)),
		Sindhi:     domain.PeriodText(deref(req.Sindhi)),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPeriodResponse(*p))
}

// UpdatePeriod handles PUT /api/admin/timeline/periods/{id}.
func (h *TimelineHandler) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req periodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := timeline.UpdatePeriodInput{
		ID:         id,
		Slug:       req.Slug,
		StartYear:  req.StartYear,
		EndYear:    req.EndYear,
		ClearEnd:   req.ClearEnd,
		ColorCode:  req.ColorCode,
		IsFeatured: req.IsFeatured,
		SortOrder:  req.SortOrder,
	}
	if req.English != nil {
		en := domain.PeriodText(*req.English)
		input.English = &en
	}
	if req.Sindhi != nil {
		sd := domain.PeriodText(*req.Sindhi)
		input.Sindhi = &sd
	}

	p, err := h.svc.UpdatePeriod(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPeriodResponse(*p))
}

// DeletePeriod handles DELETE /api/admin/timeline/periods/{id}.
func (h *TimelineHandler) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeletePeriod(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateEvent handles POST /api/admin/timeline/events.
func (h *TimelineHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.svc.CreateEvent(r.Context(), timeline.CreateEventInput{
		Slug:       deref(req.Slug),
		PeriodID:   deref(req.PeriodID),
		Year:       deref(req.Year),
		EventType:  deref(req.EventType),
		Importance: deref(req.Importance),
		IsFeatured: deref(req.IsFeatured),
		English:    domain.EventText(deref(req.English)),
		Sindhi:     domain.EventText(deref(req.Sindhi)),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(*e))
}

// UpdateEvent handles PUT /api/admin/timeline/events/{id}.
func (h *TimelineHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req eventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := timeline.UpdateEventInput{
		ID:         id,
		Slug:       req.Slug,
		PeriodID:   req.PeriodID,
		Year:       req.Year,
		EventType:  req.EventType,
		Importance: req.Importance,
		IsFeatured: req.IsFeatured,
	}
	if req.English != nil {
		en := domain.EventText(*req.English)
		input.English = &en
	}
	if req.Sindhi != nil {
		sd := domain.EventText(*req.Sindhi)
		input.Sindhi = &sd
	}

	e, err := h.svc.UpdateEvent(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*e))
}

// DeleteEvent handles DELETE /api/admin/timeline/events/{id}.
func (h *TimelineHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
