package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/service/couplet"
)

type coupletService interface {
	ListCouplets(ctx context.Context, f domain.CoupletFilter) (domain.Page[domain.Couplet], error)
	GetCouplet(ctx context.Context, slug string) ([]domain.Couplet, error)
	CreateCouplets(ctx context.Context, input couplet.CreateCoupletsInput) ([]domain.Couplet, error)
	UpdateCouplet(ctx context.Context, input couplet.UpdateCoupletInput) (*domain.Couplet, error)
	DeleteCouplet(ctx context.Context, id int64) error
}

// CoupletHandler serves couplet endpoints.
type CoupletHandler struct {
	svc coupletService
	log *slog.Logger
}

// NewCoupletHandler creates a CoupletHandler.
func NewCoupletHandler(svc coupletService, logger *slog.Logger) *CoupletHandler {
	return &CoupletHandler{svc: svc, log: logger.With("handler", "couplet")}
}

type updateCoupletRequest struct {
	PoetID *int64  `json:"poet_id"`
	Slug   *string `json:"couplet_slug"`
	Tags   *string `json:"couplet_tags"`
	Text   *string `json:"couplet_text"`
}

// List handles GET /api/couplets.
func (h *CoupletHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	f := domain.CoupletFilter{
		ListQuery: q.listQuery(),
		PoetID:    q.idPtr("poet_id"),
		Tag:       q.strPtr("tag"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListCouplets(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toCoupletResponse))
}

// Get handles GET /api/couplets/{slug} and returns every language variant.
func (h *CoupletHandler) Get(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.GetCouplet(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(rows, toCoupletResponse))
}

// Create handles POST /api/admin/couplets. The body is an array of records
// inserted atomically.
func (h *CoupletHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req []coupletRecord
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records := make([]couplet.Record, len(req))
	for i, rec := range req {
		records[i] = couplet.Record(rec)
	}

	created, err := h.svc.CreateCouplets(r.Context(), couplet.CreateCoupletsInput{Records: records})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapSlice(created, toCoupletResponse))
}

// Update handles PUT /api/admin/couplets/{id}.
func (h *CoupletHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateCoupletRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.UpdateCouplet(r.Context(), couplet.UpdateCoupletInput{
		ID:     id,
		PoetID: req.PoetID,
		Slug:   req.Slug,
		Tags:   req.Tags,
		Text:   req.Text,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCoupletResponse(*c))
}

// Delete handles DELETE /api/admin/couplets/{id}.
func (h *CoupletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteCouplet(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
