package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/service/poet"
)

type poetService interface {
	ListPoets(ctx context.Context, f domain.PoetFilter) (domain.Page[domain.Poet], error)
	GetPoet(ctx context.Context, slug string) (*domain.Poet, error)
	CreatePoet(ctx context.Context, input poet.CreatePoetInput) (*domain.Poet, error)
	UpdatePoet(ctx context.Context, input poet.UpdatePoetInput) (*domain.Poet, error)
	DeletePoet(ctx context.Context, id int64) error
}

// PoetHandler serves poet endpoints.
type PoetHandler struct {
	svc poetService
	log *slog.Logger
}

// NewPoetHandler creates a PoetHandler.
func NewPoetHandler(svc poetService, logger *slog.Logger) *PoetHandler {
	return &PoetHandler{svc: svc, log: logger.With("handler", "poet")}
}

type poetRequest struct {
	Slug         *string `json:"poet_slug"`
	SindhiName   *string `json:"sindhi_name"`
	EnglishName  *string `json:"english_name"`
	SindhiLaqab  *string `json:"sindhi_laqab"`
	EnglishLaqab *string `json:"english_laqab"`
	BirthYear    *int    `json:"birth_year"`
	DeathYear    *int    `json:"death_year"`
	FileURL      *string `json:"file_url"`
	IsFeatured   *bool   `json:"is_featured"`
}

// List handles GET /api/poets.
func (h *PoetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	f := domain.PoetFilter{ListQuery: q.listQuery(), Featured: q.boolPtr("featured")}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListPoets(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toPoetResponse))
}

// Get handles GET /api/poets/{slug}.
func (h *PoetHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPoet(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoetResponse(*p))
}

// Create handles POST /api/admin/poets.
func (h *PoetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req poetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.CreatePoet(r.Context(), poet.CreatePoetInput{
		Slug:         deref(req.Slug),
		SindhiName:   deref(req.SindhiName),
		EnglishName:  deref(req.EnglishName),
		SindhiLaqab:  req.SindhiLaqab,
		EnglishLaqab: req.EnglishLaqab,
		BirthYear:    req.BirthYear,
		DeathYear:    req.DeathYear,
		FileURL:      req.FileURL,
		IsFeatured:   deref(req.IsFeatured),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPoetResponse(*p))
}

// Update handles PUT /api/admin/poets/{id}. Absent fields are left unchanged.
func (h *PoetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req poetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdatePoet(r.Context(), poet.UpdatePoetInput{
		ID:           id,
		Slug:         req.Slug,
		SindhiName:   req.SindhiName,
		EnglishName:  req.EnglishName,
		SindhiLaqab:  req.SindhiLaqab,
		EnglishLaqab: req.EnglishLaqab,
		BirthYear:    req.BirthYear,
		DeathYear:    req.DeathYear,
		FileURL:      req.FileURL,
		IsFeatured:   req.IsFeatured,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoetResponse(*p))
}

// Delete handles DELETE /api/admin/poets/{id}.
func (h *PoetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeletePoet(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
