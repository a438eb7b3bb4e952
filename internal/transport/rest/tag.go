package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/service/tag"
)

type tagService interface {
	ListTags(ctx context.Context, f domain.TagFilter) (domain.Page[domain.Tag], error)
	GetTag(ctx context.Context, slug string) (*domain.Tag, error)
	CreateTag(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	UpdateTag(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}

// TagHandler serves tag endpoints.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

type tagRequest struct {
	Slug    *string  `json:"slug"`
	Label   *string  `json:"label"`
	TagType *string  `json:"tag_type"`
	English *tagText `json:"english"`
	Sindhi  *tagText `json:"sindhi"`
}

// List handles GET /api/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	f := domain.TagFilter{ListQuery: q.listQuery(), TagType: q.strPtr("tag_type")}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListTags(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toTagResponse))
}

// Get handles GET /api/tags/{slug}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTag(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(*t))
}

// Create handles POST /api/admin/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.CreateTag(r.Context(), tag.CreateTagInput{
		Slug:    deref(req.Slug),
		Label:   deref(req.Label),
		TagType: deref(req.TagType),
		English: domain.TagText(deref(req.English)),
		Sindhi:  domain.TagText(deref(req.Sindhi)),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTagResponse(*t))
}

// Update handles PUT /api/admin/tags/{id}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req tagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := tag.UpdateTagInput{
		ID:      id,
		Slug:    req.Slug,
		Label:   req.Label,
		TagType: req.TagType,
	}
	if req.English != nil {
		en := domain.TagText(*req.English)
		input.English = &en
	}
	if req.Sindhi != nil {
		sd := domain.TagText(*req.Sindhi)
		input.Sindhi = &sd
	}

	t, err := h.svc.UpdateTag(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(*t))
}

// Delete handles DELETE /api/admin/tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteTag(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
