package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/service/romandict"
)

type dictionaryService interface {
	AddWord(ctx context.Context, input romandict.AddWordInput) (*domain.RomanWord, error)
	ListWords(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.RomanWord], error)
	Sync(ctx context.Context) (romandict.SyncResult, error)
}

// DictionaryHandler serves the romanization dictionary endpoints.
type DictionaryHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{svc: svc, log: logger.With("handler", "dictionary")}
}

type addWordRequest struct {
	WordSD    string `json:"word_sd"`
	WordRoman string `json:"word_roman"`
}

type syncResponse struct {
	NewEntries int `json:"newEntries"`
	Synced     int `json:"synced"`
}

// List handles GET /api/admin/roman-words.
func (h *DictionaryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	lq := q.listQuery()
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListWords(r.Context(), lq)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toRomanWordResponse))
}

// Add handles POST /api/admin/roman-words.
func (h *DictionaryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.AddWord(r.Context(), romandict.AddWordInput{
		WordSD:    req.WordSD,
		WordRoman: req.WordRoman,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRomanWordResponse(*word))
}

// Sync handles POST /api/admin/roman-words/sync.
func (h *DictionaryHandler) Sync(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Sync(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, syncResponse{NewEntries: res.NewEntries, Synced: res.Synced})
}
