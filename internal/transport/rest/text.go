package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/service/text"
)

type textService interface {
	Correct(ctx context.Context, input text.TextInput) (domain.HesudharResult, error)
	Romanize(ctx context.Context, input text.TextInput) (domain.RomanizeResult, error)
	Translate(ctx context.Context, input text.TranslateInput) (string, error)
}

// TextHandler proxies the Sindhi text tools used while authoring couplets.
type TextHandler struct {
	svc textService
	log *slog.Logger
}

// NewTextHandler creates a TextHandler.
func NewTextHandler(svc textService, logger *slog.Logger) *TextHandler {
	return &TextHandler{svc: svc, log: logger.With("handler", "text")}
}

type textRequest struct {
	Text string `json:"text"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type correctionDTO struct {
	OriginalWord  string `json:"originalWord"`
	CorrectedWord string `json:"correctedWord"`
	Position      int    `json:"position"`
}

type hesudharResponse struct {
	CorrectedText string          `json:"correctedText"`
	Corrections   []correctionDTO `json:"corrections"`
}

type mappingDTO struct {
	SindhiWord string `json:"sindhiWord"`
	RomanWord  string `json:"romanWord"`
}

type romanizeResponse struct {
	RomanizedText string       `json:"romanizedText"`
	Mappings      []mappingDTO `json:"mappings"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Hesudhar handles POST /api/text/hesudhar.
func (h *TextHandler) Hesudhar(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Correct(r.Context(), text.TextInput{Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hesudharResponse{
		CorrectedText: res.CorrectedText,
		Corrections:   mapSlice(res.Corrections, func(c domain.HesudharCorrection) correctionDTO { return correctionDTO(c) }),
	})
}

// Romanize handles POST /api/text/romanize.
func (h *TextHandler) Romanize(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Romanize(r.Context(), text.TextInput{Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, romanizeResponse{
		RomanizedText: res.RomanizedText,
		Mappings:      mapSlice(res.Mappings, func(m domain.RomanMapping) mappingDTO { return mappingDTO(m) }),
	})
}

// Translate handles POST /api/text/translate.
func (h *TextHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Translate(r.Context(), text.TranslateInput{
		Text: req.Text,
		From: domain.Lang(req.Source),
		To:   domain.Lang(req.Target),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{TranslatedText: out})
}
