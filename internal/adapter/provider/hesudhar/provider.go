// Package hesudhar calls the Sindhi spelling-correction service.
package hesudhar

import (
	"context"
	"log/slog"
	"time"

	"github.com/sindhipoetry/backend/internal/adapter/provider/textapi"
	"github.com/sindhipoetry/backend/internal/domain"
)

// Provider corrects Sindhi orthography through the hesudhar service.
type Provider struct {
	client *textapi.Client
}

// NewProvider creates a Provider posting to endpoint.
func NewProvider(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{client: textapi.New("hesudhar", endpoint, apiKey, timeout, logger)}
}

type request struct {
	Text string `json:"text"`
}

type response struct {
	CorrectedText string          `json:"correctedText"`
	Corrections   []apiCorrection `json:"corrections"`
}

type apiCorrection struct {
	OriginalWord  string `json:"originalWord"`
	CorrectedWord string `json:"correctedWord"`
	Position      int    `json:"position"`
}

// Correct returns the corrected text and the applied corrections.
// An empty correctedText from the service means nothing changed.
func (p *Provider) Correct(ctx context.Context, text string) (domain.HesudharResult, error) {
	var resp response
	if err := p.client.PostJSON(ctx, request{Text: text}, &resp); err != nil {
		return domain.HesudharResult{}, err
	}

	result := domain.HesudharResult{
		CorrectedText: resp.CorrectedText,
		Corrections:   make([]domain.HesudharCorrection, 0, len(resp.Corrections)),
	}
	if result.CorrectedText == "" {
		result.CorrectedText = text
	}
	for _, c := range resp.Corrections {
		result.Corrections = append(result.Corrections, domain.HesudharCorrection{
			OriginalWord:  c.OriginalWord,
			CorrectedWord: c.CorrectedWord,
			Position:      c.Position,
		})
	}
	return result, nil
}
