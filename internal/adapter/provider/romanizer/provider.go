// Package romanizer calls the Sindhi-to-Latin transliteration service.
package romanizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/sindhipoetry/backend/internal/adapter/provider/textapi"
	"github.com/sindhipoetry/backend/internal/domain"
)

// Provider romanizes Sindhi text.
type Provider struct {
	client *textapi.Client
}

// NewProvider creates a Provider posting to endpoint.
func NewProvider(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{client: textapi.New("romanizer", endpoint, apiKey, timeout, logger)}
}

type request struct {
	Text string `json:"text"`
}

type response struct {
	RomanizedText string       `json:"romanizedText"`
	Mappings      []apiMapping `json:"mappings"`
}

type apiMapping struct {
	SindhiWord string `json:"sindhiWord"`
	RomanWord  string `json:"romanWord"`
}

// Romanize returns the roman rendering and the word mappings the service
// found in its dictionary. Mappings with a blank side are dropped.
func (p *Provider) Romanize(ctx context.Context, text string) (domain.RomanizeResult, error) {
	var resp response
	if err := p.client.PostJSON(ctx, request{Text: text}, &resp); err != nil {
		return domain.RomanizeResult{}, err
	}

	result := domain.RomanizeResult{
		RomanizedText: resp.RomanizedText,
		Mappings:      make([]domain.RomanMapping, 0, len(resp.Mappings)),
	}
	for _, m := range resp.Mappings {
		if m.SindhiWord == "" || m.RomanWord == "" {
			continue
		}
		result.Mappings = append(result.Mappings, domain.RomanMapping{SindhiWord: m.SindhiWord, RomanWord: m.RomanWord})
	}
	return result, nil
}
