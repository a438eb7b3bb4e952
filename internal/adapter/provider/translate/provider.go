// Package translate calls the machine-translation service used to draft
// English couplet text.
package translate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sindhipoetry/backend/internal/adapter/provider/textapi"
	"github.com/sindhipoetry/backend/internal/domain"
)

// Provider translates between Sindhi and English.
type Provider struct {
	client *textapi.Client
}

// NewProvider creates a Provider posting to endpoint.
func NewProvider(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{client: textapi.New("translate", endpoint, apiKey, timeout, logger)}
}

type request struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type response struct {
	TranslatedText string `json:"translatedText"`
}

// Translate returns text translated from one language to another.
func (p *Provider) Translate(ctx context.Context, text string, from, to domain.Lang) (string, error) {
	var resp response
	err := p.client.PostJSON(ctx, request{Text: text, Source: from.String(), Target: to.String()}, &resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.TranslatedText), nil
}
