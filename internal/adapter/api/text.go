package api

import (
	"context"
	"net/http"

	"github.com/sindhipoetry/backend/internal/domain"
)

type textRequest struct {
	Text string `json:"text"`
}

type hesudharResponse struct {
	CorrectedText string `json:"correctedText"`
	Corrections   []struct {
		OriginalWord  string `json:"originalWord"`
		CorrectedWord string `json:"correctedWord"`
		Position      int    `json:"position"`
	} `json:"corrections"`
}

type romanizeResponse struct {
	RomanizedText string `json:"romanizedText"`
	Mappings      []struct {
		SindhiWord string `json:"sindhiWord"`
		RomanWord  string `json:"romanWord"`
	} `json:"mappings"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Correct runs the hesudhar spelling correction.
func (c *Client) Correct(ctx context.Context, text string) (domain.HesudharResult, error) {
	var resp hesudharResponse
	if err := c.do(ctx, http.MethodPost, "/api/text/hesudhar", textRequest{Text: text}, &resp); err != nil {
		return domain.HesudharResult{}, err
	}

	out := domain.HesudharResult{
		CorrectedText: resp.CorrectedText,
		Corrections:   make([]domain.HesudharCorrection, len(resp.Corrections)),
	}
	for i, cr := range resp.Corrections {
		out.Corrections[i] = domain.HesudharCorrection(cr)
	}
	return out, nil
}

// Romanize transliterates Sindhi text to roman script.
func (c *Client) Romanize(ctx context.Context, text string) (domain.RomanizeResult, error) {
	var resp romanizeResponse
	if err := c.do(ctx, http.MethodPost, "/api/text/romanize", textRequest{Text: text}, &resp); err != nil {
		return domain.RomanizeResult{}, err
	}

	out := domain.RomanizeResult{
		RomanizedText: resp.RomanizedText,
		Mappings:      make([]domain.RomanMapping, len(resp.Mappings)),
	}
	for i, m := range resp.Mappings {
		out.Mappings[i] = domain.RomanMapping(m)
	}
	return out, nil
}

// Translate translates text between from and to.
func (c *Client) Translate(ctx context.Context, text string, from, to domain.Lang) (string, error) {
	var resp translateResponse
	req := translateRequest{Text: text, Source: from.String(), Target: to.String()}
	if err := c.do(ctx, http.MethodPost, "/api/text/translate", req, &resp); err != nil {
		return "", err
	}
	return resp.TranslatedText, nil
}
