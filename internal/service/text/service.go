// Package text exposes the external text services (spelling correction,
// romanization, translation) to the authoring UI.
package text

import (
	"context"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/domain"
)

type corrector interface {
	Correct(ctx context.Context, text string) (domain.HesudharResult, error)
}

type romanizer interface {
	Romanize(ctx context.Context, text string) (domain.RomanizeResult, error)
}

type translator interface {
	Translate(ctx context.Context, text string, from, to domain.Lang) (string, error)
}

// MaxTextLen bounds the text accepted by every operation, in characters.
const MaxTextLen = 5000

// Service proxies text transformations. A nil collaborator means the
// service is not configured and its operation reports ErrUnavailable.
type Service struct {
	corrector  corrector
	romanizer  romanizer
	translator translator
	log        *slog.Logger
}

// NewService creates a new Text service.
func NewService(log *slog.Logger, c corrector, r romanizer, t translator) *Service {
	return &Service{
		corrector:  c,
		romanizer:  r,
		translator: t,
		log:        log.With("service", "text"),
	}
}
