package text

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/domain"
)

// Correct runs the hesudhar spelling correction.
func (s *Service) Correct(ctx context.Context, input TextInput) (domain.HesudharResult, error) {
	if err := input.Validate(); err != nil {
		return domain.HesudharResult{}, err
	}
	if s.corrector == nil {
		return domain.HesudharResult{}, fmt.Errorf("hesudhar not configured: %w", domain.ErrUnavailable)
	}

	res, err := s.corrector.Correct(ctx, input.Text)
	if err != nil {
		s.log.WarnContext(ctx, "hesudhar failed", slog.String("error", err.Error()))
		return domain.HesudharResult{}, fmt.Errorf("correct: %w", err)
	}
	return res, nil
}

// Romanize converts Sindhi text to roman script.
func (s *Service) Romanize(ctx context.Context, input TextInput) (domain.RomanizeResult, error) {
	if err := input.Validate(); err != nil {
		return domain.RomanizeResult{}, err
	}
	if s.romanizer == nil {
		return domain.RomanizeResult{}, fmt.Errorf("romanizer not configured: %w", domain.ErrUnavailable)
	}

	res, err := s.romanizer.Romanize(ctx, input.Text)
	if err != nil {
		s.log.WarnContext(ctx, "romanizer failed", slog.String("error", err.Error()))
		return domain.RomanizeResult{}, fmt.Errorf("romanize: %w", err)
	}
	return res, nil
}

// Translate translates text between Sindhi and English.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}
	if s.translator == nil {
		return "", fmt.Errorf("translator not configured: %w", domain.ErrUnavailable)
	}

	out, err := s.translator.Translate(ctx, input.Text, input.From, input.To)
	if err != nil {
		s.log.WarnContext(ctx, "translation failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("translate: %w", err)
	}
	return out, nil
}
