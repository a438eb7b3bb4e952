package romandict

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// AddWord stores a manual romanization. The word is stored in NFC so the
// artifact key matches what the tokenizer produces.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*domain.RomanWord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sd := domain.WordKey(strings.TrimSpace(input.WordSD))
	roman := strings.TrimSpace(input.WordRoman)

	w, err := s.words.Upsert(ctx, sd, roman)
	if err != nil {
		return nil, fmt.Errorf("add word: %w", err)
	}

	s.log.InfoContext(ctx, "dictionary word added",
		slog.Int64("word_id", w.ID),
		slog.String("word_roman", roman),
	)
	return w, nil
}

// ListWords returns one page of dictionary entries.
func (s *Service) ListWords(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.RomanWord], error) {
	page, err := s.words.List(ctx, lq)
	if err != nil {
		return domain.Page[domain.RomanWord]{}, fmt.Errorf("list words: %w", err)
	}
	return page, nil
}
