package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// SetText replaces the hesudhar input with its normalized form. A changed
// text must be checked again before moving on.
func (w *Workflow) SetText(text string) error {
	text = domain.NormalizeText(text)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Step != StepHesudhar {
		return ErrWrongStep
	}
	if text != w.state.Text {
		w.state.Text = text
		w.state.HesudharDone = false
		w.state.Corrections = nil
	}
	return nil
}

// CheckSpelling runs the hesudhar correction on the current text. Corrected
// text replaces the input. The step completes whether or not anything was
// corrected; a service failure leaves it incomplete.
func (w *Workflow) CheckSpelling(ctx context.Context) error {
	w.mu.Lock()
	if w.state.Step != StepHesudhar {
		w.mu.Unlock()
		return ErrWrongStep
	}
	text := w.state.Text
	if strings.TrimSpace(text) == "" {
		w.notify(NoticeError, "Please enter Sindhi text to check")
		w.mu.Unlock()
		return domain.NewValidationError("text", "required")
	}
	w.mu.Unlock()

	cctx, cancel := w.callCtx(ctx)
	res, err := w.deps.Corrector.Correct(cctx, text)
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.log.WarnContext(ctx, "hesudhar failed", slog.String("error", err.Error()))
		w.notify(NoticeError, "Spelling check failed, please try again")
		return fmt.Errorf("check spelling: %w", err)
	}
	if w.state.Step != StepHesudhar || w.state.Text != text {
		return ErrStale
	}

	w.state.Corrections = res.Corrections
	if res.CorrectedText != "" && res.CorrectedText != text {
		w.state.Text = res.CorrectedText
		w.notify(NoticeSuccess, "Applied %d corrections", len(res.Corrections))
	} else {
		w.notify(NoticeInfo, "No corrections needed")
	}
	w.state.HesudharDone = true
	return nil
}

// CheckRomanization romanizes the romanizer input and computes the words
// missing from the dictionary.
func (w *Workflow) CheckRomanization(ctx context.Context) error {
	w.mu.Lock()
	if w.state.Step != StepRomanizer {
		w.mu.Unlock()
		return ErrWrongStep
	}
	text := w.state.RomanInput
	if strings.TrimSpace(text) == "" {
		w.notify(NoticeError, "There is no text to romanize")
		w.mu.Unlock()
		return domain.NewValidationError("text", "required")
	}
	w.mu.Unlock()

	cctx, cancel := w.callCtx(ctx)
	res, err := w.deps.Romanizer.Romanize(cctx, text)
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.log.WarnContext(ctx, "romanizer failed", slog.String("error", err.Error()))
		w.notify(NoticeError, "Romanization failed, please try again")
		return fmt.Errorf("check romanization: %w", err)
	}
	if w.state.Step != StepRomanizer || w.state.RomanInput != text {
		return ErrStale
	}

	w.state.RomanizedText = res.RomanizedText
	w.state.Mappings = slices.Concat(res.Mappings, w.state.Manual)
	w.state.Pending = missingWords(text, res.Mappings, w.state.Manual)
	w.state.RomanizerDone = true

	// Manual entries from earlier checks still apply to the fresh rendering.
	for _, m := range w.state.Manual {
		w.state.RomanizedText, _ = domain.ReplaceWord(w.state.RomanizedText, m.SindhiWord, m.RomanWord)
	}

	if len(w.state.Pending) == 0 {
		w.notify(NoticeSuccess, "All words found in the dictionary")
	} else {
		w.notify(NoticeWarning, "%d words not in the dictionary", len(w.state.Pending))
	}
	return nil
}

// AddManualRomanization stores a romanization for a word the dictionary
// lacks and substitutes it in the romanized text.
func (w *Workflow) AddManualRomanization(ctx context.Context, word, roman string) error {
	word = domain.WordKey(strings.TrimSpace(word))
	roman = strings.TrimSpace(roman)

	w.mu.Lock()
	if w.state.Step != StepRomanizer {
		w.mu.Unlock()
		return ErrWrongStep
	}
	if word == "" || roman == "" {
		w.notify(NoticeError, "Both the Sindhi word and its romanization are required")
		w.mu.Unlock()
		return domain.NewValidationError("word", "required")
	}
	w.mu.Unlock()

	cctx, cancel := w.callCtx(ctx)
	err := w.deps.Dictionary.AddWord(cctx, word, roman)
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.log.WarnContext(ctx, "dictionary add failed", slog.String("error", err.Error()))
		w.notify(NoticeError, "Could not save romanization for %q", word)
		return fmt.Errorf("add romanization: %w", err)
	}

	pair := domain.RomanMapping{SindhiWord: word, RomanWord: roman}
	w.state.Pending = removeWord(w.state.Pending, word)
	w.state.Manual = append(w.state.Manual, pair)
	w.state.Mappings = append(w.state.Mappings, pair)

	var n int
	w.state.RomanizedText, n = domain.ReplaceWord(w.state.RomanizedText, word, roman)
	w.notify(NoticeSuccess, "Added %q as %q (%d replaced)", word, roman, n)
	return nil
}

// missingWords returns the distinct words of text not covered by any mapping.
func missingWords(text string, mappings, manual []domain.RomanMapping) []string {
	known := make(map[string]struct{}, len(mappings)+len(manual))
	for _, m := range mappings {
		known[domain.WordKey(m.SindhiWord)] = struct{}{}
	}
	for _, m := range manual {
		known[domain.WordKey(m.SindhiWord)] = struct{}{}
	}

	missing := []string{}
	for _, word := range domain.DistinctWords(text) {
		if _, ok := known[word]; !ok {
			missing = append(missing, word)
		}
	}
	return missing
}

func removeWord(words []string, word string) []string {
	out := words[:0:0]
	for _, w := range words {
		if w != word {
			out = append(out, w)
		}
	}
	return out
}
