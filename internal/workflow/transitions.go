package workflow

import (
	"context"
	"log/slog"
)

// GoToRomanizer leaves the hesudhar step. The checked text becomes the
// romanizer input and the Sindhi draft; slug and English draft are prefilled
// on a best-effort basis.
func (w *Workflow) GoToRomanizer(ctx context.Context) error {
	w.mu.Lock()
	if w.state.Step != StepHesudhar {
		w.mu.Unlock()
		return ErrWrongStep
	}
	if !w.state.HesudharDone {
		w.notify(NoticeError, "Please check the spelling first")
		w.mu.Unlock()
		return ErrStepIncomplete
	}

	text := w.state.Text
	if w.state.RomanInput != text {
		w.state.RomanInput = text
		w.state.RomanizedText = ""
		w.state.Mappings = nil
		w.state.Pending = nil
		w.state.RomanizerDone = false
	}
	w.state.SindhiDraft = text
	w.state.Step = StepRomanizer
	token := w.nextRegen()
	w.mu.Unlock()

	w.regenerate(ctx, text, token)
	return nil
}

// GoToDetails leaves the romanizer step and syncs the dictionary. A failed
// sync is reported but does not block the transition.
func (w *Workflow) GoToDetails(ctx context.Context) error {
	w.mu.Lock()
	if w.state.Step != StepRomanizer {
		w.mu.Unlock()
		return ErrWrongStep
	}
	if !w.state.RomanizerDone {
		w.notify(NoticeError, "Please check the romanization first")
		w.mu.Unlock()
		return ErrStepIncomplete
	}
	w.state.Step = StepDetails
	w.mu.Unlock()

	cctx, cancel := w.callCtx(ctx)
	n, err := w.deps.Dictionary.Sync(cctx)
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.log.WarnContext(ctx, "dictionary sync failed", slog.String("error", err.Error()))
		w.notify(NoticeWarning, "Dictionary sync failed: %v", err)
		return nil
	}
	if n > 0 {
		w.notify(NoticeSuccess, "Dictionary synced, %d new entries", n)
	}
	return nil
}

// Back returns to the previous step. State of the later steps is kept.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state.Step {
	case StepRomanizer:
		w.state.Step = StepHesudhar
	case StepDetails:
		if w.state.Submitted {
			return ErrWrongStep
		}
		w.state.Step = StepRomanizer
	default:
		return ErrWrongStep
	}
	return nil
}
