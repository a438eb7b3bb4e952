package workflow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// EditSindhiDraft replaces the Sindhi draft and regenerates the slug and the
// English draft. When several edits race, only the latest result is kept.
func (w *Workflow) EditSindhiDraft(ctx context.Context, text string) error {
	w.mu.Lock()
	if w.state.Step != StepDetails || w.state.Submitted {
		w.mu.Unlock()
		return ErrWrongStep
	}
	w.state.SindhiDraft = text
	token := w.nextRegen()
	w.mu.Unlock()

	if !w.regenerate(ctx, text, token) {
		return ErrStale
	}
	return nil
}

// SetSlug overrides the generated slug.
func (w *Workflow) SetSlug(slug string) error {
	return w.editDetails(func(s *State) { s.Slug = strings.TrimSpace(slug) })
}

// SetEnglishDraft overrides the translated draft.
func (w *Workflow) SetEnglishDraft(text string) error {
	return w.editDetails(func(s *State) { s.EnglishDraft = text })
}

// SelectPoet sets the poet the couplet is attributed to.
func (w *Workflow) SelectPoet(poetID int64) error {
	return w.editDetails(func(s *State) { s.PoetID = poetID })
}

// SetTags sets the tag slugs of the couplet.
func (w *Workflow) SetTags(tags []string) error {
	tags = domain.SplitTags(domain.JoinTags(tags))
	return w.editDetails(func(s *State) { s.Tags = tags })
}

func (w *Workflow) editDetails(fn func(*State)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Step != StepDetails || w.state.Submitted {
		return ErrWrongStep
	}
	fn(&w.state)
	return nil
}

// nextRegen issues a new regeneration token. Callers hold w.mu.
func (w *Workflow) nextRegen() uint64 {
	w.regen++
	return w.regen
}

// regenerate derives the slug from the romanized first line and the English
// draft from a translation of text. It applies the results only if token is
// still the latest and reports whether it did.
func (w *Workflow) regenerate(ctx context.Context, text string, token uint64) bool {
	first := domain.FirstLine(text)

	var slug string
	if first != "" {
		cctx, cancel := w.callCtx(ctx)
		res, err := w.deps.Romanizer.Romanize(cctx, first)
		cancel()
		if err != nil {
			w.log.WarnContext(ctx, "slug romanization failed", slog.String("error", err.Error()))
		} else {
			slug = domain.Slugify(res.RomanizedText)
		}
		if slug == "" {
			slug = domain.Slugify(first)
		}
	}

	var (
		english    string
		translated bool
	)
	if strings.TrimSpace(text) != "" {
		cctx, cancel := w.callCtx(ctx)
		out, err := w.deps.Translator.Translate(cctx, text, domain.LangSindhi, domain.LangEnglish)
		cancel()
		if err != nil {
			w.log.WarnContext(ctx, "translation failed", slog.String("error", err.Error()))
		} else {
			english, translated = out, true
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if token != w.regen {
		w.log.DebugContext(ctx, "regeneration discarded", slog.Uint64("token", token))
		return false
	}
	w.state.Slug = slug
	if translated {
		w.state.EnglishDraft = english
	} else if strings.TrimSpace(text) != "" {
		w.notify(NoticeWarning, "Could not translate the couplet, English draft unchanged")
	}
	return true
}
