package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

// Result is the outcome of a successful Submit.
type Result struct {
	Sindhi  domain.Couplet
	English *domain.Couplet // nil when no English row was written
	// RedirectAfter is how long the caller should wait before leaving.
	RedirectAfter time.Duration
}

// Submit validates the details and writes the Sindhi couplet, then the
// English one when an English draft exists. Validation failures make no call.
// A failed Sindhi write keeps the workflow on the details step.
func (w *Workflow) Submit(ctx context.Context) (Result, error) {
	w.mu.Lock()
	if w.state.Step != StepDetails || w.state.Submitted {
		w.mu.Unlock()
		return Result{}, ErrWrongStep
	}
	s := w.state
	if err := validateDetails(s); err != nil {
		w.notify(NoticeError, "%s", err.Error())
		w.mu.Unlock()
		return Result{}, err
	}
	w.mu.Unlock()

	base := domain.Couplet{
		PoetryID: domain.StandalonePoetryID,
		PoetID:   s.PoetID,
		Slug:     s.Slug,
		Tags:     domain.JoinTags(s.Tags),
	}

	sd := base
	sd.Text = domain.NormalizeText(s.SindhiDraft)
	sd.Lang = domain.LangSindhi

	created, err := w.create(ctx, sd)
	if err != nil {
		w.log.ErrorContext(ctx, "sindhi couplet write failed", slog.String("slug", s.Slug), slog.String("error", err.Error()))
		w.mu.Lock()
		w.notify(NoticeError, "Could not save the couplet: %v", err)
		w.mu.Unlock()
		return Result{}, fmt.Errorf("submit sindhi couplet: %w", err)
	}
	res := Result{Sindhi: created, RedirectAfter: w.opts.RedirectDelay}

	if english := domain.NormalizeText(s.EnglishDraft); strings.TrimSpace(english) != "" {
		en := base
		en.Text = english
		en.Lang = domain.LangEnglish

		enCreated, err := w.create(ctx, en)
		switch {
		case err == nil:
			res.English = &enCreated
		case w.opts.RequireEnglish:
			w.log.ErrorContext(ctx, "english couplet write failed, undoing sindhi write",
				slog.Int64("couplet_id", created.ID), slog.String("error", err.Error()))
			w.undo(ctx, created.ID)
			w.mu.Lock()
			w.notify(NoticeError, "Could not save the English couplet: %v", err)
			w.mu.Unlock()
			return Result{}, fmt.Errorf("submit english couplet: %w", err)
		default:
			w.log.WarnContext(ctx, "english couplet write failed", slog.String("slug", s.Slug), slog.String("error", err.Error()))
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Submitted = true
	w.notify(NoticeSuccess, "Couplet %q saved", s.Slug)
	return res, nil
}

func (w *Workflow) create(ctx context.Context, c domain.Couplet) (domain.Couplet, error) {
	cctx, cancel := w.callCtx(ctx)
	defer cancel()

	out, err := w.deps.Couplets.CreateCouplets(cctx, []domain.Couplet{c})
	if err != nil {
		return domain.Couplet{}, err
	}
	if len(out) != 1 {
		return domain.Couplet{}, fmt.Errorf("expected 1 created couplet, got %d", len(out))
	}
	return out[0], nil
}

// undo deletes a couplet written earlier in the same submit. It runs even if
// ctx has been cancelled.
func (w *Workflow) undo(ctx context.Context, id int64) {
	cctx, cancel := w.callCtx(context.WithoutCancel(ctx))
	defer cancel()

	if err := w.deps.Couplets.DeleteCouplet(cctx, id); err != nil {
		w.log.ErrorContext(ctx, "compensating delete failed", slog.Int64("couplet_id", id), slog.String("error", err.Error()))
	}
}

func validateDetails(s State) error {
	var errs []domain.FieldError

	if strings.TrimSpace(s.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}
	if s.PoetID <= 0 {
		errs = append(errs, domain.FieldError{Field: "poet_id", Message: "please select a poet"})
	}
	if strings.TrimSpace(s.SindhiDraft) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
