package workflow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sindhipoetry/backend/internal/domain"
)

// Start loads the poet and tag lists concurrently. The workflow stays usable
// when it fails; only the selection lists are missing.
func (w *Workflow) Start(ctx context.Context) error {
	var (
		poets []domain.Poet
		tags  []domain.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cctx, cancel := w.callCtx(gctx)
		defer cancel()
		var err error
		if poets, err = w.deps.Catalogue.ListPoets(cctx); err != nil {
			return fmt.Errorf("load poets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		cctx, cancel := w.callCtx(gctx)
		defer cancel()
		var err error
		if tags, err = w.deps.Catalogue.ListTags(cctx); err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		return nil
	})
	err := g.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.notify(NoticeError, "Could not load poets and tags: %v", err)
		return err
	}
	w.catalog = Catalog{Poets: poets, Tags: tags}
	return nil
}

// Catalog returns the loaded selection lists.
func (w *Workflow) Catalog() Catalog {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Catalog{
		Poets: append([]domain.Poet(nil), w.catalog.Poets...),
		Tags:  append([]domain.Tag(nil), w.catalog.Tags...),
	}
}
