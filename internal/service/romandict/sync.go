package romandict

import (
	"context"
	"fmt"
	"log/slog"
)

// Sync merges unsynced dictionary rows into the lookup artifact and marks
// them synced. Rows are locked for the duration of the transaction, so a
// concurrent sync on another instance skips them. If marking fails the
// artifact already holds the entries and the next sync rewrites them
// unchanged.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	var result SyncResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pending, err := s.words.ListUnsynced(txCtx)
		if err != nil {
			return fmt.Errorf("list unsynced: %w", err)
		}
		if len(pending) == 0 {
			return nil
		}

		lookup, err := s.artifact.Load(txCtx)
		if err != nil {
			return fmt.Errorf("load artifact: %w", err)
		}

		ids := make([]int64, 0, len(pending))
		for _, w := range pending {
			if current, ok := lookup[w.WordSD]; !ok || current != w.WordRoman {
				lookup[w.WordSD] = w.WordRoman
				result.NewEntries++
			}
			ids = append(ids, w.ID)
		}

		if result.NewEntries > 0 {
			if err := s.artifact.Save(txCtx, lookup); err != nil {
				return fmt.Errorf("save artifact: %w", err)
			}
		}

		result.Synced, err = s.words.MarkSynced(txCtx, ids, s.now().UTC())
		if err != nil {
			return fmt.Errorf("mark synced: %w", err)
		}
		return nil
	})
	if err != nil {
		return SyncResult{}, err
	}

	s.log.InfoContext(ctx, "dictionary synced",
		slog.Int("new_entries", result.NewEntries),
		slog.Int("synced", result.Synced),
	)
	return result, nil
}
