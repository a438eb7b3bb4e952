// Package romandict maintains the romanization dictionary: manually entered
// word pairs and their merge into the lookup artifact used by the romanizer.
package romandict

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

type wordRepo interface {
	Upsert(ctx context.Context, wordSD, wordRoman string) (*domain.RomanWord, error)
	List(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.RomanWord], error)
	ListUnsynced(ctx context.Context) ([]domain.RomanWord, error)
	MarkSynced(ctx context.Context, ids []int64, at time.Time) (int, error)
}

type artifactStore interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, lookup map[string]string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides dictionary operations.
type Service struct {
	words    wordRepo
	artifact artifactStore
	tx       txManager
	log      *slog.Logger
	now      func() time.Time

	// syncMu serializes the artifact read-modify-write within this process.
	syncMu sync.Mutex
}

// NewService creates a new dictionary service.
func NewService(log *slog.Logger, words wordRepo, artifact artifactStore, tx txManager) *Service {
	return &Service{
		words:    words,
		artifact: artifact,
		tx:       tx,
		log:      log.With("service", "romandict"),
		now:      time.Now,
	}
}

// SyncResult reports the outcome of a dictionary sync.
type SyncResult struct {
	NewEntries int // entries added to or changed in the artifact
	Synced     int // dictionary rows marked synced
}
