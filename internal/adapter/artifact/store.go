// Package artifact stores the romanization lookup artifact: a JSON object
// mapping Sindhi words to their roman form, rebuilt by the dictionary sync.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sindhipoetry/backend/internal/config"
)

// Store reads and writes the lookup artifact.
type Store interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, lookup map[string]string) error
}

// New builds the Store selected by cfg.Backend.
func New(cfg config.ArtifactConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Backend {
	case config.ArtifactBackendFile:
		return NewFileStore(cfg.Path, logger), nil
	case config.ArtifactBackendS3:
		return NewS3Store(cfg, logger), nil
	default:
		return nil, fmt.Errorf("artifact: unknown backend %q", cfg.Backend)
	}
}

func decode(data []byte) (map[string]string, error) {
	lookup := map[string]string{}
	if len(data) == 0 {
		return lookup, nil
	}
	if err := json.Unmarshal(data, &lookup); err != nil {
		return nil, fmt.Errorf("artifact: decode: %w", err)
	}
	return lookup, nil
}

func encode(lookup map[string]string) ([]byte, error) {
	if lookup == nil {
		lookup = map[string]string{}
	}
	data, err := json.MarshalIndent(lookup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("artifact: encode: %w", err)
	}
	return append(data, '\n'), nil
}
