//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/sindhipoetry/backend/internal/adapter/artifact"
	"github.com/sindhipoetry/backend/internal/adapter/cache"
	"github.com/sindhipoetry/backend/internal/adapter/postgres/testhelper"
	"github.com/sindhipoetry/backend/internal/app"
	authpkg "github.com/sindhipoetry/backend/internal/auth"
	"github.com/sindhipoetry/backend/internal/config"
	"github.com/sindhipoetry/backend/internal/domain"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL          string
	Client       *http.Client
	Pool         *pgxpool.Pool
	ArtifactPath string
	jwt          *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeTextServices answers the three text-service endpoints. Romanization
// maps every word to itself except "unknown", which is left unmapped.
func fakeTextServices(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /hesudhar", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Text string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]any{"correctedText": in.Text, "corrections": []any{}})
	})
	mux.HandleFunc("POST /romanize", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Text string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		words := domain.DistinctWords(in.Text)
		mappings := make([]map[string]string, 0, len(words))
		for _, word := range words {
			if word == "unknown" {
				continue
			}
			mappings = append(mappings, map[string]string{"sindhiWord": word, "romanWord": word})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"romanizedText": in.Text, "mappings": mappings})
	})
	mux.HandleFunc("POST /translate", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Text string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"translatedText": "EN " + in.Text})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	text := fakeTextServices(t)
	artifactPath := filepath.Join(t.TempDir(), "roman-dictionary.json")

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: jwtSecret, JWTIssuer: jwtIssuer},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		TextServices: config.TextServicesConfig{
			HesudharURL:  text.URL + "/hesudhar",
			RomanizerURL: text.URL + "/romanize",
			TranslateURL: text.URL + "/translate",
			Timeout:      5 * time.Second,
		},
		Cache: config.CacheConfig{TTL: time.Minute},
	}

	handler := app.NewHandler(cfg, logger, app.Infra{
		Pool:     pool,
		Cache:    cache.Noop{},
		Artifact: artifact.NewFileStore(artifactPath, logger),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:          srv.URL,
		Client:       srv.Client(),
		Pool:         pool,
		ArtifactPath: artifactPath,
		jwt:          authpkg.NewJWTManager(jwtSecret, jwtIssuer),
	}
}

func (ts *testServer) token(t *testing.T, role domain.UserRole) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(uuid.New(), role, 15*time.Minute)
	require.NoError(t, err)
	return tok
}

func (ts *testServer) adminToken(t *testing.T) string {
	return ts.token(t, domain.UserRoleAdmin)
}

// do sends a JSON request and decodes the response body into out when out
// is non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, in, out any) int {
	t.Helper()

	var body bytes.Buffer
	if in != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(in))
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type page struct {
	Items      []map[string]any `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}
