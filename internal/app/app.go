package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sindhipoetry/backend/internal/adapter/artifact"
	"github.com/sindhipoetry/backend/internal/adapter/cache"
	"github.com/sindhipoetry/backend/internal/adapter/postgres"
	coupletrepo "github.com/sindhipoetry/backend/internal/adapter/postgres/couplet"
	poetrepo "github.com/sindhipoetry/backend/internal/adapter/postgres/poet"
	"github.com/sindhipoetry/backend/internal/adapter/postgres/romanword"
	securityrepo "github.com/sindhipoetry/backend/internal/adapter/postgres/security"
	tagrepo "github.com/sindhipoetry/backend/internal/adapter/postgres/tag"
	timelinerepo "github.com/sindhipoetry/backend/internal/adapter/postgres/timeline"
	"github.com/sindhipoetry/backend/internal/adapter/provider/hesudhar"
	"github.com/sindhipoetry/backend/internal/adapter/provider/romanizer"
	"github.com/sindhipoetry/backend/internal/adapter/provider/translate"
	"github.com/sindhipoetry/backend/internal/auth"
	"github.com/sindhipoetry/backend/internal/config"
	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/service/couplet"
	"github.com/sindhipoetry/backend/internal/service/poet"
	"github.com/sindhipoetry/backend/internal/service/romandict"
	"github.com/sindhipoetry/backend/internal/service/security"
	"github.com/sindhipoetry/backend/internal/service/tag"
	"github.com/sindhipoetry/backend/internal/service/text"
	"github.com/sindhipoetry/backend/internal/service/timeline"
	"github.com/sindhipoetry/backend/internal/transport/middleware"
	"github.com/sindhipoetry/backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects the
// storage backends, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	listings, redis, closeCache, err := newCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	store, err := artifact.New(cfg.Artifact, logger)
	if err != nil {
		return fmt.Errorf("dictionary artifact: %w", err)
	}

	handler := NewHandler(cfg, logger, Infra{
		Pool:     pool,
		Cache:    listings,
		Redis:    redis,
		Artifact: store,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// ListCache backs cached poet reads.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// newCache connects Redis when enabled. The returned *cache.Redis is nil
// when the cache is disabled.
func newCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ListCache, *cache.Redis, func(), error) {
	if !cfg.Enabled {
		logger.Info("listing cache disabled")
		return cache.Noop{}, nil, func() {}, nil
	}

	c, err := cache.Connect(ctx, cfg.RedisURL, cfg.Prefix, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cache: %w", err)
	}
	return c, c, func() {
		if err := c.Close(); err != nil {
			logger.Warn("cache close failed", slog.String("error", err.Error()))
		}
	}, nil
}

type (
	corrector interface {
		Correct(ctx context.Context, text string) (domain.HesudharResult, error)
	}
	romanizerClient interface {
		Romanize(ctx context.Context, text string) (domain.RomanizeResult, error)
	}
	translator interface {
		Translate(ctx context.Context, text string, from, to domain.Lang) (string, error)
	}
)

// newTextService builds the text service. Collaborators stay nil interfaces
// when their URL is empty so the service reports them unavailable.
func newTextService(cfg config.TextServicesConfig, logger *slog.Logger) *text.Service {
	var (
		c corrector
		r romanizerClient
		t translator
	)
	if cfg.HesudharURL != "" {
		c = hesudhar.NewProvider(cfg.HesudharURL, cfg.APIKey, cfg.Timeout, logger)
	}
	if cfg.RomanizerURL != "" {
		r = romanizer.NewProvider(cfg.RomanizerURL, cfg.APIKey, cfg.Timeout, logger)
	}
	if cfg.TranslateURL != "" {
		t = translate.NewProvider(cfg.TranslateURL, cfg.APIKey, cfg.Timeout, logger)
	}
	return text.NewService(logger, c, r, t)
}

// Infra holds the connected storage backends.
type Infra struct {
	Pool     *pgxpool.Pool
	Cache    ListCache
	Redis    *cache.Redis // nil when the cache is disabled
	Artifact artifact.Store
}

// NewHandler wires repositories, services and transport into the root
// http.Handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, infra Infra) http.Handler {
	pool := infra.Pool
	txm := postgres.NewTxManager(pool)

	// Repositories
	poetRepo := poetrepo.New(pool)
	coupletRepo := coupletrepo.New(pool)
	tagRepo := tagrepo.New(pool)
	timelineRepo := timelinerepo.New(pool)
	wordRepo := romanword.New(pool)
	securityRepo := securityrepo.New(pool)

	// Services
	poetSvc := poet.NewService(logger, poetRepo, infra.Cache, cfg.Cache.TTL)
	coupletSvc := couplet.NewService(logger, coupletRepo, poetRepo, poetSvc, txm)
	tagSvc := tag.NewService(logger, tagRepo, txm)
	timelineSvc := timeline.NewService(logger, timelineRepo, txm)
	dictSvc := romandict.NewService(logger, wordRepo, infra.Artifact, txm)
	securitySvc := security.NewService(logger, securityRepo)
	textSvc := newTextService(cfg.TextServices, logger)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	health := rest.NewHealthHandler(pool, BuildVersion())
	if infra.Redis != nil {
		health.WithComponent("cache", infra.Redis)
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:     health,
		Poet:       rest.NewPoetHandler(poetSvc, logger),
		Couplet:    rest.NewCoupletHandler(coupletSvc, logger),
		Tag:        rest.NewTagHandler(tagSvc, logger),
		Timeline:   rest.NewTimelineHandler(timelineSvc, logger),
		Dictionary: rest.NewDictionaryHandler(dictSvc, logger),
		Security:   rest.NewSecurityHandler(securitySvc, logger),
		Text:       rest.NewTextHandler(textSvc, logger),
	}, middleware.RequireAdmin(securitySvc, logger))

	return middleware.Chain(
		middleware.Recovery(logger, securitySvc),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager, securitySvc, logger),
	)(mux)
}
