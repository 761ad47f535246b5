package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/eskrenkovic/storefront-admin/internal/config"
	"github.com/eskrenkovic/storefront-admin/internal/metrics"
	"github.com/eskrenkovic/storefront-admin/internal/modules/admin"
	"github.com/eskrenkovic/storefront-admin/internal/modules/core"
	"github.com/eskrenkovic/storefront-admin/internal/modules/diagnostics"
	"github.com/eskrenkovic/storefront-admin/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for an application.
type HTTPServer struct {
	server          *http.Server
	db              *sql.DB
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func NewHTTPServer(conf config.Config) (Server, error) {
	return newHTTPServer(conf)
}

func newHTTPServer(conf config.Config) (*HTTPServer, error) {
	baseCtx := context.Background()

	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	zap.ReplaceGlobals(logger)

	repository, db, err := newRepository(baseCtx, conf.Database)
	if err != nil {
		return nil, err
	}

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// handler registration

	if err := product.RegisterHandlers(repository, time.Now); err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.RegisterCollectors(registry)

	prober := diagnostics.NewProber(&http.Client{Timeout: conf.ProbeTimeout}, conf.Database.ProductTable)
	adminPages := admin.NewHandler(time.Now)

	// http

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(core.CorrelationIDHTTPMiddleware)

	// Sub-routers run their middleware before method matching, so CORS
	// answers preflight on GET-only routes too.
	apiMiddleware := []func(http.Handler) http.Handler{core.CORSMiddleware}
	if conf.RateLimit.Enabled() {
		limiter := core.NewRateLimiter(conf.RateLimit.RPS, conf.RateLimit.Burst)
		apiMiddleware = append(apiMiddleware, limiter.Middleware)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware...)

		r.HandleFunc("/products", product.HandleProductProxy)
		r.Get("/products/{id}", product.HandleGetProduct)
		r.Get("/diagnostics", prober.HandleProbe)
	})

	// Paths served by the hosted edge functions.
	r.Route("/functions/v1", func(r chi.Router) {
		r.Use(apiMiddleware...)

		r.HandleFunc("/admin-products", product.HandleProductProxy)
		r.HandleFunc("/admin-diagnostics", prober.HandleProbe)
	})

	r.Get("/admin", adminPages.HandleIndex)
	r.Get("/admin/{hub}", adminPages.HandleHub)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		core.WriteOK(w, r, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(conf.Port)),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	return &HTTPServer{
		server:          server,
		db:              db,
		logger:          logger,
		shutdownTimeout: conf.ShutdownTimeout,
	}, nil
}

// newRepository returns the product store for the configured driver. The
// returned *sql.DB is nil unless the postgres driver is selected.
func newRepository(ctx context.Context, conf config.DatabaseConfiguration) (product.Repository, *sql.DB, error) {
	switch conf.Driver {
	case config.DriverSupabase:
		client, err := supa.NewClient(conf.SupabaseURL, conf.ServiceRoleKey, &supa.ClientOptions{})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create supabase client: %w", err)
		}
		return product.NewSupabaseRepository(client, conf.ProductTable), nil, nil

	case config.DriverPostgres:
		db, err := sql.Open("postgres", conf.PostgresURL)
		if err != nil {
			return nil, nil, err
		}

		if err := migrate.Run(ctx, db, conf.MigrationsPath); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return product.NewPostgresRepository(db, conf.ProductTable), db, nil

	case config.DriverMemory:
		return product.NewMemoryRepository(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}

	_ = s.logger.Sync()

	return err
}
