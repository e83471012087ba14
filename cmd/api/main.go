package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jobadmin/internal/audit"
	"jobadmin/internal/backend"
	"jobadmin/internal/config"
	"jobadmin/internal/database"
	"jobadmin/internal/database/migration"
	"jobadmin/internal/export"
	handlers "jobadmin/internal/http/handler"
	"jobadmin/internal/http/middleware"
	"jobadmin/internal/otel"
	"jobadmin/internal/repository/postgres"
	"jobadmin/internal/service"
	"jobadmin/internal/session"
	"jobadmin/internal/storage"
	"jobadmin/internal/token"
)

func main() {
	log := middleware.NewJSONLogger(os.Stdout, time.Local)
	defer log.Sync()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	store := session.NewRedisStore(rdb, cfg.Auth.SessionTTL)

	backendMetrics, err := backend.NewMetrics(reg)
	if err != nil {
		log.Fatal("failed to register backend metrics", zap.Error(err))
	}
	api, err := backend.NewClient(cfg.Backend.BaseURL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithMetrics(backendMetrics),
		backend.WithUnauthorizedHandler(handlers.ExpireSession(store)),
	)
	if err != nil {
		log.Fatal("failed to build backend client", zap.Error(err))
	}
	services := service.New(api, store, cfg.Backend.BaseURL)

	// The audit log and exports are optional: each needs its own store.
	var (
		db       *sql.DB
		recorder = audit.Nop()
		exports  export.Service
	)
	if database.Configured(cfg.Database) {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("database migration failed", zap.Error(err))
		}
		recorder = audit.NewRecorder(postgres.NewAuditPostgres(db), log)

		if storage.Configured(cfg.MinIO) {
			objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
			if err != nil {
				log.Fatal("failed to initialize object storage", zap.Error(err))
			}
			exports = export.NewService(api, services.Commissions, objStore, postgres.NewExportPostgres(db), cfg.MinIO.URLExpiry)
		}
	} else {
		log.Info("audit_log_disabled", zap.String("reason", "DB_HOST not set"))
	}
	if exports == nil {
		log.Info("exports_disabled")
	}

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       db,
		Services: services,
		Store:    store,
		Tokens:   token.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL),
		Audit:    recorder,
		Exports:  exports,
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", zap.String("addr", addr), zap.String("backend", cfg.Backend.BaseURL))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("server_shutdown_failed", zap.Error(err))
	}
	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing_shutdown_failed", zap.Error(err))
	}
}
