package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"identityapi/docs"
	"identityapi/internal/cache"
	"identityapi/internal/config"
	"identityapi/internal/database"
	"identityapi/internal/database/migration"
	handlers "identityapi/internal/http/handler"
	"identityapi/internal/http/middleware"
	"identityapi/internal/logging"
	"identityapi/internal/otel"
	"identityapi/internal/repository"
	"identityapi/internal/repository/postgres"
	"identityapi/internal/service"
	"identityapi/internal/storage"
)

// @title Identity Server REST API
// @version 1.0
// @BasePath /api/server/v1
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logging.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	// Notification senders live as JSON documents in object storage
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	var govRepo repository.GovernanceRepository = postgres.NewGovernancePostgres(db)
	if rdb := cache.NewRedis(cfg.Redis); rdb != nil {
		defer rdb.Close()
		if err := rdb.Ping(ctx); err != nil {
			log.Warn("governance_cache_unreachable", zap.Error(err))
		}
		govRepo = cache.NewGovernanceRepository(govRepo, rdb, time.Duration(cfg.Redis.TTLSec)*time.Second, log)
	}

	// Initialize repositories and services
	appRepo := postgres.NewApplicationPostgres(db)
	corsRepo := postgres.NewCORSPostgres(db)
	var stsRepo repository.TrustedServiceRepository
	if cfg.STSEnabled {
		stsRepo = postgres.NewTrustedServicePostgres(db)
	}

	oauthSvc := service.NewOAuthInbound(postgres.NewOAuthAppPostgres(db), corsRepo, appRepo)
	services := handlers.Services{
		Applications:  service.NewApplications(appRepo, corsRepo, stsRepo, oauthSvc, log),
		Governance:    service.NewGovernance(govRepo),
		Notifications: service.NewNotificationSenders(objStore),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(log),
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}
	app.Use(prom.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, db, cfg.DefaultTenant, services)

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("server_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
