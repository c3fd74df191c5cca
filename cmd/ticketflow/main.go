// @title        TicketFlow API
// @version      1.0
// @description  Authentication and authorization API of the TicketFlow helpdesk.
// @BasePath     /
// @securityDefinitions.apikey  CookieAuth
// @in                          header
// @name                        Cookie
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ticketflow/ticketflow/internal/api"
	"github.com/ticketflow/ticketflow/internal/api/handler"
	"github.com/ticketflow/ticketflow/internal/core/ports"
	"github.com/ticketflow/ticketflow/internal/core/service"
	"github.com/ticketflow/ticketflow/internal/infrastructure/config"
	"github.com/ticketflow/ticketflow/internal/infrastructure/db/mongo"
	"github.com/ticketflow/ticketflow/internal/infrastructure/db/postgres"
	"github.com/ticketflow/ticketflow/internal/infrastructure/db/redis"
	"github.com/ticketflow/ticketflow/internal/infrastructure/queue"
	"github.com/ticketflow/ticketflow/internal/infrastructure/ratelimit"
	"github.com/ticketflow/ticketflow/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Level: "error"})
		boot.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "ticketflow",
	})

	// --- PostgreSQL: users and tickets ---
	if err := postgres.ApplyMigrations(ctx, cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}
	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	// --- MongoDB: audit trail ---
	auditStore, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() { _ = auditStore.Close(context.Background()) }()

	auditRepo := mongo.NewAuditRepository(auditStore.Database())
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("audit indexes not created")
	}
	dispatcher := queue.NewAuditDispatcher(cfg.Audit.Workers, cfg.Audit.QueueSize, auditRepo, log)
	dispatcher.Start()

	checks := map[string]handler.DependencyCheck{
		"postgres": pool.Ping,
		"mongodb":  auditStore.Ping,
	}

	// --- Login rate limiter ---
	limitCfg := ratelimit.Config{Limit: cfg.RateLimit.Limit, Window: cfg.RateLimit.Window}
	var limiter ports.AttemptLimiter
	if cfg.RateLimit.Store == "redis" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer rdb.Close()
		checks["redis"] = redis.Pinger(rdb)
		limiter, err = ratelimit.NewRedis(rdb, limitCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build rate limiter")
		}
	} else {
		limiter = ratelimit.NewMemory(limitCfg)
	}

	// --- Core services ---
	userRepo := postgres.NewUserRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	directory := service.NewUserDirectory(userRepo, service.NewBcryptHasher(cfg.Auth.BcryptCost))

	e := api.NewRouter(api.Dependencies{
		Auth:         service.NewAuthService(directory, tokens, dispatcher, log),
		UserAdmin:    service.NewUserAdminService(directory, dispatcher, log),
		Users:        directory,
		Tickets:      service.NewTicketService(ticketRepo),
		AuditLog:     service.NewAuditService(auditRepo),
		Tokens:       tokens,
		Limiter:      limiter,
		Recorder:     dispatcher,
		Checks:       checks,
		WebRoot:      cfg.WebRoot,
		SecureCookie: cfg.IsProduction(),
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("audit queue not fully drained")
	}
}
