package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ventus-lab/ventus/internal/auth"
	corecfg "github.com/ventus-lab/ventus/internal/core/config"
	"github.com/ventus-lab/ventus/internal/core/storage/postgres"
	"github.com/ventus-lab/ventus/internal/migrations"
	"github.com/ventus-lab/ventus/internal/query"
	"github.com/ventus-lab/ventus/internal/server"
)

func main() {
	configPath := flag.String("config", corecfg.DefaultPath, "Path to configuration file")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.RequireSource(); err != nil {
		slog.Error("Invalid source database config", "error", err)
		os.Exit(1)
	}

	// 1.1. Initialize Logger (level comes from config)
	level, _ := cfg.Log.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	slog.Info("Loaded config", "server", cfg.Server, "log_level", level.String())

	// 2. Initialize Storage (source PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(cfg.Source.DSN, cfg.Source.MaxOpenConns, cfg.Source.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(dbAdapter.DB(), migrations.Source, cfg.Source.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	if err := dbAdapter.ValidateSchema(context.Background(), postgres.SourceTables...); err != nil {
		slog.Error("Source database schema is incomplete", "error", err)
		os.Exit(1)
	}

	// 3. Initialize Authentication
	authenticator := auth.NewAuthenticator(
		postgres.NewCredentialAdapter(dbAdapter.DB()),
		cfg.Auth.CacheSize,
		cfg.Auth.CacheTTL,
	)

	// 4. Initialize Query (data API)
	querySvc := query.NewService(postgres.NewDataAdapter(dbAdapter.DB()))

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter, cfg.Server.Mode)

	protected := []gin.HandlerFunc{authenticator.Middleware()}
	if cfg.Server.RateLimitRPS > 0 {
		limiter := server.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, principalKey)
		protected = append(protected, limiter.Handler())
		slog.Info("Rate limiting enabled", "rps", cfg.Server.RateLimitRPS, "burst", cfg.Server.RateLimitBurst)
	}

	api := srv.Engine.Group("/api/v1", protected...)
	querySvc.RegisterRoutes(api.Group("/data"))
	authenticator.RegisterRoutes(api.Group("/auth"))

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// principalKey buckets rate limits per API key.
func principalKey(c *gin.Context) string {
	if p, ok := auth.PrincipalFrom(c); ok {
		return "key:" + strconv.FormatInt(p.APIKeyID, 10)
	}
	return ""
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
