package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/cluetrail/cluetrail/internal/config"
	"github.com/cluetrail/cluetrail/internal/handlers/web"
	raceRepo "github.com/cluetrail/cluetrail/internal/repositories/race"
	sessionRepo "github.com/cluetrail/cluetrail/internal/repositories/session"
	"github.com/cluetrail/cluetrail/internal/services/hunt"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load .env if present; real env vars win
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	catalog, err := cfg.EventCatalog()
	if err != nil {
		slog.Error("invalid event catalog", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		slog.Error("failed to create session repository", "error", err)
		os.Exit(1)
	}

	races, err := newRaceRepository(cfg, redisClient)
	if err != nil {
		slog.Error("failed to create race repository", "error", err)
		os.Exit(1)
	}

	huntService, err := hunt.New(&hunt.Config{
		Events:      catalog,
		RaceRepo:    races,
		SessionRepo: sessions,
	})
	if err != nil {
		slog.Error("failed to create hunt service", "error", err)
		os.Exit(1)
	}

	handler, err := web.New(&web.Config{
		HuntService: huntService,
		BaseURL:     cfg.BaseURL,
		AdminKey:    cfg.AdminKey,
	})
	if err != nil {
		slog.Error("failed to create web handler", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(cfg.Addr, handler)

	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "events", len(catalog))
		if err := server.Run(); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Run until interrupted
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// newRaceRepository picks the race store: Postgres when a database URL
// is configured, Redis otherwise.
func newRaceRepository(cfg *config.Config, redisClient *redis.Client) (raceRepo.Repository, error) {
	if cfg.DatabaseURL == "" {
		return raceRepo.NewRedis(&raceRepo.Config{RedisClient: redisClient})
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return raceRepo.NewPostgres(&raceRepo.PostgresConfig{DB: db})
}
