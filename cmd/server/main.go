package main

import (
	"context"
	"database/sql"
	"depot-route-service/internal/adapters/cache"
	"depot-route-service/internal/adapters/repositories"
	"depot-route-service/internal/api"
	"depot-route-service/internal/config"
	"depot-route-service/internal/platform/db"
	"depot-route-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the run archive (Postgres or SQLite) and the optional Redis cache
// behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, runs, err := openArchive(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	var solutionCache ports.SolutionCache
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisSolutionCacheFromURL(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()
		solutionCache = rc
		log.Printf("Solution cache enabled ttl=%s", cfg.CacheTTL)
	}

	router := api.NewRouter(api.Options{
		Runs:            runs,
		Cache:           solutionCache,
		DB:              conn,
		MaxDepots:       cfg.MaxDepots,
		MaxDestinations: cfg.MaxDestinations,
		Workers:         cfg.SolveWorkers,
		SolveTimeout:    cfg.SolveTimeout,
		RateLimit:       cfg.RateLimitRPS,
		RateBurst:       cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.SolveTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// openArchive prefers Postgres when DATABASE_URL is set and falls back to SQLite.
func openArchive(ctx context.Context, cfg config.Config) (*sql.DB, *repositories.SQLRunRepository, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open archive: %w", err)
		}
		log.Println("Run archive: postgres")
		return conn, repositories.NewPostgresRunRepository(conn), nil
	}

	conn, err := db.OpenSqlite(ctx, cfg.SqlitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open archive: %w", err)
	}
	log.Printf("Run archive: sqlite path=%s", cfg.SqlitePath)
	return conn, repositories.NewSqliteRunRepository(conn), nil
}
