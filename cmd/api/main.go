package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeroQue/learnsmart-backend/internal/api"
	"github.com/NeroQue/learnsmart-backend/internal/config"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/services"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/NeroQue/learnsmart-backend/pkg/parser"
	"github.com/NeroQue/learnsmart-backend/pkg/session"
)

// main entry point - sets up everything and starts the server
func main() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("failed to set up storage", "driver", cfg.DBDriver, "error", err)
	}
	defer closeStore()
	log.Info("storage ready", "driver", cfg.DBDriver)

	tokens, err := session.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("failed to create token manager", "error", err)
	}

	// wire everything together
	server := api.NewServer(cfg, store, tokens, log)

	if cfg.SeedData {
		catalogParser := parser.NewCatalogParser(cfg.SeedFile)
		catalog, err := catalogParser.Load()
		if err != nil {
			log.Fatal("failed to load seed catalog", "source", catalogParser.Source(), "error", err)
		}
		seeder := services.NewSeeder(store, server.Auth, server.Courses, log)
		if err := seeder.Seed(ctx, catalog); err != nil {
			// the api still works without sample data
			log.Warn("seeding failed", "error", err)
		}
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", "error", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// openStore picks the storage backend from config
func openStore(ctx context.Context, cfg *config.Config) (database.Store, func(), error) {
	if cfg.DBDriver == config.DriverMemory {
		return database.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Open(ctx, cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	store := database.NewSQLStore(db)
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}
