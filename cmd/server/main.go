package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/playperu/courtboard/internal/config"
	"github.com/playperu/courtboard/internal/court"
	"github.com/playperu/courtboard/internal/customize"
	"github.com/playperu/courtboard/internal/database"
	"github.com/playperu/courtboard/internal/handler/health"
	"github.com/playperu/courtboard/internal/migrations"
	"github.com/playperu/courtboard/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Customizations ---
	checks := make(map[string]health.Checker)
	store, closeStore, err := openCustomizeStore(ctx, cfg.CustomizeStore, checks)
	if err != nil {
		return err
	}
	defer closeStore()

	custom, err := customize.NewService(ctx, store)
	if err != nil {
		return fmt.Errorf("seeding customizations: %w", err)
	}
	checks["customizations"] = customizationsChecker{custom}
	logger.Info("marker customizations ready", "store", cfg.CustomizeStore)

	// --- Boards ---
	broker := server.NewBroker()
	boards := server.NewRegistry(logger, broker, cfg.Court())

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, boards, broker, custom, cfg.SPADir, func(r chi.Router) {
		r.Mount("/healthz", health.NewHandler(logger, checks).Routes())
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	g.Go(func() error {
		return boards.Run(gctx, cfg.SweepInterval, cfg.BoardIdleTimeout)
	})

	return g.Wait()
}

// openCustomizeStore returns the customization store for kind. The SQLite
// store lives in a private in-memory database and registers its ping with
// checks.
func openCustomizeStore(ctx context.Context, kind string, checks map[string]health.Checker) (customize.Store, func(), error) {
	if kind == config.StoreMemory {
		return customize.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Open(ctx, database.Memory)
	if err != nil {
		return nil, nil, fmt.Errorf("opening sqlite: %w", err)
	}
	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	store := customize.NewDocStore(db)
	checks["sqlite"] = health.CheckerFunc(store.Ping)
	return store, func() { db.Close() }, nil
}

// customizationsChecker fails when any marker lost its customization row.
type customizationsChecker struct{ svc *customize.Service }

func (c customizationsChecker) Check(ctx context.Context) error {
	all, err := c.svc.All(ctx)
	if err != nil {
		return err
	}
	for _, id := range court.Markers {
		if _, ok := all[id]; !ok {
			return fmt.Errorf("no customization for %s", id)
		}
	}
	return nil
}
