package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boisserenc/atelier/internal/apiclient"
	"github.com/boisserenc/atelier/internal/catalog"
	"github.com/boisserenc/atelier/internal/config"
	"github.com/boisserenc/atelier/internal/domain"
	"github.com/boisserenc/atelier/internal/handler"
	"github.com/boisserenc/atelier/internal/repository/memory"
	"github.com/boisserenc/atelier/internal/repository/sqlite"
	"github.com/boisserenc/atelier/internal/service"
	"github.com/boisserenc/atelier/internal/snapshot"
)

const usage = `usage: atelier [serve|export]

  serve   run the HTTP server (default)
  export  write the JSON snapshot of the content API to EXPORT_DIR`

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logOpts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "serve":
		serve(cfg)
	case "export":
		export(cfg)
	case "-h", "--help", "help":
		fmt.Println(usage)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

// openStore opens the configured store, applies migrations and seeds the
// sample content when the store is empty.
func openStore(ctx context.Context, cfg config.Config) (domain.Database, error) {
	var db domain.Database
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		sqliteDB, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = sqliteDB
	default:
		db = memory.New()
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("store ready", "driver", cfg.StoreDriver)

	data, err := service.DefaultSeed()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load seed: %w", err)
	}
	n, err := service.NewSeeder(db.BlogPosts(), db.StoveProjects(), db.Testimonials()).Seed(ctx, data)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("seed content: %w", err)
	}
	if n > 0 {
		slog.Info("sample content seeded", "records", n)
	}

	if cfg.AdminUsername != "" {
		users := service.NewUserService(db.Users(), cfg.BcryptCost)
		created, err := users.EnsureUser(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure admin user: %w", err)
		}
		if created {
			slog.Info("admin user created", "username", cfg.AdminUsername)
		}
	}
	return db, nil
}

// newCatalog builds the data source selected by DATA_SOURCE. The returned
// closer releases the store, if one was opened.
func newCatalog(ctx context.Context, cfg config.Config) (catalog.Catalog, func(), error) {
	switch cfg.DataSource {
	case config.SourceAPI:
		slog.Info("reading content from remote API", "base_url", cfg.APIBaseURL)
		return apiclient.New(cfg.APIBaseURL), func() {}, nil
	case config.SourceStatic:
		slog.Info("reading content from static snapshot", "dir", cfg.SnapshotDir)
		hc := &http.Client{
			Timeout:   10 * time.Second,
			Transport: snapshot.NewFileTransport(cfg.SnapshotDir, snapshot.WithCache()),
		}
		return apiclient.New("http://snapshot.local", apiclient.WithHTTPClient(hc)), func() {}, nil
	default:
		db, err := openStore(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		local := catalog.NewLocal(
			service.NewContentService(db.BlogPosts(), db.StoveProjects(), db.Testimonials()),
			service.NewContactService(db.ContactMessages()),
		)
		return local, func() { db.Close() }, nil
	}
}

func serve(cfg config.Config) {
	source, closeSource, err := newCatalog(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to initialize data source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, source)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Wrap(mux, cfg.CookieSecure),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "source", cfg.DataSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// export writes every collection to EXPORT_DIR/api. A failed collection is
// replaced by an empty array; the command only fails when nothing could be
// exported.
func export(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newCatalog(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize data source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	results := snapshot.NewExporter(source, cfg.ExportDir).Run(ctx)
	failed := snapshot.Failed(results)
	slog.Info("export finished", "dir", cfg.ExportDir, "tasks", len(results), "failed", len(failed))
	if len(failed) == len(results) {
		closeSource()
		os.Exit(1)
	}
}
