package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/shoplist/internal/config"
	"github.com/mmynk/shoplist/internal/export"
	"github.com/mmynk/shoplist/internal/metrics"
	"github.com/mmynk/shoplist/internal/middleware"
	"github.com/mmynk/shoplist/internal/service"
	"github.com/mmynk/shoplist/internal/storage/seed"
	"github.com/mmynk/shoplist/internal/storage/sqlite"
	"github.com/mmynk/shoplist/pkg/api"
	"github.com/mmynk/shoplist/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup()

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if cfg.SeedPath != "" {
		f, err := seed.Load(cfg.SeedPath)
		if err != nil {
			return err
		}
		res, err := seed.Apply(ctx, store, f)
		if err != nil {
			return err
		}
		slog.Info("Seed applied",
			"path", cfg.SeedPath,
			"catalogue_seeded", res.CatalogueSeeded,
			"recipes_created", res.RecipesCreated,
		)
	}

	notion := export.NewNotionExporter(cfg.NotionToken, cfg.NotionPageID, cfg.NotionAPIURL)
	if !notion.Configured() {
		slog.Warn("Notion export disabled: NOTION_TOKEN or NOTION_PAGE_ID not set")
	}

	m := metrics.New()
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(m),
	)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(api.NewRecipeServiceHandler(service.NewRecipeService(store), interceptors))
	mux.Handle(api.NewCatalogueServiceHandler(service.NewCatalogueService(store), interceptors))
	mux.Handle(api.NewShoppingServiceHandler(service.NewShoppingService(store, notion, m), interceptors))

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", "http://localhost"+server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
