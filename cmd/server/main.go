package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/freckles-ink/printdesk/internal"
	"github.com/freckles-ink/printdesk/internal/handler"
	"github.com/freckles-ink/printdesk/internal/inventory"
	"github.com/freckles-ink/printdesk/internal/middleware"
	"github.com/freckles-ink/printdesk/internal/router"
	"github.com/freckles-ink/printdesk/internal/routes"
	"github.com/freckles-ink/printdesk/internal/sanmar"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Vendor client and lookup service
	client := sanmar.NewClient(sanmar.Config{
		BaseURL:                cfg.SanMar.BaseURL,
		StandardEndpoint:       cfg.SanMar.StandardEndpoint,
		PromoStandardsEndpoint: cfg.SanMar.PromoStandardsEndpoint,
		CustomerNumber:         cfg.SanMar.CustomerNumber,
		Username:               cfg.SanMar.Username,
		Password:               cfg.SanMar.Password,
		Cookie:                 cfg.SanMar.Cookie,
		Timeout:                cfg.SanMar.Timeout,
	}, logger)
	service := inventory.NewService(client, logger)

	// Handlers
	apiDeps := routes.APIDeps{
		Inventory: handler.NewInventoryHandler(service, client, logger),
		Pricing:   handler.NewPricingHandler(logger),
	}

	// Prometheus metrics
	metrics := middleware.NewMetrics("printdesk")

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		router.CORS(cfg.CORSOrigins),
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	)

	// Metrics endpoint (no auth required, but should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterAPIRoutes(r, apiDeps)

	// Built UI: hashed assets plus an index fallback for client-side routes
	r.Static("/assets/", filepath.Join(cfg.StaticDir, "assets"))
	r.Get("/", spaHandler(cfg.StaticDir))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// spaHandler serves files out of the built UI directory, falling back to
// index.html for any path that doesn't name a real file so client-side
// routing keeps working on reload.
func spaHandler(dir string) http.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			http.ServeFile(w, r, name)
			return
		}
		http.ServeFile(w, r, index)
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
