// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/olegiv/joewy-events/internal/config"
	"github.com/olegiv/joewy-events/internal/handler"
	"github.com/olegiv/joewy-events/internal/handler/api"
	"github.com/olegiv/joewy-events/internal/logging"
	"github.com/olegiv/joewy-events/internal/middleware"
	"github.com/olegiv/joewy-events/internal/presenter"
	"github.com/olegiv/joewy-events/internal/render"
	"github.com/olegiv/joewy-events/internal/share"
	"github.com/olegiv/joewy-events/internal/store"
	"github.com/olegiv/joewy-events/internal/version"
	"github.com/olegiv/joewy-events/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Joewy - upcoming events viewer\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_DB_DRIVER        Backend: sqlite|mysql (default: sqlite)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_DB_PATH          SQLite database path (default: ./data/joewy.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_DB_DSN           MySQL DSN (required for mysql)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_SITE_URL         Absolute base URL for canonical and share links\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_LOCALE           Display locale (default: en-US)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_TIMEZONE         Display time zone (default: UTC)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_DETAILS_FORMAT   Details rendering: text|markdown (default: text)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  JOEWY_DO_SEED          Seed demo events into an empty table (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		_, _ = fmt.Println(versionInfo.String())
		os.Exit(0)
	}

	if err := run(versionInfo); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(versionInfo version.Info) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	slog.SetDefault(logger)

	if cfg.DBDriver == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	slog.Info("initializing database", "driver", cfg.DBDriver)
	db, dialect, err := store.Open(cfg.DBDriver, cfg.DBPath, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.MigrateDialect(db, dialect); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if err := store.Seed(context.Background(), db, cfg.DoSeed, time.Now()); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	slog.Info("database ready")

	repo := store.NewEventRepository(db, dialect, nil, logger)

	p := presenter.New(presenter.Config{
		Locale:        cfg.LocaleTag(),
		Location:      cfg.Location(),
		ProductName:   cfg.ProductName,
		MarkdownNotes: cfg.DetailsFormat == config.DetailsFormatMarkdown,
	})

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates filesystem: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	site := handler.Site{
		URL:             cfg.SiteURL,
		Name:            cfg.ProductName,
		Production:      !cfg.IsDevelopment(),
		MarkdownDetails: cfg.DetailsFormat == config.DetailsFormatMarkdown,
	}
	eventsHandler := handler.NewEventsHandler(repo, p, renderer, site, logger, nil)
	apiHandler := api.NewHandler(repo, p, logger, nil)
	healthHandler := handler.NewHealthHandler(repo, versionInfo.Version, logger)
	shareHandler := share.NewHandler(logger)

	// CSRF validation relies on Fetch metadata; the key only seeds the wrapper.
	csrfKey := make([]byte, 32)
	if _, err := rand.Read(csrfKey); err != nil {
		return fmt.Errorf("generating CSRF key: %w", err)
	}
	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig(csrfKey, cfg.SiteURL, cfg.IsDevelopment()))

	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestPath)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))                    // Gzip compression with level 5
	r.Use(chimw.GetHead)                        // Handle HEAD requests for uptime monitoring
	r.Use(middleware.Timeout(30 * time.Second)) // 30 second request timeout
	r.Use(middleware.StripTrailingSlash)        // Redirect /path/ to /path (301)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))
	slog.Info("security headers middleware initialized", "hsts", !cfg.IsDevelopment())

	// Health checks
	r.Get(handler.RouteHealth, healthHandler.Health)
	r.Get(handler.RouteHealthLive, healthHandler.Liveness)
	r.Get(handler.RouteHealthReady, healthHandler.Readiness)

	// Public pages
	r.Get(handler.RouteRoot, eventsHandler.Index)
	r.Get(handler.RouteEvents, eventsHandler.List)
	r.Get(handler.RouteEventID, eventsHandler.Detail)
	r.Get(handler.RouteEventCalendar, eventsHandler.Calendar)
	r.Get(handler.RouteRobots, eventsHandler.Robots)
	r.Get(handler.RouteSitemap, eventsHandler.Sitemap)

	// Share failure beacons
	shareLimiter := middleware.NewRateLimiter(1, 5)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Use(shareLimiter.PlainMiddleware())
		r.Use(csrfMiddleware)
		r.Post(handler.RouteShareErrors, shareHandler.ReportError)
	})

	// Read-only JSON API
	r.Route(handler.RouteAPI, func(r chi.Router) {
		apiRateLimiter := middleware.NewRateLimiter(20, 40)
		r.Use(apiRateLimiter.Middleware())
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get(handler.RouteAPIEvents, apiHandler.ListEvents)
		r.Get(handler.RouteAPIEventID, apiHandler.GetEvent)
	})

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static filesystem: %w", err)
	}
	staticHandler := middleware.StaticCache(86400)(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Handle(handler.RouteStatic, staticHandler)

	r.NotFound(eventsHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
