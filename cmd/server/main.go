package main

import (
	"context"
	"eov-wgs-service/internal/adapters/display"
	"eov-wgs-service/internal/adapters/export"
	"eov-wgs-service/internal/adapters/files"
	"eov-wgs-service/internal/adapters/mapview"
	"eov-wgs-service/internal/adapters/opener"
	"eov-wgs-service/internal/adapters/projection"
	"eov-wgs-service/internal/adapters/store"
	"eov-wgs-service/internal/api"
	"eov-wgs-service/internal/config"
	"eov-wgs-service/internal/domain"
	"eov-wgs-service/internal/platform/logger"
	"eov-wgs-service/internal/ports"
	"eov-wgs-service/internal/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// main is the application composition root.
// It wires concrete adapters (PROJ, point store, map page) behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, logFile, err := logger.New().ToFile(cfg.LogFile).WithLevel(cfg.LogLevel).Make()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log = log.With().Str("env", cfg.Environment).Logger()
	ctx := log.WithContext(context.Background())

	st, err := store.Open(cfg.Store.Driver, cfg.Store.DatabaseURL, cfg.Store.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.Store.SeedPath != "" {
		if err := seedIfEmpty(ctx, st.Store, cfg.Store.SeedPath); err != nil {
			return err
		}
	}

	proj, err := projection.New()
	if err != nil {
		return err
	}
	defer proj.Close()

	conv, err := services.NewConverter(proj.FromEOV, proj.ToEOV)
	if err != nil {
		return err
	}

	var urls ports.URLOpener = opener.LogOpener{}
	if cfg.Server.OpenURLs {
		urls = opener.NewCommandOpener()
	}

	page := display.NewLatestMap()
	board := display.NewMessageBoard(0)

	dialog, err := services.NewDialog(services.DialogDeps{
		Validator: services.NewValidator(),
		Converter: conv,
		Store:     st.Store,
		Renderer:  mapview.NewRenderer(cfg.Map.TileURL, cfg.Map.Attribution),
		Display:   page,
		Opener:    urls,
		Notifier:  board,
		Files:     files.NewDirSink(cfg.Export.Dir),
		KML:       export.KMLEncoder{},
		GeoJSON:   export.GeoJSONEncoder{},
	}, domain.Coordinates{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon}, cfg.Map.Zoom)
	if err != nil {
		return err
	}

	// First paint: the map shows whatever the store already holds.
	if err := dialog.Refresh(ctx); err != nil {
		return err
	}

	router := api.NewRouter(api.Deps{
		Dialog:   dialog,
		Map:      page,
		Messages: board,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, log)
}

func seedIfEmpty(ctx context.Context, st ports.PointStore, path string) error {
	existing, err := st.All(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeds, err := store.LoadSeed(path)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := store.Seed(ctx, st, seeds); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	zerolog.Ctx(ctx).Info().Int("points", len(seeds)).Str("path", path).Msg("store seeded")
	return nil
}

// serve runs srv until SIGINT/SIGTERM, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
