package main

import (
	"context"
	"eov-wgs-service/internal/adapters/store"
	"eov-wgs-service/internal/config"
	"eov-wgs-service/internal/platform/logger"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// dbtool creates the points schema for the configured SQL store and optionally
// seeds it from SEED_PATH.
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

	log, _, err := logger.New().ToWriter(os.Stderr).WithLevel(cfg.LogLevel).Make()
	if err != nil {
		return err
	}
	ctx := log.WithContext(context.Background())

	return initAndSeed(ctx, cfg.Store)
}

func initAndSeed(ctx context.Context, sc config.StoreConfig) error {
	log := zerolog.Ctx(ctx)

	if sc.Driver == "memory" {
		return errors.New("dbtool: STORE_DRIVER must be postgres or sqlite")
	}

	log.Info().Str("driver", sc.Driver).Msg("initializing database schema")
	st, err := store.Open(sc.Driver, sc.DatabaseURL, sc.DBPath)
	if err != nil {
		return fmt.Errorf("dbtool: schema initialization failed: %w", err)
	}
	defer st.Close()
	log.Info().Msg("schema ready")

	if sc.SeedPath == "" {
		return nil
	}

	seeds, err := store.LoadSeed(sc.SeedPath)
	if err != nil {
		return fmt.Errorf("dbtool: seeding failed: %w", err)
	}
	if err := store.Seed(ctx, st.Store, seeds); err != nil {
		return fmt.Errorf("dbtool: seeding failed: %w", err)
	}
	log.Info().Int("points", len(seeds)).Str("path", sc.SeedPath).Msg("seeding complete")
	return nil
}
