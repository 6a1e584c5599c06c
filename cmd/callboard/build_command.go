package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"callboard/internal/config"
	"callboard/internal/dumper"
	"callboard/internal/loader"
	"callboard/internal/photos"
	"callboard/internal/store"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Ingest the content tree and export every artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			release, err := acquireBuildLock(cfg)
			if err != nil {
				return err
			}
			defer release()

			st, err := store.Open(cfg.Paths.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()

			start := time.Now()
			if err := runLoad(cmd.Context(), cfg, st, logger); err != nil {
				return err
			}
			if err := dumper.New(st, cfg, logger).Run(cmd.Context()); err != nil {
				return err
			}
			logger.Info("build complete",
				"output", cfg.Paths.OutputDir,
				"elapsed", time.Since(start).Round(time.Millisecond).String())
			return nil
		},
	}
}

func newLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Ingest the content tree into the archive database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			release, err := acquireBuildLock(cfg)
			if err != nil {
				return err
			}
			defer release()

			st, err := store.Open(cfg.Paths.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()

			return runLoad(cmd.Context(), cfg, st, logger)
		},
	}
}

func runLoad(ctx context.Context, cfg *config.Config, st *store.Store, logger *slog.Logger) error {
	return loader.New(st, cfg, newPhotoClient(cfg, logger), logger).Run(ctx)
}

// newPhotoClient wires the photo host client when photo enrichment is
// configured, with the on-disk cache in front when a cache directory
// is set.
func newPhotoClient(cfg *config.Config, logger *slog.Logger) photos.Client {
	if !cfg.Photos.Enabled {
		return nil
	}
	var client photos.Client = photos.NewHTTPClient(cfg.Photos.BaseURL, cfg.Photos.APIKey)
	if cfg.Photos.CacheDir != "" {
		client = photos.NewCachedClient(client, cfg.Photos.CacheDir, logger)
	}
	return client
}

// acquireBuildLock takes the single-build lock. Two builds sharing an
// output directory would interleave the reset and the writes.
func acquireBuildLock(cfg *config.Config) (func(), error) {
	lockPath := filepath.Join(cfg.Paths.LogDir, "callboard.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another build holds the lock at %s", lockPath)
	}
	return func() { _ = lock.Unlock() }, nil
}
