// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/config"
	"github.com/niklasalamak0/PT-Bakat-Website/internal/images"
	"github.com/niklasalamak0/PT-Bakat-Website/internal/store"
	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfigFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Log) *slog.Logger {
	var out io.Writer = os.Stderr
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
	}

	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.Format) == "text" {
		return slog.New(slog.NewTextHandler(out, opts))
	}
	return slog.New(slog.NewJSONHandler(out, opts))
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store.Store, error) {
	st, err := store.New(ctx, store.Config{
		DatabaseURL: cfg.DatabaseURL,
		AppName:     "sitesync",
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return st, nil
}

// integrations bundles the optional Google-backed components. All fields are
// nil when the service account is not configured.
type integrations struct {
	Outbox     sheetmirror.Outbox
	Reconciler *sheetmirror.Reconciler
	Uploader   *images.Uploader
}

// buildIntegrations wires the sheet mirror and image hosting from the
// configured service account. Without credentials the server still runs;
// writes stay DB-only and the sync endpoints report a configuration error.
func buildIntegrations(ctx context.Context, cfg *config.Config, st *store.Store, logger *slog.Logger) (*integrations, error) {
	if !cfg.SheetsConfigured() {
		logger.Warn("Google integration not configured, sheet mirroring disabled")
		return &integrations{}, nil
	}

	credentials, err := os.ReadFile(cfg.Google.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read service account credentials: %w", err)
	}
	api, err := sheetmirror.NewGoogleDocumentAPI(ctx, credentials)
	if err != nil {
		return nil, err
	}

	mapping := cfg.MirrorMapping()
	syncer := sheetmirror.NewSyncer(api, mapping, st, logger)
	out := &integrations{
		Outbox:     sheetmirror.NewSheetOutbox(syncer, logger),
		Reconciler: sheetmirror.NewReconciler(api, mapping, st, st, logger),
	}

	if cfg.Google.DriveFolderID != "" {
		host, err := images.NewDriveBlobHost(api.Drive(), cfg.Google.DriveFolderID)
		if err != nil {
			return nil, err
		}
		out.Uploader = images.NewUploader(host, logger)
	}
	return out, nil
}
