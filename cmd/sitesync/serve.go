// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/auth"
	"github.com/niklasalamak0/PT-Bakat-Website/internal/httpapi"
	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Log)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := openStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		integ, err := buildIntegrations(ctx, cfg, st, logger)
		if err != nil {
			return err
		}

		var outbox sheetmirror.Outbox = sheetmirror.NoopOutbox{}
		if integ.Outbox != nil {
			outbox = integ.Outbox
		}
		var uploader httpapi.ImageUploader
		if integ.Uploader != nil {
			uploader = integ.Uploader
		}
		var reconciler httpapi.Reconciler
		if integ.Reconciler != nil {
			reconciler = integ.Reconciler
		}

		api := httpapi.New(st, auth.NewTokenAuth(cfg.AdminSecret), outbox, uploader, reconciler, logger)

		server := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           api.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server listening", "addr", cfg.ListenAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}
