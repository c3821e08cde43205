// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Pull portfolio image metadata from the sheet into the database",
	Long: "Runs one sheet-to-database reconciliation pass over the portfolios\n" +
		"section. Sheet rows with a newer updatedAt than the database row win;\n" +
		"everything else is left untouched. Run from cron or by hand; do not\n" +
		"run two passes concurrently.",
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

		integ, err := buildIntegrations(ctx, cfg, st, logger)
		if err != nil {
			return err
		}
		if integ.Reconciler == nil {
			return fmt.Errorf("google integration is not configured; set google.credentials_file and a sheets.portfolios section")
		}

		updated, err := integ.Reconciler.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reconciled portfolios: %d row(s) updated\n", updated)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
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
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}
