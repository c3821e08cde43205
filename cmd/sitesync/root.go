// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
)

var flagConfigFile string

var rootCmd = &cobra.Command{
	Use:   "sitesync",
	Short: "PT Bakat Karya Teknik website backend",
	Long: "Serves the marketing site REST API backed by PostgreSQL and mirrors\n" +
		"content writes into Google Sheets for the back office.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(migrateCmd)
}
