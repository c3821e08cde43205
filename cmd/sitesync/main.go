// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

// sitesync is the PT Bakat Karya Teknik website backend: REST API over
// PostgreSQL with best-effort Google Sheets mirroring.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
