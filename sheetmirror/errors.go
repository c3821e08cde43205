// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

import "errors"

// Error sentinels for mirror operations. ErrNotConfigured and ErrNoHeader
// are configuration-tier errors: they will not heal on retry and the outbox
// does not retry them.
var (
	// ErrNotConfigured means the section has no spreadsheet mapping or the
	// document credentials are missing.
	ErrNotConfigured = errors.New("sheet mapping not configured")

	// ErrNoHeader means the configured sheet exists but has no header row,
	// so rows cannot be keyed by column name.
	ErrNoHeader = errors.New("sheet has no header row")

	// ErrRowNotFound means no data row matched the requested id column value.
	ErrRowNotFound = errors.New("sheet row not found")
)

// IsConfigError reports whether err belongs to the configuration tier.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNotConfigured) || errors.Is(err, ErrNoHeader)
}
