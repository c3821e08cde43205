// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

import (
	"context"
	"time"
)

// DocumentAPI is the boundary to the external document store. Implementations
// are assumed eventually consistent: a read immediately after a write is not
// guaranteed to observe that write.
//
// Row addressing: rowIndex is 1-based over data rows (the header row is not
// addressable). Deleting a row shifts all subsequent rows up by one.
type DocumentAPI interface {
	// ReadSheet returns the header row and all data rows of a sheet. A sheet
	// with no header row returns an empty headers slice, not an error.
	ReadSheet(ctx context.Context, spreadsheetID, sheetName string) (headers []string, rows [][]string, err error)

	// AppendRow appends one row of cells after the last data row.
	AppendRow(ctx context.Context, spreadsheetID, sheetName string, cells []string) error

	// UpdateRow rewrites the data row at rowIndex in place.
	UpdateRow(ctx context.Context, spreadsheetID, sheetName string, rowIndex int, cells []string) error

	// DeleteRow removes the data row at rowIndex.
	DeleteRow(ctx context.Context, spreadsheetID, sheetName string, rowIndex int) error

	// ModifiedTime returns the document's last modification timestamp.
	ModifiedTime(ctx context.Context, spreadsheetID string) (time.Time, error)
}
