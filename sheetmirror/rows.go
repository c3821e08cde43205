// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

// Row is a sheet data row keyed by header name. Cells absent from the sheet
// are represented as empty strings, never as missing keys, so round-trips
// through the document store stay stable.
type Row map[string]string

// Merge returns a copy of r with the patch shallow-merged on top. Patch keys
// win on conflict; keys of r not named by the patch are preserved.
func (r Row) Merge(patch Row) Row {
	merged := make(Row, len(r)+len(patch))
	for k, v := range r {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// rowFromCells converts a positional cell slice into a Row using the header
// order. Rows shorter than the header are padded with empty strings; cells
// beyond the header are dropped.
func rowFromCells(headers, cells []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if i < len(cells) {
			row[h] = cells[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// cellsFromRow aligns a Row onto the header order. Fields not present in the
// headers are dropped; headers not present in the row become empty cells.
func cellsFromRow(headers []string, row Row) []string {
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = row[h]
	}
	return cells
}
