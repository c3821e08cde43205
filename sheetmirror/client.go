// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

import (
	"context"
	"fmt"
	"time"
)

// SheetData is a full snapshot of one section's sheet: the header row, every
// data row keyed by header name, and the document's modification timestamp
// observed alongside the read.
type SheetData struct {
	Headers []string
	Rows    []Row
	Version time.Time
}

// Client performs CRUD against one section's sheet, translating between
// entity field names and the sheet's column headers.
//
// Row location is a linear scan over all loaded rows. That is O(n) per
// operation and acceptable only for the expected row counts (tens to low
// hundreds); a larger dataset would need an id -> position index rebuilt on
// each full read.
type Client struct {
	api     DocumentAPI
	section Section
	cfg     SectionConfig
}

// NewClient resolves the section's document address and returns a client for
// it. Returns ErrNotConfigured when the section has no mapping.
func NewClient(api DocumentAPI, mapping Mapping, section Section) (*Client, error) {
	cfg, err := mapping.For(section)
	if err != nil {
		return nil, err
	}
	return &Client{api: api, section: section, cfg: cfg}, nil
}

// Section returns the section this client operates on.
func (c *Client) Section() Section { return c.section }

// Read fetches the header row and all data rows, converting each data row
// into a Row. Fails with ErrNoHeader when the sheet has no header row.
func (c *Client) Read(ctx context.Context) (*SheetData, error) {
	headers, cells, err := c.api.ReadSheet(ctx, c.cfg.SpreadsheetID, c.cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", c.cfg.SheetName, err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: sheet %s", ErrNoHeader, c.cfg.SheetName)
	}

	rows := make([]Row, len(cells))
	for i, rc := range cells {
		rows[i] = rowFromCells(headers, rc)
	}

	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}
	return &SheetData{Headers: headers, Rows: rows, Version: version}, nil
}

// Version returns the document's last modification timestamp.
func (c *Client) Version(ctx context.Context) (time.Time, error) {
	v, err := c.api.ModifiedTime(ctx, c.cfg.SpreadsheetID)
	if err != nil {
		return time.Time{}, fmt.Errorf("get document version: %w", err)
	}
	return v, nil
}

// Append maps the row onto the current header order and appends it after the
// last data row. Row fields without a matching header are dropped silently.
func (c *Client) Append(ctx context.Context, row Row) error {
	data, err := c.Read(ctx)
	if err != nil {
		return err
	}
	cells := cellsFromRow(data.Headers, row)
	if err := c.api.AppendRow(ctx, c.cfg.SpreadsheetID, c.cfg.SheetName, cells); err != nil {
		return fmt.Errorf("append row to %s: %w", c.cfg.SheetName, err)
	}
	return nil
}

// UpdateByID locates the row whose id column stringwise equals id, merges the
// patch over the row's existing values (patch wins) and rewrites the row in
// place. Returns ErrRowNotFound when no row matches.
func (c *Client) UpdateByID(ctx context.Context, id string, patch Row) error {
	data, err := c.Read(ctx)
	if err != nil {
		return err
	}
	idx := c.findRowIndex(data, id)
	if idx == 0 {
		return fmt.Errorf("%w: %s=%s in sheet %s", ErrRowNotFound, c.cfg.IDColumn, id, c.cfg.SheetName)
	}
	merged := data.Rows[idx-1].Merge(patch)
	cells := cellsFromRow(data.Headers, merged)
	if err := c.api.UpdateRow(ctx, c.cfg.SpreadsheetID, c.cfg.SheetName, idx, cells); err != nil {
		return fmt.Errorf("update row %d in %s: %w", idx, c.cfg.SheetName, err)
	}
	return nil
}

// DeleteByID removes the row whose id column stringwise equals id. Deleting a
// row that does not exist is a no-op, so deletes are idempotent.
func (c *Client) DeleteByID(ctx context.Context, id string) error {
	data, err := c.Read(ctx)
	if err != nil {
		return err
	}
	idx := c.findRowIndex(data, id)
	if idx == 0 {
		return nil
	}
	if err := c.api.DeleteRow(ctx, c.cfg.SpreadsheetID, c.cfg.SheetName, idx); err != nil {
		return fmt.Errorf("delete row %d in %s: %w", idx, c.cfg.SheetName, err)
	}
	return nil
}

// findRowIndex returns the 1-based data row index matching id, or 0.
func (c *Client) findRowIndex(data *SheetData, id string) int {
	for i, row := range data.Rows {
		if row[c.cfg.IDColumn] == id {
			return i + 1
		}
	}
	return 0
}
