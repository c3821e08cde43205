// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"
)

// PortfolioImagePatch carries the sheet-side image metadata applied to a
// portfolio row when the sheet's timestamp wins. ImagesJSON is the
// normalized serialized list stored in the portfolios.images text column.
type PortfolioImagePatch struct {
	ID         int64
	ImagesJSON string
	Thumbnail  string
	Alt        string
	UpdatedAt  time.Time
}

// PortfolioReconcileStore is the slice of the relational store the
// reconciler needs: row existence plus updated_at lookup, and the image
// field overwrite.
type PortfolioReconcileStore interface {
	// PortfolioUpdatedAt returns the row's updated_at and whether the row
	// exists. A NULL updated_at is reported as the zero time, which compares
	// as infinitely old.
	PortfolioUpdatedAt(ctx context.Context, id int64) (time.Time, bool, error)

	// ApplyPortfolioImages overwrites images, thumbnail, alt and updated_at.
	ApplyPortfolioImages(ctx context.Context, patch PortfolioImagePatch) error
}

// Reconciler pulls spreadsheet-side edits to portfolio image metadata back
// into the DB, last-write-wins at row granularity using the row's updatedAt
// cell against the DB's updated_at.
//
// The comparison trusts a client-supplied timestamp, with no protection
// against clock skew or out-of-order edits. That is acceptable only because
// the sheet editor is a trusted administrator.
//
// A Reconciler run is not safe to execute concurrently with itself; callers
// must ensure a single runner.
type Reconciler struct {
	api      DocumentAPI
	mapping  Mapping
	store    PortfolioReconcileStore
	versions VersionStore
	logger   *slog.Logger
}

// NewReconciler creates a reconciler for the portfolios section.
func NewReconciler(api DocumentAPI, mapping Mapping, store PortfolioReconcileStore, versions VersionStore, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{api: api, mapping: mapping, store: store, versions: versions, logger: logger}
}

// Run executes one reconciliation pass and returns the number of DB rows
// updated. The section watermark is persisted after a completed pass whether
// or not any row changed.
func (r *Reconciler) Run(ctx context.Context) (int, error) {
	client, err := NewClient(r.api, r.mapping, SectionPortfolios)
	if err != nil {
		return 0, err
	}
	data, err := client.Read(ctx)
	if err != nil {
		return 0, err
	}
	idColumn := "id"
	if cfg, err := r.mapping.For(SectionPortfolios); err == nil {
		idColumn = cfg.IDColumn
	}

	updated := 0
	for _, row := range data.Rows {
		id, err := strconv.ParseInt(row[idColumn], 10, 64)
		if err != nil || id <= 0 {
			continue
		}

		sheetUpdatedAt, ok := parseSheetTime(row["updatedAt"])
		if !ok {
			// No parseable sheet-side timestamp means no sheet-side update.
			continue
		}

		dbUpdatedAt, found, err := r.store.PortfolioUpdatedAt(ctx, id)
		if err != nil {
			return updated, err
		}
		if !found {
			continue
		}
		if !sheetUpdatedAt.After(dbUpdatedAt) {
			continue
		}

		patch := PortfolioImagePatch{
			ID:         id,
			ImagesJSON: normalizeImageList(row["images"]),
			Thumbnail:  row["thumbnail"],
			Alt:        row["alt"],
			UpdatedAt:  sheetUpdatedAt,
		}
		if err := r.store.ApplyPortfolioImages(ctx, patch); err != nil {
			return updated, err
		}
		updated++
		r.logger.Info("portfolio reconciled from sheet", "id", id, "updated_at", sheetUpdatedAt)
	}

	if err := r.versions.UpsertSectionVersion(ctx, SectionPortfolios, data.Version); err != nil {
		return updated, err
	}
	return updated, nil
}

// sheetTimeLayouts covers the timestamp renderings spreadsheets commonly
// hold: RFC3339 as written by the handlers, plus space-separated and
// date-only forms produced by hand edits.
var sheetTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseSheetTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range sheetTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeImageList re-serializes the cell value after validating it parses
// as a JSON list. Anything else falls back to an empty list.
func normalizeImageList(value string) string {
	if value == "" {
		return "[]"
	}
	var list []any
	if err := json.Unmarshal([]byte(value), &list); err != nil || list == nil {
		return "[]"
	}
	out, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(out)
}
