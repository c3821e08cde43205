// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// VersionStore persists the per-section watermark: the external document's
// last observed modification time, upserted by section name. The watermark is
// bookkeeping only; it is never consulted to block writes.
type VersionStore interface {
	UpsertSectionVersion(ctx context.Context, section Section, sheetModified time.Time) error
}

// Syncer propagates authoritative DB mutations into the mirror document and
// records the observed document version afterwards. Each method is designed
// to run after the DB write has already committed; callers must treat
// failures as best-effort (see Outbox) rather than rolling back the write.
type Syncer struct {
	api      DocumentAPI
	mapping  Mapping
	versions VersionStore
	logger   *slog.Logger
}

// NewSyncer creates a syncer over the given document store and mapping.
func NewSyncer(api DocumentAPI, mapping Mapping, versions VersionStore, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{api: api, mapping: mapping, versions: versions, logger: logger}
}

// AppendToSection appends a row to the section's sheet and stamps the
// watermark.
func (s *Syncer) AppendToSection(ctx context.Context, section Section, row Row) error {
	client, err := NewClient(s.api, s.mapping, section)
	if err != nil {
		return err
	}
	if err := client.Append(ctx, row); err != nil {
		return err
	}
	return s.stampVersion(ctx, client)
}

// UpdateRowInSection merges the patch onto the section row keyed by id and
// stamps the watermark.
func (s *Syncer) UpdateRowInSection(ctx context.Context, section Section, id string, patch Row) error {
	client, err := NewClient(s.api, s.mapping, section)
	if err != nil {
		return err
	}
	if err := client.UpdateByID(ctx, id, patch); err != nil {
		return err
	}
	return s.stampVersion(ctx, client)
}

// DeleteRowFromSection deletes the section row keyed by id and stamps the
// watermark. A row that is already gone still results in a watermark update.
func (s *Syncer) DeleteRowFromSection(ctx context.Context, section Section, id string) error {
	client, err := NewClient(s.api, s.mapping, section)
	if err != nil {
		return err
	}
	if err := client.DeleteByID(ctx, id); err != nil {
		return err
	}
	return s.stampVersion(ctx, client)
}

// stampVersion re-reads the document's modification time and upserts it as
// the section watermark. This is a second round trip after the write; the
// document store offers no pipelined write-and-report-version call.
func (s *Syncer) stampVersion(ctx context.Context, client *Client) error {
	version, err := client.Version(ctx)
	if err != nil {
		return err
	}
	if err := s.versions.UpsertSectionVersion(ctx, client.Section(), version); err != nil {
		return fmt.Errorf("persist watermark for %s: %w", client.Section(), err)
	}
	return nil
}
