// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

// UpsertSectionVersion implements sheetmirror.VersionStore: persist the
// external document's last observed modification time, keyed by section.
func (s *Store) UpsertSectionVersion(ctx context.Context, section sheetmirror.Section, sheetModified time.Time) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sheet_versions (section, sheet_modified, db_synced)
		 VALUES ($1, $2, now())
		 ON CONFLICT (section)
		 DO UPDATE SET sheet_modified = EXCLUDED.sheet_modified, db_synced = now()`,
		string(section), sheetModified,
	)
	if err != nil {
		return fmt.Errorf("upsert sheet version for %s: %w", section, err)
	}
	return nil
}

// SectionVersions returns the persisted watermarks for all sections.
func (s *Store) SectionVersions(ctx context.Context) ([]SheetVersion, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT section, sheet_modified, db_synced FROM sheet_versions ORDER BY section`,
	)
	if err != nil {
		return nil, fmt.Errorf("query sheet versions: %w", err)
	}
	defer rows.Close()

	versions := []SheetVersion{}
	for rows.Next() {
		var v SheetVersion
		if err := rows.Scan(&v.Section, &v.SheetModified, &v.DBSynced); err != nil {
			return nil, fmt.Errorf("scan sheet version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}
