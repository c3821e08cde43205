// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

// CreatePortfolio inserts a portfolio row, stamping updated_at/updated_by,
// and returns its DB-generated id. ImagesJSON must already be serialized.
func (s *Store) CreatePortfolio(ctx context.Context, p Portfolio, imagesJSON, updatedBy string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO portfolios
		   (title, description, category, image_url, client_name, completion_date,
		    location, images, thumbnail, alt, updated_at, updated_by)
		 VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10, now(), $11)
		 RETURNING id`,
		p.Title, p.Description, p.Category, p.ImageURL, p.ClientName, p.CompletionDate,
		p.Location, imagesJSON, p.Thumbnail, p.Alt, updatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert portfolio: %w", err)
	}
	return id, nil
}

// ListPortfolios returns portfolios newest-completed first, optionally
// filtered by category and capped by limit (0 means no limit).
func (s *Store) ListPortfolios(ctx context.Context, category string, limit int) ([]Portfolio, error) {
	query := `SELECT id, title, description, category, image_url, client_name,
	                 completion_date::text, location, images, thumbnail, alt, updated_at, updated_by
	          FROM portfolios`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY completion_date DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query portfolios: %w", err)
	}
	defer rows.Close()

	portfolios := []Portfolio{}
	for rows.Next() {
		var p Portfolio
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL,
			&p.ClientName, &p.CompletionDate, &p.Location, &p.Images, &p.Thumbnail,
			&p.Alt, &p.UpdatedAt, &p.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan portfolio: %w", err)
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

// UpdatePortfolio overwrites all mutable fields and stamps
// updated_at/updated_by.
func (s *Store) UpdatePortfolio(ctx context.Context, p Portfolio, imagesJSON, updatedBy string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE portfolios
		 SET title = $2, description = $3, category = $4, image_url = $5,
		     client_name = $6, completion_date = $7::date, location = $8,
		     images = $9, thumbnail = $10, alt = $11, updated_at = now(), updated_by = $12
		 WHERE id = $1`,
		p.ID, p.Title, p.Description, p.Category, p.ImageURL,
		p.ClientName, p.CompletionDate, p.Location,
		imagesJSON, p.Thumbnail, p.Alt, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("update portfolio %d: %w", p.ID, err)
	}
	return nil
}

// PortfolioImagesJSON returns the serialized images column of a portfolio,
// or "" when the row or the column value is absent.
func (s *Store) PortfolioImagesJSON(ctx context.Context, id int64) (string, error) {
	var images *string
	err := s.pool.QueryRow(ctx, `SELECT images FROM portfolios WHERE id = $1`, id).Scan(&images)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query portfolio images %d: %w", id, err)
	}
	if images == nil {
		return "", nil
	}
	return *images, nil
}

// DeletePortfolio removes a portfolio by id.
func (s *Store) DeletePortfolio(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete portfolio %d: %w", id, err)
	}
	return nil
}

// PortfolioUpdatedAt implements sheetmirror.PortfolioReconcileStore. A NULL
// updated_at is reported as the zero time so it compares as infinitely old.
func (s *Store) PortfolioUpdatedAt(ctx context.Context, id int64) (time.Time, bool, error) {
	var updatedAt *time.Time
	err := s.pool.QueryRow(ctx, `SELECT updated_at FROM portfolios WHERE id = $1`, id).Scan(&updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("query portfolio updated_at %d: %w", id, err)
	}
	if updatedAt == nil {
		return time.Time{}, true, nil
	}
	return *updatedAt, true, nil
}

// ApplyPortfolioImages implements sheetmirror.PortfolioReconcileStore:
// overwrite the image-related columns and updated_at with sheet-side values.
func (s *Store) ApplyPortfolioImages(ctx context.Context, patch sheetmirror.PortfolioImagePatch) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE portfolios
		 SET images = $2, thumbnail = $3, alt = $4, updated_at = $5
		 WHERE id = $1`,
		patch.ID, patch.ImagesJSON, patch.Thumbnail, patch.Alt, patch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("apply sheet images to portfolio %d: %w", patch.ID, err)
	}
	return nil
}
