// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CreateContactSubmission inserts a contact form entry with status pending
// and returns its id and creation time.
func (s *Store) CreateContactSubmission(ctx context.Context, c ContactSubmission) (ContactSubmission, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, service_type, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, status, created_at`,
		c.Name, c.Email, c.Phone, c.ServiceType, c.Message,
	).Scan(&c.ID, &c.Status, &c.CreatedAt)
	if err != nil {
		return ContactSubmission{}, fmt.Errorf("insert contact submission: %w", err)
	}
	return c, nil
}

// ListContactSubmissions returns all submissions, newest first.
func (s *Store) ListContactSubmissions(ctx context.Context) ([]ContactSubmission, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, phone, service_type, message, status, created_at
		 FROM contact_submissions
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query contact submissions: %w", err)
	}
	defer rows.Close()

	submissions := []ContactSubmission{}
	for rows.Next() {
		var c ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.ServiceType, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		submissions = append(submissions, c)
	}
	return submissions, rows.Err()
}

// UpdateContactStatus sets the status of a submission. Returns ErrNotFound
// when no submission has the given id. Status validity is the caller's
// responsibility; the CHECK constraint is the last line of defense.
func (s *Store) UpdateContactStatus(ctx context.Context, id int64, status string) (ContactSubmission, error) {
	var c ContactSubmission
	err := s.pool.QueryRow(ctx,
		`UPDATE contact_submissions
		 SET status = $2
		 WHERE id = $1
		 RETURNING id, name, email, phone, service_type, message, status, created_at`,
		id, status,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.ServiceType, &c.Message, &c.Status, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ContactSubmission{}, fmt.Errorf("contact submission %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return ContactSubmission{}, fmt.Errorf("update contact status %d: %w", id, err)
	}
	return c, nil
}
