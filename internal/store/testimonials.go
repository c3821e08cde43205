// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
)

// CreateTestimonial inserts a testimonial and returns its id.
func (s *Store) CreateTestimonial(ctx context.Context, t Testimonial) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO testimonials (client_name, company, rating, comment, project_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		t.ClientName, t.Company, t.Rating, t.Comment, t.ProjectType,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert testimonial: %w", err)
	}
	return id, nil
}

// ListTestimonials returns all testimonials, newest first.
func (s *Store) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, client_name, company, rating, comment, project_type
		 FROM testimonials
		 ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []Testimonial{}
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.ClientName, &t.Company, &t.Rating, &t.Comment, &t.ProjectType); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// UpdateTestimonial overwrites all mutable fields of a testimonial.
func (s *Store) UpdateTestimonial(ctx context.Context, t Testimonial) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE testimonials
		 SET client_name = $2, company = $3, rating = $4, comment = $5, project_type = $6
		 WHERE id = $1`,
		t.ID, t.ClientName, t.Company, t.Rating, t.Comment, t.ProjectType,
	)
	if err != nil {
		return fmt.Errorf("update testimonial %d: %w", t.ID, err)
	}
	return nil
}

// DeleteTestimonial removes a testimonial by id.
func (s *Store) DeleteTestimonial(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete testimonial %d: %w", id, err)
	}
	return nil
}
