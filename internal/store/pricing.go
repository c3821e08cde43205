// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
)

// CreatePricingPackage inserts a pricing package and returns its id.
func (s *Store) CreatePricingPackage(ctx context.Context, p PricingPackage) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO pricing_packages (name, category, price_range, features, is_popular)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.Name, p.Category, p.PriceRange, p.Features, p.IsPopular,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert pricing package: %w", err)
	}
	return id, nil
}

// ListPricingPackages returns all pricing packages, popular first.
func (s *Store) ListPricingPackages(ctx context.Context) ([]PricingPackage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, category, price_range, features, is_popular
		 FROM pricing_packages
		 ORDER BY is_popular DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query pricing packages: %w", err)
	}
	defer rows.Close()

	packages := []PricingPackage{}
	for rows.Next() {
		var p PricingPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.PriceRange, &p.Features, &p.IsPopular); err != nil {
			return nil, fmt.Errorf("scan pricing package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// UpdatePricingPackage overwrites all mutable fields of a pricing package.
func (s *Store) UpdatePricingPackage(ctx context.Context, p PricingPackage) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE pricing_packages
		 SET name = $2, category = $3, price_range = $4, features = $5, is_popular = $6
		 WHERE id = $1`,
		p.ID, p.Name, p.Category, p.PriceRange, p.Features, p.IsPopular,
	)
	if err != nil {
		return fmt.Errorf("update pricing package %d: %w", p.ID, err)
	}
	return nil
}

// DeletePricingPackage removes a pricing package by id.
func (s *Store) DeletePricingPackage(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM pricing_packages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete pricing package %d: %w", id, err)
	}
	return nil
}
