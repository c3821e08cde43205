// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
)

// CreateService inserts a service and returns its DB-generated id.
func (s *Store) CreateService(ctx context.Context, svc Service) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO services (name, description, category, icon, features)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		svc.Name, svc.Description, svc.Category, svc.Icon, svc.Features,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert service: %w", err)
	}
	return id, nil
}

// ListServices returns all services ordered by name.
func (s *Store) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, description, category, icon, features
		 FROM services
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	services := []Service{}
	for rows.Next() {
		var svc Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Category, &svc.Icon, &svc.Features); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

// UpdateService overwrites all mutable fields of a service.
func (s *Store) UpdateService(ctx context.Context, svc Service) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE services
		 SET name = $2, description = $3, category = $4, icon = $5, features = $6
		 WHERE id = $1`,
		svc.ID, svc.Name, svc.Description, svc.Category, svc.Icon, svc.Features,
	)
	if err != nil {
		return fmt.Errorf("update service %d: %w", svc.ID, err)
	}
	return nil
}

// DeleteService removes a service by id.
func (s *Store) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete service %d: %w", id, err)
	}
	return nil
}
