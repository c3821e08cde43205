// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

// Package store is the PostgreSQL system of record for the marketing site.
// The spreadsheet mirror is a lossily-typed shadow of these tables; every id
// here is DB-generated and authoritative.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row keyed by id does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps a pgx connection pool with the site's table operations.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Config holds connection settings for the store.
type Config struct {
	DatabaseURL string
	AppName     string
}

// New connects a pool, pings it and returns the store. Callers own Close.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.AppName != "" {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	poolCfg.MaxConns = 20
	poolCfg.MinConns = 2
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool, logger: logger}, nil
}

// NewFromPool wraps an existing pool, mainly for tests and embedding.
func NewFromPool(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{pool: pool, logger: logger}
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Migrate creates the site tables if they don't exist. Statements are
// idempotent and run inside one transaction.
func (s *Store) Migrate(ctx context.Context) error {
	migrations := []string{
		/*language=postgresql*/ `CREATE TABLE IF NOT EXISTS services (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT   NOT NULL,
			description TEXT   NOT NULL,
			category    TEXT   NOT NULL,
			icon        TEXT   NOT NULL,
			features    TEXT[] NOT NULL DEFAULT '{}'
		)`,

		/*language=postgresql*/ `CREATE TABLE IF NOT EXISTS portfolios (
			id              BIGSERIAL PRIMARY KEY,
			title           TEXT NOT NULL,
			description     TEXT NOT NULL,
			category        TEXT NOT NULL,
			image_url       TEXT NOT NULL,
			client_name     TEXT NOT NULL,
			completion_date DATE NOT NULL,
			location        TEXT NOT NULL,
			images          TEXT,
			thumbnail       TEXT,
			alt             TEXT,
			updated_at      TIMESTAMPTZ,
			updated_by      TEXT
		)`,

		/*language=postgresql*/ `CREATE TABLE IF NOT EXISTS pricing_packages (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT    NOT NULL,
			category    TEXT    NOT NULL,
			price_range TEXT    NOT NULL,
			features    TEXT[]  NOT NULL DEFAULT '{}',
			is_popular  BOOLEAN NOT NULL DEFAULT FALSE
		)`,

		/*language=postgresql*/ `CREATE TABLE IF NOT EXISTS testimonials (
			id           BIGSERIAL PRIMARY KEY,
			client_name  TEXT NOT NULL,
			company      TEXT NOT NULL,
			rating       INT  NOT NULL,
			comment      TEXT NOT NULL,
			project_type TEXT NOT NULL
		)`,

		/*language=postgresql*/ `CREATE TABLE IF NOT EXISTS contact_submissions (
			id           BIGSERIAL PRIMARY KEY,
			name         TEXT NOT NULL,
			email        TEXT NOT NULL,
			phone        TEXT NOT NULL,
			service_type TEXT NOT NULL,
			message      TEXT NOT NULL,
			status       TEXT NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending','contacted','completed')),
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		/*language=postgresql*/ `CREATE TABLE IF NOT EXISTS sheet_versions (
			section        TEXT PRIMARY KEY,
			sheet_modified TIMESTAMPTZ NOT NULL,
			db_synced      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE INDEX IF NOT EXISTS portfolios_category_idx ON portfolios(category)`,
		`CREATE INDEX IF NOT EXISTS contact_submissions_status_idx ON contact_submissions(status)`,
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, m := range migrations {
			if _, err := tx.Exec(ctx, m); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
		}
		return nil
	})
}
