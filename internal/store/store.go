// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
)

// queryTimeout bounds store operations when the caller's context has
// no deadline of its own.
const queryTimeout = 30 * time.Second

// Store wraps the in-memory DuckDB staging database.
type Store struct {
	conn   *sql.DB
	cfg    *config.StoreConfig
	logger zerolog.Logger
}

// New opens a fresh in-memory database and creates the staging schema.
func New(cfg *config.StoreConfig, logger zerolog.Logger) (*Store, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	preserveOrder := "true"
	if !cfg.PreserveInsertionOrder {
		preserveOrder = "false"
	}

	// Extension auto-install is disabled; the staging schema needs
	// nothing beyond the core engine.
	connStr := fmt.Sprintf(":memory:?threads=%d&max_memory=%s&preserve_insertion_order=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		threads, cfg.MaxMemory, preserveOrder)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open staging database: %w", err)
	}

	conn.SetMaxOpenConns(threads)
	conn.SetMaxIdleConns(threads)
	conn.SetConnMaxLifetime(0)

	s := &Store{
		conn:   conn,
		cfg:    cfg,
		logger: logger.With().Str("component", "store").Logger(),
	}

	if err := s.initSchema(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("initialize staging schema: %w", err)
	}

	s.logger.Debug().
		Int("threads", threads).
		Str("max_memory", cfg.MaxMemory).
		Msg("Opened in-memory staging database")

	return s, nil
}

// initSchema creates the staging tables.
func (s *Store) initSchema() error {
	ctx, cancel := s.ensureContext(context.Background())
	defer cancel()

	schema := []string{
		`CREATE TABLE recs (
			algorithm VARCHAR NOT NULL,
			user_id   VARCHAR NOT NULL,
			item_id   VARCHAR NOT NULL,
			score     DOUBLE  NOT NULL,
			"rank"    INTEGER NOT NULL
		)`,
		`CREATE TABLE preds (
			algorithm  VARCHAR NOT NULL,
			user_id    VARCHAR NOT NULL,
			item_id    VARCHAR NOT NULL,
			rating     DOUBLE  NOT NULL,
			prediction DOUBLE  NOT NULL
		)`,
		`CREATE TABLE truth (
			user_id VARCHAR NOT NULL,
			item_id VARCHAR NOT NULL,
			rating  DOUBLE  NOT NULL
		)`,
	}

	for _, ddl := range schema {
		if _, err := s.conn.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// Ping checks that the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("store connection is nil")
	}
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	return s.conn.PingContext(ctx)
}

// Close releases the database. All staged data is dropped with it.
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// ensureContext guarantees a deadline on database operations.
func (s *Store) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), queryTimeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, queryTimeout)
	}
	return ctx, func() {}
}

// closeWithLog closes a resource and logs any error. For cleanup that
// should be acknowledged but never fail the operation.
func (s *Store) closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		s.logger.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error. For
// cleanup in error paths where Close errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
