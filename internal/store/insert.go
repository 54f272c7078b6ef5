// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
)

// InsertRecs stages recommendation rows in one transaction.
func (s *Store) InsertRecs(ctx context.Context, rows []models.RecRow) error {
	return s.bulkInsert(ctx, "recs",
		`INSERT INTO recs (algorithm, user_id, item_id, score, "rank") VALUES (?, ?, ?, ?, ?)`,
		len(rows),
		func(i int) []interface{} {
			r := rows[i]
			return []interface{}{r.Algorithm, r.User, r.Item, r.Score, r.Rank}
		})
}

// InsertPreds stages prediction rows in one transaction.
func (s *Store) InsertPreds(ctx context.Context, rows []models.PredRow) error {
	return s.bulkInsert(ctx, "preds",
		`INSERT INTO preds (algorithm, user_id, item_id, rating, prediction) VALUES (?, ?, ?, ?, ?)`,
		len(rows),
		func(i int) []interface{} {
			r := rows[i]
			return []interface{}{r.Algorithm, r.User, r.Item, r.Rating, r.Prediction}
		})
}

// InsertTruth stages ground-truth rows in one transaction.
func (s *Store) InsertTruth(ctx context.Context, rows []models.TruthRow) error {
	return s.bulkInsert(ctx, "truth",
		`INSERT INTO truth (user_id, item_id, rating) VALUES (?, ?, ?)`,
		len(rows),
		func(i int) []interface{} {
			r := rows[i]
			return []interface{}{r.User, r.Item, r.Rating}
		})
}

// bulkInsert runs the prepared insert for every row inside a single
// transaction, rolling back on the first failure.
func (s *Store) bulkInsert(ctx context.Context, table, query string, count int, args func(i int) []interface{}) (err error) {
	if count == 0 {
		return nil
	}

	ctx, cancel := s.ensureContext(ctx)
	defer cancel()

	start := time.Now()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s insert: %w", table, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Str("table", table).
					Msg("Transaction rollback failed")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", table, err)
	}
	defer s.closeWithLog(stmt, "prepared statement")

	for i := 0; i < count; i++ {
		if _, err = stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", table, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit %s insert: %w", table, err)
	}

	s.logger.Debug().
		Int("rows", count).
		Str("table", table).
		Dur("duration", time.Since(start)).
		Msg("Staged rows")

	return nil
}
