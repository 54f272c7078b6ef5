// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package store

import (
	"context"
	"fmt"
)

// PairSeries holds one user's aligned rating and prediction vectors
// for one algorithm.
type PairSeries struct {
	Ratings     []float64
	Predictions []float64
}

// Counts reports staged row totals per table.
type Counts struct {
	Recs  int64
	Preds int64
	Truth int64
}

// RecAlgorithms returns the algorithms with staged recommendation
// lists, sorted.
func (s *Store) RecAlgorithms(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx, `SELECT DISTINCT algorithm FROM recs ORDER BY algorithm`)
}

// PredAlgorithms returns the algorithms with staged predictions,
// sorted.
func (s *Store) PredAlgorithms(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx, `SELECT DISTINCT algorithm FROM preds ORDER BY algorithm`)
}

// Users returns the sorted union of users across runs and truth. This
// is the observation universe: every algorithm is scored for every one
// of these users, scoring zero where it has no data.
func (s *Store) Users(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx, `
		SELECT DISTINCT user_id FROM (
			SELECT user_id FROM recs
			UNION
			SELECT user_id FROM preds
			UNION
			SELECT user_id FROM truth
		) ORDER BY user_id`)
}

// UserLists returns one algorithm's recommendation lists keyed by
// user, each list in ascending rank order.
func (s *Store) UserLists(ctx context.Context, algorithm string) (map[string][]string, error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()

	rows, err := s.conn.QueryContext(ctx, `
		SELECT user_id, item_id
		FROM recs
		WHERE algorithm = ?
		ORDER BY user_id, "rank"`, algorithm)
	if err != nil {
		return nil, fmt.Errorf("query lists for %s: %w", algorithm, err)
	}
	defer s.closeWithLog(rows, "rows")

	lists := make(map[string][]string)
	for rows.Next() {
		var user, item string
		if err := rows.Scan(&user, &item); err != nil {
			return nil, fmt.Errorf("scan list row: %w", err)
		}
		lists[user] = append(lists[user], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list rows: %w", err)
	}
	return lists, nil
}

// RelevantItems returns the per-user relevant item sets: truth rows
// with a rating at or above the threshold.
func (s *Store) RelevantItems(ctx context.Context, threshold float64) (map[string]map[string]bool, error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()

	rows, err := s.conn.QueryContext(ctx, `
		SELECT user_id, item_id
		FROM truth
		WHERE rating >= ?
		ORDER BY user_id, item_id`, threshold)
	if err != nil {
		return nil, fmt.Errorf("query relevant items: %w", err)
	}
	defer s.closeWithLog(rows, "rows")

	relevant := make(map[string]map[string]bool)
	for rows.Next() {
		var user, item string
		if err := rows.Scan(&user, &item); err != nil {
			return nil, fmt.Errorf("scan truth row: %w", err)
		}
		if relevant[user] == nil {
			relevant[user] = make(map[string]bool)
		}
		relevant[user][item] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate truth rows: %w", err)
	}
	return relevant, nil
}

// PredictionPairs returns one algorithm's aligned rating/prediction
// vectors keyed by user, in item order within each user.
func (s *Store) PredictionPairs(ctx context.Context, algorithm string) (map[string]PairSeries, error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()

	rows, err := s.conn.QueryContext(ctx, `
		SELECT user_id, rating, prediction
		FROM preds
		WHERE algorithm = ?
		ORDER BY user_id, item_id`, algorithm)
	if err != nil {
		return nil, fmt.Errorf("query prediction pairs for %s: %w", algorithm, err)
	}
	defer s.closeWithLog(rows, "rows")

	pairs := make(map[string]PairSeries)
	for rows.Next() {
		var user string
		var rating, prediction float64
		if err := rows.Scan(&user, &rating, &prediction); err != nil {
			return nil, fmt.Errorf("scan prediction row: %w", err)
		}
		series := pairs[user]
		series.Ratings = append(series.Ratings, rating)
		series.Predictions = append(series.Predictions, prediction)
		pairs[user] = series
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prediction rows: %w", err)
	}
	return pairs, nil
}

// RowCounts returns staged totals for logging and sanity checks.
func (s *Store) RowCounts(ctx context.Context) (Counts, error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()

	var c Counts
	for _, q := range []struct {
		table string
		dest  *int64
	}{
		{"recs", &c.Recs},
		{"preds", &c.Preds},
		{"truth", &c.Truth},
	} {
		if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+q.table).Scan(q.dest); err != nil {
			return Counts{}, fmt.Errorf("count %s: %w", q.table, err)
		}
	}
	return c, nil
}

// queryStrings runs a single-column string query.
func (s *Store) queryStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer s.closeWithLog(rows, "rows")

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}
