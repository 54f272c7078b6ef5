// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Package store stages run and truth rows in an in-memory DuckDB
// database and serves the aligned views the accuracy stage consumes.
//
// # Lifecycle
//
// A Store lives for one evaluation run: New opens a fresh `:memory:`
// database and creates the recs, preds, and truth tables; Close drops
// everything with the process. Nothing is ever written to disk.
//
// # Access
//
// Bulk inserts run inside a single transaction with a prepared
// statement. Query methods accept a context and apply a default
// timeout when the caller supplies none.
package store
