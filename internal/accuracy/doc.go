// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Package accuracy computes per-user accuracy metrics for recommender
// output: list metrics over ranked top-N recommendations and error
// metrics over rating predictions.
//
// # List Metrics
//
// Precision, ReciprocalRank, NDCG, and Recall score one user's ranked
// list against the set of items the ground truth marks relevant for
// that user. Lists are truncated to the configured size before
// scoring, reciprocal rank excepted, which considers the full list. A
// user with no relevant items scores zero on every list metric.
//
// # Prediction Metrics
//
// RMSE and MAE aggregate the error between held-out ratings and the
// predictions an algorithm produced for the same (user, item) pairs.
// Both are computable over a whole run or per user; the per-user form
// feeds the significance stage.
//
// All functions are pure and safe for concurrent use.
package accuracy
