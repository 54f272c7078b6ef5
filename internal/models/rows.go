// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package models

// RecRow is one entry of a top-N recommendation list produced by an
// algorithm run: the item recommended to a user at a given rank.
type RecRow struct {
	// Algorithm is the identifier of the run that produced this row,
	// derived from the run file name (e.g. "ALS", "UU").
	Algorithm string `json:"algorithm"`

	// User is the observation key shared with the ground truth.
	User string `json:"user"`

	// Item is the recommended item identifier.
	Item string `json:"item"`

	// Score is the model score that produced the ranking.
	Score float64 `json:"score"`

	// Rank is the 1-based position of the item in the user's list.
	Rank int `json:"rank"`
}

// PredRow is one rating prediction produced by an algorithm run,
// paired with the held-out actual rating.
type PredRow struct {
	Algorithm  string  `json:"algorithm"`
	User       string  `json:"user"`
	Item       string  `json:"item"`
	Rating     float64 `json:"rating"`
	Prediction float64 `json:"prediction"`
}

// TruthRow is one held-out rating from the ground-truth partition.
type TruthRow struct {
	User   string  `json:"user"`
	Item   string  `json:"item"`
	Rating float64 `json:"rating"`
}

// UserMetricRow is one cell of the long-form metric table: the value of
// one metric for one user under one algorithm. The table is the input
// surface of the significance stage.
type UserMetricRow struct {
	Algorithm string  `json:"algorithm"`
	User      string  `json:"user"`
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
}

// MetricSummary is the per-algorithm aggregate of one metric, used for
// tables and charts.
type MetricSummary struct {
	Algorithm string `json:"algorithm"`

	Metric string `json:"metric"`

	// Mean is the average metric value over all scored users.
	Mean float64 `json:"mean"`

	// Users is the number of observations the mean covers.
	Users int `json:"users"`
}
