// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Package models defines the data types shared across the evaluation
// pipeline: raw rows loaded from run and truth files, the long-form
// per-user metric table, and the summary records rendered by reports.
//
// All types are plain values with no behavior beyond small accessors.
// Nothing in this package is persisted; every value lives for a single
// evaluation run.
package models
