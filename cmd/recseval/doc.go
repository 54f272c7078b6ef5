// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Command recseval evaluates offline recommender runs: it loads top-N
// recommendation lists and rating predictions produced by multiple
// algorithms, scores them against held-out ground truth, and tests
// whether the per-algorithm differences are statistically significant.
//
// # Commands
//
//   - evaluate: full pipeline, from run files to comparison report
//   - metrics: accuracy tables and charts only
//   - compare: significance testing over an existing metric table
//   - version: build information
//
// Configuration layers defaults, an optional YAML file, environment
// variables, and command-line flags, in increasing precedence.
package main
