// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Package analysis orchestrates one evaluation run: it scores every
// algorithm for every user, aligns the scores into per-metric sample
// frames, and fans the significance evaluator out over the configured
// metrics.
//
// # Pipeline
//
// Runner.BuildMetricTable walks the staged runs and produces the
// long-form per-user metric table, scoring zero wherever an algorithm
// has no data for a user. Comparer.Compare pivots that table into one
// aligned sample frame per metric and evaluates each frame;
// Runner.Evaluate chains the two and stamps the run.
//
// # Failure Semantics
//
// A metric whose evaluation fails on a data condition (misaligned
// frame, fully tied observations) is recorded as a failed result
// entry; the remaining metrics still evaluate. An empty metric list
// or an empty table is a programmer error that fails the whole run.
//
// # Ordering
//
// Results always come back in the configured metric order, sample
// vectors are aligned over sorted users, and algorithms are sorted
// everywhere, so repeated runs over the same input produce identical
// output regardless of the parallelism setting.
package analysis
