// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Package report renders evaluation results for people: aligned
// per-metric summary tables, terminal bar charts of per-algorithm
// means, and one result line per statistical comparison. The same
// evaluation can also be written as an indented JSON document for
// downstream tooling.
//
// # Rendering
//
// All text output goes to the writer the Reporter is constructed
// with, normally stdout. Charts scale to the configured width, or to
// the detected terminal width with an 80-column fallback; bar color
// is dropped when NO_COLOR is set or the writer is not a terminal
// width source. The JSON document is the only file the workbench ever
// writes, and only when a path is configured.
package report
