// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Package significance decides whether observed metric differences
// between algorithms are statistically meaningful.
//
// # Procedure
//
// Given one metric's per-user sample vectors, one per algorithm and
// aligned on the same users, the evaluator runs a two-stage procedure:
//
//  1. Omnibus: a Friedman rank test over all algorithms at once. If its
//     p-value is at or above the significance level, the evaluation
//     stops with a single "no significant difference" record.
//  2. Post-hoc: if the omnibus is significant, every unordered pair of
//     algorithms is compared with a Wilcoxon signed-rank test on the
//     matched per-user differences. Pairwise p-values are judged
//     against a Bonferroni-adjusted threshold (level divided by the
//     number of pairs, computed once per evaluation) to control the
//     family-wise error rate.
//
// Pairs are enumerated from the lexicographically sorted algorithm
// identifiers in combination order, so output ordering is deterministic
// and repeated runs over the same input produce identical results.
//
// # Edge Cases
//
// Fewer than three algorithms leaves the Friedman test undefined; the
// evaluation reports "not applicable" and skips both stages. A pair
// whose per-user differences are all zero has no defined signed-rank
// statistic; such pairs are reported with the distinct Undefined
// decision rather than being folded into "same". Sample vectors that
// are empty or of unequal lengths fail the evaluation immediately.
//
// # Thread Safety
//
// The Evaluator is stateless after construction and safe for
// concurrent use; every call to Evaluate builds its own pair
// enumeration from its own input.
package significance
