// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package significance

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// friedmanTest runs the Friedman chi-squared test for repeated
// measures over k groups of n matched observations. groups[j][i] is
// group j's value for observation i; all groups must have equal length.
//
// Each observation's values are ranked across groups with midranks for
// ties, and the statistic is the tie-corrected chi-squared over the
// per-group rank sums, with k-1 degrees of freedom.
func friedmanTest(groups [][]float64) (statistic, pvalue float64, err error) {
	k := len(groups)
	if k < 3 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInsufficientGroups, k)
	}

	n := len(groups[0])
	for j, g := range groups {
		if len(g) != n {
			return 0, 0, fmt.Errorf("%w: group %d has %d observations, want %d", ErrInputShape, j, len(g), n)
		}
	}
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: groups are empty", ErrInputShape)
	}

	rankSums := make([]float64, k)
	row := make([]float64, k)
	var tieTerm float64
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			row[j] = groups[j][i]
		}
		ranks, ties := rankWithTies(row)
		tieTerm += ties
		for j := 0; j < k; j++ {
			rankSums[j] += ranks[j]
		}
	}

	kf := float64(k)
	nf := float64(n)

	correction := 1 - tieTerm/(kf*(kf*kf-1)*nf)
	if correction == 0 {
		// Every observation has all k values tied; the statistic is 0/0.
		return 0, 0, fmt.Errorf("%w: all observations fully tied", ErrDegenerateSample)
	}

	var ssbn float64
	for _, s := range rankSums {
		ssbn += s * s
	}

	statistic = (12/(kf*nf*(kf+1))*ssbn - 3*nf*(kf+1)) / correction
	if statistic < 0 {
		// Rounding can push a zero statistic slightly negative.
		statistic = 0
	}

	chi2 := distuv.ChiSquared{K: kf - 1}
	pvalue = chi2.Survival(statistic)

	return statistic, pvalue, nil
}
