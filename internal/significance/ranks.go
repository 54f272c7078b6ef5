// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package significance

import "sort"

// rankWithTies assigns 1-based ranks to values, averaging the ranks of
// tied values (midranks). It also returns the tie term sum(t^3 - t)
// over all tie groups, which both rank tests need for their variance
// corrections.
func rankWithTies(values []float64) (ranks []float64, ties float64) {
	n := len(values)
	ranks = make([]float64, n)
	if n == 0 {
		return ranks, 0
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	for start := 0; start < n; {
		end := start + 1
		for end < n && values[order[end]] == values[order[start]] {
			end++
		}
		// Average of positions start+1 .. end (1-based).
		avg := float64(start+end+1) / 2
		for i := start; i < end; i++ {
			ranks[order[i]] = avg
		}
		t := float64(end - start)
		ties += t*t*t - t
		start = end
	}

	return ranks, ties
}
