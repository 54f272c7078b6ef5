// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package significance

import (
	"reflect"
	"testing"
)

func TestRankWithTies(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		wantRanks []float64
		wantTies  float64
	}{
		{
			name:      "distinct values",
			values:    []float64{0.3, 0.1, 0.2},
			wantRanks: []float64{3, 1, 2},
			wantTies:  0,
		},
		{
			name:      "single tie group",
			values:    []float64{0.5, 0.5, 0.9},
			wantRanks: []float64{1.5, 1.5, 3},
			wantTies:  6,
		},
		{
			name:      "all tied",
			values:    []float64{2, 2, 2},
			wantRanks: []float64{2, 2, 2},
			wantTies:  24,
		},
		{
			name:      "multiple tie groups",
			values:    []float64{2, 1, 2, 3, 2},
			wantRanks: []float64{3, 1, 3, 5, 3},
			wantTies:  24,
		},
		{
			name:      "single value",
			values:    []float64{7},
			wantRanks: []float64{1},
			wantTies:  0,
		},
		{
			name:      "empty",
			values:    []float64{},
			wantRanks: []float64{},
			wantTies:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranks, ties := rankWithTies(tt.values)
			if !reflect.DeepEqual(ranks, tt.wantRanks) {
				t.Errorf("rankWithTies(%v) ranks = %v, want %v", tt.values, ranks, tt.wantRanks)
			}
			if ties != tt.wantTies {
				t.Errorf("rankWithTies(%v) ties = %v, want %v", tt.values, ties, tt.wantTies)
			}
		})
	}
}

func TestRankWithTiesDoesNotMutateInput(t *testing.T) {
	values := []float64{0.9, 0.1, 0.5}
	rankWithTies(values)
	want := []float64{0.9, 0.1, 0.5}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("input mutated: got %v, want %v", values, want)
	}
}
