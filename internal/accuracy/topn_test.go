// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package accuracy

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		name        string
		recommended []string
		relevant    map[string]bool
		n           int
		want        float64
	}{
		{
			name:        "partial overlap",
			recommended: []string{"101", "102", "103", "104", "105"},
			relevant:    map[string]bool{"101": true, "103": true, "999": true},
			n:           5,
			want:        0.4,
		},
		{
			name:        "truncation drops a hit",
			recommended: []string{"101", "102", "103", "104", "105"},
			relevant:    map[string]bool{"101": true, "105": true},
			n:           3,
			want:        1.0 / 3,
		},
		{
			name:        "short list penalized",
			recommended: []string{"101", "102"},
			relevant:    map[string]bool{"101": true},
			n:           5,
			want:        0.2,
		},
		{
			name:        "no relevant items",
			recommended: []string{"101", "102"},
			relevant:    map[string]bool{},
			n:           5,
			want:        0,
		},
		{
			name:        "empty list",
			recommended: nil,
			relevant:    map[string]bool{"101": true},
			n:           5,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Precision(tt.recommended, tt.relevant, tt.n)
			if !approxEqual(got, tt.want) {
				t.Errorf("Precision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReciprocalRank(t *testing.T) {
	tests := []struct {
		name        string
		recommended []string
		relevant    map[string]bool
		want        float64
	}{
		{
			name:        "first item relevant",
			recommended: []string{"101", "102", "103"},
			relevant:    map[string]bool{"101": true},
			want:        1,
		},
		{
			name:        "second item relevant",
			recommended: []string{"102", "101", "103"},
			relevant:    map[string]bool{"101": true, "103": true},
			want:        0.5,
		},
		{
			name:        "deep hit",
			recommended: []string{"102", "104", "105", "106", "101"},
			relevant:    map[string]bool{"101": true},
			want:        0.2,
		},
		{
			name:        "no relevant items in list",
			recommended: []string{"102", "104"},
			relevant:    map[string]bool{"101": true},
			want:        0,
		},
		{
			name:        "empty list",
			recommended: nil,
			relevant:    map[string]bool{"101": true},
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReciprocalRank(tt.recommended, tt.relevant)
			if !approxEqual(got, tt.want) {
				t.Errorf("ReciprocalRank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNDCG(t *testing.T) {
	tests := []struct {
		name        string
		recommended []string
		relevant    map[string]bool
		n           int
		want        float64
	}{
		{
			name:        "hits at ranks one and three",
			recommended: []string{"101", "102", "103"},
			relevant:    map[string]bool{"101": true, "103": true},
			n:           3,
			want:        0.9197207891481876,
		},
		{
			name:        "hits at ranks two and four",
			recommended: []string{"102", "101", "104", "103", "105"},
			relevant:    map[string]bool{"101": true, "103": true},
			n:           5,
			want:        0.6509209298071326,
		},
		{
			name:        "ideal truncated to list size",
			recommended: []string{"109", "101", "102"},
			relevant:    map[string]bool{"101": true, "102": true, "103": true, "104": true, "105": true},
			n:           3,
			want:        0.5307212739772434,
		},
		{
			name:        "perfect list",
			recommended: []string{"101", "103"},
			relevant:    map[string]bool{"101": true, "103": true},
			n:           2,
			want:        1,
		},
		{
			name:        "no relevant items",
			recommended: []string{"101", "102"},
			relevant:    map[string]bool{},
			n:           2,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NDCG(tt.recommended, tt.relevant, tt.n)
			if !approxEqual(got, tt.want) {
				t.Errorf("NDCG() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecall(t *testing.T) {
	tests := []struct {
		name        string
		recommended []string
		relevant    map[string]bool
		n           int
		want        float64
	}{
		{
			name:        "two of three found",
			recommended: []string{"101", "102", "103"},
			relevant:    map[string]bool{"101": true, "103": true, "999": true},
			n:           3,
			want:        2.0 / 3,
		},
		{
			name:        "all found",
			recommended: []string{"101", "103", "102"},
			relevant:    map[string]bool{"101": true, "103": true},
			n:           10,
			want:        1,
		},
		{
			name:        "truncation hides a hit",
			recommended: []string{"102", "104", "101"},
			relevant:    map[string]bool{"101": true},
			n:           2,
			want:        0,
		},
		{
			name:        "no relevant items",
			recommended: []string{"101"},
			relevant:    map[string]bool{},
			n:           5,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recall(tt.recommended, tt.relevant, tt.n)
			if !approxEqual(got, tt.want) {
				t.Errorf("Recall() = %v, want %v", got, tt.want)
			}
		})
	}
}
