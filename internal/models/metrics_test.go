// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package models

import (
	"reflect"
	"testing"
)

func TestKnownMetric(t *testing.T) {
	tests := []struct {
		name   string
		metric string
		want   bool
	}{
		{name: "precision", metric: MetricPrecision, want: true},
		{name: "recip_rank", metric: MetricRecipRank, want: true},
		{name: "ndcg", metric: MetricNDCG, want: true},
		{name: "recall", metric: MetricRecall, want: true},
		{name: "rmse", metric: MetricRMSE, want: true},
		{name: "mae", metric: MetricMAE, want: true},
		{name: "unknown", metric: "f1", want: false},
		{name: "empty", metric: "", want: false},
		{name: "case sensitive", metric: "Precision", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KnownMetric(tt.metric); got != tt.want {
				t.Errorf("KnownMetric(%q) = %v, want %v", tt.metric, got, tt.want)
			}
		})
	}
}

func TestSortedAlgorithms(t *testing.T) {
	tests := []struct {
		name string
		rows []UserMetricRow
		want []string
	}{
		{
			name: "empty",
			rows: nil,
			want: []string{},
		},
		{
			name: "deduplicates and sorts",
			rows: []UserMetricRow{
				{Algorithm: "UU", User: "1", Metric: MetricNDCG, Value: 0.5},
				{Algorithm: "ALS", User: "1", Metric: MetricNDCG, Value: 0.4},
				{Algorithm: "UU", User: "2", Metric: MetricNDCG, Value: 0.3},
				{Algorithm: "II", User: "1", Metric: MetricNDCG, Value: 0.2},
			},
			want: []string{"ALS", "II", "UU"},
		},
		{
			name: "single algorithm",
			rows: []UserMetricRow{
				{Algorithm: "IALS", User: "1", Metric: MetricPrecision, Value: 0.1},
			},
			want: []string{"IALS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedAlgorithms(tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortedAlgorithms() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortedMetrics(t *testing.T) {
	tests := []struct {
		name string
		rows []UserMetricRow
		want []string
	}{
		{
			name: "empty",
			rows: nil,
			want: []string{},
		},
		{
			name: "deduplicates and sorts",
			rows: []UserMetricRow{
				{Algorithm: "ALS", User: "1", Metric: MetricRecipRank, Value: 0.5},
				{Algorithm: "ALS", User: "1", Metric: MetricNDCG, Value: 0.4},
				{Algorithm: "UU", User: "1", Metric: MetricRecipRank, Value: 0.3},
			},
			want: []string{MetricNDCG, MetricRecipRank},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedMetrics(tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortedMetrics() = %v, want %v", got, tt.want)
			}
		})
	}
}
