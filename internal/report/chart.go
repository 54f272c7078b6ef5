// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package report

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
)

const (
	fallbackChartWidth = 80
	minBarWidth        = 10
	barRune            = "█"
	colorCyan          = "\x1b[36m"
	colorReset         = "\x1b[0m"
)

// WriteCharts renders one horizontal bar chart per metric, one bar
// per algorithm, scaled so the metric's largest mean fills the chart
// width. Metrics appear in the order of their first summary row.
func (r *Reporter) WriteCharts(summaries []models.MetricSummary) error {
	width := r.chartWidth()
	color := useColor()

	for _, metric := range metricOrder(summaries) {
		var algorithms []string
		var means []float64
		labelWidth := 0
		maxMean := 0.0
		for _, s := range summaries {
			if s.Metric != metric {
				continue
			}
			algorithms = append(algorithms, s.Algorithm)
			means = append(means, s.Mean)
			if len(s.Algorithm) > labelWidth {
				labelWidth = len(s.Algorithm)
			}
			if s.Mean > maxMean {
				maxMean = s.Mean
			}
		}
		if len(algorithms) == 0 {
			continue
		}

		// Layout: two-space indent, label, space, bar, space, value.
		valueWidth := r.cfg.Digits + 3
		barWidth := width - labelWidth - valueWidth - 4
		if barWidth < minBarWidth {
			barWidth = minBarWidth
		}

		if err := r.printf("%s\n", metric); err != nil {
			return err
		}
		for i, algo := range algorithms {
			cells := 0
			if maxMean > 0 && means[i] > 0 {
				cells = int(means[i] / maxMean * float64(barWidth))
				if cells == 0 {
					cells = 1
				}
			}
			bar := strings.Repeat(barRune, cells)
			if color && bar != "" {
				bar = colorCyan + bar + colorReset
			}
			if err := r.printf("  %s %s %s\n", padCell(algo, labelWidth, false), bar, r.formatValue(means[i])); err != nil {
				return err
			}
		}
		if err := r.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}

// chartWidth picks the configured width, falling back to the terminal
// width and then to 80 columns.
func (r *Reporter) chartWidth() int {
	if r.cfg.ChartWidth > 0 {
		return r.cfg.ChartWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackChartWidth
}

// useColor reports whether bars may carry ANSI color. NO_COLOR always
// wins; otherwise color requires stdout to be a terminal.
func useColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
