// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
)

// Reporter renders evaluation output to a single writer.
type Reporter struct {
	cfg    config.ReportConfig
	w      io.Writer
	logger zerolog.Logger
}

// New creates a reporter writing to w.
func New(cfg config.ReportConfig, w io.Writer, logger zerolog.Logger) *Reporter {
	return &Reporter{
		cfg:    cfg,
		w:      w,
		logger: logger.With().Str("component", "report").Logger(),
	}
}

// WriteSummaries renders one aligned table per metric with each
// algorithm's mean and observation count. Metrics appear in the order
// of their first summary row.
func (r *Reporter) WriteSummaries(summaries []models.MetricSummary) error {
	for _, metric := range metricOrder(summaries) {
		var rows [][]string
		for _, s := range summaries {
			if s.Metric != metric {
				continue
			}
			rows = append(rows, []string{
				s.Algorithm,
				r.formatValue(s.Mean),
				strconv.Itoa(s.Users),
			})
		}

		if err := r.printf("%s\n", metric); err != nil {
			return err
		}
		lines := renderTable(
			[]string{"ALGORITHM", "MEAN", "USERS"},
			rows,
			map[int]bool{1: true, 2: true},
		)
		for _, line := range lines {
			if err := r.printf("  %s\n", line); err != nil {
				return err
			}
		}
		if err := r.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}

// metricOrder returns the distinct metrics of the summaries in
// first-seen order, which Summaries already fixed to the configured
// metric order.
func metricOrder(summaries []models.MetricSummary) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range summaries {
		if !seen[s.Metric] {
			seen[s.Metric] = true
			out = append(out, s.Metric)
		}
	}
	return out
}

// formatValue renders a metric value with the configured number of
// decimal places.
func (r *Reporter) formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', r.cfg.Digits, 64)
}

// formatStat renders a test statistic or p-value with the configured
// number of significant digits. Small p-values keep their magnitude
// instead of collapsing to zero.
func (r *Reporter) formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', r.cfg.Digits+1, 64)
}

func (r *Reporter) printf(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// renderTable lays out rows under headers with space padding, right
// aligning the marked columns.
func renderTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(headers, widths, rightAlign))
	for _, row := range rows {
		lines = append(lines, renderRow(row, widths, rightAlign))
	}
	return lines
}

func renderRow(cells []string, widths []int, rightAlign map[int]bool) string {
	var b strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, width, rightAlign[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(cell string, width int, rightAlign bool) string {
	if len(cell) >= width {
		return cell
	}
	padding := strings.Repeat(" ", width-len(cell))
	if rightAlign {
		return padding + cell
	}
	return cell + padding
}
