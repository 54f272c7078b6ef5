// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/logging"
)

var (
	flagConfigPath string
	flagLogLevel   string
	flagLogFormat  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "recseval",
		Short:         "Offline recommender evaluation workbench",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path (default: recseval.yaml, then /etc/recseval)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "minimum log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format (console, json)")

	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newMetricsCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig layers the config file and environment under the global
// flags, initializes logging, and returns the validated configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = flagLogFormat
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	return cfg, nil
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
