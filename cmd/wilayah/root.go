package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/wilayah"
	"github.com/aretw0/wilayah/internal/config"
	"github.com/aretw0/wilayah/internal/logging"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wilayah",
	Short: "Wilayah is a cascading filter for Indonesian administrative regions",
	Long: `Wilayah narrows a province, then a city/regency, then a district from a static
region dataset. It serves a web page and JSON API, browses in the terminal and
exposes the cascade to MCP clients.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("dataset") {
			c.Dataset, _ = flags.GetString("dataset")
		}
		if flags.Changed("log-level") {
			c.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("log-format") {
			c.LogFormat, _ = flags.GetString("log-format")
		}
		cfg = c
		logger = logging.NewWithFormat(os.Stderr, logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().String("dataset", "", "Dataset path or http(s) URL (overrides "+config.EnvDataset+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
}

// loadEngine builds the engine for the configured dataset and loads it.
func loadEngine(ctx context.Context, hooks domain.LifecycleHooks) (*wilayah.Engine, error) {
	eng, err := wilayah.New(cfg.Dataset,
		wilayah.WithLogger(logger),
		wilayah.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init engine: %w", err)
	}
	if err := eng.Reload(ctx); err != nil {
		return eng, err
	}
	return eng, nil
}
