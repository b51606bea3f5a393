package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Digital-Shane/show-scout/internal/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var forceInit bool

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config file: %s\n", path)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Setting", "Value"})
	tw.AppendRows([]table.Row{
		{"log_level", cfg.LogLevel},
		{"enable_logging", strconv.FormatBool(cfg.EnableLogging)},
		{"log_retention_days", strconv.Itoa(cfg.LogRetentionDays)},
		{"user_agent", cfg.UserAgent},
		{"rate_limit.requests", strconv.Itoa(cfg.RateLimit.Requests)},
		{"rate_limit.window", cfg.RateWindow().String()},
		{"cache.enabled", strconv.FormatBool(cfg.Cache.Enabled)},
		{"cache.ttl", cfg.CacheTTL().String()},
		{"summary_width", strconv.Itoa(cfg.SummaryWidth)},
	})
	fmt.Fprintln(out, tw.Render())

	for _, w := range cfg.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", w)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	return nil
}
