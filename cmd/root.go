// Package cmd wires the lcdgen command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelworks/lcdgen/internal/config"
)

var (
	verbose    bool
	configPath string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to lcdgen.hcl (default: ./lcdgen.hcl if present)")
}

var rootCmd = &cobra.Command{
	Use:   "lcdgen",
	Short: "Extract LCD panel widgets and assets from PSB/PSD mockups",
	Long: `lcdgen reads a layered PSB/PSD panel mockup, classifies its layers into
display widgets by their naming tags, and emits the PNG assets, a widget
manifest and an interactive HTML preview.`,
	SilenceUsage: true,
}

// logger builds the process logger honoring --verbose.
func logger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves --config, falling back to ./lcdgen.hcl when present.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadDefault()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
