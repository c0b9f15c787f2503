// Package cmd contains the blindrun CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/blindrun/blindrun/internal/config"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "blindrun",
	Short: "Spatial audio cues and screen-reader navigation for a 3D game",
	Long: `blindrun is a game-accessibility overlay: it tracks room
transitions, describes nearby task consoles by direction and distance,
and reorders on-screen menus into a stable keyboard-navigable sequence,
routing everything to a screen-reader bridge.

In a real deployment the overlay is driven by the host game's frame
callbacks. The simulate command drives the same overlay with a scripted
walkthrough so the announcement pipeline can be heard end to end.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "blindrun.yaml", "config file path")
}
