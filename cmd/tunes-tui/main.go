package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thowi/pytunes/internal/config"
	"github.com/thowi/pytunes/internal/tui"
)

func main() {
	var configPath, libraryPath string

	rootCmd := &cobra.Command{
		Use:   "tunes-tui",
		Short: "browse the analysis of your music library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			if libraryPath != "" {
				settings.LibraryPath = libraryPath
			}
			return tui.Run(settings)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "path to the settings file")
	rootCmd.Flags().StringVarP(&libraryPath, "library", "l", "", "path to the library XML export (default: auto-detect)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
