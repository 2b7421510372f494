package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thowi/pytunes/internal/analysis"
	"github.com/thowi/pytunes/internal/config"
	"github.com/thowi/pytunes/internal/library"
	"github.com/thowi/pytunes/internal/model"
)

var (
	// global flags
	configPath  string
	libraryPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "tunes",
	Short: "analyze and clean up your iTunes library",
	Long: `tunes reads the XML export of an iTunes library, groups its tracks into albums
and reports on ratings, duplicates and crappy singles and albums.

cleanup commands print what they would do unless --apply is given.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "path to the settings file")
	rootCmd.PersistentFlags().StringVarP(&libraryPath, "library", "l", "", "path to the library XML export (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	rootCmd.AddCommand(statsCmd, duplicatesCmd, cleanupCmd, moodyCmd, playlistCmd, playlistsCmd)
}

// session is a loaded and grouped library.
type session struct {
	settings *config.Settings
	logger   *slog.Logger
	library  *library.Library
	albums   []*model.Album
}

// loadSettings reads the settings file and applies the global flags.
func loadSettings() (*config.Settings, *slog.Logger, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	if libraryPath != "" {
		settings.LibraryPath = libraryPath
	}
	if verbose {
		settings.LogLevel = "debug"
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.SlogLevel()}))
	return settings, logger, nil
}

// openSession loads the library and groups it into albums.
func openSession() (*session, error) {
	settings, logger, err := loadSettings()
	if err != nil {
		return nil, err
	}

	lib, err := library.NewLoader(logger).Load(settings.ToLibraryOptions())
	if err != nil {
		return nil, err
	}
	albums := analysis.Group(lib.Tracks, settings.ToGroupOptions())
	logger.Info("library grouped", "tracks", len(lib.Tracks), "albums", len(albums))

	return &session{
		settings: settings,
		logger:   logger,
		library:  lib,
		albums:   albums,
	}, nil
}
