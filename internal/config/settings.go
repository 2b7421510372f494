package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thowi/pytunes/internal/analysis"
	"github.com/thowi/pytunes/internal/cleanup"
	"github.com/thowi/pytunes/internal/library"
	"github.com/thowi/pytunes/internal/model"
	"github.com/thowi/pytunes/internal/playlist"
	"github.com/thowi/pytunes/internal/report"
)

// Settings holds all configuration options.
type Settings struct {
	// Library settings
	LibraryPath     string `json:"library_path"`
	LocationPrefix  string `json:"location_prefix" validate:"required"`
	IncludePodcasts bool   `json:"include_podcasts"`

	// Analysis thresholds
	MinRating               int   `json:"min_rating" validate:"gte=0,lte=100"`
	MinGoodTracks           int   `json:"min_good_tracks" validate:"gte=0"`
	ToleratedTimeDifference int64 `json:"tolerated_time_difference" validate:"gte=0"`
	TopN                    int   `json:"top_n" validate:"gt=0"`

	// Cleanup settings
	KeepGoodTracks      bool   `json:"keep_good_tracks"`
	DryRun              bool   `json:"dry_run"`
	MovedFileNameFormat string `json:"moved_file_name_format" validate:"required,contains={title}"`
	MaxConcurrentAlbums int    `json:"max_concurrent_albums" validate:"gte=1"`
	MaxConcurrentFiles  int    `json:"max_concurrent_files" validate:"gte=1"`

	// Playlist settings
	PlaylistFormat string `json:"playlist_format" validate:"oneof=m3u pls wpl zpl"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended"`

	// Logging
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		LibraryPath:     "",
		LocationPrefix:  "file://localhost",
		IncludePodcasts: false,

		MinRating:               analysis.DefaultMinRating,
		MinGoodTracks:           analysis.DefaultMinGoodTracks,
		ToleratedTimeDifference: analysis.DefaultToleratedTimeDifference,
		TopN:                    20,

		KeepGoodTracks:      true,
		DryRun:              true,
		MovedFileNameFormat: "{artist} - {title}{ext}",
		MaxConcurrentAlbums: 1,
		MaxConcurrentFiles:  1,

		PlaylistFormat: "m3u",
		M3UExtended:    true,

		LogLevel: "info",
	}
}

// DefaultPath returns the default settings file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "tunes", "settings.json")
}

// Load reads settings from a JSON file. A missing file yields the
// defaults, and fields absent from the file keep their default values.
// The result is validated.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		LocationPrefix:      s.LocationPrefix,
		MovedFileNameFormat: s.MovedFileNameFormat,
	}
}

// ToLibraryOptions converts settings to library load options.
func (s *Settings) ToLibraryOptions() library.Options {
	return library.Options{
		Path:            s.LibraryPath,
		IncludePodcasts: s.IncludePodcasts,
	}
}

// ToGroupOptions converts settings to grouping options. Grouping strips the
// same prefix as cleanup, so album directories are file system paths.
func (s *Settings) ToGroupOptions() analysis.GroupOptions {
	return analysis.GroupOptions{LocationPrefix: s.LocationPrefix}
}

// ToCleanupOptions converts settings to cleanup options.
func (s *Settings) ToCleanupOptions() cleanup.Options {
	return cleanup.Options{
		LocationPrefix:      s.LocationPrefix,
		MovedFileNameFormat: s.MovedFileNameFormat,
		MinRating:           s.MinRating,
		MinGoodTracks:       s.MinGoodTracks,
		KeepGoodTracks:      s.KeepGoodTracks,
		DryRun:              s.DryRun,
		MaxConcurrentAlbums: s.MaxConcurrentAlbums,
		MaxConcurrentFiles:  s.MaxConcurrentFiles,
	}
}

// ToReportOptions converts settings to report options.
func (s *Settings) ToReportOptions() report.Options {
	return report.Options{
		LocationPrefix:          s.LocationPrefix,
		MinRating:               s.MinRating,
		MinGoodTracks:           s.MinGoodTracks,
		ToleratedTimeDifference: s.ToleratedTimeDifference,
		TopN:                    s.TopN,
	}
}

// ToSelectOptions converts settings to playlist selection options.
func (s *Settings) ToSelectOptions() playlist.SelectOptions {
	return playlist.SelectOptions{
		MinRating:               s.MinRating,
		MinGoodTracks:           s.MinGoodTracks,
		ToleratedTimeDifference: s.ToleratedTimeDifference,
		TopN:                    s.TopN,
	}
}

// ToPlaylistFormat returns the configured playlist format. Unknown names
// fall back to M3U; Validate rejects them.
func (s *Settings) ToPlaylistFormat() playlist.Format {
	format, err := playlist.ParseFormat(s.PlaylistFormat)
	if err != nil {
		return playlist.FormatM3U
	}
	return format
}

// SlogLevel returns the configured log level.
func (s *Settings) SlogLevel() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
