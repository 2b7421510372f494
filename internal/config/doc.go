// Package config provides configuration management for tunes.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Validation of loaded settings
//   - Conversion to the option types of the other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Library auto-detected in ~/Music/iTunes
//	// Good tracks are rated 4 stars or more
//	// Cleanup runs dry
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	var invalid *config.ValidationError
//	if errors.As(err, &invalid) {
//	    // invalid.Fields maps JSON names to messages
//	}
//
// A missing file yields the defaults, and fields missing from the file keep
// their default values.
//
// # Saving Settings
//
//	settings.DryRun = false
//	err := settings.Save(config.DefaultPath())
//
// # Configuration Options
//
// Settings includes options for:
//   - Library location, location prefix and podcasts
//   - Rating thresholds and duplicate tolerance
//   - Cleanup behavior and concurrency limits
//   - Playlist format
//   - Log level
package config
