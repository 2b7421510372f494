// Package model defines the core data structures used throughout
// the tunes toolkit.
//
// # Track
//
// Track is a single item from the library feed. Tracks are read-only once
// loaded; optional attributes are empty, zero or nil when absent:
//
//	fmt.Println(track.RatingValue()) // 0 when the track has no rating
//	fmt.Println(track.Path("file://localhost"))
//
// # Album
//
// Album is an inferred grouping of tracks. Its metrics are computed on
// first access and cached:
//
//	album := model.NewAlbum("Air", 1998, "Moon Safari", tracks)
//	fmt.Println(album.AvgRating(), album.RatingCompleteness(), album.IsCompilation())
//
// # TrackSet
//
// TrackSet is a set of tracks keyed by ID, used for single tracks and
// duplicates.
//
// # Path Configuration
//
// PathConfig controls how locations become paths and how moved files are
// named:
//
//	cfg := &model.PathConfig{
//	    LocationPrefix:      "file://localhost",
//	    MovedFileNameFormat: "{artist} - {title}{ext}",
//	}
//
// Available placeholders: {artist}, {title}, {album}, {year}, {tracknum}, {ext}
package model
