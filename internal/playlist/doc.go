// Package playlist writes analysis results as playlist files.
//
// # Selections
//
// A Selection names a set of tracks derived from the analysis:
//
//	tracks, err := playlist.Select(playlist.SelectBest, lib.Tracks, albums, playlist.DefaultSelectOptions())
//
// Album selections (best, worst, crappy-albums, compilations) list the
// tracks of each album in album order. Track selections (crappy-singles,
// duplicates) are sorted by artist, then name.
//
// # Playlist Generation
//
//	creator := playlist.NewCreator(playlist.FormatM3U, true, "file://localhost") // extended M3U
//	content := creator.Create(playlist.SelectBest.Title(), tracks)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package playlist
