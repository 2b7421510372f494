// Package analysis infers albums from library tracks and classifies tracks
// and albums by rating and duplication.
//
// # Grouping
//
// The library only knows tracks. Group rebuilds albums from them:
//
//	albums := analysis.Group(tracks, analysis.DefaultGroupOptions())
//
// Tracks are grouped by (effective artist, year, album title, directory).
// A directory that would produce more than one album is considered a
// folder of unrelated tracks, and none of its tracks ends up in an album.
//
// # Queries
//
// All queries are pure functions over the grouped albums and the full
// track list:
//   - CompletelyRated / IncompletelyRated: split albums by rating completeness
//   - Compilations: albums spanning more than one artist
//   - SingleTracks: tracks not in any album
//   - CrappySingleTracks: rated single tracks below the rating threshold
//   - CrappyAlbums: completely rated albums with too few good tracks
//   - Duplicates: tracks sharing artist and name with a close playing time
//   - BestRated / WorstRated: completely rated albums by average rating
//
// CrappyAlbums returns an iter.Seq and evaluates albums as it is ranged
// over:
//
//	for album := range analysis.CrappyAlbums(albums, analysis.DefaultMinGoodTracks, analysis.DefaultMinRating) {
//	    fmt.Println(album)
//	}
package analysis
