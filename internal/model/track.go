package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ioutils "github.com/thowi/pytunes/internal/io"
)

// UnratedRating is the rating the library stores for a track rated with
// zero stars. It is treated the same as a missing rating.
const UnratedRating = 10

// Track represents a single media item from the library feed.
//
// A Track is created once per load and never mutated afterwards. Optional
// attributes follow these defaulting rules:
//   - Strings are empty when the feed has no value
//   - Number, Year, TotalTime and the informational counters are 0 when absent
//   - Rating is nil when absent, and a nil rating counts as unrated
//
// Ratings use the library's 0-100 scale: 20 per star, 10 for half a star
// above zero, and 10 also for "zero stars", which is treated as unrated.
//
// Example:
//
//	rating := 80
//	track := &Track{ID: 42, Artist: "Air", Name: "La femme d'argent", Rating: &rating}
//	fmt.Println(track.RatingValue()) // 80
type Track struct {
	// ID is the library track identifier. Tracks are equal iff their IDs are.
	ID int

	// PersistentID is the library's stable hex identifier.
	PersistentID string

	// Name is the track title.
	Name string

	// Artist is the track artist.
	Artist string

	// AlbumArtist is the album artist, empty if not set.
	AlbumArtist string

	// Album is the album title, empty if not set.
	Album string

	// Composer is the composer field. Moody stores its tags here.
	Composer string

	// Genre is the genre name.
	Genre string

	// Kind is the library's file kind description, e.g. "MPEG audio file".
	Kind string

	// Number is the track number, 0 if absent.
	Number int

	// Year is the release year, 0 if absent.
	Year int

	// Rating is the track rating (0-100), nil if absent.
	Rating *int

	// TotalTime is the playing time in milliseconds, 0 if absent.
	TotalTime int64

	// Location is the URL-decoded file location, usually a file:// URI.
	Location string

	// Podcast marks podcast episodes.
	Podcast bool

	BitRate      int
	SampleRate   int
	Size         int64
	PlayCount    int
	SkipCount    int
	DateAdded    time.Time
	DateModified time.Time
	PlayDate     time.Time
}

// PathConfig holds the settings needed to turn track locations into
// filesystem paths and to name files moved out of an album folder.
//
// The MovedFileNameFormat supports placeholders that are replaced with
// the track's values:
//   - {artist} - Track artist
//   - {title} - Track name
//   - {album} - Album title
//   - {year} - Release year
//   - {tracknum} - Track number (2 digits, zero-padded)
//   - {ext} - Extension of the source file, including the dot
//
// Example:
//
//	cfg := &PathConfig{
//	    LocationPrefix:      "file://localhost",
//	    MovedFileNameFormat: "{artist} - {title}{ext}",
//	}
type PathConfig struct {
	// LocationPrefix is stripped from track locations to obtain a path.
	LocationPrefix string

	// MovedFileNameFormat is the file name template for moved tracks.
	MovedFileNameFormat string
}

// RatingValue returns the rating, or 0 if the track has none.
func (t *Track) RatingValue() int {
	if t.Rating == nil {
		return 0
	}
	return *t.Rating
}

// IsRated reports whether the track carries a real rating, i.e. one above
// the zero-star value.
func (t *Track) IsRated() bool {
	return t.RatingValue() > UnratedRating
}

// EffectiveArtist returns the album artist, or the artist if there is no
// album artist.
func (t *Track) EffectiveArtist() string {
	if t.AlbumArtist != "" {
		return t.AlbumArtist
	}
	return t.Artist
}

// Key returns the artist/name key used to match tracks against
// external documents.
func (t *Track) Key() string {
	return TrackKey(t.Artist, t.Name)
}

// TrackKey builds the key for an artist and track name.
func TrackKey(artist, name string) string {
	return artist + "----" + name
}

// Path strips prefix from the track location and returns the result.
//
// An empty location yields an empty path.
func (t *Track) Path(prefix string) string {
	return StripLocationPrefix(t.Location, prefix)
}

// Dir returns the directory containing the track, with prefix stripped.
// A track without a location has no directory and yields "".
func (t *Track) Dir(prefix string) string {
	path := t.Path(prefix)
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}

// MovedPath computes where the track goes when it is moved out of its
// album folder: the parent of the album folder, with a file name rendered
// from cfg.MovedFileNameFormat.
//
// Example:
//
//	// Location: file://localhost/music/Air/Moon Safari/01 La femme d'argent.mp3
//	track.MovedPath(cfg) // "/music/Air/Air - La femme d'argent.mp3"
func (t *Track) MovedPath(cfg *PathConfig) string {
	albumDir := t.Dir(cfg.LocationPrefix)
	return filepath.Join(filepath.Dir(albumDir), t.parseFileName(cfg))
}

// parseFileName renders the moved file name from the config template.
func (t *Track) parseFileName(cfg *PathConfig) string {
	ext := filepath.Ext(t.Path(cfg.LocationPrefix))
	if ext == "" {
		ext = ".mp3"
	}

	fileName := cfg.MovedFileNameFormat
	fileName = strings.ReplaceAll(fileName, "{year}", fmt.Sprintf("%d", t.Year))
	fileName = strings.ReplaceAll(fileName, "{album}", t.Album)
	fileName = strings.ReplaceAll(fileName, "{artist}", t.Artist)
	fileName = strings.ReplaceAll(fileName, "{title}", t.Name)
	fileName = strings.ReplaceAll(fileName, "{tracknum}", fmt.Sprintf("%02d", t.Number))
	fileName = strings.ReplaceAll(fileName, "{ext}", ext)
	return ioutils.SanitizeFileName(fileName)
}

// String renders the track for reports.
func (t *Track) String() string {
	return fmt.Sprintf("Track(id='%d', artist='%s', name='%s')", t.ID, t.Artist, t.Name)
}

// StripLocationPrefix removes prefix from location if present.
func StripLocationPrefix(location, prefix string) string {
	if prefix == "" {
		return location
	}
	return strings.TrimPrefix(location, prefix)
}
