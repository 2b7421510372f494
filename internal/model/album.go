package model

import (
	"fmt"
	"sync"
)

// Album is an album inferred from the library's tracks.
//
// The library has no real concept of an album; it only knows tracks. An
// Album is therefore just a collection of tracks plus the artist, year and
// title they share, and every metric is derived from Tracks.
//
// The derived metrics are computed on first access and then cached for the
// lifetime of the Album. The cache is never invalidated: once AvgRating,
// RatingCompleteness or IsCompilation has been called, appending to or
// replacing Tracks does not change the returned values. Callers must
// finalize membership before querying.
//
// Example:
//
//	album := NewAlbum("Air", 1998, "Moon Safari", tracks)
//	fmt.Printf("%.2f\n", album.RatingCompleteness())
type Album struct {
	// Artist is the effective artist shared by all tracks.
	Artist string

	// Year is the release year.
	Year int

	// Title is the album title.
	Title string

	// Tracks holds the album's tracks in feed order.
	Tracks []*Track

	avgRatingOnce     sync.Once
	avgRating         float64
	completenessOnce  sync.Once
	completeness      float64
	isCompilationOnce sync.Once
	isCompilation     bool
}

// NewAlbum creates a new Album. tracks may be nil.
func NewAlbum(artist string, year int, title string, tracks []*Track) *Album {
	return &Album{
		Artist: artist,
		Year:   year,
		Title:  title,
		Tracks: tracks,
	}
}

// AvgRating returns the mean rating over the tracks with a non-zero
// rating, or 0 if no track is rated.
func (a *Album) AvgRating() float64 {
	a.avgRatingOnce.Do(func() {
		var sum, n int
		for _, t := range a.Tracks {
			if r := t.RatingValue(); r != 0 {
				sum += r
				n++
			}
		}
		if n > 0 {
			a.avgRating = float64(sum) / float64(n)
		}
	})
	return a.avgRating
}

// RatingCompleteness returns the fraction of tracks rated above zero
// stars, in [0, 1]. An album without tracks has completeness 0.
func (a *Album) RatingCompleteness() float64 {
	a.completenessOnce.Do(func() {
		if len(a.Tracks) == 0 {
			return
		}
		var rated int
		for _, t := range a.Tracks {
			if t.IsRated() {
				rated++
			}
		}
		a.completeness = float64(rated) / float64(len(a.Tracks))
	})
	return a.completeness
}

// IsCompilation reports whether the tracks span more than one artist.
func (a *Album) IsCompilation() bool {
	a.isCompilationOnce.Do(func() {
		artists := make(map[string]struct{})
		for _, t := range a.Tracks {
			artists[t.Artist] = struct{}{}
		}
		a.isCompilation = len(artists) > 1
	})
	return a.isCompilation
}

// Dir returns the album folder, taken from the first track. It returns an
// empty string for an album without tracks.
func (a *Album) Dir(prefix string) string {
	if len(a.Tracks) == 0 {
		return ""
	}
	return a.Tracks[0].Dir(prefix)
}

// String renders the album with its rating metrics.
func (a *Album) String() string {
	return fmt.Sprintf("%s - %d - %s - Average rating: %0.2f - Rating completeness: %0.2f",
		a.Artist, a.Year, a.Title, a.AvgRating(), a.RatingCompleteness())
}
