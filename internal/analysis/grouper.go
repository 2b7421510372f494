package analysis

import (
	"github.com/thowi/pytunes/internal/model"
)

// DefaultGroupLocationPrefix is the URI scheme stripped from locations
// before their directory is taken.
const DefaultGroupLocationPrefix = "file://"

// GroupOptions configure how tracks are grouped into albums.
type GroupOptions struct {
	// LocationPrefix is stripped from each location before the parent
	// directory is computed.
	LocationPrefix string
}

// DefaultGroupOptions returns the default grouping options.
func DefaultGroupOptions() GroupOptions {
	return GroupOptions{LocationPrefix: DefaultGroupLocationPrefix}
}

// albumKey identifies a candidate album.
type albumKey struct {
	artist    string
	year      int
	title     string
	directory string
}

// Group groups tracks into albums.
//
// A track is part of an album when it has an effective artist (album
// artist, or artist if there is none), a track number, a year and an album
// title. Tracks sharing all of these and the same directory form a
// candidate album.
//
// Only directories holding exactly one candidate album yield an album. A
// directory whose tracks map to several candidates usually holds unrelated
// single tracks, so none of its candidates is accepted and all its tracks
// stay single tracks.
//
// Tracks keep their input order within an album. Albums are returned in
// the order their directory was first seen.
func Group(tracks []*model.Track, opts GroupOptions) []*model.Album {
	albumsByKey := make(map[albumKey]*model.Album)
	albumsByDir := make(map[string][]*model.Album)
	var dirs []string

	for _, t := range tracks {
		artist := t.EffectiveArtist()
		if artist == "" || t.Number == 0 || t.Year == 0 || t.Album == "" {
			continue
		}

		dir := t.Dir(opts.LocationPrefix)
		key := albumKey{artist: artist, year: t.Year, title: t.Album, directory: dir}

		album, ok := albumsByKey[key]
		if !ok {
			album = model.NewAlbum(artist, t.Year, t.Album, nil)
			albumsByKey[key] = album
			if _, seen := albumsByDir[dir]; !seen {
				dirs = append(dirs, dir)
			}
			albumsByDir[dir] = append(albumsByDir[dir], album)
		}
		album.Tracks = append(album.Tracks, t)
	}

	albums := make([]*model.Album, 0, len(dirs))
	for _, dir := range dirs {
		if candidates := albumsByDir[dir]; len(candidates) == 1 {
			albums = append(albums, candidates[0])
		}
	}
	return albums
}
