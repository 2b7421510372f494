package library

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/thowi/pytunes/internal/model"
	"howett.net/plist"
)

// ErrLibraryNotFound is returned when no library path is configured and
// none of the default locations exists.
var ErrLibraryNotFound = errors.New("library: no library file found")

// Options configure how a library is loaded.
type Options struct {
	// Path is the library export file. Empty means auto-detect.
	Path string

	// IncludePodcasts keeps podcast episodes in Library.Tracks.
	IncludePodcasts bool
}

// Library is one load of the library export.
type Library struct {
	// Path is the file the library was loaded from.
	Path string

	// Tracks is the working track set ordered by track ID. Podcasts are
	// left out unless Options.IncludePodcasts is set.
	Tracks []*model.Track

	// Playlists holds the library playlists in export order.
	Playlists []*model.Playlist

	byID map[int]*model.Track
}

// Track returns the track with the given ID, including podcasts.
func (l *Library) Track(id int) (*model.Track, bool) {
	t, ok := l.byID[id]
	return t, ok
}

// PlaylistTracks resolves the playlist items against this load.
func (l *Library) PlaylistTracks(p *model.Playlist) []*model.Track {
	return p.Items(l.byID)
}

// Loader reads library exports.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader. A nil logger discards all output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger}
}

// Load reads and maps the library export described by opts.
//
// The load fails as a whole if the file cannot be read or decoded, so
// callers never see a partial library.
func (l *Loader) Load(opts Options) (*Library, error) {
	path := opts.Path
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	l.logger.Info("loading library", "path", path)
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("library: open %s: %w", path, err)
	}
	defer f.Close()

	var doc rawLibrary
	if err := plist.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("library: decode %s: %w", path, err)
	}

	lib := &Library{Path: path}
	cache := newTrackCache(l.logger)

	for key, raw := range doc.Tracks {
		if raw.TrackID == 0 {
			id, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("library: decode %s: invalid track key %q", path, key)
			}
			raw.TrackID = id
		}
		t := cache.get(raw)
		if t.Podcast && !opts.IncludePodcasts {
			continue
		}
		lib.Tracks = append(lib.Tracks, t)
	}
	slices.SortFunc(lib.Tracks, func(a, b *model.Track) int { return a.ID - b.ID })
	lib.byID = cache.tracks

	for _, raw := range doc.Playlists {
		lib.Playlists = append(lib.Playlists, raw.toModel())
	}

	l.logger.Debug("library loaded",
		"tracks", len(lib.Tracks),
		"cached", len(cache.tracks),
		"playlists", len(lib.Playlists),
		"elapsed", time.Since(start))

	return lib, nil
}

// DefaultPath returns the first existing default library location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("library: locate home directory: %w", err)
	}
	for _, path := range DefaultPaths(homeDir) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrLibraryNotFound
}

// DefaultPaths lists the default library locations below homeDir, most
// preferred first.
func DefaultPaths(homeDir string) []string {
	dir := filepath.Join(homeDir, "Music", "iTunes")
	return []string{
		filepath.Join(dir, "iTunes Music Library.xml"),
		filepath.Join(dir, "iTunes Library.xml"),
	}
}

// trackCache maps track IDs to tracks for the duration of one load, so a
// track referenced more than once is materialized once.
type trackCache struct {
	tracks map[int]*model.Track
	logger *slog.Logger
}

func newTrackCache(logger *slog.Logger) *trackCache {
	return &trackCache{tracks: make(map[int]*model.Track), logger: logger}
}

func (c *trackCache) get(raw rawTrack) *model.Track {
	if t, ok := c.tracks[raw.TrackID]; ok {
		return t
	}
	t := raw.toModel(c.logger)
	c.tracks[t.ID] = t
	return t
}

// decodeLocation unescapes a library location URL.
func decodeLocation(location string) (string, error) {
	if location == "" {
		return "", nil
	}
	decoded, err := url.PathUnescape(location)
	if err != nil {
		return "", fmt.Errorf("invalid location %q: %w", location, err)
	}
	return decoded, nil
}
