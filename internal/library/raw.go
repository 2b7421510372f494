package library

import (
	"log/slog"
	"time"

	"github.com/thowi/pytunes/internal/model"
)

// rawLibrary is the top-level dictionary of the export.
type rawLibrary struct {
	MajorVersion int                 `plist:"Major Version"`
	MinorVersion int                 `plist:"Minor Version"`
	Version      string              `plist:"Application Version"`
	MusicFolder  string              `plist:"Music Folder"`
	Tracks       map[string]rawTrack `plist:"Tracks"`
	Playlists    []rawPlaylist       `plist:"Playlists"`
}

// rawTrack is a track dictionary as it appears in the export.
type rawTrack struct {
	TrackID      int       `plist:"Track ID"`
	PersistentID string    `plist:"Persistent ID"`
	Name         string    `plist:"Name"`
	Artist       string    `plist:"Artist"`
	AlbumArtist  string    `plist:"Album Artist"`
	Album        string    `plist:"Album"`
	Composer     string    `plist:"Composer"`
	Genre        string    `plist:"Genre"`
	Kind         string    `plist:"Kind"`
	TrackNumber  int       `plist:"Track Number"`
	Year         int       `plist:"Year"`
	Rating       *int      `plist:"Rating"`
	TotalTime    int64     `plist:"Total Time"`
	Location     string    `plist:"Location"`
	Podcast      bool      `plist:"Podcast"`
	BitRate      int       `plist:"Bit Rate"`
	SampleRate   int       `plist:"Sample Rate"`
	Size         int64     `plist:"Size"`
	PlayCount    int       `plist:"Play Count"`
	SkipCount    int       `plist:"Skip Count"`
	DateAdded    time.Time `plist:"Date Added"`
	DateModified time.Time `plist:"Date Modified"`
	PlayDate     time.Time `plist:"Play Date UTC"`
}

// toModel maps the raw track. A location that cannot be unescaped is kept
// as it is.
func (r rawTrack) toModel(logger *slog.Logger) *model.Track {
	location, err := decodeLocation(r.Location)
	if err != nil {
		logger.Warn("keeping undecodable location", "track", r.TrackID, "location", r.Location, "error", err)
		location = r.Location
	}
	return &model.Track{
		ID:           r.TrackID,
		PersistentID: r.PersistentID,
		Name:         r.Name,
		Artist:       r.Artist,
		AlbumArtist:  r.AlbumArtist,
		Album:        r.Album,
		Composer:     r.Composer,
		Genre:        r.Genre,
		Kind:         r.Kind,
		Number:       r.TrackNumber,
		Year:         r.Year,
		Rating:       r.Rating,
		TotalTime:    r.TotalTime,
		Location:     location,
		Podcast:      r.Podcast,
		BitRate:      r.BitRate,
		SampleRate:   r.SampleRate,
		Size:         r.Size,
		PlayCount:    r.PlayCount,
		SkipCount:    r.SkipCount,
		DateAdded:    r.DateAdded,
		DateModified: r.DateModified,
		PlayDate:     r.PlayDate,
	}
}

// rawPlaylist is a playlist dictionary as it appears in the export.
type rawPlaylist struct {
	PlaylistID        int    `plist:"Playlist ID"`
	PersistentID      string `plist:"Playlist Persistent ID"`
	Name              string `plist:"Name"`
	Master            bool   `plist:"Master"`
	Visible           *bool  `plist:"Visible"`
	AllItems          bool   `plist:"All Items"`
	DistinguishedKind int    `plist:"Distinguished Kind"`
	Items             []struct {
		TrackID int `plist:"Track ID"`
	} `plist:"Playlist Items"`
}

func (r rawPlaylist) toModel() *model.Playlist {
	p := &model.Playlist{
		ID:                r.PlaylistID,
		PersistentID:      r.PersistentID,
		Name:              r.Name,
		Master:            r.Master,
		Visible:           r.Visible == nil || *r.Visible,
		AllItems:          r.AllItems,
		DistinguishedKind: r.DistinguishedKind,
	}
	for _, item := range r.Items {
		p.ItemIDs = append(p.ItemIDs, item.TrackID)
	}
	return p
}
