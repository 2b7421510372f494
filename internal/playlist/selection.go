package playlist

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/thowi/pytunes/internal/analysis"
	"github.com/thowi/pytunes/internal/model"
)

// ErrUnknownSelection is returned by Select for an unsupported selection.
var ErrUnknownSelection = errors.New("playlist: unknown selection")

// Selection names a set of tracks derived from the analysis.
type Selection string

const (
	SelectBest          Selection = "best"
	SelectWorst         Selection = "worst"
	SelectCrappySingles Selection = "crappy-singles"
	SelectCrappyAlbums  Selection = "crappy-albums"
	SelectDuplicates    Selection = "duplicates"
	SelectCompilations  Selection = "compilations"
)

// Selections lists every supported selection.
var Selections = []Selection{
	SelectBest,
	SelectWorst,
	SelectCrappySingles,
	SelectCrappyAlbums,
	SelectDuplicates,
	SelectCompilations,
}

// Title returns a human readable playlist title.
func (s Selection) Title() string {
	if s == "" {
		return ""
	}
	words := strings.Split(string(s), "-")
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}

// SelectOptions hold the thresholds used to compute selections.
type SelectOptions struct {
	MinRating               int
	MinGoodTracks           int
	ToleratedTimeDifference int64
	TopN                    int
}

// DefaultSelectOptions returns the analysis defaults.
func DefaultSelectOptions() SelectOptions {
	return SelectOptions{
		MinRating:               analysis.DefaultMinRating,
		MinGoodTracks:           analysis.DefaultMinGoodTracks,
		ToleratedTimeDifference: analysis.DefaultToleratedTimeDifference,
		TopN:                    20,
	}
}

// Select returns the tracks of a selection. Album selections keep album
// order and track order within each album; track selections are sorted by
// artist, then name.
func Select(sel Selection, tracks []*model.Track, albums []*model.Album, opts SelectOptions) ([]*model.Track, error) {
	switch sel {
	case SelectBest:
		return albumTracks(analysis.BestRated(albums, opts.TopN)), nil
	case SelectWorst:
		return albumTracks(analysis.WorstRated(albums, opts.TopN)), nil
	case SelectCrappyAlbums:
		return albumTracks(slices.Collect(analysis.CrappyAlbums(albums, opts.MinGoodTracks, opts.MinRating))), nil
	case SelectCompilations:
		return albumTracks(analysis.Compilations(albums)), nil
	case SelectCrappySingles:
		return analysis.CrappySingleTracks(tracks, albums, opts.MinRating).SortedBy(byArtistAndName), nil
	case SelectDuplicates:
		return analysis.Duplicates(tracks, opts.ToleratedTimeDifference).SortedBy(byArtistAndName), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelection, sel)
	}
}

func albumTracks(albums []*model.Album) []*model.Track {
	return lo.FlatMap(albums, func(a *model.Album, _ int) []*model.Track {
		return a.Tracks
	})
}

func byArtistAndName(a, b *model.Track) bool {
	if a.Artist != b.Artist {
		return a.Artist < b.Artist
	}
	return a.Name < b.Name
}
