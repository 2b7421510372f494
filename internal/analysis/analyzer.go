package analysis

import (
	"cmp"
	"iter"
	"slices"

	"github.com/samber/lo"
	"github.com/thowi/pytunes/internal/model"
)

// Defaults for the quality thresholds.
const (
	// DefaultMinRating is the lowest rating of a good track (4 stars).
	DefaultMinRating = 80

	// DefaultMinGoodTracks is how many good tracks an album needs to not
	// be crappy.
	DefaultMinGoodTracks = 4

	// DefaultToleratedTimeDifference is the largest playing time
	// difference, in milliseconds, between two duplicates.
	DefaultToleratedTimeDifference = 10
)

// CompletelyRated returns the albums whose tracks are all rated.
func CompletelyRated(albums []*model.Album) []*model.Album {
	return lo.Filter(albums, func(a *model.Album, _ int) bool {
		return a.RatingCompleteness() == 1
	})
}

// IncompletelyRated returns the albums with at least one unrated track.
func IncompletelyRated(albums []*model.Album) []*model.Album {
	return lo.Filter(albums, func(a *model.Album, _ int) bool {
		return a.RatingCompleteness() < 1
	})
}

// Compilations returns the albums spanning more than one artist.
func Compilations(albums []*model.Album) []*model.Album {
	return lo.Filter(albums, func(a *model.Album, _ int) bool {
		return a.IsCompilation()
	})
}

// SingleTracks returns the tracks that are not part of any album.
func SingleTracks(all []*model.Track, albums []*model.Album) model.TrackSet {
	inAlbums := model.NewTrackSet(lo.FlatMap(albums, func(a *model.Album, _ int) []*model.Track {
		return a.Tracks
	})...)

	singles := make(model.TrackSet)
	for _, t := range all {
		if !inAlbums.Contains(t) {
			singles.Add(t)
		}
	}
	return singles
}

// CrappySingleTracks returns the single tracks rated below minRating.
// Unrated and zero-star tracks are not considered crappy.
func CrappySingleTracks(all []*model.Track, albums []*model.Album, minRating int) model.TrackSet {
	crappy := make(model.TrackSet)
	for _, t := range SingleTracks(all, albums) {
		if t.Rating != nil && model.UnratedRating < *t.Rating && *t.Rating < minRating {
			crappy.Add(t)
		}
	}
	return crappy
}

// CrappyAlbums yields the completely rated albums with fewer than
// minGoodTracks tracks rated minRating or better.
//
// Albums with no more than minGoodTracks tracks are never crappy, as they
// could not reach the threshold in the first place. Albums are yielded in
// input order and evaluated lazily.
func CrappyAlbums(albums []*model.Album, minGoodTracks, minRating int) iter.Seq[*model.Album] {
	return func(yield func(*model.Album) bool) {
		for _, a := range albums {
			if a.RatingCompleteness() != 1 {
				continue
			}
			good := lo.CountBy(a.Tracks, func(t *model.Track) bool {
				return t.RatingValue() >= minRating
			})
			if good < minGoodTracks && minGoodTracks < len(a.Tracks) {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// Duplicates returns the tracks that look like duplicates of another track.
//
// Tracks are duplicates when artist and name match exactly and their
// playing times differ by at most toleratedTimeDifference milliseconds.
// Within each artist/name group the tracks are sorted by playing time and
// only neighbours are compared, so a chain of close tracks is flagged as a
// whole even if its ends are further apart than the tolerance.
func Duplicates(tracks []*model.Track, toleratedTimeDifference int64) model.TrackSet {
	type nameKey struct{ artist, name string }

	groups := lo.GroupBy(tracks, func(t *model.Track) nameKey {
		return nameKey{t.Artist, t.Name}
	})

	duplicates := make(model.TrackSet)
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		sorted := slices.Clone(group)
		slices.SortStableFunc(sorted, func(a, b *model.Track) int {
			return cmp.Compare(a.TotalTime, b.TotalTime)
		})
		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if cur.TotalTime-prev.TotalTime <= toleratedTimeDifference {
				duplicates.Add(prev)
				duplicates.Add(cur)
			}
		}
	}
	return duplicates
}

// BestRated returns up to n completely rated albums, best average rating
// first. A negative n yields no albums.
func BestRated(albums []*model.Album, n int) []*model.Album {
	sorted := sortedByAvgRating(CompletelyRated(albums))
	slices.Reverse(sorted)
	return sorted[:min(max(n, 0), len(sorted))]
}

// WorstRated returns up to n completely rated albums, worst average rating
// first.
func WorstRated(albums []*model.Album, n int) []*model.Album {
	sorted := sortedByAvgRating(CompletelyRated(albums))
	return sorted[:min(max(n, 0), len(sorted))]
}

func sortedByAvgRating(albums []*model.Album) []*model.Album {
	sorted := slices.Clone(albums)
	slices.SortStableFunc(sorted, func(a, b *model.Album) int {
		return cmp.Compare(a.AvgRating(), b.AvgRating())
	})
	return sorted
}
