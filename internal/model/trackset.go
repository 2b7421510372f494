package model

import (
	"slices"
	"sort"
)

// TrackSet is a set of tracks keyed by track ID.
//
// Membership is by identity: two *Track values with the same ID are the
// same element.
type TrackSet map[int]*Track

// NewTrackSet returns a set holding tracks.
func NewTrackSet(tracks ...*Track) TrackSet {
	s := make(TrackSet, len(tracks))
	for _, t := range tracks {
		s.Add(t)
	}
	return s
}

// Add inserts t into the set.
func (s TrackSet) Add(t *Track) {
	s[t.ID] = t
}

// Contains reports whether a track with t's ID is in the set.
func (s TrackSet) Contains(t *Track) bool {
	_, ok := s[t.ID]
	return ok
}

// Len returns the number of tracks in the set.
func (s TrackSet) Len() int {
	return len(s)
}

// Slice returns the tracks ordered by ID.
func (s TrackSet) Slice() []*Track {
	return s.SortedBy(func(a, b *Track) bool { return a.ID < b.ID })
}

// SortedBy returns the tracks ordered by less. Ties are broken by ID so the
// result is deterministic.
func (s TrackSet) SortedBy(less func(a, b *Track) bool) []*Track {
	tracks := make([]*Track, 0, len(s))
	for _, t := range s {
		tracks = append(tracks, t)
	}
	slices.SortFunc(tracks, func(a, b *Track) int { return a.ID - b.ID })
	sort.SliceStable(tracks, func(i, j int) bool { return less(tracks[i], tracks[j]) })
	return tracks
}
