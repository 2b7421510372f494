package model

// Playlist is a playlist from the library feed.
//
// Playlists reference tracks by ID. Use Items to resolve them against the
// tracks of the same load.
type Playlist struct {
	ID                int
	PersistentID      string
	Name              string
	Master            bool
	Visible           bool
	AllItems          bool
	DistinguishedKind int

	// ItemIDs holds the track IDs in playlist order.
	ItemIDs []int
}

// Items resolves the playlist's track IDs using byID. IDs missing from
// byID are skipped.
func (p *Playlist) Items(byID map[int]*Track) []*Track {
	items := make([]*Track, 0, len(p.ItemIDs))
	for _, id := range p.ItemIDs {
		if t, ok := byID[id]; ok {
			items = append(items, t)
		}
	}
	return items
}

// String renders the playlist for logs.
func (p *Playlist) String() string {
	return "Playlist(name='" + p.Name + "')"
}
