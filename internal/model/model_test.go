package model

import (
	"testing"
)

func rating(r int) *int {
	return &r
}

func TestAlbum_RatingCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		ratings []*int
		want    float64
	}{
		{"mixed with zero stars and missing", []*int{rating(90), rating(90), rating(10), nil}, 0.5},
		{"all rated", []*int{rating(20), rating(100)}, 1.0},
		{"none rated", []*int{nil, rating(10), rating(0)}, 0.0},
		{"no tracks", nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tracks []*Track
			for i, r := range tt.ratings {
				tracks = append(tracks, &Track{ID: i + 1, Artist: "X", Rating: r})
			}
			album := NewAlbum("X", 2000, "Album", tracks)
			if got := album.RatingCompleteness(); got != tt.want {
				t.Errorf("RatingCompleteness() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlbum_AvgRating(t *testing.T) {
	tracks := []*Track{
		{ID: 1, Rating: rating(80)},
		{ID: 2, Rating: rating(60)},
		{ID: 3, Rating: rating(10)},
		{ID: 4},
		{ID: 5, Rating: rating(0)},
	}
	album := NewAlbum("X", 2000, "Album", tracks)

	// 0 and missing ratings are skipped, the zero-star 10 is not.
	want := float64(80+60+10) / 3
	if got := album.AvgRating(); got != want {
		t.Errorf("AvgRating() = %v, want %v", got, want)
	}

	empty := NewAlbum("X", 2000, "Empty", nil)
	if got := empty.AvgRating(); got != 0 {
		t.Errorf("AvgRating() of empty album = %v, want 0", got)
	}
}

func TestAlbum_IsCompilation(t *testing.T) {
	single := NewAlbum("X", 2000, "A", []*Track{{ID: 1, Artist: "X"}, {ID: 2, Artist: "X"}, {ID: 3, Artist: "X"}})
	if single.IsCompilation() {
		t.Error("single-artist album should not be a compilation")
	}

	various := NewAlbum("Various", 2000, "B", []*Track{{ID: 1, Artist: "X"}, {ID: 2, Artist: "Y"}})
	if !various.IsCompilation() {
		t.Error("album with artists X and Y should be a compilation")
	}
}

func TestAlbum_MetricsAreCached(t *testing.T) {
	album := NewAlbum("X", 2000, "A", []*Track{{ID: 1, Artist: "X", Rating: rating(100)}})

	if album.RatingCompleteness() != 1 || album.AvgRating() != 100 || album.IsCompilation() {
		t.Fatalf("unexpected initial metrics: %s", album)
	}

	album.Tracks = append(album.Tracks, &Track{ID: 2, Artist: "Y"})

	if got := album.RatingCompleteness(); got != 1 {
		t.Errorf("RatingCompleteness() after mutation = %v, want cached 1", got)
	}
	if got := album.AvgRating(); got != 100 {
		t.Errorf("AvgRating() after mutation = %v, want cached 100", got)
	}
	if album.IsCompilation() {
		t.Error("IsCompilation() after mutation should stay cached false")
	}
}

func TestAlbum_String(t *testing.T) {
	album := NewAlbum("Air", 1998, "Moon Safari", []*Track{{ID: 1, Artist: "Air", Rating: rating(80)}})
	want := "Air - 1998 - Moon Safari - Average rating: 80.00 - Rating completeness: 1.00"
	if got := album.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTrack_Paths(t *testing.T) {
	cfg := &PathConfig{
		LocationPrefix:      "file://localhost",
		MovedFileNameFormat: "{artist} - {title}{ext}",
	}
	track := &Track{
		ID:       1,
		Artist:   "Air",
		Name:     "Sexy Boy: Remix",
		Location: "file://localhost/music/Air/Moon Safari/02 Sexy Boy.m4a",
	}

	if got, want := track.Path(cfg.LocationPrefix), "/music/Air/Moon Safari/02 Sexy Boy.m4a"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if got, want := track.Dir(cfg.LocationPrefix), "/music/Air/Moon Safari"; got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got, want := track.MovedPath(cfg), "/music/Air/Air - Sexy Boy_ Remix.m4a"; got != want {
		t.Errorf("MovedPath() = %q, want %q", got, want)
	}
}

func TestTrack_DirWithoutLocation(t *testing.T) {
	track := &Track{ID: 1, Name: "Streamed"}

	if got := track.Dir("file://localhost"); got != "" {
		t.Errorf("Dir() = %q, want empty", got)
	}
	if got := NewAlbum("A", 2001, "B", []*Track{track}).Dir("file://localhost"); got != "" {
		t.Errorf("Album.Dir() = %q, want empty", got)
	}
}

func TestTrack_MovedPathDefaultsToMP3(t *testing.T) {
	cfg := &PathConfig{MovedFileNameFormat: "{tracknum} {title}{ext}"}
	track := &Track{ID: 1, Name: "Intro", Number: 1, Location: "/music/A/B/intro"}

	if got, want := track.MovedPath(cfg), "/music/A/01 Intro.mp3"; got != want {
		t.Errorf("MovedPath() = %q, want %q", got, want)
	}
}

func TestTrack_EffectiveArtist(t *testing.T) {
	if got := (&Track{Artist: "A", AlbumArtist: "B"}).EffectiveArtist(); got != "B" {
		t.Errorf("EffectiveArtist() = %q, want album artist", got)
	}
	if got := (&Track{Artist: "A"}).EffectiveArtist(); got != "A" {
		t.Errorf("EffectiveArtist() = %q, want artist", got)
	}
}

func TestTrackSet(t *testing.T) {
	a := &Track{ID: 3, Artist: "B"}
	b := &Track{ID: 1, Artist: "C"}
	c := &Track{ID: 2, Artist: "A"}

	set := NewTrackSet(a, b, c, &Track{ID: 3, Artist: "B"})
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}
	if !set.Contains(&Track{ID: 1}) {
		t.Error("Contains() should match by ID")
	}

	ids := []int{}
	for _, tr := range set.Slice() {
		ids = append(ids, tr.ID)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("Slice() IDs = %v, want [1 2 3]", ids)
	}

	byArtist := set.SortedBy(func(x, y *Track) bool { return x.Artist < y.Artist })
	if byArtist[0] != c || byArtist[2] != b {
		t.Errorf("SortedBy() = %v", byArtist)
	}
}

func TestPlaylist_Items(t *testing.T) {
	byID := map[int]*Track{1: {ID: 1}, 2: {ID: 2}}
	p := &Playlist{Name: "Mix", ItemIDs: []int{2, 5, 1}}

	items := p.Items(byID)
	if len(items) != 2 || items[0].ID != 2 || items[1].ID != 1 {
		t.Errorf("Items() = %v, want tracks 2 and 1", items)
	}
}
