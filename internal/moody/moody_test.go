package moody

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thowi/pytunes/internal/model"
)

func TestMood(t *testing.T) {
	tests := []struct {
		composer string
		want     string
	}{
		{"MoodyB2", "B2"},
		{"MoodyD4 and more", "D4"},
		{"Someone MoodyA1", ""},
		{"MoodyE1", ""},
		{"MoodyA5", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.composer, func(t *testing.T) {
			assert.Equal(t, tt.want, Mood(&model.Track{Composer: tt.composer}))
		})
	}
}

func TestExportAndJSON(t *testing.T) {
	tracks := []*model.Track{
		{ID: 1, Artist: "Air", Name: "Sexy Boy", Composer: "MoodyB2"},
		{ID: 2, Artist: "Air", Name: "Kelly", Composer: "Nicolas Godin"},
		{ID: 3, Artist: "Beck", Name: "Loser", Composer: "MoodyC1"},
	}

	tags := Export(tracks)
	assert.Equal(t, Tags{"Air----Sexy Boy": "B2", "Beck----Loser": "C1"}, tags)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tags))
	assert.Equal(t, `{"Air----Sexy Boy":"B2","Beck----Loser":"C1"}`+"\n", buf.String())

	read, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, tags, read)
}

func TestReadJSON_Invalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`["not", "an", "object"]`))
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	zoo := &model.Track{ID: 1, Artist: "Zoo", Name: "z", Composer: "MoodyA1"}
	airSame := &model.Track{ID: 2, Artist: "Air", Name: "same", Composer: "MoodyB2"}
	airUntagged := &model.Track{ID: 3, Artist: "Air", Name: "untagged"}
	airCopy := &model.Track{ID: 4, Artist: "Air", Name: "untagged", Composer: "MoodyC3"}
	tracks := []*model.Track{zoo, airSame, airUntagged, airCopy}

	tags := Tags{
		"Zoo----z":        "D4",
		"Air----same":     "B2",
		"Air----untagged": "C3",
		"Nobody----x":     "A1",
	}

	diffs := Diff(tracks, tags)

	require.Len(t, diffs, 2)
	assert.Same(t, airUntagged, diffs[0].Track)
	assert.Equal(t, "C3", diffs[0].Mood)
	assert.Same(t, zoo, diffs[1].Track)
	assert.Equal(t, "D4", diffs[1].Mood)

	var out bytes.Buffer
	require.NoError(t, PrintDiff(&out, diffs))
	want := "Mood differences:\n" +
		"Air - untagged: In library: None. From input: C3.\n" +
		"Zoo - z: In library: A1. From input: D4.\n"
	assert.Equal(t, want, out.String())
}

func TestUnmatched(t *testing.T) {
	tracks := []*model.Track{
		{ID: 1, Artist: "Air", Name: "Sexy Boy"},
		{ID: 2, Artist: "Beck", Name: "Loser"},
	}
	tags := Tags{
		"Air----Sexy Boy":     "B2",
		"Air----Sexy Boys":    "B3",
		"Portishead----Roads": "A1",
	}

	got := Unmatched(tracks, tags, DefaultMinSimilarity)

	require.Len(t, got, 2)
	assert.Equal(t, "Air----Sexy Boys", got[0].Key)
	assert.Equal(t, "Air----Sexy Boy", got[0].Closest)
	assert.GreaterOrEqual(t, got[0].Similarity, float32(DefaultMinSimilarity))

	assert.Equal(t, "Portishead----Roads", got[1].Key)
	assert.Equal(t, "A1", got[1].Mood)
	assert.Empty(t, got[1].Closest)
}
