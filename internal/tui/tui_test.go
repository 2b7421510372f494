package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thowi/pytunes/internal/analysis"
	"github.com/thowi/pytunes/internal/config"
	"github.com/thowi/pytunes/internal/model"
	"github.com/thowi/pytunes/internal/report"
)

func rating(r int) *int {
	return &r
}

func testLibrary() []*model.Track {
	return []*model.Track{
		{ID: 1, Artist: "Air", Album: "Moon Safari", Name: "La femme d'argent", Year: 1998, Number: 1, Rating: rating(100),
			Location: "file://localhost/music/Air/Moon Safari/01.mp3"},
		{ID: 2, Artist: "Air", Album: "Moon Safari", Name: "Sexy Boy", Year: 1998, Number: 2, Rating: rating(100),
			Location: "file://localhost/music/Air/Moon Safari/02.mp3"},
		{ID: 3, Artist: "Beck", Album: "Odelay", Name: "Devils Haircut", Year: 1996, Number: 1, Rating: rating(20),
			Location: "file://localhost/music/Beck/Odelay/01.mp3"},
		{ID: 4, Artist: "Beck", Album: "Odelay", Name: "Hotwax", Year: 1996, Number: 2,
			Location: "file://localhost/music/Beck/Odelay/02.mp3"},
		{ID: 6, Artist: "Cake", Album: "Fashion Nugget", Name: "Frank Sinatra", Year: 1996, Number: 1, Rating: rating(60),
			Location: "file://localhost/music/Cake/Fashion Nugget/01.mp3"},
		{ID: 7, Artist: "Cake", Album: "Fashion Nugget", Name: "The Distance", Year: 1996, Number: 2, Rating: rating(60),
			Location: "file://localhost/music/Cake/Fashion Nugget/02.mp3"},
		{ID: 5, Artist: "Zoo", Name: "Single", Rating: rating(40),
			Location: "file://localhost/music/Zoo/single.mp3"},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	settings := config.DefaultSettings()
	tracks := testLibrary()
	albums := analysis.Group(tracks, settings.ToGroupOptions())

	m, _ := update(t, NewModel(settings), LoadedMsg{Tracks: tracks, Albums: albums})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Loaded(t *testing.T) {
	m := loadedModel(t)

	assert.Equal(t, StateBrowsing, m.state)
	assert.Equal(t, 7, m.trackCount)
	assert.Equal(t, 3, m.albumCount)
	assert.InDelta(t, 6.0/7.0, m.completeness, 1e-9)

	require.Len(t, m.tabs, len(report.Sections))
	for i, section := range report.Sections {
		assert.Equal(t, section, m.tabs[i].section)
	}

	incomplete := m.tabs[0]
	assert.Equal(t, "Incomplete", incomplete.name)
	assert.Equal(t, "Incompletely rated albums:", incomplete.title)
	require.Len(t, incomplete.rows, 1)
	assert.Contains(t, incomplete.rows[0], "Beck - 1996 - Odelay")

	singles := m.tabs[3]
	require.Len(t, singles.rows, 1)
	assert.Equal(t, "Zoo - Single - 40.00 - /music/Zoo/single.mp3", singles.rows[0])

	assert.Empty(t, m.tabs[5].rows)
}

func TestModel_LoadError(t *testing.T) {
	m, _ := update(t, NewModel(config.DefaultSettings()), LoadedMsg{Err: errors.New("no library")})

	assert.Equal(t, StateError, m.state)
	assert.Contains(t, m.View(), "no library")
}

func TestModel_TabNavigation(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.active)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, len(m.tabs)-1, m.active)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.active)
}

func TestModel_CursorStaysInRange(t *testing.T) {
	m := loadedModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight}) // best rated
	require.Len(t, m.visibleRows(), 2)
	assert.Contains(t, m.visibleRows()[0], "Moon Safari")

	for range 5 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 1, m.cursor)

	for range 5 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.cursor)
}

func TestModel_Filter(t *testing.T) {
	m := loadedModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight}) // best rated

	m, _ = update(t, m, keyRunes("/"))
	require.True(t, m.filter.Focused())

	// Keys go to the filter while it has focus.
	m, _ = update(t, m, keyRunes("MOON"))
	m, _ = update(t, m, keyRunes("q"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "MOON", m.filter.Value())

	rows := m.visibleRows()
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0], "Air - 1998 - Moon Safari")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filter.Focused())
	assert.Contains(t, m.View(), "Moon Safari")
	assert.NotContains(t, m.View(), "Fashion Nugget")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Empty(t, m.filter.Value())
	assert.Len(t, m.visibleRows(), 2)

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_Reload(t *testing.T) {
	m := loadedModel(t)

	m, cmd := update(t, m, keyRunes("r"))
	assert.Equal(t, StateLoading, m.state)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading library...")
}

func TestRatingCompleteness(t *testing.T) {
	assert.Zero(t, ratingCompleteness(nil))
	assert.InDelta(t, 6.0/7.0, ratingCompleteness(testLibrary()), 1e-9)
}
