package playlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thowi/pytunes/internal/model"
)

// ErrUnknownPlaylistFormat is returned by ParseFormat for an unsupported
// format name.
var ErrUnknownPlaylistFormat = errors.New("playlist: unknown format")

// Format represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
type Format int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U Format = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	FormatZPL
)

// ParseFormat returns the format for a settings name such as "m3u".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "m3u":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	case "wpl":
		return FormatWPL, nil
	case "zpl":
		return FormatZPL, nil
	default:
		return FormatM3U, fmt.Errorf("%w: %q", ErrUnknownPlaylistFormat, name)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	case FormatWPL:
		return ".wpl"
	case FormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

// Creator renders track selections as playlists.
//
// Tracks are referenced by absolute path, so the playlist file can be
// written anywhere.
//
// Example:
//
//	creator := playlist.NewCreator(playlist.FormatM3U, true, "file://localhost")
//	content := creator.Create("Crappy singles", tracks)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:298,Air - Sexy Boy
//	// /Music/Air/Moon Safari/02 Sexy Boy.mp3
type Creator struct {
	format         Format
	extended       bool // For M3U: include EXTINF lines with duration/title
	locationPrefix string
}

// NewCreator creates a new Creator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
//   - locationPrefix: stripped from track locations to get file paths
func NewCreator(format Format, extended bool, locationPrefix string) *Creator {
	return &Creator{
		format:         format,
		extended:       extended,
		locationPrefix: locationPrefix,
	}
}

// Create generates playlist content named title for tracks, in order.
// Tracks without a location are left out.
func (c *Creator) Create(title string, tracks []*model.Track) string {
	entries := make([]*model.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Location != "" {
			entries = append(entries, t)
		}
	}

	switch c.format {
	case FormatPLS:
		return c.createPLS(entries)
	case FormatWPL:
		return c.createWPL(title, entries)
	case FormatZPL:
		return c.createZPL(title, entries)
	default:
		return c.createM3U(entries)
	}
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	/path/to/file.mp3
func (c *Creator) createM3U(tracks []*model.Track) string {
	var sb strings.Builder

	if c.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, t := range tracks {
		if c.extended {
			fmt.Fprintf(&sb, "#EXTINF:%d,%s - %s\n", seconds(t), t.Artist, t.Name)
		}
		sb.WriteString(t.Path(c.locationPrefix) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=/path/to/file.mp3
//	Title1=Artist - Title
//	Length1=180
//	NumberOfEntries=1
//	Version=2
func (c *Creator) createPLS(tracks []*model.Track) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, t := range tracks {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, t.Path(c.locationPrefix))
		fmt.Fprintf(&sb, "Title%d=%s - %s\n", idx, t.Artist, t.Name)
		fmt.Fprintf(&sb, "Length%d=%d\n", idx, seconds(t))
	}

	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(tracks))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
func (c *Creator) createWPL(title string, tracks []*model.Track) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, t := range tracks {
		fmt.Fprintf(&sb, "      <media src=\"%s\"/>\n", escapeXML(t.Path(c.locationPrefix)))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist. It carries album and
// artist attributes and the duration in milliseconds for every entry.
func (c *Creator) createZPL(title string, tracks []*model.Track) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	sb.WriteString("    <meta name=\"Generator\" content=\"tunes\"/>\n")
	fmt.Fprintf(&sb, "    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(tracks))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, t := range tracks {
		fmt.Fprintf(&sb, "      <media src=\"%s\" albumTitle=\"%s\" albumArtist=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\" duration=\"%d\"/>\n",
			escapeXML(t.Path(c.locationPrefix)),
			escapeXML(t.Album),
			escapeXML(t.EffectiveArtist()),
			escapeXML(t.Name),
			escapeXML(t.Artist),
			t.TotalTime)
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// seconds returns the playing time in whole seconds, or -1 if unknown.
func seconds(t *model.Track) int64 {
	if t.TotalTime == 0 {
		return -1
	}
	return t.TotalTime / 1000
}

// escapeXML escapes special XML characters in a string.
//
// Replaces: & < > " '
// With:     &amp; &lt; &gt; &quot; &apos;
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
