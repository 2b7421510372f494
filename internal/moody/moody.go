package moody

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/thowi/pytunes/internal/model"
)

// DefaultMinSimilarity is the lowest Jaro-Winkler similarity for which a
// library key is suggested for an unmatched tag.
const DefaultMinSimilarity = 0.9

// moodPattern matches the Moody tag at the start of the composer field.
var moodPattern = regexp.MustCompile(`^Moody([A-D][1-4])`)

// Tags maps track keys (see model.TrackKey) to moods such as "B2".
type Tags map[string]string

// Mood returns the Moody mood of a track, or "" if it has none.
func Mood(t *model.Track) string {
	m := moodPattern.FindStringSubmatch(t.Composer)
	if m == nil {
		return ""
	}
	return m[1]
}

// Export collects the moods of all tagged tracks. When several tracks
// share a key, the last one wins.
func Export(tracks []*model.Track) Tags {
	tags := make(Tags)
	for _, t := range tracks {
		if mood := Mood(t); mood != "" {
			tags[t.Key()] = mood
		}
	}
	return tags
}

// WriteJSON writes tags as a single JSON object followed by a newline.
func WriteJSON(w io.Writer, tags Tags) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("moody: encode tags: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("moody: write tags: %w", err)
	}
	return nil
}

// ReadJSON reads tags written by WriteJSON.
func ReadJSON(r io.Reader) (Tags, error) {
	var tags Tags
	if err := json.NewDecoder(r).Decode(&tags); err != nil {
		return nil, fmt.Errorf("moody: decode tags: %w", err)
	}
	return tags, nil
}

// Difference is a library track whose mood differs from the input.
type Difference struct {
	Track *model.Track

	// Mood is the mood from the input.
	Mood string
}

// Diff compares tags against the library. Every library track whose key
// is in tags but whose mood differs yields a Difference. Keys without a
// library track are ignored; see Unmatched.
//
// The result is ordered by artist, then by key, then in library order.
func Diff(tracks []*model.Track, tags Tags) []Difference {
	byKey := make(map[string][]*model.Track)
	for _, t := range tracks {
		byKey[t.Key()] = append(byKey[t.Key()], t)
	}

	var diffs []Difference
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		mood := tags[key]
		for _, t := range byKey[key] {
			if Mood(t) != mood {
				diffs = append(diffs, Difference{Track: t, Mood: mood})
			}
		}
	}

	slices.SortStableFunc(diffs, func(a, b Difference) int {
		return strings.Compare(a.Track.Artist, b.Track.Artist)
	})
	return diffs
}

// PrintDiff writes the differences, one line per track.
//
// Example output:
//
//	Mood differences:
//	Air - Sexy Boy: In library: B2. From input: C1.
func PrintDiff(w io.Writer, diffs []Difference) error {
	var sb strings.Builder
	sb.WriteString("Mood differences:\n")
	for _, d := range diffs {
		fmt.Fprintf(&sb, "%s - %s: In library: %s. From input: %s.\n",
			d.Track.Artist, d.Track.Name, moodOrNone(Mood(d.Track)), moodOrNone(d.Mood))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func moodOrNone(mood string) string {
	if mood == "" {
		return "None"
	}
	return mood
}

// Suggestion is an input key that matched no library track.
type Suggestion struct {
	// Key is the unmatched input key.
	Key string

	// Mood is the input mood for Key.
	Mood string

	// Closest is the most similar library key, empty if none reached the
	// similarity threshold.
	Closest string

	// Similarity is the Jaro-Winkler similarity of Key and Closest.
	Similarity float32
}

// Unmatched returns the input keys that no library track has, sorted by
// key. For each one the most similar library key is suggested if its
// similarity is at least minSimilarity.
func Unmatched(tracks []*model.Track, tags Tags, minSimilarity float32) []Suggestion {
	libraryKeys := make(map[string]struct{}, len(tracks))
	for _, t := range tracks {
		libraryKeys[t.Key()] = struct{}{}
	}
	candidates := slices.Sorted(maps.Keys(libraryKeys))

	var suggestions []Suggestion
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		if _, ok := libraryKeys[key]; ok {
			continue
		}
		s := Suggestion{Key: key, Mood: tags[key]}
		for _, candidate := range candidates {
			sim, err := edlib.StringsSimilarity(key, candidate, edlib.JaroWinkler)
			if err != nil {
				continue
			}
			if sim >= minSimilarity && sim > s.Similarity {
				s.Closest, s.Similarity = candidate, sim
			}
		}
		suggestions = append(suggestions, s)
	}
	return suggestions
}
