package report

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/thowi/pytunes/internal/analysis"
	"github.com/thowi/pytunes/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrUnknownSection is returned by ParseSections for an unsupported
// section name.
var ErrUnknownSection = errors.New("report: unknown section")

// Section names one block of the report.
type Section string

const (
	SectionIncomplete    Section = "incomplete"
	SectionBest          Section = "best"
	SectionWorst         Section = "worst"
	SectionCrappySingles Section = "crappy-singles"
	SectionCrappyAlbums  Section = "crappy-albums"
	SectionDuplicates    Section = "duplicates"
)

// Sections lists every section in report order.
var Sections = []Section{
	SectionIncomplete,
	SectionBest,
	SectionWorst,
	SectionCrappySingles,
	SectionCrappyAlbums,
	SectionDuplicates,
}

// ParseSections validates section names. No names selects all sections.
// The result always follows report order.
func ParseSections(names []string) ([]Section, error) {
	if len(names) == 0 {
		return Sections, nil
	}
	for _, name := range names {
		if !slices.Contains(Sections, Section(name)) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
	}
	var sections []Section
	for _, s := range Sections {
		if slices.Contains(names, string(s)) {
			sections = append(sections, s)
		}
	}
	return sections, nil
}

// Options configure the thresholds used by the report.
type Options struct {
	// LocationPrefix is stripped from track locations in listings.
	LocationPrefix string

	MinRating               int
	MinGoodTracks           int
	ToleratedTimeDifference int64

	// TopN limits the best and worst album lists.
	TopN int
}

// DefaultOptions returns the default report options.
func DefaultOptions() Options {
	return Options{
		LocationPrefix:          "file://localhost",
		MinRating:               analysis.DefaultMinRating,
		MinGoodTracks:           analysis.DefaultMinGoodTracks,
		ToleratedTimeDifference: analysis.DefaultToleratedTimeDifference,
		TopN:                    20,
	}
}

// Reporter writes library statistics as plain text.
//
// Every section starts with a title line and ends with an empty line.
//
// Example:
//
//	r := report.NewReporter(os.Stdout, report.DefaultOptions())
//	err := r.Write(report.Sections, tracks, albums)
//
//	// Output:
//	// Incompletely rated albums:
//	// Air - 1998 - Moon Safari - Average rating: 70.00 - Rating completeness: 0.50
//	//
//	// 20 best rated albums:
//	// ...
type Reporter struct {
	w        io.Writer
	opts     Options
	collator *collate.Collator
}

// NewReporter creates a new Reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:        w,
		opts:     opts,
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// Write writes the given sections in order.
func (r *Reporter) Write(sections []Section, tracks []*model.Track, albums []*model.Album) error {
	for _, s := range sections {
		var err error
		switch s {
		case SectionIncomplete:
			err = r.IncompletelyRated(albums)
		case SectionBest:
			err = r.BestRated(albums)
		case SectionWorst:
			err = r.WorstRated(albums)
		case SectionCrappySingles:
			err = r.CrappySingles(tracks, albums)
		case SectionCrappyAlbums:
			err = r.CrappyAlbums(albums)
		case SectionDuplicates:
			err = r.Duplicates(tracks)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownSection, s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// IncompletelyRated lists the incompletely rated albums, least complete
// first.
func (r *Reporter) IncompletelyRated(albums []*model.Album) error {
	incomplete := slices.Clone(analysis.IncompletelyRated(albums))
	slices.SortStableFunc(incomplete, func(a, b *model.Album) int {
		return cmp.Compare(a.RatingCompleteness(), b.RatingCompleteness())
	})
	return r.albumSection("Incompletely rated albums:", incomplete)
}

// BestRated lists the TopN best rated albums.
func (r *Reporter) BestRated(albums []*model.Album) error {
	return r.albumSection(fmt.Sprintf("%d best rated albums:", r.opts.TopN), analysis.BestRated(albums, r.opts.TopN))
}

// WorstRated lists the TopN worst rated albums.
func (r *Reporter) WorstRated(albums []*model.Album) error {
	return r.albumSection(fmt.Sprintf("%d worst rated albums:", r.opts.TopN), analysis.WorstRated(albums, r.opts.TopN))
}

// CrappySingles lists the crappy single tracks with rating and path.
func (r *Reporter) CrappySingles(tracks []*model.Track, albums []*model.Album) error {
	crappy := analysis.CrappySingleTracks(tracks, albums, r.opts.MinRating).SortedBy(r.byArtistAndName)

	var sb strings.Builder
	sb.WriteString("Crappy singles:\n")
	for _, t := range crappy {
		fmt.Fprintf(&sb, "%s - %s - %0.2f - %s\n", t.Artist, t.Name, float64(t.RatingValue()), t.Path(r.opts.LocationPrefix))
	}
	sb.WriteString("\n")
	return r.flush(&sb)
}

// CrappyAlbums lists the crappy albums in album order.
func (r *Reporter) CrappyAlbums(albums []*model.Album) error {
	crappy := slices.Collect(analysis.CrappyAlbums(albums, r.opts.MinGoodTracks, r.opts.MinRating))
	return r.albumSection("Crappy albums:", crappy)
}

// Duplicates lists duplicate tracks ordered by artist and name.
func (r *Reporter) Duplicates(tracks []*model.Track) error {
	duplicates := analysis.Duplicates(tracks, r.opts.ToleratedTimeDifference).SortedBy(r.byArtistAndName)

	var sb strings.Builder
	sb.WriteString("Duplicates:\n")
	for _, t := range duplicates {
		sb.WriteString(t.String() + "\n")
	}
	sb.WriteString("\n")
	return r.flush(&sb)
}

func (r *Reporter) albumSection(title string, albums []*model.Album) error {
	var sb strings.Builder
	sb.WriteString(title + "\n")
	for _, a := range albums {
		sb.WriteString(a.String() + "\n")
	}
	sb.WriteString("\n")
	return r.flush(&sb)
}

func (r *Reporter) flush(sb *strings.Builder) error {
	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *Reporter) byArtistAndName(a, b *model.Track) bool {
	if c := r.collator.CompareString(a.Artist, b.Artist); c != 0 {
		return c < 0
	}
	return r.collator.CompareString(a.Name, b.Name) < 0
}
