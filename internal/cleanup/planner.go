package cleanup

import (
	"fmt"
	"slices"

	"github.com/thowi/pytunes/internal/analysis"
	ioutils "github.com/thowi/pytunes/internal/io"
	"github.com/thowi/pytunes/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Planner turns analysis results into cleanup plans.
//
// Planning only reads the file system to check that album folders exist.
// Nothing is changed until the plan is handed to an Executor.
type Planner struct {
	opts       Options
	dirExists  func(string) bool
	collator   *collate.Collator
	onProgress func(ProgressEvent)
}

// NewPlanner creates a new Planner. onProgress may be nil.
func NewPlanner(opts Options, onProgress func(ProgressEvent)) *Planner {
	return &Planner{
		opts:       opts,
		dirExists:  ioutils.DirExists,
		collator:   collate.New(language.Und, collate.IgnoreCase),
		onProgress: onProgress,
	}
}

// PlanSingles plans the removal of every crappy single track, ordered by
// artist and name.
func (p *Planner) PlanSingles(tracks []*model.Track, albums []*model.Album) *Plan {
	p.progress(ProgressEvent{Message: "Planning removal of crappy singles...", Level: LevelInfo})

	crappy := analysis.CrappySingleTracks(tracks, albums, p.opts.MinRating).Slice()
	slices.SortStableFunc(crappy, func(a, b *model.Track) int {
		if c := p.collator.CompareString(a.Artist, b.Artist); c != 0 {
			return c
		}
		return p.collator.CompareString(a.Name, b.Name)
	})

	plan := &Plan{}
	for _, t := range crappy {
		if t.Location == "" {
			p.progress(ProgressEvent{Message: fmt.Sprintf("Track has no location: %s", t), Level: LevelWarning})
			continue
		}
		plan.Singles = append(plan.Singles, Operation{
			Kind:  OpRemove,
			Path:  t.Path(p.opts.LocationPrefix),
			Track: t,
		})
	}
	return plan
}

// PlanCrappyAlbums plans dissolving every crappy album, ordered by artist.
func (p *Planner) PlanCrappyAlbums(albums []*model.Album) *Plan {
	p.progress(ProgressEvent{Message: "Planning removal of crappy albums...", Level: LevelInfo})

	crappy := slices.Collect(analysis.CrappyAlbums(albums, p.opts.MinGoodTracks, p.opts.MinRating))
	return p.planAlbums(crappy)
}

// PlanCompilations plans dissolving every completely rated compilation,
// ordered by artist.
func (p *Planner) PlanCompilations(albums []*model.Album) *Plan {
	p.progress(ProgressEvent{Message: "Planning removal of compilations...", Level: LevelInfo})

	return p.planAlbums(analysis.Compilations(analysis.CompletelyRated(albums)))
}

func (p *Planner) planAlbums(albums []*model.Album) *Plan {
	sorted := slices.Clone(albums)
	slices.SortStableFunc(sorted, func(a, b *model.Album) int {
		return p.collator.CompareString(a.Artist, b.Artist)
	})

	plan := &Plan{}
	for _, album := range sorted {
		albumPlan, ok := p.planAlbum(album)
		if !ok {
			plan.Skipped = append(plan.Skipped, album)
			continue
		}
		plan.Albums = append(plan.Albums, albumPlan)
	}
	return plan
}

// planAlbum removes the bad tracks of an album, moves or keeps the good
// ones, and removes the album folder last. The folder is taken from the
// first track.
func (p *Planner) planAlbum(album *model.Album) (AlbumPlan, bool) {
	dir := album.Dir(p.opts.LocationPrefix)
	if dir == "" {
		p.progress(ProgressEvent{Message: fmt.Sprintf("Album has no location: %s", album), Level: LevelWarning})
		return AlbumPlan{}, false
	}
	if !p.dirExists(dir) {
		p.progress(ProgressEvent{Message: fmt.Sprintf("Path does not exist: %s", dir), Level: LevelWarning})
		return AlbumPlan{}, false
	}

	pathCfg := p.opts.pathConfig()
	plan := AlbumPlan{Album: album, Dir: dir}
	for _, t := range album.Tracks {
		if t.Location == "" {
			p.progress(ProgressEvent{Message: fmt.Sprintf("Track has no location: %s", t), Level: LevelWarning})
			continue
		}
		switch {
		case t.RatingValue() < p.opts.MinRating:
			plan.Operations = append(plan.Operations, Operation{
				Kind:  OpRemove,
				Path:  t.Path(p.opts.LocationPrefix),
				Track: t,
			})
		case p.opts.KeepGoodTracks:
			plan.Operations = append(plan.Operations, Operation{
				Kind:   OpMove,
				Path:   t.Path(p.opts.LocationPrefix),
				Target: t.MovedPath(pathCfg),
				Track:  t,
			})
		}
	}
	plan.Operations = append(plan.Operations, Operation{Kind: OpRemoveDir, Path: dir})
	return plan, true
}

func (p *Planner) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
