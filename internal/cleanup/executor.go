package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	ioutils "github.com/thowi/pytunes/internal/io"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a cleanup progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Executor applies cleanup plans.
type Executor struct {
	opts       Options
	out        io.Writer
	onProgress func(ProgressEvent)

	removed    int32
	moved      int32
	removedDir int32

	mu       sync.Mutex
	failures []error
}

// NewExecutor creates a new Executor. In dry-run mode every operation is
// written to out as a shell command instead of being applied.
func NewExecutor(opts Options, out io.Writer, onProgress func(ProgressEvent)) *Executor {
	return &Executor{
		opts:       opts,
		out:        out,
		onProgress: onProgress,
	}
}

// Execute applies plan.
//
// Single tracks and albums are processed concurrently within the
// configured limits. Within an album all file operations finish before the
// folder is removed. A failing operation does not stop the others; all
// file failures are returned joined. A folder that cannot be removed is
// reported as an error event but not returned.
//
// onProgress is called from several goroutines when the limits are above 1.
func (e *Executor) Execute(ctx context.Context, plan *Plan) error {
	if e.opts.DryRun {
		return e.print(plan)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.opts.MaxConcurrentAlbums, 1))

	g.Go(func() error {
		e.applyAll(ctx, plan.Singles)
		return nil
	})
	for _, album := range plan.Albums {
		g.Go(func() error {
			e.applyAlbum(ctx, album)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	removed, moved, removedDirs := e.Counts()
	e.progress(ProgressEvent{
		Message: fmt.Sprintf("Cleanup finished: %d files removed, %d moved, %d folders removed", removed, moved, removedDirs),
		Level:   LevelSuccess,
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	return errors.Join(e.failures...)
}

// Counts returns how many files were removed and moved and how many
// folders were removed so far.
func (e *Executor) Counts() (removed, moved, removedDirs int32) {
	return atomic.LoadInt32(&e.removed), atomic.LoadInt32(&e.moved), atomic.LoadInt32(&e.removedDir)
}

func (e *Executor) print(plan *Plan) error {
	for _, op := range plan.Operations() {
		if _, err := fmt.Fprintln(e.out, op); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) applyAlbum(ctx context.Context, album AlbumPlan) {
	e.progress(ProgressEvent{Message: fmt.Sprintf("Cleaning up album: %s", album.Album), Level: LevelInfo})

	var files []Operation
	var dirs []Operation
	for _, op := range album.Operations {
		if op.Kind == OpRemoveDir {
			dirs = append(dirs, op)
		} else {
			files = append(files, op)
		}
	}

	e.applyAll(ctx, files)

	for _, op := range dirs {
		if err := ioutils.RemoveDir(ctx, op.Path); err != nil {
			e.progress(ProgressEvent{Message: fmt.Sprintf("Could not remove folder %s: %v", op.Path, err), Level: LevelError})
			continue
		}
		atomic.AddInt32(&e.removedDir, 1)
		e.progress(ProgressEvent{Message: op.String(), Level: LevelVerbose})
	}
}

// applyAll applies file operations with the per-file concurrency limit.
func (e *Executor) applyAll(ctx context.Context, ops []Operation) {
	var g errgroup.Group
	g.SetLimit(max(e.opts.MaxConcurrentFiles, 1))

	for _, op := range ops {
		g.Go(func() error {
			if err := e.apply(ctx, op); err != nil {
				e.fail(fmt.Errorf("%s: %w", op, err))
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (e *Executor) apply(ctx context.Context, op Operation) error {
	switch op.Kind {
	case OpRemove:
		if err := ioutils.RemoveFile(ctx, op.Path); err != nil {
			return err
		}
		atomic.AddInt32(&e.removed, 1)
	case OpMove:
		if err := ioutils.MoveFile(ctx, op.Path, op.Target); err != nil {
			return err
		}
		atomic.AddInt32(&e.moved, 1)
	default:
		return fmt.Errorf("unexpected operation kind %d", op.Kind)
	}
	e.progress(ProgressEvent{Message: op.String(), Level: LevelVerbose})
	return nil
}

func (e *Executor) fail(err error) {
	e.mu.Lock()
	e.failures = append(e.failures, err)
	e.mu.Unlock()
	e.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
}

func (e *Executor) progress(event ProgressEvent) {
	if e.onProgress != nil {
		e.onProgress(event)
	}
}
