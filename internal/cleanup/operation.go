package cleanup

import (
	"fmt"

	"github.com/thowi/pytunes/internal/analysis"
	"github.com/thowi/pytunes/internal/model"
)

// OperationKind is the file system action of an Operation.
type OperationKind int

const (
	// OpRemove deletes a track file.
	OpRemove OperationKind = iota

	// OpMove moves a good track out of its album folder.
	OpMove

	// OpRemoveDir deletes an album folder once its tracks are gone.
	OpRemoveDir
)

// Operation is a single planned file system change.
type Operation struct {
	Kind OperationKind

	// Path is the file or directory acted on.
	Path string

	// Target is the destination of an OpMove.
	Target string

	// Track is the track behind a file operation, nil for OpRemoveDir.
	Track *model.Track
}

// String renders the operation as a shell command.
func (o Operation) String() string {
	switch o.Kind {
	case OpMove:
		return fmt.Sprintf(`mv "%s" "%s"`, o.Path, o.Target)
	case OpRemoveDir:
		return fmt.Sprintf(`rmdir "%s"`, o.Path)
	default:
		return fmt.Sprintf(`rm "%s"`, o.Path)
	}
}

// AlbumPlan holds the operations that dissolve one album folder. The
// OpRemoveDir for Dir is always the last operation.
type AlbumPlan struct {
	Album      *model.Album
	Dir        string
	Operations []Operation
}

// Plan is an ordered set of cleanup operations.
type Plan struct {
	// Singles holds one OpRemove per crappy single track.
	Singles []Operation

	// Albums holds one plan per album folder to dissolve.
	Albums []AlbumPlan

	// Skipped lists albums whose folder was not found.
	Skipped []*model.Album
}

// Operations returns all operations in execution order.
func (p *Plan) Operations() []Operation {
	ops := append([]Operation(nil), p.Singles...)
	for _, a := range p.Albums {
		ops = append(ops, a.Operations...)
	}
	return ops
}

// Len returns the number of operations in the plan.
func (p *Plan) Len() int {
	n := len(p.Singles)
	for _, a := range p.Albums {
		n += len(a.Operations)
	}
	return n
}

// Options configure planning and execution.
type Options struct {
	// LocationPrefix is stripped from track locations to get file paths.
	LocationPrefix string

	// MovedFileNameFormat names tracks moved out of an album folder.
	MovedFileNameFormat string

	MinRating     int
	MinGoodTracks int

	// KeepGoodTracks moves good tracks out of a dissolved album instead
	// of leaving them in place.
	KeepGoodTracks bool

	// DryRun prints the plan instead of applying it.
	DryRun bool

	MaxConcurrentAlbums int
	MaxConcurrentFiles  int
}

// DefaultOptions returns the default cleanup options. DryRun is on.
func DefaultOptions() Options {
	return Options{
		LocationPrefix:      "file://localhost",
		MovedFileNameFormat: "{artist} - {title}{ext}",
		MinRating:           analysis.DefaultMinRating,
		MinGoodTracks:       analysis.DefaultMinGoodTracks,
		KeepGoodTracks:      true,
		DryRun:              true,
		MaxConcurrentAlbums: 1,
		MaxConcurrentFiles:  1,
	}
}

func (o Options) pathConfig() *model.PathConfig {
	return &model.PathConfig{
		LocationPrefix:      o.LocationPrefix,
		MovedFileNameFormat: o.MovedFileNameFormat,
	}
}
