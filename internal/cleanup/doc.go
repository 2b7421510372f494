// Package cleanup removes crappy tracks and albums from disk.
//
// Cleanup happens in two steps. A Planner turns analysis results into a
// Plan of operations, and an Executor either prints or applies it:
//
//	planner := cleanup.NewPlanner(opts, onProgress)
//	plan := planner.PlanCrappyAlbums(albums)
//
//	executor := cleanup.NewExecutor(opts, os.Stdout, onProgress)
//	err := executor.Execute(ctx, plan)
//
// # Albums
//
// An album is dissolved track by track. Tracks rated below MinRating are
// removed. Good tracks are moved next to the album folder, named after
// MovedFileNameFormat, or left in place if KeepGoodTracks is off. The album
// folder is removed last. Albums whose folder cannot be found are skipped
// with a warning.
//
// # Dry Run
//
// With Options.DryRun the executor writes each operation as a shell
// command and touches nothing:
//
//	rm "/music/Air/Moon Safari/03 Kelly Watch The Stars.mp3"
//	mv "/music/Air/Moon Safari/02 Sexy Boy.mp3" "/music/Air/Air - Sexy Boy.mp3"
//	rmdir "/music/Air/Moon Safari"
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package cleanup
