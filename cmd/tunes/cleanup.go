package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thowi/pytunes/internal/cleanup"
)

var (
	// flags for cleanup
	cleanupApply bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "remove crappy tracks and dissolve albums",
	Long: `remove crappy singles, dissolve crappy albums or dissolve compilations.

without --apply the planned operations are printed as shell commands and
nothing is changed. dissolving an album removes its bad tracks, moves the
good ones next to the album folder (see keep_good_tracks and
moved_file_name_format) and removes the folder.`,
}

var cleanupSinglesCmd = &cobra.Command{
	Use:   "singles",
	Short: "remove crappy single tracks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCleanup(cmd, func(p *cleanup.Planner, s *session) *cleanup.Plan {
			return p.PlanSingles(s.library.Tracks, s.albums)
		})
	},
}

var cleanupAlbumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "dissolve crappy albums",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCleanup(cmd, func(p *cleanup.Planner, s *session) *cleanup.Plan {
			return p.PlanCrappyAlbums(s.albums)
		})
	},
}

var cleanupCompilationsCmd = &cobra.Command{
	Use:   "compilations",
	Short: "dissolve completely rated compilations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCleanup(cmd, func(p *cleanup.Planner, s *session) *cleanup.Plan {
			return p.PlanCompilations(s.albums)
		})
	},
}

func init() {
	cleanupCmd.PersistentFlags().BoolVar(&cleanupApply, "apply", false, "apply the operations instead of printing them")
	cleanupCmd.AddCommand(cleanupSinglesCmd, cleanupAlbumsCmd, cleanupCompilationsCmd)
}

func runCleanup(cmd *cobra.Command, plan func(*cleanup.Planner, *session) *cleanup.Plan) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	opts := s.settings.ToCleanupOptions()
	if cleanupApply {
		opts.DryRun = false
	}

	onProgress := logProgress(s.logger)
	p := plan(cleanup.NewPlanner(opts, onProgress), s)
	for _, album := range p.Skipped {
		s.logger.Warn("album skipped", "album", album.String(), "dir", album.Dir(opts.LocationPrefix))
	}
	s.logger.Info("cleanup planned", "operations", p.Len(), "albums", len(p.Albums), "dry_run", opts.DryRun)

	executor := cleanup.NewExecutor(opts, cmd.OutOrStdout(), onProgress)
	if err := executor.Execute(cmd.Context(), p); err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	return nil
}

// logProgress forwards cleanup progress events to logger.
func logProgress(logger *slog.Logger) func(cleanup.ProgressEvent) {
	return func(event cleanup.ProgressEvent) {
		switch event.Level {
		case cleanup.LevelVerbose:
			logger.Debug(event.Message)
		case cleanup.LevelWarning:
			logger.Warn(event.Message)
		case cleanup.LevelError:
			logger.Error(event.Message)
		default:
			logger.Info(event.Message)
		}
	}
}
