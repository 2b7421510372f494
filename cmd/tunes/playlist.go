package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	ioutils "github.com/thowi/pytunes/internal/io"
	"github.com/thowi/pytunes/internal/playlist"
)

var (
	// flags for playlist
	playlistFormat string
	playlistOutput string
)

var playlistCmd = &cobra.Command{
	Use:   "playlist <selection>",
	Short: "write a playlist of an analysis result",
	Long: `write the tracks of an analysis result as a playlist file.

selections: ` + strings.Join(selectionNames(), ", ") + `

the file is named after the selection unless --output is given. use
--output - to write to stdout.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: selectionNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := playlist.Selection(args[0])

		s, err := openSession()
		if err != nil {
			return err
		}

		format := s.settings.ToPlaylistFormat()
		if playlistFormat != "" {
			if format, err = playlist.ParseFormat(playlistFormat); err != nil {
				return err
			}
		}

		tracks, err := playlist.Select(sel, s.library.Tracks, s.albums, s.settings.ToSelectOptions())
		if err != nil {
			return err
		}

		creator := playlist.NewCreator(format, s.settings.M3UExtended, s.settings.LocationPrefix)
		content := creator.Create(sel.Title(), tracks)

		switch playlistOutput {
		case "-":
			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		case "":
			playlistOutput = ioutils.SanitizeFileName(sel.Title()) + format.Extension()
		}

		if err := ioutils.WriteFile(cmd.Context(), playlistOutput, []byte(content)); err != nil {
			return fmt.Errorf("write playlist: %w", err)
		}
		s.logger.Info("playlist written", "path", playlistOutput, "tracks", len(tracks))
		return nil
	},
}

func init() {
	playlistCmd.Flags().StringVarP(&playlistFormat, "format", "f", "", "playlist format: m3u, pls, wpl or zpl (default: from settings)")
	playlistCmd.Flags().StringVarP(&playlistOutput, "output", "o", "", "output file")
}

func selectionNames() []string {
	names := make([]string, 0, len(playlist.Selections))
	for _, s := range playlist.Selections {
		names = append(names, string(s))
	}
	return names
}
