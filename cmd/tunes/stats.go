package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thowi/pytunes/internal/report"
)

var (
	// flags for stats
	statsSections []string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "print library statistics",
	Long: `print incompletely rated albums, the best and worst rated albums, crappy singles,
crappy albums and duplicates.

sections: ` + sectionNames(),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sections, err := report.ParseSections(statsSections)
		if err != nil {
			return err
		}

		s, err := openSession()
		if err != nil {
			return err
		}

		reporter := report.NewReporter(cmd.OutOrStdout(), s.settings.ToReportOptions())
		return reporter.Write(sections, s.library.Tracks, s.albums)
	},
}

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "list duplicate tracks",
	Long:  `list tracks with the same artist and name whose play times are within the tolerated difference.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		reporter := report.NewReporter(cmd.OutOrStdout(), s.settings.ToReportOptions())
		return reporter.Duplicates(s.library.Tracks)
	},
}

var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "list the library playlists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTRACKS")
		for _, p := range s.library.Playlists {
			if p.Master || !p.Visible {
				continue
			}
			fmt.Fprintf(w, "%s\t%d\n", p.Name, len(s.library.PlaylistTracks(p)))
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().StringSliceVarP(&statsSections, "section", "s", nil, "sections to print (default: all)")
}

func sectionNames() string {
	names := make([]string, 0, len(report.Sections))
	for _, s := range report.Sections {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
