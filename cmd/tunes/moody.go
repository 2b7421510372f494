package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	ioutils "github.com/thowi/pytunes/internal/io"
	"github.com/thowi/pytunes/internal/moody"
)

var (
	// flags for moody
	moodyOutput        string
	moodyInput         string
	moodyMinSimilarity float32
)

var moodyCmd = &cobra.Command{
	Use:   "moody",
	Short: "export or compare moody tags",
	Long: `moody tags are stored in the composer field as MoodyA1 to MoodyD4.

use exactly one of the export or diff subcommands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("moody: exactly one of export or diff is required")
	},
}

var moodyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "write the moody tags of the library as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		tags := moody.Export(s.library.Tracks)
		s.logger.Info("moody tags exported", "tags", len(tags))

		if moodyOutput == "" || moodyOutput == "-" {
			return moody.WriteJSON(cmd.OutOrStdout(), tags)
		}

		var buf bytes.Buffer
		if err := moody.WriteJSON(&buf, tags); err != nil {
			return err
		}
		return ioutils.WriteFile(cmd.Context(), moodyOutput, buf.Bytes())
	},
}

var moodyDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "compare moody tags from JSON with the library",
	Long: `read moody tags as written by export and print the tracks whose tag differs.
tags without a matching library track are logged, with the most similar
library track when one is close enough.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if moodyInput != "" && moodyInput != "-" {
			f, err := os.Open(moodyInput)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		tags, err := moody.ReadJSON(in)
		if err != nil {
			return fmt.Errorf("read moody tags: %w", err)
		}

		s, err := openSession()
		if err != nil {
			return err
		}

		if err := moody.PrintDiff(cmd.OutOrStdout(), moody.Diff(s.library.Tracks, tags)); err != nil {
			return err
		}

		for _, sug := range moody.Unmatched(s.library.Tracks, tags, moodyMinSimilarity) {
			if sug.Closest == "" {
				s.logger.Warn("no library track for tag", "key", sug.Key, "mood", sug.Mood)
				continue
			}
			s.logger.Warn("no library track for tag",
				"key", sug.Key,
				"mood", sug.Mood,
				"closest", sug.Closest,
				"similarity", sug.Similarity)
		}
		return nil
	},
}

func init() {
	moodyExportCmd.Flags().StringVarP(&moodyOutput, "output", "o", "", "output file (default: stdout)")
	moodyDiffCmd.Flags().StringVarP(&moodyInput, "input", "i", "", "input file (default: stdin)")
	moodyDiffCmd.Flags().Float32Var(&moodyMinSimilarity, "min-similarity", moody.DefaultMinSimilarity, "minimum similarity for suggestions (0-1)")

	moodyCmd.AddCommand(moodyExportCmd, moodyDiffCmd)
}
