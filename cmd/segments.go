package cmd

import (
	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/chris-regnier/ansicolor/internal/source"
	"github.com/chris-regnier/ansicolor/internal/ui"
	"github.com/spf13/cobra"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments [file|-]",
	Short: "List the styled runs of a document",
	Long:  "Print every run of text with the color code that governs it and the style class it maps to.",
	Example: `  ansicolor segments build.log
  printf '\033[31mred\033[0m' | ansicolor segments --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := "-"
		if len(args) == 1 {
			arg = args[0]
		}
		doc, err := source.Load(arg, cmd.InOrStdin())
		if err != nil {
			return err
		}

		segments := ansi.New(currentGrammar()).Split(doc.Text)
		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), ui.ToSegmentJSON(segments))
		}
		ui.FormatSegments(cmd.OutOrStdout(), segments)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
}
