package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/chris-regnier/ansicolor/internal/source"
	"github.com/chris-regnier/ansicolor/internal/ui"
	"github.com/spf13/cobra"
)

var (
	stripInPlace bool
	stripDiff    bool
	stripYes     bool
)

var errStdinInPlace = errors.New("--in-place needs file arguments, not stdin")

var stripCmd = &cobra.Command{
	Use:   "strip [file|-]...",
	Short: "Remove ANSI color codes",
	Long: `Remove ANSI color escape sequences from files or stdin.

By default the cleaned text is written to stdout. With --in-place each file
is rewritten; with --diff the changed lines are shown instead.`,
	Example: `  make 2>&1 | ansicolor strip
  ansicolor strip --in-place build.log test.log
  ansicolor strip --diff build.log`,
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().BoolVarP(&stripInPlace, "in-place", "i", false, "rewrite files instead of printing")
	stripCmd.Flags().BoolVar(&stripDiff, "diff", false, "print a line diff of the removed codes")
	stripCmd.Flags().BoolVarP(&stripYes, "yes", "y", false, "do not ask before rewriting files")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	if stripInPlace {
		for _, arg := range args {
			if arg == "-" {
				return errStdinInPlace
			}
		}
		if !stripYes && ui.IsTerminal(os.Stdin) {
			ok, err := ui.Confirm(fmt.Sprintf("Rewrite %d file(s) without color codes?", len(args)), false, currentTheme())
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}

	proc := ansi.New(currentGrammar())
	notifier := newNotifier(cmd)
	defer notifier.Close()
	out := cmd.OutOrStdout()

	var results []ui.StripResult
	for _, arg := range args {
		doc, err := source.Load(arg, cmd.InOrStdin())
		if err != nil {
			return err
		}
		stripped := proc.Strip(doc.Text)
		removed := len(proc.Matches(doc.Text))
		slog.Debug("stripped", "source", doc.Name, "removed", removed, "grammar", proc.Grammar())

		if stripDiff {
			fmt.Fprint(out, ui.LineDiff(ui.ShowEscapes(doc.Text), ui.ShowEscapes(stripped)))
		}
		if stripInPlace {
			if removed > 0 {
				if err := source.WriteBack(doc, stripped); err != nil {
					return err
				}
			}
			notifier.Show(ui.FormatStripped(doc.Name, removed))
			continue
		}
		if jsonOutput {
			results = append(results, ui.StripResult{Source: doc.Name, Removed: removed, Text: stripped})
			continue
		}
		if !stripDiff {
			fmt.Fprint(out, stripped)
		}
	}

	if jsonOutput && !stripInPlace {
		return ui.FormatJSON(out, results)
	}
	return nil
}
