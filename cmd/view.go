package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/chris-regnier/ansicolor/internal/markup"
	"github.com/chris-regnier/ansicolor/internal/source"
	"github.com/chris-regnier/ansicolor/internal/ui"
	"github.com/spf13/cobra"
)

var (
	viewOutput string
	viewHTML   bool
	viewFollow bool
)

var viewCmd = &cobra.Command{
	Use:   "view [file|-|uri]",
	Short: "Preview ANSI colored text",
	Long: `Preview text with ANSI color codes.

On a terminal the text opens in a scrollable viewer showing each run in the
color its code selects. With --html, --output, or when stdout is not a
terminal, a standalone HTML document is produced instead.`,
	Example: `  ansicolor view build.log
  ansicolor view --follow build.log
  ansicolor view build.log --output build.html
  go test ./... 2>&1 | ansicolor view --html > report.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVarP(&viewOutput, "output", "o", "", "write the HTML document to a file")
	viewCmd.Flags().BoolVar(&viewHTML, "html", false, "write the HTML document to stdout")
	viewCmd.Flags().BoolVarP(&viewFollow, "follow", "f", false, "keep the viewer open and reload when the file changes")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	}
	doc, err := source.Load(arg, cmd.InOrStdin())
	if err != nil {
		return err
	}

	title := doc.Title(appConfig.View.TitlePrefix)
	renderer := markup.New(markup.Options{Title: title, Grammar: currentGrammar()})

	if viewOutput != "" {
		if err := os.WriteFile(viewOutput, []byte(renderer.Render(doc.Text)), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", viewOutput, err)
		}
		notifier := newNotifier(cmd)
		defer notifier.Close()
		notifier.Show(fmt.Sprintf("Wrote preview of %s to %s.", doc.Name, viewOutput))
		return nil
	}

	if viewHTML || cmd.OutOrStdout() != os.Stdout || !ui.IsTerminal(os.Stdout) {
		return renderer.RenderTo(cmd.OutOrStdout(), doc.Text)
	}

	return runViewer(cmd.Context(), doc, title)
}

// runViewer shows doc in the terminal viewer. With --follow the viewer stays
// open and every change to the file updates it in place.
func runViewer(ctx context.Context, doc source.Document, title string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	theme := currentTheme()
	proc := ansi.New(currentGrammar())
	viewer := ui.NewViewer(theme, appConfig.MaxWidth)
	viewer.ShowOrUpdate(title, ui.StyleSegments(proc.Split(doc.Text), theme))

	if viewFollow && doc.IsFile() {
		watcher, err := source.NewWatcher(doc.Path)
		if err != nil {
			viewer.Close()
			return err
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go watcher.Run(ctx, func(d source.Document) {
			viewer.Update(title, ui.StyleSegments(proc.Split(d.Text), theme))
		})
	}

	return viewer.Wait()
}
