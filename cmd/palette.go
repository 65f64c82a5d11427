package cmd

import (
	"fmt"
	"os"

	"github.com/chris-regnier/ansicolor/internal/ui"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the recognized color codes",
	Long:  "Show which SGR codes map to which style classes, with a sample of each class.",
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := currentTheme()
		width := ui.TerminalWidth(os.Stdout, 80)
		if appConfig.MaxWidth > 0 && width > appConfig.MaxWidth {
			width = appConfig.MaxWidth
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.RenderMarkdownWithStyle(ui.PaletteMarkdown(), width, theme.MarkdownStyle))
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.PaletteSamples(theme))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
