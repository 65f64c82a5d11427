package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/chris-regnier/ansicolor/internal/config"
	"github.com/chris-regnier/ansicolor/internal/logging"
	"github.com/chris-regnier/ansicolor/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	jsonOutput  bool
	grammarFlag string
	appConfig   *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ansicolor",
	Short: "Strip or preview ANSI color codes in text",
	Long: `ansicolor removes ANSI SGR color escape sequences from text, or renders
them as a standalone HTML document in which every colored run becomes a
styled span.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override grammar from flag
		if grammarFlag != "" {
			if _, err := ansi.ParseGrammar(grammarFlag); err != nil {
				return err
			}
			appConfig.Grammar = grammarFlag
		}

		logging.Setup(cmd.ErrOrStderr(), appConfig.LogLevel)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&grammarFlag, "grammar", "", "escape grammar (strict|lenient)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func currentGrammar() ansi.Grammar {
	if appConfig == nil {
		return ansi.GrammarStrict
	}
	return appConfig.EscapeGrammar()
}

func currentTheme() ui.Theme {
	if appConfig == nil {
		return ui.ResolveTheme(config.ThemeConfig{})
	}
	return ui.ResolveTheme(appConfig.Theme)
}

func newNotifier(cmd *cobra.Command) *ui.Notifier {
	timeout := 2 * time.Second
	if appConfig != nil {
		if d, err := appConfig.NotifyDuration(); err == nil {
			timeout = d
		}
	}
	return ui.NewNotifier(cmd.ErrOrStderr(), currentTheme(), timeout)
}
