package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chris-regnier/ansicolor/internal/config"
	"github.com/spf13/cobra"
)

func setupTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	appConfig = &config.Config{
		Grammar:       "strict",
		NotifyTimeout: "10ms",
		MaxWidth:      100,
		View:          config.ViewConfig{TitlePrefix: "Preview "},
	}
	cfgFile = ""
	jsonOutput = false
	grammarFlag = ""
	stripInPlace = false
	stripDiff = false
	stripYes = false
	viewOutput = ""
	viewHTML = false
	viewFollow = false
}

// testCommand returns a command wired to in-memory stdin, stdout and stderr.
func testCommand(stdin string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	c := &cobra.Command{}
	c.SetIn(strings.NewReader(stdin))
	c.SetOut(&out)
	c.SetErr(&errOut)
	return c, &out, &errOut
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
