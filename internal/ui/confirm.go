package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel asks a yes/no question. Enter takes the default answer.
type confirmModel struct {
	prompt     string
	defaultYes bool
	confirmed  bool
	done       bool
	theme      Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.confirmed = true
	case "n", "esc", "ctrl+c":
		m.confirmed = false
	case "enter":
		m.confirmed = m.defaultYes
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) hint() string {
	if m.defaultYes {
		return "[Y/n]"
	}
	return "[y/N]"
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	promptStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	return fmt.Sprintf("%s %s ", promptStyle.Render(m.prompt), m.theme.DangerStyle().Render(m.hint()))
}

// Confirm asks prompt on the terminal and reports whether the user agreed.
// Only "y" agrees unless defaultYes is set, in which case enter agrees too.
func Confirm(prompt string, defaultYes bool, theme Theme, opts ...tea.ProgramOption) (bool, error) {
	m := confirmModel{prompt: prompt, defaultYes: defaultYes, theme: theme}
	result, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
