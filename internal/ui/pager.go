package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// contentMsg replaces the title and content of a running pager.
type contentMsg struct {
	title   string
	content string
}

type pagerModel struct {
	viewport viewport.Model
	title    string
	content  string
	ready    bool
	maxWidth int // maximum viewport width (0 = no limit)
	width    int // terminal width
	height   int // terminal height
	theme    Theme
}

func newPagerModel(title, content string, maxWidth int, theme Theme) pagerModel {
	return pagerModel{title: title, content: content, maxWidth: maxWidth, theme: theme}
}

func (m pagerModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case contentMsg:
		m.title = msg.title
		m.content = msg.content
		if m.ready {
			atBottom := m.viewport.AtBottom()
			m.viewport.SetContent(m.content)
			if atBottom {
				m.viewport.GotoBottom()
			}
		}
		return m, tea.SetWindowTitle(m.title)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// title line and footer line
		bodyHeight := max(msg.Height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), bodyHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = bodyHeight
			m.viewport.SetContent(m.content)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// contentWidth returns the effective content width, respecting maxWidth configuration.
func (m *pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := m.theme.HeaderStyle().Render(m.title)
	footer := m.theme.HelpStyle().Render("↑/↓ scroll • q quit")
	body := strings.Join([]string{header, m.viewport.View(), footer}, "\n")
	return m.theme.PaintScreen(body, m.width, m.height, m.contentWidth())
}
