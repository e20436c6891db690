package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

type keyHelp struct {
	key  string
	desc string
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Profile chart"},
		{"2", "Day breakdown"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	daysSection := m.renderSection("Days", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Open day detail"},
		{"esc", "Close day detail"},
	})
	sections = append(sections, daysSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HelpModel) renderSection(name string, keys []keyHelp) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(name))

	for _, k := range keys {
		line := "  " + helpKeyStyle.Render(padRight(k.key, 10)) + helpDescStyle.Render(k.desc)
		lines = append(lines, line)
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
