// Package tui is the interactive profile viewer: the aggregated series is
// computed before the program starts, so every screen renders from data
// already in memory.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trailprofile/internal/profile"
	"trailprofile/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenProfile Screen = iota
	ScreenDays
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	profileView ProfileModel
	days        DaysModel
	help        HelpModel

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App over an aggregated series
func NewApp(series *profile.ProfileSeries, summaries []service.DaySummary) *App {
	return &App{
		screen:      ScreenProfile,
		profileView: NewProfileModel(series, summaries),
		days:        NewDaysModel(series, summaries),
		help:        NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenProfile
			return a, nil
		case "2":
			a.screen = ScreenDays
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenProfile:
		var m tea.Model
		m, cmd = a.profileView.Update(msg)
		a.profileView = m.(ProfileModel)
	case ScreenDays:
		var m tea.Model
		m, cmd = a.days.Update(msg)
		a.days = m.(DaysModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenProfile:
		content = a.profileView.View()
	case ScreenDays:
		content = a.days.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Trail Elevation Profile")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Profile", ScreenProfile},
		{"2", "Days", ScreenDays},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
