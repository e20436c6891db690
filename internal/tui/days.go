package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"trailprofile/internal/profile"
	"trailprofile/internal/service"
)

// DaysModel is the per-day breakdown screen model. The table lists one row
// per day; enter opens a scrollable detail view for the selected day.
type DaysModel struct {
	series    *profile.ProfileSeries
	summaries []service.DaySummary
	cursor    int
	showing   bool // detail view open
	viewport  viewport.Model
	ready     bool
	width     int
	height    int
}

// NewDaysModel creates a new days model
func NewDaysModel(series *profile.ProfileSeries, summaries []service.DaySummary) DaysModel {
	return DaysModel{
		series:    series,
		summaries: summaries,
	}
}

// Init initializes the days screen
func (m DaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-8)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 8
		}
		if m.showing {
			m.viewport.SetContent(m.renderDetail())
		}

	case tea.KeyMsg:
		if m.showing {
			switch msg.String() {
			case "esc", "backspace":
				m.showing = false
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.summaries)-1 {
				m.cursor++
			}
		case "enter":
			if m.ready {
				m.showing = true
				m.viewport.SetContent(m.renderDetail())
				m.viewport.GotoTop()
			}
		}
	}

	return m, nil
}

// View renders the days screen
func (m DaysModel) View() string {
	if m.showing {
		footer := statusStyle.Render("esc back • j/k scroll")
		return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
	}
	return m.renderTable()
}

func (m DaysModel) renderTable() string {
	title := cardTitleStyle.Render("Days")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-3s  %-18s  %9s  %9s  %10s  %10s",
		"Day", "Label", "Start", "Miles", "Low", "High"))

	rows := []string{header}
	for i, s := range m.summaries {
		row := fmt.Sprintf("%-3d  %-18s  %9.1f  %9.1f  %10s  %10s",
			s.Day, truncate(s.Label, 18), s.StartMile, s.Distance,
			formatFeet(s.MinElev), formatFeet(s.MaxElev))
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(row))
		} else {
			rows = append(rows, tableRowStyle.Render(row))
		}
	}

	footer := statusStyle.Render("enter detail • j/k move")

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.JoinVertical(lipgloss.Left, title, table, footer)
}

func (m DaysModel) renderDetail() string {
	s := m.summaries[m.cursor]
	r := m.series.Days[m.cursor]

	title := lipgloss.NewStyle().Bold(true).Foreground(dayTextColor(s.Day)).
		Render(fmt.Sprintf("Day %d — %s", s.Day, s.Label))

	samples := m.series.DaySamples(r)
	data := make([]float64, len(samples))
	for i, sample := range samples {
		data[i] = sample.Elevation
	}
	if len(data) > 60 {
		data = downsample(data, 60)
	}

	var chart string
	if len(data) > 2 {
		chart = asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Precision(0),
		)
	} else {
		chart = statusStyle.Render("(not enough points to chart)")
	}

	stats := []string{
		renderMetric("Starts at", formatMiles(s.StartMile)),
		renderMetric("Ends at", formatMiles(s.EndMile)),
		renderMetric("Distance", formatMiles(s.Distance)),
		renderMetric("Lowest", formatFeet(s.MinElev)),
		renderMetric("Highest", formatFeet(s.MaxElev)),
		renderMetric("Points", fmt.Sprintf("%d", s.Samples)),
	}

	var sections []string
	sections = append(sections, title, "")
	sections = append(sections, cardTitleStyle.Render("Elevation (feet)"))
	sections = append(sections, chart, "")
	sections = append(sections, strings.Join(stats, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// truncate shortens a label to at most max runes, never cutting mid-rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
