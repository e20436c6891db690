package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"trailprofile/internal/profile"
	"trailprofile/internal/service"
)

// seriesColors is the chart color cycle; dayTextColors in styles.go must
// stay in the same order.
var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Blue,
}

// ProfileModel is the whole-trip profile screen model
type ProfileModel struct {
	series    *profile.ProfileSeries
	summaries []service.DaySummary
	width     int
}

// NewProfileModel creates a new profile model
func NewProfileModel(series *profile.ProfileSeries, summaries []service.DaySummary) ProfileModel {
	return ProfileModel{
		series:    series,
		summaries: summaries,
	}
}

// Init initializes the profile screen
func (m ProfileModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}

// View renders the profile screen
func (m ProfileModel) View() string {
	var sections []string
	sections = append(sections, m.renderChart())
	sections = append(sections, m.renderTotals())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ProfileModel) renderChart() string {
	title := cardTitleStyle.Render("Elevation (feet) over Cumulative Distance (miles)")

	chartWidth := 72
	if m.width > 0 && m.width-20 < chartWidth {
		chartWidth = m.width - 20
	}
	if chartWidth < 20 {
		chartWidth = 20
	}

	// One series per day, NaN-padded before its start so each day only
	// draws over its own span of the x axis.
	total := len(m.series.Samples)
	data := make([][]float64, 0, len(m.series.Days))
	colors := make([]asciigraph.AnsiColor, 0, len(m.series.Days))
	for i, day := range m.series.Days {
		row := make([]float64, day.End)
		for j := 0; j < day.Start; j++ {
			row[j] = math.NaN()
		}
		for j := day.Start; j < day.End; j++ {
			row[j] = m.series.Samples[j].Elevation
		}
		data = append(data, downsampleSpan(row, total, chartWidth))
		colors = append(colors, seriesColors[i%len(seriesColors)])
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(12),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(colors...),
	)

	legend := m.renderLegend()

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, "", legend))
}

// downsampleSpan shrinks a NaN-padded row in proportion to the full series
// length, so every day's series stays aligned after downsampling.
func downsampleSpan(row []float64, total, width int) []float64 {
	if total <= width {
		return row
	}
	target := len(row) * width / total
	if target < 2 {
		target = 2
	}
	return downsample(row, target)
}

func (m ProfileModel) renderLegend() string {
	var parts []string
	for _, s := range m.summaries {
		entry := lipgloss.NewStyle().Foreground(dayTextColor(s.Day)).
			Render(fmt.Sprintf("── %d %s", s.Day, s.Label))
		parts = append(parts, entry)
	}
	return strings.Join(parts, "   ")
}

func (m ProfileModel) renderTotals() string {
	title := cardTitleStyle.Render("Trip")

	lo, hi := m.series.ElevationRange()
	lines := []string{
		renderMetric("Days", fmt.Sprintf("%d", len(m.series.Days))),
		renderMetric("Total distance", formatMiles(m.series.TotalDistance())),
		renderMetric("Lowest point", formatFeet(lo)),
		renderMetric("Highest point", formatFeet(hi)),
		renderMetric("Track points", fmt.Sprintf("%d", len(m.series.Samples))),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
