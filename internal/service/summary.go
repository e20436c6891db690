package service

import "trailprofile/internal/profile"

// DaySummary is one row of the per-day breakdown shown in the TUI.
// Elevations are the day's range, not gain/loss; distances are miles.
type DaySummary struct {
	Day       int
	Label     string
	StartMile float64
	EndMile   float64
	Distance  float64 // miles covered that day, boundary increment included
	MinElev   float64 // feet
	MaxElev   float64 // feet
	Samples   int
}

// Summarize derives one summary row per day from an aggregated series.
// A day's distance spans from the previous day's last sample to its own
// last sample, so the boundary increment is attributed to the day it
// leads into.
func Summarize(series *profile.ProfileSeries) []DaySummary {
	summaries := make([]DaySummary, 0, len(series.Days))

	prevEnd := 0.0
	for _, r := range series.Days {
		samples := series.DaySamples(r)

		s := DaySummary{
			Day:       r.Day,
			Label:     r.Label,
			StartMile: prevEnd,
			Samples:   len(samples),
		}
		for i, sample := range samples {
			if i == 0 || sample.Elevation < s.MinElev {
				s.MinElev = sample.Elevation
			}
			if i == 0 || sample.Elevation > s.MaxElev {
				s.MaxElev = sample.Elevation
			}
		}
		s.EndMile = samples[len(samples)-1].Distance
		s.Distance = s.EndMile - s.StartMile

		summaries = append(summaries, s)
		prevEnd = s.EndMile
	}

	return summaries
}
