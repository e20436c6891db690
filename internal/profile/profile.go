package profile

import "time"

// TrackPoint is one GPS fix decoded from a GPX file.
type TrackPoint struct {
	Lat       float64
	Lon       float64
	Elevation *float64  // meters; nil when the source had no <ele>
	Time      time.Time // zero when the source had no timestamp
}

// DayTrack is the ordered point sequence from one input file, representing
// one day of the hike. Day indices are 1-based and assigned by the caller
// in file order; point order within the track is the recording order.
type DayTrack struct {
	Day    int
	Label  string // display label, usually the filename stem
	Points []TrackPoint
}

// ProfileSample is one row of the aggregated profile.
type ProfileSample struct {
	Distance  float64 // cumulative miles from the start of day 1
	Elevation float64 // feet
	Day       int
}

// DayRange records which contiguous slice of the sample series a day owns.
// The range is [Start, End).
type DayRange struct {
	Day   int
	Label string
	Start int
	End   int
}

// ProfileSeries is the aggregated output: one continuous sample series
// across all days, plus the per-day boundary table used for coloring and
// legend entries.
type ProfileSeries struct {
	Samples []ProfileSample
	Days    []DayRange
}

// TotalDistance returns the cumulative distance of the last sample in miles.
func (s *ProfileSeries) TotalDistance() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	return s.Samples[len(s.Samples)-1].Distance
}

// DaySamples returns the samples owned by the given day range.
func (s *ProfileSeries) DaySamples(r DayRange) []ProfileSample {
	return s.Samples[r.Start:r.End]
}

// ElevationRange returns the lowest and highest elevation in feet across
// the whole series.
func (s *ProfileSeries) ElevationRange() (lo, hi float64) {
	for i, sample := range s.Samples {
		if i == 0 || sample.Elevation < lo {
			lo = sample.Elevation
		}
		if i == 0 || sample.Elevation > hi {
			hi = sample.Elevation
		}
	}
	return lo, hi
}
