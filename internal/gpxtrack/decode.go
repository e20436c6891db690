// Package gpxtrack decodes GPX files into the point sequences the profile
// aggregator consumes. All XML handling lives here; the aggregator never
// sees a file.
package gpxtrack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"trailprofile/internal/profile"
)

// DecodeFile parses one GPX file into the day's ordered point sequence.
func DecodeFile(path string) ([]profile.TrackPoint, error) {
	data, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return flatten(data), nil
}

// DecodeBytes parses raw GPX XML. Used by tests and anything that already
// holds the file contents.
func DecodeBytes(raw []byte) ([]profile.TrackPoint, error) {
	data, err := gpx.ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing GPX data: %w", err)
	}
	return flatten(data), nil
}

// flatten walks tracks and segments in document order, preserving point
// order. Segment boundaries within a file carry no meaning for the profile.
func flatten(data *gpx.GPX) []profile.TrackPoint {
	var points []profile.TrackPoint
	for _, track := range data.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				tp := profile.TrackPoint{
					Lat:  p.Latitude,
					Lon:  p.Longitude,
					Time: p.Timestamp,
				}
				if p.Elevation.NotNull() {
					v := p.Elevation.Value()
					tp.Elevation = &v
				}
				points = append(points, tp)
			}
		}
	}
	return points
}

// Label derives a day's display label from its filename.
func Label(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Discover returns the .gpx files under dir, sorted by name so that
// day-numbered filenames come out in day order.
func Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".gpx") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
