// Package service orchestrates the collaborators around the profile core:
// it resolves input files into day tracks (through the decode cache) and
// derives the per-day summaries the UI layers present.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"trailprofile/internal/gpxtrack"
	"trailprofile/internal/profile"
	"trailprofile/internal/store"
)

// Loader resolves input paths into ordered day tracks, consulting the
// decode cache before falling back to XML parsing.
type Loader struct {
	db *store.DB // nil disables caching
}

// NewLoader creates a Loader. Pass a nil db to load without a cache.
func NewLoader(db *store.DB) *Loader {
	return &Loader{db: db}
}

// LoadResult holds the decoded day tracks plus cache accounting.
type LoadResult struct {
	Tracks    []profile.DayTrack
	CacheHits int
	Parsed    int
}

// LoadDayTracks decodes one track per path, in the given order. Path order
// is day order; the caller is responsible for passing files chronologically.
func (l *Loader) LoadDayTracks(paths []string) (*LoadResult, error) {
	result := &LoadResult{
		Tracks: make([]profile.DayTrack, 0, len(paths)),
	}

	for i, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", path, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		points, hit, err := l.loadPoints(abs, info)
		if err != nil {
			return nil, err
		}
		if hit {
			result.CacheHits++
		} else {
			result.Parsed++
		}

		result.Tracks = append(result.Tracks, profile.DayTrack{
			Day:    i + 1,
			Label:  gpxtrack.Label(path),
			Points: points,
		})
	}

	return result, nil
}

// loadPoints returns the file's points and whether they came from the cache.
func (l *Loader) loadPoints(abs string, info os.FileInfo) ([]profile.TrackPoint, bool, error) {
	if l.db != nil {
		cached, err := l.db.GetTrack(abs)
		switch {
		case err == nil && cached.Fresh(info):
			points, err := l.db.GetTrackPoints(cached.ID)
			if err != nil {
				return nil, false, fmt.Errorf("reading cache for %s: %w", abs, err)
			}
			return points, true, nil
		case err != nil && !errors.Is(err, store.ErrTrackNotFound):
			return nil, false, fmt.Errorf("checking cache for %s: %w", abs, err)
		}
	}

	points, err := gpxtrack.DecodeFile(abs)
	if err != nil {
		return nil, false, err
	}

	if l.db != nil {
		track := &store.Track{
			Path:    abs,
			Label:   gpxtrack.Label(abs),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		}
		if err := l.db.SaveTrack(track, points); err != nil {
			return nil, false, fmt.Errorf("caching %s: %w", abs, err)
		}
	}

	return points, false, nil
}
