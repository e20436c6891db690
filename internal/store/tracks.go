package store

import (
	"database/sql"
	"fmt"
	"time"

	"trailprofile/internal/profile"
)

// GetTrack retrieves the cache entry for a source file path.
// Returns ErrTrackNotFound if the path has never been cached.
func (db *DB) GetTrack(path string) (*Track, error) {
	var t Track
	var modTime int64
	err := db.QueryRow(`
		SELECT id, path, label, mod_time, size, point_count
		FROM tracks
		WHERE path = ?
	`, path).Scan(&t.ID, &t.Path, &t.Label, &modTime, &t.Size, &t.PointCount)
	if err == sql.ErrNoRows {
		return nil, ErrTrackNotFound
	}
	if err != nil {
		return nil, err
	}
	t.ModTime = time.Unix(modTime, 0)
	return &t, nil
}

// SaveTrack stores a decoded track and its points, replacing any previous
// entry for the same path. The track's ID is set on success.
func (db *DB) SaveTrack(t *Track, points []profile.TrackPoint) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace any stale entry for this path; points cascade.
	if _, err := tx.Exec("DELETE FROM tracks WHERE path = ?", t.Path); err != nil {
		return fmt.Errorf("deleting stale track: %w", err)
	}

	res, err := tx.Exec(`
		INSERT INTO tracks (path, label, mod_time, size, point_count)
		VALUES (?, ?, ?, ?, ?)
	`, t.Path, t.Label, t.ModTime.Unix(), t.Size, len(points))
	if err != nil {
		return fmt.Errorf("inserting track: %w", err)
	}

	trackID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting track id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO track_points (track_id, seq, lat, lon, elevation, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, p := range points {
		var elevation sql.NullFloat64
		if p.Elevation != nil {
			elevation = sql.NullFloat64{Float64: *p.Elevation, Valid: true}
		}
		var recordedAt sql.NullString
		if !p.Time.IsZero() {
			recordedAt = sql.NullString{String: p.Time.UTC().Format(time.RFC3339), Valid: true}
		}
		if _, err := stmt.Exec(trackID, i, p.Lat, p.Lon, elevation, recordedAt); err != nil {
			return fmt.Errorf("inserting point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	t.ID = trackID
	t.PointCount = len(points)
	return nil
}

// GetTrackPoints retrieves a cached track's points in recording order.
func (db *DB) GetTrackPoints(trackID int64) ([]profile.TrackPoint, error) {
	rows, err := db.Query(`
		SELECT lat, lon, elevation, recorded_at
		FROM track_points
		WHERE track_id = ?
		ORDER BY seq
	`, trackID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []profile.TrackPoint
	for rows.Next() {
		var p profile.TrackPoint
		var elevation sql.NullFloat64
		var recordedAt sql.NullString
		if err := rows.Scan(&p.Lat, &p.Lon, &elevation, &recordedAt); err != nil {
			return nil, err
		}
		if elevation.Valid {
			v := elevation.Float64
			p.Elevation = &v
		}
		if recordedAt.Valid {
			ts, err := time.Parse(time.RFC3339, recordedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parsing recorded_at: %w", err)
			}
			p.Time = ts
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// DeleteTrack removes a cached track and its points.
func (db *DB) DeleteTrack(path string) error {
	_, err := db.Exec("DELETE FROM tracks WHERE path = ?", path)
	return err
}

// TrackCount returns the number of cached tracks.
func (db *DB) TrackCount() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM tracks").Scan(&count)
	return count, err
}
