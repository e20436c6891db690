package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// One row per cached GPX file, keyed by absolute path. mod_time and
		// size detect stale entries.
		`CREATE TABLE IF NOT EXISTS tracks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			label TEXT NOT NULL,
			mod_time INTEGER NOT NULL,
			size INTEGER NOT NULL,
			point_count INTEGER NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_tracks_path ON tracks(path)`,

		// Decoded points, in recording order per track.
		`CREATE TABLE IF NOT EXISTS track_points (
			track_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			elevation REAL,
			recorded_at TEXT,
			PRIMARY KEY (track_id, seq),
			FOREIGN KEY (track_id) REFERENCES tracks(id) ON DELETE CASCADE
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
