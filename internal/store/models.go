package store

import (
	"os"
	"time"
)

// Track is the cache metadata for one decoded GPX file.
type Track struct {
	ID         int64
	Path       string // absolute path of the source file
	Label      string
	ModTime    time.Time
	Size       int64
	PointCount int
}

// Fresh reports whether the cached entry still matches the file on disk.
func (t *Track) Fresh(info os.FileInfo) bool {
	return t.ModTime.Unix() == info.ModTime().Unix() && t.Size == info.Size()
}
