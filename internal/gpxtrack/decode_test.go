package gpxtrack

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Day 1</name>
    <trkseg>
      <trkpt lat="36.5785" lon="-118.2923">
        <ele>4421.0</ele>
        <time>2025-07-14T14:00:00Z</time>
      </trkpt>
      <trkpt lat="36.5790" lon="-118.2930">
        <ele>4400.5</ele>
      </trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="36.5800" lon="-118.2940">
        <ele>4350.0</ele>
      </trkpt>
    </trkseg>
  </trk>
</gpx>`

const noElevationGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg>
      <trkpt lat="10.0" lon="20.0"/>
    </trkseg>
  </trk>
</gpx>`

func TestDecodeBytes(t *testing.T) {
	points, err := DecodeBytes([]byte(sampleGPX))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	// Segment boundaries are flattened; point order is preserved.
	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}

	first := points[0]
	if first.Lat != 36.5785 || first.Lon != -118.2923 {
		t.Errorf("first point = (%v, %v), want (36.5785, -118.2923)", first.Lat, first.Lon)
	}
	if first.Elevation == nil || *first.Elevation != 4421.0 {
		t.Errorf("first point elevation = %v, want 4421.0", first.Elevation)
	}
	if first.Time.IsZero() {
		t.Error("first point should carry its timestamp")
	}
	if !points[1].Time.IsZero() {
		t.Error("second point has no <time>, Time should be zero")
	}

	if points[2].Elevation == nil || *points[2].Elevation != 4350.0 {
		t.Errorf("third point elevation = %v, want 4350.0", points[2].Elevation)
	}
}

func TestDecodeBytesMissingElevation(t *testing.T) {
	points, err := DecodeBytes([]byte(noElevationGPX))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
	// Absent <ele> must stay nil so the aggregator can reject it; it is
	// never zero-filled here.
	if points[0].Elevation != nil {
		t.Errorf("Elevation = %v, want nil", *points[0].Elevation)
	}
}

func TestDecodeBytesMalformed(t *testing.T) {
	if _, err := DecodeBytes([]byte("<gpx><trk>")); err == nil {
		t.Error("DecodeBytes() on truncated XML should fail")
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day1.gpx")
	if err := os.WriteFile(path, []byte(sampleGPX), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	points, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if len(points) != 3 {
		t.Errorf("len(points) = %d, want 3", len(points))
	}

	if _, err := DecodeFile(filepath.Join(dir, "missing.gpx")); err == nil {
		t.Error("DecodeFile() on a missing file should fail")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"day1.gpx", "day1"},
		{"/hikes/jmt/day-03.GPX", "day-03"},
		{"track", "track"},
	}
	for _, tt := range tests {
		if got := Label(tt.path); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"day2.gpx", "day1.gpx", "notes.txt", "day3.GPX"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(sampleGPX), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("len(files) = %d, want 3", len(files))
	}
	// Sorted by name, so day order falls out of day-numbered filenames.
	for i, want := range []string{"day1.gpx", "day2.gpx", "day3.GPX"} {
		if filepath.Base(files[i]) != want {
			t.Errorf("files[%d] = %q, want %q", i, filepath.Base(files[i]), want)
		}
	}
}
