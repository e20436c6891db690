package profile

import "fmt"

// EmptyInputError reports an empty day-track list or an individual track
// with no points. Day is 0 when the whole list is empty.
type EmptyInputError struct {
	Day int
}

func (e *EmptyInputError) Error() string {
	if e.Day == 0 {
		return "no day tracks given"
	}
	return fmt.Sprintf("day %d: track has no points", e.Day)
}

// InvalidCoordinateError reports a latitude or longitude outside the valid
// range. Point is the 0-based position within the day's track.
type InvalidCoordinateError struct {
	Day   int
	Point int
	Lat   float64
	Lon   float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("day %d point %d: coordinate (%g, %g) out of range", e.Day, e.Point, e.Lat, e.Lon)
}

// DataQualityError reports a missing or non-finite elevation. The profile
// is aborted rather than zero-filled: silently altering its shape would be
// worse than failing loudly.
type DataQualityError struct {
	Day    int
	Point  int
	Reason string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("day %d point %d: %s", e.Day, e.Point, e.Reason)
}
