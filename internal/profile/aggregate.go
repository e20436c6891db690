package profile

import "math"

// Aggregate folds the given day tracks, in file order, into one continuous
// elevation-vs-distance series. Distance carries across day boundaries: the
// first point of day k+1 accumulates from the last point of day k, never
// resetting per day. The running total is accumulated in meters and each
// emitted sample converts it to miles (elevations to feet).
//
// Validation is eager and all-or-nothing: any empty track, out-of-range
// coordinate, or missing/non-finite elevation aborts the whole aggregation
// with an error naming the offending day and point.
func Aggregate(days []DayTrack) (*ProfileSeries, error) {
	if len(days) == 0 {
		return nil, &EmptyInputError{}
	}

	total := 0
	for _, d := range days {
		if len(d.Points) == 0 {
			return nil, &EmptyInputError{Day: d.Day}
		}
		total += len(d.Points)
	}

	series := &ProfileSeries{
		Samples: make([]ProfileSample, 0, total),
		Days:    make([]DayRange, 0, len(days)),
	}

	meters := 0.0
	var prev *TrackPoint
	for di := range days {
		day := &days[di]
		start := len(series.Samples)
		for i := range day.Points {
			pt := &day.Points[i]
			if err := validatePoint(day.Day, i, pt); err != nil {
				return nil, err
			}
			if prev != nil {
				meters += greatCircleMeters(*prev, *pt)
			}
			series.Samples = append(series.Samples, ProfileSample{
				Distance:  meters / metersPerMile,
				Elevation: *pt.Elevation * feetPerMeter,
				Day:       day.Day,
			})
			prev = pt
		}
		series.Days = append(series.Days, DayRange{
			Day:   day.Day,
			Label: day.Label,
			Start: start,
			End:   len(series.Samples),
		})
	}

	return series, nil
}

func validatePoint(day, idx int, pt *TrackPoint) error {
	if math.IsNaN(pt.Lat) || math.IsNaN(pt.Lon) ||
		pt.Lat < -90 || pt.Lat > 90 || pt.Lon < -180 || pt.Lon > 180 {
		return &InvalidCoordinateError{Day: day, Point: idx, Lat: pt.Lat, Lon: pt.Lon}
	}
	if pt.Elevation == nil {
		return &DataQualityError{Day: day, Point: idx, Reason: "missing elevation"}
	}
	if math.IsNaN(*pt.Elevation) || math.IsInf(*pt.Elevation, 0) {
		return &DataQualityError{Day: day, Point: idx, Reason: "non-finite elevation"}
	}
	return nil
}
