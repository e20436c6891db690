package profile

import (
	"math"
	"testing"
)

func TestGreatCircleMeters(t *testing.T) {
	tests := []struct {
		name string
		a, b TrackPoint
		want float64
		tol  float64
	}{
		{
			name: "identical points",
			a:    TrackPoint{Lat: 37.0, Lon: -119.0},
			b:    TrackPoint{Lat: 37.0, Lon: -119.0},
			want: 0,
			tol:  1e-9,
		},
		{
			name: "one degree of longitude at the equator",
			a:    TrackPoint{Lat: 0, Lon: 0},
			b:    TrackPoint{Lat: 0, Lon: 1},
			want: EarthRadiusMeters * math.Pi / 180,
			tol:  0.5,
		},
		{
			name: "one degree of latitude",
			a:    TrackPoint{Lat: 40, Lon: 10},
			b:    TrackPoint{Lat: 41, Lon: 10},
			want: EarthRadiusMeters * math.Pi / 180,
			tol:  0.5,
		},
		{
			name: "antipodal points stay in asin domain",
			a:    TrackPoint{Lat: 0, Lon: 0},
			b:    TrackPoint{Lat: 0, Lon: 180},
			want: EarthRadiusMeters * math.Pi,
			tol:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := greatCircleMeters(tt.a, tt.b)
			if math.IsNaN(got) {
				t.Fatal("distance is NaN")
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("greatCircleMeters() = %v, want %v (±%v)", got, tt.want, tt.tol)
			}
		})
	}
}

func TestGreatCircleSymmetry(t *testing.T) {
	a := TrackPoint{Lat: 36.5785, Lon: -118.2923}
	b := TrackPoint{Lat: 36.6044, Lon: -118.3219}

	if ab, ba := greatCircleMeters(a, b), greatCircleMeters(b, a); math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
}
