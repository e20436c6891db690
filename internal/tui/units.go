package tui

import (
	"fmt"
	"math"
)

// formatMiles formats a cumulative distance for display.
func formatMiles(miles float64) string {
	return fmt.Sprintf("%.1f mi", miles)
}

// formatFeet formats an elevation for display.
func formatFeet(feet float64) string {
	return fmt.Sprintf("%.0f ft", feet)
}

// downsample reduces data to at most target points by averaging buckets,
// so long tracks fit a terminal-width chart. NaN values pass through so
// series gaps survive downsampling.
func downsample(data []float64, target int) []float64 {
	if len(data) <= target || target <= 0 {
		return data
	}

	out := make([]float64, target)
	bucket := float64(len(data)) / float64(target)
	for i := range out {
		start := int(float64(i) * bucket)
		end := int(float64(i+1) * bucket)
		if end > len(data) {
			end = len(data)
		}

		sum, n := 0.0, 0
		for _, v := range data[start:end] {
			if math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(n)
		}
	}
	return out
}
