package render

import (
	"fmt"
	"image/color"
	"sort"
)

// DefaultColormap is used when neither config nor flags pick one.
const DefaultColormap = "viridis"

// colormaps holds anchor stops, interpolated linearly in RGB. Stops are
// evenly spaced over [0, 1].
var colormaps = map[string][]color.NRGBA{
	"viridis": {
		{R: 0x44, G: 0x01, B: 0x54, A: 0xFF},
		{R: 0x3B, G: 0x52, B: 0x8B, A: 0xFF},
		{R: 0x21, G: 0x91, B: 0x8C, A: 0xFF},
		{R: 0x5E, G: 0xC9, B: 0x62, A: 0xFF},
		{R: 0xFD, G: 0xE7, B: 0x25, A: 0xFF},
	},
	"plasma": {
		{R: 0x0D, G: 0x08, B: 0x87, A: 0xFF},
		{R: 0x7E, G: 0x03, B: 0xA8, A: 0xFF},
		{R: 0xCC, G: 0x47, B: 0x78, A: 0xFF},
		{R: 0xF8, G: 0x94, B: 0x41, A: 0xFF},
		{R: 0xF0, G: 0xF9, B: 0x21, A: 0xFF},
	},
	"inferno": {
		{R: 0x00, G: 0x00, B: 0x04, A: 0xFF},
		{R: 0x57, G: 0x10, B: 0x6E, A: 0xFF},
		{R: 0xBC, G: 0x37, B: 0x54, A: 0xFF},
		{R: 0xF9, G: 0x8C, B: 0x0A, A: 0xFF},
		{R: 0xFC, G: 0xFF, B: 0xA4, A: 0xFF},
	},
	"magma": {
		{R: 0x00, G: 0x00, B: 0x04, A: 0xFF},
		{R: 0x51, G: 0x12, B: 0x7C, A: 0xFF},
		{R: 0xB7, G: 0x37, B: 0x79, A: 0xFF},
		{R: 0xFC, G: 0x89, B: 0x61, A: 0xFF},
		{R: 0xFC, G: 0xFD, B: 0xBF, A: 0xFF},
	},
	"jet": {
		{R: 0x00, G: 0x00, B: 0x7F, A: 0xFF},
		{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
		{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
		{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
		{R: 0x7F, G: 0x00, B: 0x00, A: 0xFF},
	},
}

// Names returns the known colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colormap samples n colors evenly across the named palette, one per day.
func Colormap(name string, n int) ([]color.Color, error) {
	stops, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (known: %v)", name, Names())
	}
	if n <= 0 {
		return nil, fmt.Errorf("colormap needs a positive color count, got %d", n)
	}

	colors := make([]color.Color, n)
	for i := range colors {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = sample(stops, t)
	}
	return colors, nil
}

// sample interpolates the stop list at t in [0, 1].
func sample(stops []color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	pos := t * float64(len(stops)-1)
	i := int(pos)
	frac := pos - float64(i)

	a, b := stops[i], stops[i+1]
	return color.NRGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 0xFF,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
