// Package render draws the aggregated profile as a PNG chart: one colored
// line with a translucent fill per day, a legend, and the day number marked
// at the start of each segment.
package render

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"trailprofile/internal/profile"
)

// Options control chart rendering. Zero values fall back to defaults.
type Options struct {
	Colormap string
	Width    float64 // inches
	Height   float64 // inches
	Title    string
}

const (
	defaultWidth  = 12.0
	defaultHeight = 6.0
	fillAlpha     = 0x4C // ~30%, matching the fill under each day's line
)

// WritePNG renders the series to a PNG file at path.
func WritePNG(series *profile.ProfileSeries, path string, opts Options) error {
	if opts.Colormap == "" {
		opts.Colormap = DefaultColormap
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	colors, err := Colormap(opts.Colormap, len(series.Days))
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Cumulative Distance (miles)"
	p.Y.Label.Text = "Elevation (feet)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	lowest, _ := series.ElevationRange()
	dayMarks := plotter.XYLabels{}

	for i, day := range series.Days {
		samples := series.DaySamples(day)
		xys := make(plotter.XYs, len(samples))
		for j, s := range samples {
			xys[j].X = s.Distance
			xys[j].Y = s.Elevation
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building day %d line: %w", day.Day, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = colors[i]
		line.FillColor = translucent(colors[i])

		p.Add(line)
		p.Legend.Add(day.Label, line)

		dayMarks.XYs = append(dayMarks.XYs, plotter.XY{X: xys[0].X, Y: lowest})
		dayMarks.Labels = append(dayMarks.Labels, strconv.Itoa(day.Day))
	}

	labels, err := plotter.NewLabels(dayMarks)
	if err != nil {
		return fmt.Errorf("building day labels: %w", err)
	}
	p.Add(labels)

	width := vg.Length(opts.Width) * vg.Inch
	height := vg.Length(opts.Height) * vg.Inch
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// translucent keeps the line color but drops the alpha for the area fill.
func translucent(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: fillAlpha}
}
