package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"trailprofile/internal/config"
	"trailprofile/internal/gpxtrack"
	"trailprofile/internal/profile"
	"trailprofile/internal/render"
	"trailprofile/internal/service"
	"trailprofile/internal/store"
	"trailprofile/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	output := flag.String("o", "", "write the chart to this PNG file instead of opening the viewer")
	colormap := flag.String("colormap", "", "palette for per-day colors (viridis, plasma, inferno, magma, jet)")
	title := flag.String("title", "", "chart title")
	noCache := flag.Bool("no-cache", false, "bypass the decoded-track cache")
	flag.Usage = usage
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 1 {
		// A single directory argument means "all .gpx files in here",
		// sorted by name so day-numbered files come out in order.
		if info, err := os.Stat(paths[0]); err == nil && info.IsDir() {
			found, err := gpxtrack.Discover(paths[0])
			if err != nil {
				return err
			}
			paths = found
		}
	}
	if len(paths) == 0 {
		usage()
		return errors.New("no GPX files given")
	}

	// Verify all inputs exist before doing any work.
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("input file %s: %w", p, err)
		}
	}

	// Load configuration. On first run, write the example file so the user
	// knows where to tweak it, then continue with defaults.
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Created example config at %s/config.json\n", configDir)
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *colormap != "" {
		cfg.Display.Colormap = *colormap
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Open the decode cache unless disabled.
	var db *store.DB
	if !cfg.Cache.Disabled && !*noCache {
		db, err = store.Open()
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer db.Close()
	}

	loader := service.NewLoader(db)
	loaded, err := loader.LoadDayTracks(paths)
	if err != nil {
		return err
	}

	series, err := profile.Aggregate(loaded.Tracks)
	if err != nil {
		return err
	}

	if *output != "" {
		opts := render.Options{
			Colormap: cfg.Display.Colormap,
			Width:    cfg.Display.ChartWidth,
			Height:   cfg.Display.ChartHeight,
			Title:    *title,
		}
		if err := render.WritePNG(series, *output, opts); err != nil {
			return err
		}
		fmt.Printf("Wrote %s: %d days, %.1f miles, %d points (%d cached, %d parsed)\n",
			*output, len(series.Days), series.TotalDistance(), len(series.Samples),
			loaded.CacheHits, loaded.Parsed)
		return nil
	}

	app := tui.NewApp(series, service.Summarize(series))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: trailprofile [flags] day1.gpx day2.gpx ...
       trailprofile [flags] <directory>

Builds a cumulative elevation-vs-distance profile from per-day GPX files.
File order is day order. With -o the chart is written as a PNG; without it
an interactive viewer opens.

Flags:
`)
	flag.PrintDefaults()
}
