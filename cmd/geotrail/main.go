package main

import (
	"context"
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"geotrail/internal/config"
	"geotrail/internal/location"
	"geotrail/internal/logging"
	"geotrail/internal/tracker"
	"geotrail/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default geotrail.yml in cwd)")
	kind := flag.String("source", "", "replay|stream|gtfsrt (overrides config)")
	path := flag.String("path", "", "track file for replay, device for stream (- = stdin)")
	feed := flag.String("feed", "", "GTFS-RT VehiclePositions URL")
	vehicle := flag.String("vehicle", "", "GTFS-RT vehicle or trip id")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *kind != "" {
		cfg.Source.Kind = *kind
	}
	if *path != "" {
		cfg.Source.Path = *path
	}
	if *feed != "" {
		cfg.Source.FeedURL = *feed
	}
	if *vehicle != "" {
		cfg.Source.VehicleID = *vehicle
	}

	if cfg.Source.Kind == "stream" && (cfg.Source.Path == "" || cfg.Source.Path == "-") {
		log.Fatal("stdin belongs to the terminal; stream from a device path or use geotrail-canvas")
	}

	f, err := logging.ToFile(cfg.Log.File)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := location.Open(cfg.Source)
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tr := tracker.New(tracker.Options{
		Camera:         cfg.Render.CameraOptions(),
		UnitsPerDegree: cfg.Render.UnitsPerDegree,
		LogEvery:       50,
	})
	tr.Follow(ctx, src)

	m := tui.New(ctx, tr, cfg)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
