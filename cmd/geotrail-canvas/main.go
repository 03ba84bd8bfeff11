package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"geotrail/internal/canvas"
	"geotrail/internal/config"
	"geotrail/internal/location"
	"geotrail/internal/logging"
	"geotrail/internal/tracker"
)

func main() {
	configPath := flag.String("config", "", "config file (default geotrail.yml in cwd)")
	kind := flag.String("source", "", "replay|stream|gtfsrt (overrides config)")
	path := flag.String("path", "", "track file for replay, device for stream (- = stdin)")
	feed := flag.String("feed", "", "GTFS-RT VehiclePositions URL")
	vehicle := flag.String("vehicle", "", "GTFS-RT vehicle or trip id")
	flag.Parse()

	logging.InitLogging()
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

	src, err := location.Open(cfg.Source)
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tr := tracker.New(tracker.Options{
		Camera:         cfg.Render.CameraOptions(),
		UnitsPerDegree: cfg.Render.UnitsPerDegree,
		LogEvery:       25,
	})
	tr.Follow(ctx, src)
	defer tr.Stop()

	if err := canvas.Run(ctx, tr, cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("window closed, %d points", tr.Buffer().Len())
}
