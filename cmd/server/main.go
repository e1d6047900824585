package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"hitstercards/internal/imagecache"
	"hitstercards/internal/pdf"
	"hitstercards/internal/previewcache"
	"hitstercards/internal/render"
	"hitstercards/internal/server"
	"hitstercards/internal/spotifymatch"
	"hitstercards/internal/store"
)

var (
	spotifyClientID     = os.Getenv("SPOTIFY_CLIENT_ID")
	spotifyClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "data/hitstercards.db", "Path to the playlist database")
	flag.Parse()

	if err := run(*addr, *dbPath); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(addr, dbPath string) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	images := imagecache.New(imagecache.NewHTTPFetcher())
	renderer := render.New(images)
	exporter := pdf.NewExporter(renderer)

	previews := previewcache.New(10*time.Minute, time.Hour)
	defer previews.Close()

	var spotify *spotifymatch.Service
	if spotifyClientID != "" && spotifyClientSecret != "" {
		spotify, err = spotifymatch.New(context.Background(), spotifyClientID, spotifyClientSecret)
		if err != nil {
			return err
		}
	} else {
		log.Printf("SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET not set; search and match endpoints disabled")
	}

	srv := server.New(renderer, exporter, previews, spotify, db.Playlists(), db.Tracks())

	log.Printf("listening on %s", addr)
	return srv.Routes().Run(addr)
}
