// Command export renders a full card deck from a CSV in one shot:
// parse, match against Spotify, generate QR codes, and write the
// duplex-ready PDF.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"hitstercards/internal/imagecache"
	"hitstercards/internal/models"
	"hitstercards/internal/pdf"
	"hitstercards/internal/qr"
	"hitstercards/internal/render"
	"hitstercards/internal/songcsv"
	"hitstercards/internal/spotifymatch"
)

var (
	spotifyClientID     = os.Getenv("SPOTIFY_CLIENT_ID")
	spotifyClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")
)

func main() {
	input := flag.String("input", "songs.csv", "Path to CSV file (title;artist;year;genre)")
	output := flag.String("output", "hitster-cards.pdf", "Output PDF path")
	cutting := flag.String("cutting", "none", "Cutting guide style: none, edge-only or complete")
	flag.Parse()

	if err := run(*input, *output, *cutting); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(input, output, cutting string) error {
	style, err := pdf.ParseCuttingLineStyle(cutting)
	if err != nil {
		return err
	}

	if spotifyClientID == "" || spotifyClientSecret == "" {
		return fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set")
	}

	ctx := context.Background()
	spotify, err := spotifymatch.New(ctx, spotifyClientID, spotifyClientSecret)
	if err != nil {
		return err
	}

	result, err := songcsv.ParseFile(input)
	if err != nil {
		return err
	}
	songs := result.ValidSongs()
	if len(songs) == 0 {
		return fmt.Errorf("no valid songs in %s: %s", input, result.ErrorSummary())
	}
	for _, song := range result.InvalidSongs() {
		for _, msg := range song.ValidationErrors {
			log.Printf("skipping: %s", msg)
		}
	}

	fmt.Printf("Matching %d songs against Spotify...\n", len(songs))
	matches, err := spotify.MatchSongs(ctx, songs)
	if err != nil {
		return err
	}

	cards := make([]models.CardData, 0, len(matches.Results))
	for _, m := range matches.Results {
		if m.Match == nil {
			log.Printf("no match for %s - %s", m.OriginalArtist, m.OriginalTitle)
			continue
		}
		qrCode, err := qr.TrackPNG(m.Match.TrackID)
		if err != nil {
			return fmt.Errorf("qr code for %s: %w", m.Match.TrackID, err)
		}
		card := models.CardFromSong(models.Song{
			Title:  m.OriginalTitle,
			Artist: m.OriginalArtist,
			Year:   m.OriginalYear,
			Genre:  m.OriginalGenre,
		}, qrCode, true)
		card.AlbumImageURL = m.Match.AlbumImageURL
		card.AlbumName = m.Match.AlbumName
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return fmt.Errorf("none of the songs matched a Spotify track")
	}

	renderer := render.New(imagecache.New(imagecache.NewHTTPFetcher()))
	exporter := pdf.NewExporter(renderer)

	var buf bytes.Buffer
	pages, err := exporter.Export(&buf, cards, style)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Printf("Wrote %d cards on %d pages to %s\n", len(cards), pages, output)
	return nil
}
