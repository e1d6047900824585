// Package songcsv parses the semicolon-separated song lists users
// upload. Format: a "title;artist;year;genre" header followed by one
// song per line.
package songcsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"hitstercards/internal/models"
)

var headerColumns = []string{"title", "artist", "year", "genre"}

// ParseResult holds every parsed song, valid or not.
type ParseResult struct {
	Songs []models.Song
}

// ValidSongs returns the songs without validation errors.
func (r ParseResult) ValidSongs() []models.Song {
	var out []models.Song
	for _, s := range r.Songs {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

// InvalidSongs returns the songs with at least one validation error.
func (r ParseResult) InvalidSongs() []models.Song {
	var out []models.Song
	for _, s := range r.Songs {
		if !s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

// HasErrors reports whether any song failed validation.
func (r ParseResult) HasErrors() bool {
	return len(r.InvalidSongs()) > 0
}

// ErrorSummary describes the outcome in one line for the UI.
func (r ParseResult) ErrorSummary() string {
	switch {
	case len(r.Songs) == 0:
		return "No songs found in CSV file"
	case !r.HasErrors():
		return fmt.Sprintf("All %d songs are valid", len(r.Songs))
	default:
		return fmt.Sprintf("%d of %d songs have validation errors", len(r.InvalidSongs()), len(r.Songs))
	}
}

// Parse reads semicolon-separated songs. A malformed header yields a
// single sentinel song carrying the header error; malformed lines are
// kept with their errors so the caller can show all problems at once.
func Parse(r io.Reader) (ParseResult, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return ParseResult{}, err
		}
		return ParseResult{}, nil
	}

	header := strings.TrimSpace(scanner.Text())
	if !validHeader(header) {
		return ParseResult{Songs: []models.Song{{
			ValidationErrors: []string{fmt.Sprintf(
				"Invalid header format. Expected 'title;artist;year;genre' (case-insensitive), got '%s'", header)},
		}}}, nil
	}

	var songs []models.Song
	for lineNum := 2; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		songs = append(songs, parseLine(line, lineNum))
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Songs: songs}, nil
}

// ParseFile parses a CSV from disk.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func validHeader(line string) bool {
	parts := strings.Split(line, ";")
	if len(parts) < len(headerColumns) {
		return false
	}
	for i, want := range headerColumns {
		if !strings.EqualFold(strings.TrimSpace(parts[i]), want) {
			return false
		}
	}
	return true
}

func parseLine(line string, lineNum int) models.Song {
	var errs []string
	parts := strings.Split(line, ";")
	if len(parts) < 4 {
		return models.Song{ValidationErrors: []string{fmt.Sprintf(
			"Line %d: Expected 4 fields (title;artist;year;genre), found %d", lineNum, len(parts))}}
	}

	title := strings.TrimSpace(parts[0])
	artist := strings.TrimSpace(parts[1])
	yearStr := strings.TrimSpace(parts[2])
	genre := strings.TrimSpace(parts[3])

	if title == "" {
		errs = append(errs, fmt.Sprintf("Line %d: Title is required", lineNum))
	}
	if artist == "" {
		errs = append(errs, fmt.Sprintf("Line %d: Artist is required", lineNum))
	}

	var year int
	switch {
	case yearStr == "":
		errs = append(errs, fmt.Sprintf("Line %d: Year is required", lineNum))
	default:
		parsed, err := strconv.Atoi(yearStr)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("Line %d: Year must be a valid number (got '%s')", lineNum, yearStr))
		case parsed < 1900 || parsed > 2099:
			errs = append(errs, fmt.Sprintf("Line %d: Year must be between 1900 and 2099 (got %d)", lineNum, parsed))
		default:
			year = parsed
		}
	}

	switch {
	case genre == "":
		errs = append(errs, fmt.Sprintf("Line %d: Genre is required", lineNum))
	case !models.IsValidGenre(genre):
		msg := fmt.Sprintf("Line %d: Invalid genre '%s'.", lineNum, genre)
		if suggestion, ok := ClosestGenre(genre); ok {
			msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
		} else {
			msg += " Valid genres: " + sampleGenres(10)
		}
		errs = append(errs, msg)
	default:
		// Normalize to the canonical casing from the genre table.
		genre, _ = models.CanonicalGenre(genre)
	}

	return models.Song{
		Title:            title,
		Artist:           artist,
		Year:             year,
		Genre:            genre,
		ValidationErrors: errs,
	}
}

func sampleGenres(n int) string {
	genres := models.Genres()
	sort.Strings(genres)
	if len(genres) > n {
		genres = genres[:n]
	}
	return strings.Join(genres, ", ") + "..."
}
