package songcsv

import (
	"strings"
	"testing"
)

func TestParseValidFile(t *testing.T) {
	input := `title;artist;year;genre
Bohemian Rhapsody;Queen;1975;Rock
Billie Jean;Michael Jackson;1983;pop

One More Time;Daft Punk;2000;House
`
	result, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Songs) != 3 {
		t.Fatalf("parsed %d songs, want 3 (blank line skipped)", len(result.Songs))
	}
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.InvalidSongs())
	}
	if got := result.ErrorSummary(); got != "All 3 songs are valid" {
		t.Errorf("ErrorSummary() = %q", got)
	}

	// Genres are normalized to table casing.
	if got := result.Songs[1].Genre; got != "Pop" {
		t.Errorf("genre = %q, want Pop", got)
	}
	if result.Songs[0].Year != 1975 {
		t.Errorf("year = %d, want 1975", result.Songs[0].Year)
	}
}

func TestParseInvalidHeader(t *testing.T) {
	result, err := Parse(strings.NewReader("name,singer,date\nfoo,bar,baz\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Songs) != 1 || result.Songs[0].Valid() {
		t.Fatal("invalid header did not yield a single error entry")
	}
	if msg := result.Songs[0].ValidationErrors[0]; !strings.Contains(msg, "Invalid header format") {
		t.Errorf("header error = %q", msg)
	}
}

func TestParseHeaderCaseInsensitive(t *testing.T) {
	result, err := Parse(strings.NewReader("Title; Artist ;YEAR;Genre\nSong;Artist;1999;Rock\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.HasErrors() {
		t.Errorf("mixed-case header rejected: %v", result.InvalidSongs())
	}
}

func TestParseEmptyInput(t *testing.T) {
	result, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := result.ErrorSummary(); got != "No songs found in CSV file" {
		t.Errorf("ErrorSummary() = %q", got)
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"too few fields", "Only;Two", "Expected 4 fields"},
		{"missing title", ";Queen;1975;Rock", "Title is required"},
		{"missing artist", "Song;;1975;Rock", "Artist is required"},
		{"missing year", "Song;Queen;;Rock", "Year is required"},
		{"year not numeric", "Song;Queen;MCMLXXV;Rock", "Year must be a valid number"},
		{"year too small", "Song;Queen;1850;Rock", "Year must be between 1900 and 2099"},
		{"year too large", "Song;Queen;2150;Rock", "Year must be between 1900 and 2099"},
		{"missing genre", "Song;Queen;1975;", "Genre is required"},
		{"misspelled genre", "Song;Queen;1975;Rok", "Did you mean 'Rock'?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(strings.NewReader("title;artist;year;genre\n" + tt.line + "\n"))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(result.Songs) != 1 {
				t.Fatalf("parsed %d songs, want 1", len(result.Songs))
			}
			errs := strings.Join(result.Songs[0].ValidationErrors, "\n")
			if !strings.Contains(errs, tt.want) {
				t.Errorf("errors = %q, want substring %q", errs, tt.want)
			}
			if !strings.Contains(errs, "Line 2:") {
				t.Errorf("errors = %q, missing line number", errs)
			}
		})
	}
}

func TestErrorSummaryMixed(t *testing.T) {
	input := "title;artist;year;genre\nGood;Artist;1990;Rock\nBad;Artist;0;Rock\n;Missing;1990;Rock\n"
	result, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := result.ErrorSummary(); got != "2 of 3 songs have validation errors" {
		t.Errorf("ErrorSummary() = %q", got)
	}
	if len(result.ValidSongs()) != 1 || len(result.InvalidSongs()) != 2 {
		t.Errorf("valid/invalid = %d/%d, want 1/2", len(result.ValidSongs()), len(result.InvalidSongs()))
	}
}
