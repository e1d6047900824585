package spotifymatch

import (
	"testing"

	"hitstercards/internal/models"
)

func TestSelectBestMatch(t *testing.T) {
	album := models.SpotifySearchResult{TrackID: "album", AlbumType: "album"}
	singleRelease := models.SpotifySearchResult{TrackID: "single", AlbumType: "single"}
	compilation := models.SpotifySearchResult{TrackID: "comp", AlbumType: "compilation"}
	remasteredAlbum := models.SpotifySearchResult{TrackID: "remaster", AlbumType: "album", IsRemastered: true}

	tests := []struct {
		name       string
		candidates []models.SpotifySearchResult
		want       string
	}{
		{"album beats single", []models.SpotifySearchResult{singleRelease, album}, "album"},
		{"single beats compilation", []models.SpotifySearchResult{compilation, singleRelease}, "single"},
		{"single beats remastered album", []models.SpotifySearchResult{remasteredAlbum, singleRelease}, "single"},
		{"ties keep result order", []models.SpotifySearchResult{{TrackID: "first", AlbumType: "album"}, {TrackID: "second", AlbumType: "album"}}, "first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectBestMatch(tt.candidates)
			if got == nil || got.TrackID != tt.want {
				t.Errorf("SelectBestMatch = %+v, want track %q", got, tt.want)
			}
		})
	}

	if got := SelectBestMatch(nil); got != nil {
		t.Errorf("SelectBestMatch(nil) = %+v, want nil", got)
	}
}

func TestSelectionPriority(t *testing.T) {
	tests := []struct {
		result models.SpotifySearchResult
		want   int
	}{
		{models.SpotifySearchResult{AlbumType: "album"}, 0},
		{models.SpotifySearchResult{AlbumType: "Album"}, 0},
		{models.SpotifySearchResult{AlbumType: "single"}, 1},
		{models.SpotifySearchResult{AlbumType: "compilation"}, 2},
		{models.SpotifySearchResult{AlbumType: "appears_on"}, 3},
		{models.SpotifySearchResult{AlbumType: "album", IsRemastered: true}, 3},
		{models.SpotifySearchResult{AlbumType: "single", IsRemastered: true}, 4},
	}
	for _, tt := range tests {
		if got := tt.result.SelectionPriority(); got != tt.want {
			t.Errorf("SelectionPriority(%q, remastered=%v) = %d, want %d",
				tt.result.AlbumType, tt.result.IsRemastered, got, tt.want)
		}
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name                    string
		origTitle, origArtist   string
		matchTitle, matchArtist string
		want                    string
	}{
		{"exact", "Billie Jean", "Michael Jackson", "Billie Jean", "Michael Jackson", "high"},
		{"case-insensitive", "billie jean", "MICHAEL JACKSON", "Billie Jean", "Michael Jackson", "high"},
		{"title only", "Billie Jean", "M. Jackson", "Billie Jean", "Michael Jackson", "medium"},
		{"artist only", "Billy Jean", "Michael Jackson", "Billie Jean", "Michael Jackson", "medium"},
		{"neither", "Billy Jean", "M. Jackson", "Billie Jean", "Michael Jackson", "low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.origTitle, tt.origArtist, tt.matchTitle, tt.matchArtist); got != tt.want {
				t.Errorf("Confidence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpotifyURL(t *testing.T) {
	r := models.SpotifySearchResult{TrackID: "4uLU6hMCjMI75M1A2tKUQC"}
	want := "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC"
	if got := r.SpotifyURL(); got != want {
		t.Errorf("SpotifyURL() = %q, want %q", got, want)
	}
}
