package models

import (
	"strings"
	"time"
)

// SpotifySearchResult is one track candidate from a Spotify search.
type SpotifySearchResult struct {
	TrackID       string `json:"trackId"`
	TrackName     string `json:"trackName"`
	ArtistName    string `json:"artistName"`
	AlbumName     string `json:"albumName"`
	AlbumType     string `json:"albumType"` // "album", "single", "compilation"
	ReleaseYear   int    `json:"releaseYear"`
	IsRemastered  bool   `json:"isRemastered"`
	AlbumImageURL string `json:"albumImageUrl,omitempty"`
}

// SpotifyURL returns the public track URL encoded into QR codes.
func (r SpotifySearchResult) SpotifyURL() string {
	return "https://open.spotify.com/track/" + r.TrackID
}

// SelectionPriority scores a result for best-match selection; lower is
// better. Album releases beat singles beat compilations, and remasters
// are penalized so the original release wins.
func (r SpotifySearchResult) SelectionPriority() int {
	var base int
	switch strings.ToLower(r.AlbumType) {
	case "album":
		base = 0
	case "single":
		base = 1
	case "compilation":
		base = 2
	default:
		base = 3
	}
	if r.IsRemastered {
		base += 3
	}
	return base
}

// MatchRequest asks to match a batch of CSV songs against Spotify.
type MatchRequest struct {
	Songs []Song `json:"songs"`
}

// MatchResult pairs one input song with its best Spotify candidate.
type MatchResult struct {
	Index          int                   `json:"index"`
	OriginalTitle  string                `json:"originalTitle"`
	OriginalArtist string                `json:"originalArtist"`
	OriginalYear   int                   `json:"originalYear"`
	OriginalGenre  string                `json:"originalGenre"`
	Match          *SpotifySearchResult  `json:"match,omitempty"`
	Confidence     string                `json:"confidence"` // "high", "medium", "low", "none"
	Alternatives   []SpotifySearchResult `json:"alternatives"`
}

// MatchResponse is the full batch matching outcome.
type MatchResponse struct {
	Success       bool          `json:"success"`
	Results       []MatchResult `json:"results"`
	TotalMatched  int           `json:"totalMatched"`
	TotalNotFound int           `json:"totalNotFound"`
}

// PreviewRequest describes one card for the preview endpoints.
type PreviewRequest struct {
	TrackID         string `json:"trackId"`
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	Year            int    `json:"year"`
	Genre           string `json:"genre"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// ExportCard is one card in an export request, matching the frontend's
// match-result shape.
type ExportCard struct {
	TrackID       string `json:"trackId"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Year          int    `json:"year"`
	Genre         string `json:"genre"`
	AlbumImageURL string `json:"albumImageUrl,omitempty"`
	AlbumName     string `json:"albumName,omitempty"`
}

// ExportRequest is the payload for the PDF export endpoint.
type ExportRequest struct {
	Cards        []ExportCard      `json:"cards"`
	GenreColors  map[string]string `json:"genreColors"`
	CuttingLines string            `json:"cuttingLines,omitempty"` // "none", "edge-only", "complete"
}

// CreatePlaylistRequest names a new playlist.
type CreatePlaylistRequest struct {
	Name string `json:"name"`
}

// UpdatePlaylistRequest renames a playlist.
type UpdatePlaylistRequest struct {
	Name string `json:"name"`
}

// PlaylistSummary is the list-view shape of a playlist.
type PlaylistSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TrackCount int       `json:"trackCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PlaylistDetail is a playlist with its resolved tracks.
type PlaylistDetail struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Tracks    []Track   `json:"tracks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddTrackRequest adds a matched track to a playlist.
type AddTrackRequest struct {
	SpotifyID   string `json:"spotifyId"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Year        int    `json:"year"`
	Genre       string `json:"genre"`
	AlbumArtURL string `json:"albumArtUrl,omitempty"`
}
