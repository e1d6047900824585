package models

import "time"

// Track is a Spotify-matched song persisted in the local store.
type Track struct {
	ID          string    `json:"id"`
	SpotifyID   string    `json:"spotifyId"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Year        int       `json:"year"`
	Genre       string    `json:"genre"`
	AlbumArtURL string    `json:"albumArtUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Playlist groups tracks for one browser session.
type Playlist struct {
	ID        string    `json:"id"`
	BrowserID string    `json:"browserId"`
	Name      string    `json:"name"`
	TrackIDs  []string  `json:"trackIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
