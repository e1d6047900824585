package models

// Song is one row of an uploaded CSV: the user's own description of a
// track before it has been matched against Spotify.
type Song struct {
	Title            string   `json:"title"`
	Artist           string   `json:"artist"`
	Year             int      `json:"year"`
	Genre            string   `json:"genre"`
	SpotifyTrackID   string   `json:"spotifyTrackId,omitempty"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

// Valid reports whether the song passed CSV validation.
func (s Song) Valid() bool {
	return len(s.ValidationErrors) == 0
}
