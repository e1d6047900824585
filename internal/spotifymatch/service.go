// Package spotifymatch searches Spotify for uploaded songs and picks
// the best track candidate for each.
package spotifymatch

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"hitstercards/internal/models"
)

const searchLimit = 20

// Service wraps an authenticated Spotify client.
type Service struct {
	client *spotify.Client
}

// New authenticates with the client-credentials flow and returns a
// ready service.
func New(ctx context.Context, clientID, clientSecret string) (*Service, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("spotify client id and secret must be set")
	}
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify auth: %w", err)
	}
	httpClient := spotifyauth.New().Client(ctx, token)
	return &Service{client: spotify.New(httpClient)}, nil
}

// Search runs a free-form track search and maps the results.
func (s *Service) Search(ctx context.Context, query string) ([]models.SpotifySearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	result, err := s.client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(searchLimit))
	if err != nil {
		return nil, fmt.Errorf("spotify search: %w", err)
	}
	if result.Tracks == nil {
		return nil, nil
	}
	out := make([]models.SpotifySearchResult, 0, len(result.Tracks.Tracks))
	for _, track := range result.Tracks.Tracks {
		out = append(out, mapTrack(track))
	}
	return out, nil
}

// MatchSongs searches each song and pairs it with its best candidate
// plus up to four alternatives.
func (s *Service) MatchSongs(ctx context.Context, songs []models.Song) (models.MatchResponse, error) {
	results := make([]models.MatchResult, 0, len(songs))
	matched := 0

	for i, song := range songs {
		candidates, err := s.Search(ctx, song.Title+" "+song.Artist)
		if err != nil {
			return models.MatchResponse{}, err
		}

		result := models.MatchResult{
			Index:          i,
			OriginalTitle:  song.Title,
			OriginalArtist: song.Artist,
			OriginalYear:   song.Year,
			OriginalGenre:  song.Genre,
			Confidence:     "none",
			Alternatives:   []models.SpotifySearchResult{},
		}

		if match := SelectBestMatch(candidates); match != nil {
			result.Match = match
			result.Confidence = Confidence(song.Title, song.Artist, match.TrackName, match.ArtistName)
			for _, c := range candidates {
				if c.TrackID == match.TrackID || len(result.Alternatives) == 4 {
					continue
				}
				result.Alternatives = append(result.Alternatives, c)
			}
			matched++
		}
		results = append(results, result)
	}

	return models.MatchResponse{
		Success:       true,
		Results:       results,
		TotalMatched:  matched,
		TotalNotFound: len(results) - matched,
	}, nil
}

// SelectBestMatch picks the candidate with the lowest selection
// priority; ties keep Spotify's result order.
func SelectBestMatch(candidates []models.SpotifySearchResult) *models.SpotifySearchResult {
	var best *models.SpotifySearchResult
	for i := range candidates {
		if best == nil || candidates[i].SelectionPriority() < best.SelectionPriority() {
			best = &candidates[i]
		}
	}
	return best
}

// Confidence grades a match by exact title/artist agreement.
func Confidence(originalTitle, originalArtist, matchTitle, matchArtist string) string {
	titleMatch := strings.EqualFold(originalTitle, matchTitle)
	artistMatch := strings.EqualFold(originalArtist, matchArtist)
	switch {
	case titleMatch && artistMatch:
		return "high"
	case titleMatch || artistMatch:
		return "medium"
	default:
		return "low"
	}
}

func mapTrack(track spotify.FullTrack) models.SpotifySearchResult {
	artist := "Unknown Artist"
	if len(track.Artists) > 0 {
		artist = track.Artists[0].Name
	}

	year := 0
	if len(track.Album.ReleaseDate) >= 4 {
		year, _ = strconv.Atoi(track.Album.ReleaseDate[:4])
	}

	imageURL := ""
	if len(track.Album.Images) > 0 {
		imageURL = track.Album.Images[0].URL
	}

	remastered := strings.Contains(strings.ToLower(track.Name), "remaster") ||
		strings.Contains(strings.ToLower(track.Album.Name), "remaster")

	return models.SpotifySearchResult{
		TrackID:       string(track.ID),
		TrackName:     track.Name,
		ArtistName:    artist,
		AlbumName:     track.Album.Name,
		AlbumType:     track.Album.AlbumType,
		ReleaseYear:   year,
		IsRemastered:  remastered,
		AlbumImageURL: imageURL,
	}
}
