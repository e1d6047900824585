package models

import "strings"

// genreColors maps every supported genre to a visually distinct card
// background. 30 common genres plus 5 French ones.
var genreColors = map[string]string{
	"Rock": "#E63946",
	"Pop": "#FF69B4",
	"Hip-Hop": "#FFD700",
	"R&B": "#9B59B6",
	"Country": "#D2691E",
	"Jazz": "#6B5B95",
	"Blues": "#4169E1",
	"Electronic": "#00CED1",
	"Dance": "#FF1493",
	"House": "#32CD32",
	"Techno": "#008B8B",
	"Classical": "#1E3A5F",
	"Reggae": "#228B22",
	"Soul": "#8B0000",
	"Funk": "#FF8C00",
	"Disco": "#DA70D6",
	"Metal": "#2F4F4F",
	"Punk": "#FF00FF",
	"Alternative": "#2E8B57",
	"Indie": "#DAA520",
	"Folk": "#808000",
	"Latin": "#FF6347",
	"Rap": "#B8860B",
	"Gospel": "#FFE4B5",
	"World": "#8B4513",
	"Ambient": "#87CEEB",
	"New Wave": "#7B68EE",
	"Grunge": "#556B2F",
	"Ska": "#20B2AA",
	"Synthpop": "#FF1493",

	"Chanson": "#0055A4",
	"Variete Francaise": "#3B5998",
	"French Pop": "#FF69B4",
	"French Hip-Hop": "#FFD700",
	"Musette": "#EF4135",
}

// DefaultGenreColor is used for genres outside the table.
const DefaultGenreColor = "#808080"

// canonicalGenres indexes genres by lowercase name so lookups are
// case-insensitive without depending on a case-folding container.
var canonicalGenres = func() map[string]string {
	m := make(map[string]string, len(genreColors))
	for name := range genreColors {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// CanonicalGenre resolves a genre name case-insensitively, returning
// the properly cased name from the table.
func CanonicalGenre(name string) (string, bool) {
	canonical, ok := canonicalGenres[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// IsValidGenre reports whether the genre is in the supported set.
func IsValidGenre(name string) bool {
	_, ok := CanonicalGenre(name)
	return ok
}

// GenreColor returns the background hex color for a genre,
// case-insensitively, or DefaultGenreColor if unknown.
func GenreColor(name string) string {
	canonical, ok := CanonicalGenre(name)
	if !ok {
		return DefaultGenreColor
	}
	return genreColors[canonical]
}

// Genres returns all supported genre names. Order is unspecified.
func Genres() []string {
	out := make([]string, 0, len(genreColors))
	for name := range genreColors {
		out = append(out, name)
	}
	return out
}
