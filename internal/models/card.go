package models

// CardData holds everything needed to draw one card, front and back.
// It is a plain value: the renderer never mutates it, and two values
// with identical fields render identical bitmaps.
type CardData struct {
	Title           string
	Artist          string
	Year            int
	Genre           string
	QRCodeData      []byte // PNG bytes; empty means no QR on the front
	BackgroundColor string // hex, e.g. "#E63946"; empty means white
	AlbumImageURL   string
	AlbumName       string
}

// CardFromSong builds CardData from a validated song. The background
// color is filled from the genre map when useGenreColor is set.
func CardFromSong(s Song, qrCode []byte, useGenreColor bool) CardData {
	card := CardData{
		Title:      s.Title,
		Artist:     s.Artist,
		Year:       s.Year,
		Genre:      s.Genre,
		QRCodeData: qrCode,
	}
	if useGenreColor {
		card.BackgroundColor = GenreColor(s.Genre)
	}
	return card
}
