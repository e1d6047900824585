// Package qr generates the QR codes printed on card fronts.
package qr

import qrcode "github.com/skip2/go-qrcode"

// qrPixels keeps the code crisp when scaled to the 40mm square on an
// 85mm card.
const qrPixels = 330

// TrackPNG encodes the public Spotify URL for a track as a PNG QR code.
func TrackPNG(trackID string) ([]byte, error) {
	url := "https://open.spotify.com/track/" + trackID
	return qrcode.Encode(url, qrcode.High, qrPixels)
}
