package qr

import (
	"bytes"
	"image/png"
	"testing"
)

func TestTrackPNG(t *testing.T) {
	data, err := TrackPNG("4uLU6hMCjMI75M1A2tKUQC")
	if err != nil {
		t.Fatalf("TrackPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	size := img.Bounds().Size()
	if size.X != 330 || size.Y != 330 {
		t.Errorf("QR image is %dx%d, want 330x330", size.X, size.Y)
	}
}

func TestTrackPNGDeterministic(t *testing.T) {
	a, err := TrackPNG("abc123")
	if err != nil {
		t.Fatal(err)
	}
	b, err := TrackPNG("abc123")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same track produced different QR bytes")
	}
}
