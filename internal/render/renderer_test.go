package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"hitstercards/internal/models"
)

// staticImages serves one fixed image for every URL.
type staticImages struct {
	img image.Image
}

func (s staticImages) Get(string) image.Image { return s.img }

func testCard() models.CardData {
	return models.CardData{
		Title:           "Bohemian Rhapsody",
		Artist:          "Queen",
		Year:            1975,
		Genre:           "Rock",
		BackgroundColor: "#E63946",
		AlbumName:       "A Night at the Opera",
	}
}

func TestCardSizePx(t *testing.T) {
	w, h := CardSizePx()
	if w != 1004 || h != 650 {
		t.Fatalf("CardSizePx() = %dx%d, want 1004x650", w, h)
	}
}

func TestFrontImageDimensionsAndBackground(t *testing.T) {
	r := New(nil)
	img := r.FrontImage(testCard())

	if got := img.Bounds().Size(); got.X != 1004 || got.Y != 650 {
		t.Fatalf("front bounds = %v, want 1004x650", got)
	}
	// The top-left corner is outside the QR region and the genre label.
	want := color.RGBA{230, 57, 70, 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("background pixel = %v, want %v", got, want)
	}
}

func TestFrontDeterministic(t *testing.T) {
	r := New(nil)
	card := testCard()

	a, err := r.Front(card)
	if err != nil {
		t.Fatalf("Front: %v", err)
	}
	b, err := r.Front(card)
	if err != nil {
		t.Fatalf("Front: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same card differ")
	}
}

func TestFrontToleratesCorruptQR(t *testing.T) {
	r := New(nil)
	card := testCard()
	card.QRCodeData = []byte("definitely not a png")

	img := r.FrontImage(card)
	if got := img.Bounds().Size(); got.X != 1004 || got.Y != 650 {
		t.Fatalf("front bounds = %v, want 1004x650", got)
	}
}

func TestFrontDrawsQR(t *testing.T) {
	// A solid black square stands in for a real QR code.
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			src.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	card := testCard()
	card.QRCodeData = buf.Bytes()

	img := New(nil).FrontImage(card)
	// Center of the QR region must now be black instead of the card
	// background.
	if got := img.RGBAAt(1004/2, topSpacerPx+qrSizePx/2); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("QR center pixel = %v, want black", got)
	}
}

func TestBackImage(t *testing.T) {
	art := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			art.SetRGBA(x, y, color.RGBA{0, 255, 0, 255})
		}
	}

	r := New(staticImages{img: art})
	card := testCard()
	card.AlbumImageURL = "https://example.test/cover.jpg"

	img := r.BackImage(card)
	if got := img.Bounds().Size(); got.X != 1004 || got.Y != 650 {
		t.Fatalf("back bounds = %v, want 1004x650", got)
	}

	// Album art fills the centered square between the bars.
	if got := img.RGBAAt(1004/2, 650/2); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("album art pixel = %v, want green", got)
	}

	// The top bar darkens the background; its pixel must differ from
	// the raw background color.
	bg := color.RGBA{230, 57, 70, 255}
	if got := img.RGBAAt(2, barHeightPx/4); got == bg {
		t.Error("top bar pixel equals raw background, bar not drawn")
	}
}

func TestBackWithoutImageSource(t *testing.T) {
	r := New(nil)
	card := testCard()
	card.AlbumImageURL = "https://example.test/cover.jpg"

	// Must not panic; art is simply skipped.
	if _, err := r.Back(card); err != nil {
		t.Fatalf("Back: %v", err)
	}
}
