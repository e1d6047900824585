package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"

	"hitstercards/internal/models"
)

// Card geometry. Cards are credit-card sized and rasterized at print
// resolution, so every measure is fixed in millimeters and converted
// once.
const (
	cardWidthMM  = 85.0
	cardHeightMM = 55.0

	qrSizeMM       = 40.0
	barHeightMM    = 10.0
	albumArtSizeMM = 32.0
	topSpacerMM    = 2.0
	qrTextGapMM    = 1.5
	sidePaddingMM  = 2.0

	dpi       = 300.0
	mmPerInch = 25.4
)

var (
	cardWidthPx  = mmToPx(cardWidthMM)  // 1004
	cardHeightPx = mmToPx(cardHeightMM) // 650
	qrSizePx     = mmToPx(qrSizeMM)
	barHeightPx  = mmToPx(barHeightMM)
	albumArtPx   = mmToPx(albumArtSizeMM)
	topSpacerPx  = mmToPx(topSpacerMM)
	qrTextGapPx  = mmToPx(qrTextGapMM)
	sidePadPx    = mmToPx(sidePaddingMM)

	fontSize11 = ptToPx(11)
	fontSize10 = ptToPx(10)
	fontSize9  = ptToPx(9)

	// Bars are always black at 70% opacity, independent of the card
	// background.
	barColor = color.RGBA{0, 0, 0, 0xB3}
)

func mmToPx(mm float64) int {
	return int(math.Round(mm * dpi / mmPerInch))
}

func ptToPx(pt float64) float64 {
	return pt * dpi / 72
}

// ImageSource resolves an album-art URL to a decoded image, or nil when
// the art is unavailable. Implemented by imagecache.Cache.
type ImageSource interface {
	Get(url string) image.Image
}

// Renderer rasterizes card faces. It is the single rendering code path:
// the preview endpoints and the PDF exporter both draw through it.
type Renderer struct {
	images ImageSource
}

// New creates a renderer. images may be nil, in which case backs render
// without album art.
func New(images ImageSource) *Renderer {
	return &Renderer{images: images}
}

// CardSizePx returns the pixel dimensions of a rendered card face.
func CardSizePx() (w, h int) {
	return cardWidthPx, cardHeightPx
}

// Front renders the QR face as PNG bytes.
func (r *Renderer) Front(card models.CardData) ([]byte, error) {
	return encodePNG(r.FrontImage(card))
}

// Back renders the info face as PNG bytes.
func (r *Renderer) Back(card models.CardData) ([]byte, error) {
	return encodePNG(r.BackImage(card))
}

// FrontImage draws the front: background, QR code square, genre label.
// Missing or corrupt QR bytes leave the QR region blank rather than
// failing the card.
func (r *Renderer) FrontImage(card models.CardData) *image.RGBA {
	dst := newCardImage(card.BackgroundColor)

	if len(card.QRCodeData) > 0 {
		qrImg, err := png.Decode(bytes.NewReader(card.QRCodeData))
		if err != nil {
			log.Printf("render: skipping undecodable qr image: %v", err)
		} else {
			qrX := (cardWidthPx - qrSizePx) / 2
			rect := image.Rect(qrX, topSpacerPx, qrX+qrSizePx, topSpacerPx+qrSizePx)
			xdraw.CatmullRom.Scale(dst, rect, qrImg, qrImg.Bounds(), draw.Over, nil)
		}
	}

	if genre := strings.TrimSpace(card.Genre); genre != "" {
		dc := gg.NewContextForRGBA(dst)
		dc.SetFontFace(newFace(fontBold, fontSize11))
		dc.SetColor(TextColor(card.BackgroundColor))
		w, _ := dc.MeasureString(genre)
		baseline := float64(topSpacerPx+qrSizePx+qrTextGapPx) + fontSize11
		dc.DrawString(genre, (float64(cardWidthPx)-w)/2, baseline)
	}

	return dst
}

// BackImage draws the back: translucent bars top and bottom, album art
// centered between them, year/genre and artist/title runs in white.
func (r *Renderer) BackImage(card models.CardData) *image.RGBA {
	dst := newCardImage(card.BackgroundColor)
	dc := gg.NewContextForRGBA(dst)

	dc.SetColor(barColor)
	dc.DrawRectangle(0, 0, float64(cardWidthPx), float64(barHeightPx))
	dc.Fill()
	dc.DrawRectangle(0, float64(cardHeightPx-barHeightPx), float64(cardWidthPx), float64(barHeightPx))
	dc.Fill()

	if r.images != nil && card.AlbumImageURL != "" {
		if art := r.images.Get(card.AlbumImageURL); art != nil {
			artX := (cardWidthPx - albumArtPx) / 2
			artY := barHeightPx + (cardHeightPx-2*barHeightPx-albumArtPx)/2
			rect := image.Rect(artX, artY, artX+albumArtPx, artY+albumArtPx)
			xdraw.CatmullRom.Scale(dst, rect, art, art.Bounds(), draw.Over, nil)
		}
	}

	dc.SetColor(white)

	topBaseline := float64(barHeightPx)/2 + fontSize11/3
	drawRun(dc, topBaseline, 0, []textSegment{
		{strconv.Itoa(card.Year), newFace(fontBold, fontSize11)},
		{"  |  ", newFace(fontRegular, fontSize10)},
		{card.Genre, newFace(fontRegular, fontSize10)},
	})

	regular9 := newFace(fontRegular, fontSize9)
	bottom := []textSegment{
		{card.Artist, newFace(fontBold, fontSize9)},
		{" - ", regular9},
		{card.Title, regular9},
	}
	if strings.TrimSpace(card.AlbumName) != "" {
		bottom = append(bottom,
			textSegment{" - ", regular9},
			textSegment{card.AlbumName, newFace(fontItalic, fontSize9)},
		)
	}
	bottomBaseline := float64(cardHeightPx-barHeightPx) + float64(barHeightPx)/2 + fontSize9/3
	drawRun(dc, bottomBaseline, float64(sidePadPx), bottom)

	return dst
}

type textSegment struct {
	text string
	face font.Face
}

// drawRun centers a run of differently-styled segments as a whole:
// each segment is measured at its own face, the total decides the
// starting x, and segments are drawn left to right from there. minX
// keeps long runs from starting off the card edge.
func drawRun(dc *gg.Context, baseline, minX float64, segments []textSegment) {
	total := 0.0
	for _, seg := range segments {
		dc.SetFontFace(seg.face)
		w, _ := dc.MeasureString(seg.text)
		total += w
	}
	x := (float64(cardWidthPx) - total) / 2
	if x < minX {
		x = minX
	}
	for _, seg := range segments {
		dc.SetFontFace(seg.face)
		dc.DrawString(seg.text, x, baseline)
		w, _ := dc.MeasureString(seg.text)
		x += w
	}
}

func newCardImage(background string) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cardWidthPx, cardHeightPx))
	bg := ParseHex(background, white)
	draw.Draw(dst, dst.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
