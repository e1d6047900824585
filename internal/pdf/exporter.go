// Package pdf lays out rendered cards on A4 sheets for double-sided
// printing and serializes the result as a paginated PDF.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"

	"hitstercards/internal/models"
	"hitstercards/internal/render"
)

// Exporter tiles card faces into duplex-ready pages. It draws through
// the same renderer as the preview endpoints, so exported cards are
// pixel-identical to previews.
type Exporter struct {
	renderer *render.Renderer
}

// NewExporter creates an exporter over the shared card renderer.
func NewExporter(renderer *render.Renderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// Export writes the PDF for cards to w and returns the page count.
// Each sheet of up to ten cards becomes a front page followed by its
// column-mirrored back page. An empty card list is an error; callers
// are expected to reject it before getting here.
func (e *Exporter) Export(w io.Writer, cards []models.CardData, style CuttingLineStyle) (int, error) {
	if len(cards) == 0 {
		return 0, errors.New("no cards to export")
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	sheets := SheetCount(len(cards))
	for sheet := 0; sheet < sheets; sheet++ {
		start := sheet * cardsPerSheet
		end := start + cardsPerSheet
		if end > len(cards) {
			end = len(cards)
		}
		slice := cards[start:end]

		if err := e.addPage(doc, slice, style, sheet, false); err != nil {
			return 0, err
		}
		if err := e.addPage(doc, slice, style, sheet, true); err != nil {
			return 0, err
		}
	}

	if err := doc.Output(w); err != nil {
		return 0, fmt.Errorf("write pdf: %w", err)
	}
	return sheets * 2, nil
}

func (e *Exporter) addPage(doc *fpdf.Fpdf, slice []models.CardData, style CuttingLineStyle, sheet int, back bool) error {
	doc.AddPage()

	// Guides are the background layer, beneath the card bitmaps.
	drawGuides(doc, guideLines(style, len(slice)))

	face := "front"
	if back {
		face = "back"
	}

	for i := 0; i < cardsPerSheet; i++ {
		x, y := cellOrigin(i, back)
		if i >= len(slice) {
			drawCellBorder(doc, x, y)
			continue
		}

		img := e.renderer.FrontImage(slice[i])
		if back {
			img = e.renderer.BackImage(slice[i])
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode card %d: %w", sheet*cardsPerSheet+i, err)
		}

		name := fmt.Sprintf("card-%s-%d-%d", face, sheet, i)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader(name, opts, &buf)
		doc.ImageOptions(name, x, y, cardWidth, cardHeight, false, opts, 0, "")
		drawCellBorder(doc, x, y)

		if err := doc.Error(); err != nil {
			return err
		}
	}
	return nil
}

// drawCellBorder frames a cell with the light border used both around
// cards and on empty placeholder cells.
func drawCellBorder(doc *fpdf.Fpdf, x, y float64) {
	doc.SetDrawColor(224, 224, 224)
	doc.SetLineWidth(0.1)
	doc.Rect(x, y, cardWidth, cardHeight, "D")
}

func drawGuides(doc *fpdf.Fpdf, lines []guideLine) {
	if len(lines) == 0 {
		return
	}
	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(0.12) // hairline
	for _, l := range lines {
		doc.Line(l.x1, l.y1, l.x2, l.y2)
	}
}
