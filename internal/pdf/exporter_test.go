package pdf

import (
	"bytes"
	"strings"
	"testing"

	"hitstercards/internal/models"
	"hitstercards/internal/render"
)

func testCards(n int) []models.CardData {
	cards := make([]models.CardData, n)
	for i := range cards {
		cards[i] = models.CardData{
			Title:           "Song",
			Artist:          "Artist",
			Year:            1990 + i,
			Genre:           "Rock",
			BackgroundColor: "#E63946",
		}
	}
	return cards
}

func TestExportEmpty(t *testing.T) {
	e := NewExporter(render.New(nil))
	var buf bytes.Buffer
	if _, err := e.Export(&buf, nil, CuttingNone); err == nil {
		t.Fatal("exporting zero cards did not fail")
	}
}

func TestExportSingleSheet(t *testing.T) {
	e := NewExporter(render.New(nil))

	var buf bytes.Buffer
	pages, err := e.Export(&buf, testCards(3), CuttingComplete)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Error("output does not start with a PDF header")
	}
}

func TestExportMultipleSheets(t *testing.T) {
	e := NewExporter(render.New(nil))

	var buf bytes.Buffer
	pages, err := e.Export(&buf, testCards(11), CuttingNone)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if pages != 4 {
		t.Errorf("pages = %d, want 4", pages)
	}
}
