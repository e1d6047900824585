package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hitstercards/internal/models"
	"hitstercards/internal/pdf"
	"hitstercards/internal/qr"
)

func (s *Server) export(c *gin.Context) {
	var req models.ExportRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Cards) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No cards provided for export"})
		return
	}

	style, err := pdf.ParseCuttingLineStyle(req.CuttingLines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cards := make([]models.CardData, 0, len(req.Cards))
	for _, card := range req.Cards {
		qrCode, err := qr.TrackPNG(card.TrackID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("qr code for %s: %v", card.TrackID, err)})
			return
		}
		cards = append(cards, models.CardData{
			Title:           card.Title,
			Artist:          card.Artist,
			Year:            card.Year,
			Genre:           card.Genre,
			QRCodeData:      qrCode,
			BackgroundColor: genreColorFor(req.GenreColors, card.Genre),
			AlbumImageURL:   card.AlbumImageURL,
			AlbumName:       card.AlbumName,
		})
	}

	var buf bytes.Buffer
	pageCount, err := s.exporter.Export(&buf, cards, style)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("hitster-cards-%d-%s.pdf", len(cards), time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("X-Card-Count", strconv.Itoa(len(cards)))
	c.Header("X-Page-Count", strconv.Itoa(pageCount))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// genreColorFor resolves the per-genre background from the request's
// customized map, case-insensitively, leaving the card white when the
// genre has no entry.
func genreColorFor(colors map[string]string, genre string) string {
	if color, ok := colors[genre]; ok {
		return color
	}
	for name, color := range colors {
		if strings.EqualFold(name, genre) {
			return color
		}
	}
	return ""
}
