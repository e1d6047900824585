package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hitstercards/internal/models"
	"hitstercards/internal/previewcache"
	"hitstercards/internal/qr"
	"hitstercards/internal/songcsv"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
}

func (s *Server) ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

func (s *Server) uploadCSV(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errorSummary": "No file provided"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errorSummary": "File must be a CSV file"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errorSummary": err.Error()})
		return
	}
	defer f.Close()

	result, err := songcsv.Parse(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errorSummary": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"totalSongs":   len(result.Songs),
		"validSongs":   result.ValidSongs(),
		"invalidSongs": result.InvalidSongs(),
		"errorSummary": result.ErrorSummary(),
	})
}

func (s *Server) search(c *gin.Context) {
	if s.spotify == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Spotify credentials not configured"})
		return
	}

	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusOK, []models.SpotifySearchResult{})
		return
	}

	results, err := s.spotify.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if results == nil {
		results = []models.SpotifySearchResult{}
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) match(c *gin.Context) {
	if s.spotify == nil {
		c.JSON(http.StatusBadRequest, models.MatchResponse{Success: false, Results: []models.MatchResult{}})
		return
	}

	var req models.MatchRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.spotify.MatchSongs(c.Request.Context(), req.Songs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) previewFront(c *gin.Context) {
	var req models.PreviewRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := previewcache.FrontKey(req.TrackID, req.BackgroundColor)
	imageBytes, err := s.previews.GetOrCreate(key, func() ([]byte, error) {
		qrCode, err := qr.TrackPNG(req.TrackID)
		if err != nil {
			return nil, err
		}
		return s.renderer.Front(models.CardData{
			Title:           req.Title,
			Artist:          req.Artist,
			Year:            req.Year,
			Genre:           req.Genre,
			QRCodeData:      qrCode,
			BackgroundColor: req.BackgroundColor,
		})
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", imageBytes)
}

func (s *Server) previewBack(c *gin.Context) {
	var req models.PreviewRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := previewcache.BackKey(req.TrackID, req.Year, req.BackgroundColor)
	imageBytes, err := s.previews.GetOrCreate(key, func() ([]byte, error) {
		return s.renderer.Back(models.CardData{
			Title:           req.Title,
			Artist:          req.Artist,
			Year:            req.Year,
			Genre:           req.Genre,
			BackgroundColor: req.BackgroundColor,
		})
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", imageBytes)
}
