package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hitstercards/internal/models"
)

const browserIDHeader = "X-Browser-Id"

// browserID extracts the session header shared by all playlist routes,
// writing the error response itself when it is missing.
func browserID(c *gin.Context) (string, bool) {
	id := c.GetHeader(browserIDHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": browserIDHeader + " header is required"})
		return "", false
	}
	return id, true
}

// ownedPlaylist loads the playlist from the path id and checks it
// belongs to the calling browser. Missing and foreign playlists are
// both reported as not found.
func (s *Server) ownedPlaylist(c *gin.Context, browser string) (*models.Playlist, bool) {
	playlist, err := s.playlists.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	if playlist == nil || playlist.BrowserID != browser {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist not found"})
		return nil, false
	}
	return playlist, true
}

func summaryOf(p *models.Playlist) models.PlaylistSummary {
	return models.PlaylistSummary{
		ID:         p.ID,
		Name:       p.Name,
		TrackCount: len(p.TrackIDs),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (s *Server) listPlaylists(c *gin.Context) {
	browser, ok := browserID(c)
	if !ok {
		return
	}

	playlists, err := s.playlists.GetByBrowserID(browser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]models.PlaylistSummary, 0, len(playlists))
	for i := range playlists {
		summaries = append(summaries, summaryOf(&playlists[i]))
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) getPlaylist(c *gin.Context) {
	browser, ok := browserID(c)
	if !ok {
		return
	}
	playlist, ok := s.ownedPlaylist(c, browser)
	if !ok {
		return
	}

	tracks, err := s.tracks.GetByIDs(playlist.TrackIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PlaylistDetail{
		ID:        playlist.ID,
		Name:      playlist.Name,
		Tracks:    tracks,
		CreatedAt: playlist.CreatedAt,
		UpdatedAt: playlist.UpdatedAt,
	})
}

func (s *Server) createPlaylist(c *gin.Context) {
	browser, ok := browserID(c)
	if !ok {
		return
	}

	var req models.CreatePlaylistRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	playlist := &models.Playlist{
		BrowserID: browser,
		Name:      strings.TrimSpace(req.Name),
		TrackIDs:  []string{},
	}
	if _, err := s.playlists.Create(playlist); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, summaryOf(playlist))
}

func (s *Server) updatePlaylist(c *gin.Context) {
	browser, ok := browserID(c)
	if !ok {
		return
	}
	playlist, ok := s.ownedPlaylist(c, browser)
	if !ok {
		return
	}

	var req models.UpdatePlaylistRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	playlist.Name = strings.TrimSpace(req.Name)
	if err := s.playlists.Update(playlist); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaryOf(playlist))
}

func (s *Server) deletePlaylist(c *gin.Context) {
	browser, ok := browserID(c)
	if !ok {
		return
	}
	playlist, ok := s.ownedPlaylist(c, browser)
	if !ok {
		return
	}

	if err := s.playlists.Delete(playlist.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addTrack(c *gin.Context) {
	browser, ok := browserID(c)
	if !ok {
		return
	}
	playlist, ok := s.ownedPlaylist(c, browser)
	if !ok {
		return
	}

	var req models.AddTrackRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.SpotifyID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SpotifyId is required"})
		return
	}

	track := &models.Track{
		SpotifyID:   req.SpotifyID,
		Title:       req.Title,
		Artist:      req.Artist,
		Year:        req.Year,
		Genre:       req.Genre,
		AlbumArtURL: req.AlbumArtURL,
	}
	trackID, err := s.tracks.GetOrCreate(track)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, id := range playlist.TrackIDs {
		if id == trackID {
			c.JSON(http.StatusConflict, gin.H{"error": "Track already in playlist"})
			return
		}
	}

	playlist.TrackIDs = append(playlist.TrackIDs, trackID)
	if err := s.playlists.Update(playlist); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stored, err := s.tracks.GetByID(trackID)
	if err != nil || stored == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stored track"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": trackID, "playlistId": playlist.ID, "track": stored})
}

func (s *Server) removeTrack(c *gin.Context) {
	browser, ok := browserID(c)
	if !ok {
		return
	}
	playlist, ok := s.ownedPlaylist(c, browser)
	if !ok {
		return
	}

	trackID := c.Param("trackId")
	kept := playlist.TrackIDs[:0]
	found := false
	for _, id := range playlist.TrackIDs {
		if id == trackID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Track not in playlist"})
		return
	}

	playlist.TrackIDs = kept
	if err := s.playlists.Update(playlist); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
