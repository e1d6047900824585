// Package server exposes the HTTP API: CSV upload, Spotify search and
// matching, card previews, PDF export, and playlist CRUD.
package server

import (
	"github.com/gin-gonic/gin"

	"hitstercards/internal/pdf"
	"hitstercards/internal/previewcache"
	"hitstercards/internal/render"
	"hitstercards/internal/spotifymatch"
	"hitstercards/internal/store"
)

// Server bundles the shared collaborators behind the HTTP handlers.
// Caches and repositories are injected by the composition root so
// tests can seed or stub them.
type Server struct {
	renderer  *render.Renderer
	exporter  *pdf.Exporter
	previews  *previewcache.Cache
	spotify   *spotifymatch.Service // nil when credentials are absent
	playlists *store.PlaylistRepo
	tracks    *store.TrackRepo
}

// New wires a server from its collaborators.
func New(
	renderer *render.Renderer,
	exporter *pdf.Exporter,
	previews *previewcache.Cache,
	spotify *spotifymatch.Service,
	playlists *store.PlaylistRepo,
	tracks *store.TrackRepo,
) *Server {
	return &Server{
		renderer:  renderer,
		exporter:  exporter,
		previews:  previews,
		spotify:   spotify,
		playlists: playlists,
		tracks:    tracks,
	}
}

// Routes registers every endpoint on a fresh engine.
func (s *Server) Routes() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/health/ready", s.ready)

		api.POST("/csv/upload", s.uploadCSV)
		api.GET("/search", s.search)
		api.POST("/match", s.match)

		api.POST("/card-preview/front", s.previewFront)
		api.POST("/card-preview/back", s.previewBack)

		api.POST("/export", s.export)

		api.GET("/playlists", s.listPlaylists)
		api.POST("/playlists", s.createPlaylist)
		api.GET("/playlists/:id", s.getPlaylist)
		api.PUT("/playlists/:id", s.updatePlaylist)
		api.DELETE("/playlists/:id", s.deletePlaylist)
		api.POST("/playlists/:id/tracks", s.addTrack)
		api.DELETE("/playlists/:id/tracks/:trackId", s.removeTrack)
	}

	return r
}
