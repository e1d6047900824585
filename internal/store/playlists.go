package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"hitstercards/internal/models"
)

// PlaylistRepo stores playlists keyed by id.
type PlaylistRepo struct {
	db *bolt.DB
}

// GetByID fetches one playlist; nil when absent.
func (r *PlaylistRepo) GetByID(id string) (*models.Playlist, error) {
	var playlist *models.Playlist
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketPlaylists).Get([]byte(id))
		if data == nil {
			return nil
		}
		var p models.Playlist
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		playlist = &p
		return nil
	})
	return playlist, err
}

// GetByBrowserID lists every playlist owned by a browser session.
func (r *PlaylistRepo) GetByBrowserID(browserID string) ([]models.Playlist, error) {
	var out []models.Playlist
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPlaylists).ForEach(func(_, data []byte) error {
			var p models.Playlist
			if err := json.Unmarshal(data, &p); err != nil {
				return err
			}
			if p.BrowserID == browserID {
				out = append(out, p)
			}
			return nil
		})
	})
	return out, err
}

// Create assigns an id and timestamps, then persists the playlist.
func (r *PlaylistRepo) Create(playlist *models.Playlist) (string, error) {
	playlist.ID = uuid.NewString()
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	return playlist.ID, r.put(playlist)
}

// Update persists a modified playlist and bumps UpdatedAt.
func (r *PlaylistRepo) Update(playlist *models.Playlist) error {
	playlist.UpdatedAt = time.Now().UTC()
	return r.put(playlist)
}

// Delete removes a playlist. Deleting a missing id is a no-op.
func (r *PlaylistRepo) Delete(id string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPlaylists).Delete([]byte(id))
	})
}

func (r *PlaylistRepo) put(playlist *models.Playlist) error {
	data, err := json.Marshal(playlist)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPlaylists).Put([]byte(playlist.ID), data)
	})
}
