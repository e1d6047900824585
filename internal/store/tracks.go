package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"hitstercards/internal/models"
)

// TrackRepo stores matched tracks keyed by id.
type TrackRepo struct {
	db *bolt.DB
}

// GetByID fetches one track; nil when absent.
func (r *TrackRepo) GetByID(id string) (*models.Track, error) {
	var track *models.Track
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketTracks).Get([]byte(id))
		if data == nil {
			return nil
		}
		var t models.Track
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		track = &t
		return nil
	})
	return track, err
}

// GetByIDs resolves tracks in the given order, skipping missing ids.
func (r *TrackRepo) GetByIDs(ids []string) ([]models.Track, error) {
	out := make([]models.Track, 0, len(ids))
	err := r.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketTracks)
		for _, id := range ids {
			data := bucket.Get([]byte(id))
			if data == nil {
				continue
			}
			var t models.Track
			if err := json.Unmarshal(data, &t); err != nil {
				return err
			}
			out = append(out, t)
		}
		return nil
	})
	return out, err
}

// GetBySpotifyID scans for a track with the given Spotify id.
func (r *TrackRepo) GetBySpotifyID(spotifyID string) (*models.Track, error) {
	var track *models.Track
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTracks).ForEach(func(_, data []byte) error {
			if track != nil {
				return nil
			}
			var t models.Track
			if err := json.Unmarshal(data, &t); err != nil {
				return err
			}
			if t.SpotifyID == spotifyID {
				track = &t
			}
			return nil
		})
	})
	return track, err
}

// Create assigns an id and timestamp, then persists the track.
func (r *TrackRepo) Create(track *models.Track) (string, error) {
	track.ID = uuid.NewString()
	track.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(track)
	if err != nil {
		return "", err
	}
	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTracks).Put([]byte(track.ID), data)
	})
	return track.ID, err
}

// GetOrCreate reuses an existing track with the same Spotify id, or
// creates a new one.
func (r *TrackRepo) GetOrCreate(track *models.Track) (string, error) {
	existing, err := r.GetBySpotifyID(track.SpotifyID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}
	return r.Create(track)
}

// Delete removes a track. Deleting a missing id is a no-op.
func (r *TrackRepo) Delete(id string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTracks).Delete([]byte(id))
	})
}
