// Package store persists playlists and their matched tracks in a local
// bbolt database. Values are JSON documents keyed by UUID.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketPlaylists = []byte("playlists")
	bucketTracks    = []byte("tracks")
)

// DB owns the bolt handle and hands out repositories.
type DB struct {
	bolt *bolt.DB
}

// Open creates or opens the database file, creating parent directories
// and the buckets as needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketPlaylists, bucketTracks} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}
	return &DB{bolt: db}, nil
}

// Close releases the underlying bolt file.
func (d *DB) Close() error {
	return d.bolt.Close()
}

// Playlists returns the playlist repository.
func (d *DB) Playlists() *PlaylistRepo {
	return &PlaylistRepo{db: d.bolt}
}

// Tracks returns the track repository.
func (d *DB) Tracks() *TrackRepo {
	return &TrackRepo{db: d.bolt}
}
