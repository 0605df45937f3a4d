// Package dataset stores finished dialogues in a single-file BoltDB
// database, so batch pipelines can accumulate results beyond one-shot
// checkpoint files.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/yuriak/SpeechDialogueFactory/internal/models"
)

var bucketDialogues = []byte("dialogues")

// ErrNotFound is returned when no entry exists for the requested ID.
var ErrNotFound = errors.New("dialogue not found")

// Entry is the stored envelope around a dialogue.
type Entry struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Turns     int              `json:"turns"` // actual turn count at save time
	Dialogue  *models.Dialogue `json:"dialogue"`
}

// Store is a dialogue dataset backed by a single BoltDB file. It is safe for
// concurrent use by a single process; Bolt holds an exclusive file lock.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the dataset file at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dataset dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDialogues)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init dataset %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put validates and stores a dialogue under a fresh UUID, returning the ID.
func (s *Store) Put(d *models.Dialogue) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	entry := Entry{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Turns:     len(d.Conversation),
		Dialogue:  d,
	}
	if err := s.write(entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

// Update replaces the dialogue stored under id, keeping its creation time.
func (s *Store) Update(id string, d *models.Dialogue) error {
	if err := d.Validate(); err != nil {
		return err
	}

	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	existing.UpdatedAt = time.Now().UTC()
	existing.Turns = len(d.Conversation)
	existing.Dialogue = d
	return s.write(*existing)
}

// Get returns the entry stored under id, or ErrNotFound.
func (s *Store) Get(id string) (*Entry, error) {
	var entry Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketDialogues).Get([]byte(id))
		if raw == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return json.Unmarshal(raw, &entry)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns all entries ordered by ID.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDialogues).ForEach(func(k, v []byte) error {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("decode entry %s: %w", k, err)
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the entry stored under id, or returns ErrNotFound.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDialogues)
		if b.Get([]byte(id)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return b.Delete([]byte(id))
	})
}

func (s *Store) write(entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", entry.ID, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDialogues).Put([]byte(entry.ID), raw)
	})
}
