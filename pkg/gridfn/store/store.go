// Package store provides persistent storage for registry snapshots, so a
// functionalized registry can be reloaded without re-reading model output.
package store

import (
	"errors"
	"time"
)

// Store persists serialized gridded functions grouped by snapshot.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores one function record under a snapshot.
	// Overwrites if (snapshotID, name) already exists.
	Save(snapshotID, name string, data []byte) error

	// Load retrieves a function record.
	// Returns ErrNotFound if the record doesn't exist.
	Load(snapshotID, name string) ([]byte, error)

	// List returns all records in a snapshot, ordered by insertion.
	// Returns empty slice (not error) if the snapshot has no records.
	List(snapshotID string) ([]Info, error)

	// Delete removes a specific record.
	// Returns nil if the record doesn't exist.
	Delete(snapshotID, name string) error

	// DeleteSnapshot removes all records in a snapshot.
	// Returns nil if the snapshot has no records.
	DeleteSnapshot(snapshotID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides record metadata without loading the full payload.
type Info struct {
	SnapshotID string
	Name       string
	Sequence   int
	Timestamp  time.Time
	Size       int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a record doesn't exist.
	ErrNotFound = errors.New("snapshot record not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("snapshot store closed")
)
