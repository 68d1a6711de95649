package store

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory snapshot store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[string]storedRecord // snapshotID -> name -> record
	closed bool
}

// storedRecord holds record data with metadata for List().
type storedRecord struct {
	data      []byte
	sequence  int
	timestamp time.Time
}

// NewMemoryStore creates a new in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]storedRecord),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(snapshotID, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if m.data[snapshotID] == nil {
		m.data[snapshotID] = make(map[string]storedRecord)
	}

	// Determine sequence number
	seq := 1
	for _, rec := range m.data[snapshotID] {
		if rec.sequence >= seq {
			seq = rec.sequence + 1
		}
	}

	// Copy data to avoid retaining caller's slice
	stored := make([]byte, len(data))
	copy(stored, data)

	m.data[snapshotID][name] = storedRecord{
		data:      stored,
		sequence:  seq,
		timestamp: time.Now().UTC(),
	}

	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(snapshotID, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	snap, ok := m.data[snapshotID]
	if !ok {
		return nil, ErrNotFound
	}

	rec, ok := snap[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent modification
	result := make([]byte, len(rec.data))
	copy(result, rec.data)
	return result, nil
}

// List implements Store.
func (m *MemoryStore) List(snapshotID string) ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	snap, ok := m.data[snapshotID]
	if !ok {
		return nil, nil
	}

	infos := make([]Info, 0, len(snap))
	for name, rec := range snap {
		infos = append(infos, Info{
			SnapshotID: snapshotID,
			Name:       name,
			Sequence:   rec.sequence,
			Timestamp:  rec.timestamp,
			Size:       int64(len(rec.data)),
		})
	}

	// Sort by sequence
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Sequence < infos[j].Sequence
	})

	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(snapshotID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if snap, ok := m.data[snapshotID]; ok {
		delete(snap, name)
	}
	return nil
}

// DeleteSnapshot implements Store.
func (m *MemoryStore) DeleteSnapshot(snapshotID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, snapshotID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the total number of records across all snapshots.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, snap := range m.data {
		count += len(snap)
	}
	return count
}
