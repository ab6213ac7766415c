package catalog

import (
	"sync"

	"github.com/tidwall/btree"
)

// MemoryStore implements Store with in-memory ordered maps (not
// persistent). Used by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]*btree.Map[string, []byte]
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*btree.Map[string, []byte]),
	}
}

func (m *MemoryStore) bucket(name []byte) *btree.Map[string, []byte] {
	b, ok := m.buckets[string(name)]
	if !ok {
		b = new(btree.Map[string, []byte])
		m.buckets[string(name)] = b
	}
	return b
}

// Put stores a key-value pair in a bucket
func (m *MemoryStore) Put(bucket, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy value to prevent external modifications
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	m.bucket(bucket).Set(string(key), valueCopy)
	return nil
}

// Get retrieves a value from a bucket; nil when the key is absent
func (m *MemoryStore) Get(bucket, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.buckets[string(bucket)]
	if !ok {
		return nil, nil
	}
	value, ok := b.Get(string(key))
	if !ok {
		return nil, nil
	}
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return valueCopy, nil
}

// Delete removes a key from a bucket
func (m *MemoryStore) Delete(bucket, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.buckets[string(bucket)]; ok {
		b.Delete(string(key))
	}
	return nil
}

// ForEach iterates the bucket in ascending key order
func (m *MemoryStore) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.buckets[string(bucket)]
	if !ok {
		return nil
	}

	var err error
	b.Scan(func(k string, v []byte) bool {
		err = fn([]byte(k), v)
		return err == nil
	})
	return err
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error {
	return nil
}
