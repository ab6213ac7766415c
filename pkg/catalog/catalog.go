package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry records one generated dataset file
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Generator string    `json:"generator"`
	Path      string    `json:"path"`
	Count     int64     `json:"count"`
	Min       int64     `json:"min"`
	Max       int64     `json:"max"`
	Unique    bool      `json:"unique"`
	Sorted    bool      `json:"sorted"`
	Seed      uint64    `json:"seed"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Catalog stores dataset entries keyed by name. Regenerating a dataset
// replaces its entry, mirroring the overwrite semantics of the files
// themselves.
type Catalog struct {
	store Store
}

// Open wraps a Store as a Catalog and verifies the stored format
// version, writing the current version into a fresh store.
func Open(store Store) (*Catalog, error) {
	stored, err := store.Get(bucketMeta, keyFormatVersion)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		if err := store.Put(bucketMeta, keyFormatVersion, []byte(FormatVersion)); err != nil {
			return nil, err
		}
		return &Catalog{store: store}, nil
	}

	ok, err := IsCompatibleFormat(string(stored), FormatVersion)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("catalog format %s is incompatible with %s", stored, FormatVersion)
	}
	return &Catalog{store: store}, nil
}

// Record inserts or replaces the entry for e.Name. A missing ID or
// CreatedAt is filled in.
func (c *Catalog) Record(e *Entry) error {
	if e.Name == "" {
		return fmt.Errorf("entry name is required")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}
	return c.store.Put(bucketDatasets, []byte(e.Name), data)
}

// Get returns the entry for name, or nil when absent
func (c *Catalog) Get(name string) (*Entry, error) {
	data, err := c.store.Get(bucketDatasets, []byte(name))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}
	return &e, nil
}

// List returns all entries in key order
func (c *Catalog) List() ([]Entry, error) {
	var entries []Entry
	err := c.store.ForEach(bucketDatasets, func(_, v []byte) error {
		var e Entry
		if err := json.Unmarshal(v, &e); err != nil {
			return fmt.Errorf("failed to decode entry: %w", err)
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// Remove deletes the entry for name. Removing an absent entry is not
// an error.
func (c *Catalog) Remove(name string) error {
	return c.store.Delete(bucketDatasets, []byte(name))
}

// Close closes the underlying store
func (c *Catalog) Close() error {
	return c.store.Close()
}
