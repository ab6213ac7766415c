// Package catalog records metadata about generated dataset files in a
// small key-value store, so the CLI can list and reuse them later.
package catalog

// Store is the key-value layer under a Catalog. All operations work with
// raw []byte; the Catalog chooses the serialization (JSON).
type Store interface {
	Put(bucket, key, value []byte) error
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error

	// ForEach iterates all key-value pairs in a bucket
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	Close() error
}

var (
	bucketDatasets = []byte("datasets")
	bucketMeta     = []byte("meta")
)
