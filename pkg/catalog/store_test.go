package catalog

import (
	"bytes"
	"testing"
)

// storeTestSuite runs a shared test suite against any Store implementation
func storeTestSuite(t *testing.T, newStore func() (Store, func(), error)) {
	t.Run("PutAndGet", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		key := []byte("key1")
		value := []byte("value1")
		if err := store.Put(bucketDatasets, key, value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := store.Get(bucketDatasets, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		// Non-existent key
		got, err = store.Get(bucketDatasets, []byte("nonexistent"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for non-existent key, got %s", got)
		}
	})

	t.Run("BucketsAreIsolated", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		key := []byte("shared")
		store.Put(bucketDatasets, key, []byte("a"))
		store.Put(bucketMeta, key, []byte("b"))

		got, _ := store.Get(bucketDatasets, key)
		if !bytes.Equal(got, []byte("a")) {
			t.Errorf("datasets bucket returned %s, want a", got)
		}
		got, _ = store.Get(bucketMeta, key)
		if !bytes.Equal(got, []byte("b")) {
			t.Errorf("meta bucket returned %s, want b", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		key := []byte("key1")
		store.Put(bucketDatasets, key, []byte("value1"))

		if err := store.Delete(bucketDatasets, key); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		got, _ := store.Get(bucketDatasets, key)
		if got != nil {
			t.Error("key should not exist after deletion")
		}

		// Idempotent
		if err := store.Delete(bucketDatasets, key); err != nil {
			t.Errorf("Delete should be idempotent: %v", err)
		}
	})

	t.Run("ForEachOrdered", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		// Inserted out of order; iteration is key-ordered
		for _, k := range []string{"c", "a", "b"} {
			store.Put(bucketDatasets, []byte(k), []byte("v-"+k))
		}

		var keys []string
		err = store.ForEach(bucketDatasets, func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}

		want := []string{"a", "b", "c"}
		if len(keys) != len(want) {
			t.Fatalf("ForEach visited %d keys, want %d", len(keys), len(want))
		}
		for i, k := range want {
			if keys[i] != k {
				t.Errorf("keys[%d] = %s, want %s", i, keys[i], k)
			}
		}
	})
}
