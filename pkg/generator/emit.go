package generator

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// EmitFile writes the generator's dataset to path, creating parent
// directories and truncating any previous file. It returns the size in
// bytes of the written file.
func EmitFile(g Generator, r *rand.Rand, path string) (int64, error) {
	g.Init(r)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	if err := g.Emit(f); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// NewRand builds the per-run random source from a seed. Seed zero means
// a time-based seed, matching one-shot script behavior; any other seed
// makes the random generators reproducible.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
