package generator

import (
	"fmt"
	"sort"
)

// DefaultCount is the number of lines every registered generator emits
// unless overridden with SetCount.
const DefaultCount = 100_000

// Registry maps generator names to generator factory functions
// We use factory functions to allow parameterization (e.g., line count)
var Registry = map[string]func() Generator{
	"sorted-asc":  func() Generator { return newSortedAsc(DefaultCount) },
	"sorted-desc": func() Generator { return newSortedDesc(DefaultCount) },
	"sparse":      func() Generator { return newSparse(DefaultCount) },
	"duplicates":  func() Generator { return newDuplicates(DefaultCount) },
	"negative":    func() Generator { return newNegative(DefaultCount) },
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names in stable order
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCount overrides the emitted line count for a registered generator
func SetCount(name string, n int64) {
	switch name {
	case "sorted-asc":
		Registry[name] = func() Generator { return newSortedAsc(n) }
	case "sorted-desc":
		Registry[name] = func() Generator { return newSortedDesc(n) }
	case "sparse":
		Registry[name] = func() Generator { return newSparse(n) }
	case "duplicates":
		Registry[name] = func() Generator { return newDuplicates(n) }
	case "negative":
		Registry[name] = func() Generator { return newNegative(n) }
	}
}
