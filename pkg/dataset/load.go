// Package dataset reads and writes the integer dataset files the
// generators produce: plain text, one integer per line.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Load reads integers from path, one per line. Lines that do not parse
// as an integer are skipped and counted rather than failing the load,
// so hand-edited or partially corrupt files still yield a dataset.
func Load(path string) (values []int64, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses one-integer-per-line text from r with the same skip
// semantics as Load.
func Read(r io.Reader) (values []int64, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, perr := strconv.ParseInt(line, 10, 64)
		if perr != nil {
			skipped++
			continue
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read dataset: %w", err)
	}
	return values, skipped, nil
}

// LoadSorted loads a dataset, sorts it ascending, and removes duplicate
// values. The search algorithms require this form.
func LoadSorted(path string) ([]int64, int, error) {
	values, skipped, err := Load(path)
	if err != nil {
		return nil, skipped, err
	}
	slices.Sort(values)
	values = slices.Compact(values)
	return values, skipped, nil
}
