package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantValues  []int64
		wantSkipped int
	}{
		{"plain", "3\n1\n2\n", []int64{3, 1, 2}, 0},
		{"negative values", "-5\n0\n5\n", []int64{-5, 0, 5}, 0},
		{"blank lines ignored", "1\n\n2\n\n", []int64{1, 2}, 0},
		{"invalid lines skipped", "1\nabc\n2\n3.5\n", []int64{1, 2}, 2},
		{"whitespace trimmed", " 7 \n\t8\n", []int64{7, 8}, 0},
		{"empty file", "", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, skipped, err := Load(writeTemp(t, tt.content))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if skipped != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", skipped, tt.wantSkipped)
			}
			if len(values) != len(tt.wantValues) {
				t.Fatalf("got %d values, want %d", len(values), len(tt.wantValues))
			}
			for i, v := range tt.wantValues {
				if values[i] != v {
					t.Errorf("values[%d] = %d, want %d", i, values[i], v)
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoadSorted(t *testing.T) {
	path := writeTemp(t, "5\n3\n5\n1\n3\n")

	values, _, err := LoadSorted(path)
	if err != nil {
		t.Fatalf("LoadSorted failed: %v", err)
	}

	want := []int64{1, 3, 5}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d", len(values), len(want))
	}
	for i, v := range want {
		if values[i] != v {
			t.Errorf("values[%d] = %d, want %d", i, values[i], v)
		}
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	want := []int64{-2, 0, 7, 7, 100}

	if err := WriteFile(path, want); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	values, skipped, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d", len(values), len(want))
	}
	for i, v := range want {
		if values[i] != v {
			t.Errorf("values[%d] = %d, want %d", i, values[i], v)
		}
	}

	// Rerunning truncates
	if err := WriteFile(path, []int64{1}); err != nil {
		t.Fatalf("WriteFile rerun failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.TrimRight(string(data), "\n") != "1" {
		t.Errorf("rerun should overwrite, got %q", data)
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   Summary
	}{
		{"empty", nil, Summary{SortedAsc: true}},
		{"sorted", []int64{1, 2, 3}, Summary{Count: 3, Distinct: 3, Min: 1, Max: 3, SortedAsc: true}},
		{"unsorted", []int64{3, 1, 2}, Summary{Count: 3, Distinct: 3, Min: 1, Max: 3, SortedAsc: false}},
		{"duplicates", []int64{2, 2, 2}, Summary{Count: 3, Distinct: 1, Min: 2, Max: 2, SortedAsc: true}},
		{"negative", []int64{-5, -1, 4}, Summary{Count: 3, Distinct: 3, Min: -5, Max: 4, SortedAsc: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stats(tt.values)
			if got != tt.want {
				t.Errorf("Stats = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsSortedUnique(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   bool
	}{
		{"empty", nil, true},
		{"single", []int64{5}, true},
		{"strict", []int64{1, 2, 9}, true},
		{"duplicate", []int64{1, 2, 2}, false},
		{"descending", []int64{3, 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSortedUnique(tt.values); got != tt.want {
				t.Errorf("IsSortedUnique = %t, want %t", got, tt.want)
			}
		})
	}
}
