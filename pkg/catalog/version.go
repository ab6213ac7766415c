package catalog

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// FormatVersion is the on-disk catalog format version.
const FormatVersion = "v1.0.0"

var keyFormatVersion = []byte("format_version")

// IsCompatibleFormat checks if a stored catalog format version can be
// read by this build. Compatibility rules:
// - Major version must match exactly.
// - Minor and patch versions can differ.
func IsCompatibleFormat(stored, current string) (bool, error) {
	if !semver.IsValid(stored) {
		return false, fmt.Errorf("invalid catalog format version: %s", stored)
	}
	if !semver.IsValid(current) {
		return false, fmt.Errorf("invalid catalog format version: %s", current)
	}
	return semver.Major(stored) == semver.Major(current), nil
}
