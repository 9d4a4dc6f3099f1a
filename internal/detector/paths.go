package detector

import (
	"path/filepath"
	"strings"
)

// samePath compares two file paths after normalization, case-insensitively.
// Executable paths come from config on one side and the OS on the other, so
// separator and case differences must not defeat the comparison.
func samePath(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}
