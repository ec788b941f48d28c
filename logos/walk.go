package logos

import (
	"os"
	"path/filepath"
)

// ListEntries returns the paths of the direct children of `dir`,
// files and directories alike, sorted by name.
func ListEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = filepath.Join(dir, e.Name())
	}
	return out, nil
}
