package fsops

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ListTree walks root recursively and returns relative paths in sorted order,
// directories suffixed with "/". Hidden entries are excluded; hidden
// directories are pruned without descending, so large trees like .git are
// never walked.
func ListTree(root string) ([]string, error) {
	entries := []string{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		entries = append(entries, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)
	return entries, nil
}
