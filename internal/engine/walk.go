package engine

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/phyten/decomment/internal/scan"
)

// listFiles collects candidate files under root, relative slash paths,
// sorted. Directories whose name is in skipDirs (or starts with a dot)
// are pruned. Without include globs only files with a supported
// extension are candidates; include globs widen the set, so an
// explicitly matched file of another type surfaces as "unsupported"
// instead of silently vanishing.
func listFiles(root string, include, exclude, skipDirs []string) ([]string, error) {
	for _, pat := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid glob pattern: %s", pat)
		}
	}
	skip := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if skip[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchAny(exclude, rel) {
			return nil
		}
		if len(include) > 0 {
			if matchAny(include, rel) {
				files = append(files, rel)
			}
			return nil
		}
		if scan.Supported(rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
