package install

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/raphi011/hookmaster/internal/git"
)

// FindRepos returns every git repository at or below root.
// Hidden directories are skipped, and the search does not descend into a
// repository found below root.
func FindRepos(root string) ([]string, error) {
	root = filepath.Clean(root)
	var repos []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// unreadable subdirectory
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if !git.IsRepo(path) {
			return nil
		}

		repos = append(repos, path)
		if path != root {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", root, err)
	}
	return repos, nil
}
