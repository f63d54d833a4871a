package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoExtension is returned by FindBanks when no extension is given.
var ErrNoExtension = errors.New("extension must not be empty")

// FindBanks recursively collects the files below root that end with ext, in
// lexical order. Hidden entries are skipped: dot directories such as .git
// are not descended into, and dot files cover editor backups and the
// temporaries left by an interrupted WriteFileAtomic.
func FindBanks(root, ext string) ([]string, error) {
	if ext == "" {
		return nil, ErrNoExtension
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
