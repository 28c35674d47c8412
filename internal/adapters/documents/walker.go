package documents

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Extension is the file extension of precompiled documents.
const Extension = ".graphql"

// Walker yields document files below a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkDocuments yields the paths of all .graphql files below root, skipping
// version control and dependency directories.
func (w *Walker) WalkDocuments(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				switch d.Name() {
				case ".git", ".jj", "node_modules":
					return filepath.SkipDir
				}
				return nil
			}

			if filepath.Ext(path) != Extension {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}
