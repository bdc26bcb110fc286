package split

import (
	"fmt"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// localSystem is a System implementation that reads the local filesystem
// through a go-billy filesystem rooted at "/".
type localSystem struct {
	fs billy.Filesystem
}

// NewLocalSystem creates a System backed by the local OS.
func NewLocalSystem() System {
	return localSystem{fs: osfs.New("/")}
}

// NewSystem creates a System backed by an arbitrary billy filesystem.
// Useful for tests that want a memory-backed source tree.
func NewSystem(fs billy.Filesystem) System {
	return localSystem{fs: fs}
}

// ListSubjects returns the names of the immediate children of root, sorted
// lexicographically so the resulting partition is deterministic across runs
// and platforms. Both directories and plain files are reported; the source
// is expected to contain only subject directories, but that is for the
// caller to enforce.
func (s localSystem) ListSubjects(root string) ([]string, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
