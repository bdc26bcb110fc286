package split

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// osAttrFS augments an OS-rooted billy filesystem with the attribute-change
// capability, which the chroot wrapper does not expose. Paths handed to the
// billy side are interpreted relative to root, so the os-level calls join
// them back onto the host path.
type osAttrFS struct {
	billy.Filesystem
	root string
}

// NewOSFilesystem returns an OS-backed filesystem rooted at root that
// supports preserving permission bits and modification times on copy.
func NewOSFilesystem(root string) billy.Filesystem {
	return osAttrFS{Filesystem: osfs.New(root), root: root}
}

func (s osAttrFS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(s.hostPath(name), mode)
}

func (s osAttrFS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(s.hostPath(name), atime, mtime)
}

func (s osAttrFS) hostPath(name string) string {
	return filepath.Join(s.root, name)
}
