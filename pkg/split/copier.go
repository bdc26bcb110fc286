package split

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// copyTree replicates the directory tree rooted at src into dst, one file at
// a time, preserving permission bits and modification times where the
// filesystem supports it. Files whose destination copy already looks
// identical (same size, destination not older) are skipped, which makes
// re-running after a partial failure cheap and safe.
func copyTree(fs billy.Filesystem, src, dst, subject string, progress ProgressFunc) error {
	return util.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("cannot resolve %s relative to %s: %w", path, src, err)
		}
		target := dst
		if rel != "." {
			target = fs.Join(dst, rel)
		}

		switch {
		case info.IsDir():
			if err := fs.MkdirAll(target, info.Mode().Perm()); err != nil {
				return fmt.Errorf("cannot create directory %s: %w", target, err)
			}
			return nil
		case info.Mode()&os.ModeSymlink != 0:
			return copySymlink(fs, path, target)
		case !info.Mode().IsRegular():
			// Sockets, devices and the like do not belong in imaging data;
			// leave them behind rather than fail the whole subject.
			logSink.Warnf("skipping irregular file %s (%s)", path, info.Mode())
			return nil
		}

		if upToDate(fs, target, info) {
			progress.emit(ProgressEvent{Subject: subject, Path: rel, Bytes: info.Size(), Skipped: true})
			return nil
		}

		n, err := copyFile(fs, path, target, info)
		if err != nil {
			return err
		}
		progress.emit(ProgressEvent{Subject: subject, Path: rel, Bytes: n})
		return nil
	})
}

// upToDate reports whether the destination already holds an identical-looking
// copy of the source file, using the rsync-style size and timestamp
// heuristic. The destination counts as current when it has the same size and
// is not older than the source.
func upToDate(fs billy.Filesystem, target string, src os.FileInfo) bool {
	dst, err := fs.Lstat(target)
	if err != nil {
		return false
	}
	if !dst.Mode().IsRegular() || dst.Size() != src.Size() {
		return false
	}
	return !dst.ModTime().Before(src.ModTime())
}

func copyFile(fs billy.Filesystem, src, dst string, info os.FileInfo) (int64, error) {
	in, err := fs.Open(src)
	if err != nil {
		return 0, fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("cannot create %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("cannot write %s: %w", dst, err)
	}

	preserveAttributes(fs, dst, info)
	return n, nil
}

func copySymlink(fs billy.Filesystem, src, dst string) error {
	linkTarget, err := fs.Readlink(src)
	if err != nil {
		return fmt.Errorf("cannot read symlink %s: %w", src, err)
	}
	// Replace a stale link if one is already there.
	if _, err := fs.Lstat(dst); err == nil {
		if err := fs.Remove(dst); err != nil {
			return fmt.Errorf("cannot replace symlink %s: %w", dst, err)
		}
	}
	if err := fs.Symlink(linkTarget, dst); err != nil {
		return fmt.Errorf("cannot create symlink %s: %w", dst, err)
	}
	return nil
}

// attrChanger is the optional capability for preserving file attributes.
// The OS-backed filesystem used by CopyRunner supports it; the in-memory one
// used in tests does not.
type attrChanger interface {
	Chmod(name string, mode os.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}

// preserveAttributes applies the source's permission bits and modification
// time to the destination when the filesystem supports it. Failures are
// logged, not fatal: the data is already safely copied.
func preserveAttributes(fs billy.Filesystem, dst string, info os.FileInfo) {
	change, ok := fs.(attrChanger)
	if !ok {
		return
	}
	if err := change.Chmod(dst, info.Mode().Perm()); err != nil {
		logSink.Warnf("cannot preserve mode of %s: %v", dst, err)
	}
	if err := change.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		logSink.Warnf("cannot preserve mtime of %s: %v", dst, err)
	}
}
