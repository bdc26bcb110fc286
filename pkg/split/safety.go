package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckRunSafety performs safety checks before any destination is touched:
// - the source must exist and be a directory
// - the destination base must not live inside the source tree, which would
//   make the copy recurse into its own output
//
// Destination writability is not checked here on purpose: nothing under the
// destination base may be created until planning has fully succeeded, so
// unwritable destinations surface as ErrDestinationUnwritable from the first
// create-dest step instead.
func CheckRunSafety(opts PlanOptions) error {
	st, err := os.Stat(opts.SourceDir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceNotFound, opts.SourceDir, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, opts.SourceDir)
	}

	if insideTree(opts.SourceDir, opts.DestBase) {
		return fmt.Errorf("refusing to use destination %s: it is inside the source tree %s, so the copy would recurse into its own output. Pick a destination outside the source",
			opts.DestBase, opts.SourceDir)
	}

	return nil
}

// insideTree reports whether path is root itself or located underneath it.
func insideTree(root, path string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
