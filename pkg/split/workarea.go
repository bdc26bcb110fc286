package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WorkArea is the scoped temporary directory that holds a run's working
// state: the subject listing and one file per planned part. It exists only
// for operator inspection while the run is in flight and is removed on every
// exit path, normal or not.
type WorkArea struct {
	dir string
}

// NewWorkArea creates a fresh working directory under the system temp root.
func NewWorkArea() (*WorkArea, error) {
	dir, err := os.MkdirTemp("", "subsplit-*")
	if err != nil {
		return nil, fmt.Errorf("cannot create working area: %w", err)
	}
	return &WorkArea{dir: dir}, nil
}

// Dir returns the working directory path.
func (w *WorkArea) Dir() string { return w.dir }

// WriteListing records the full subject listing as subjects.txt.
func (w *WorkArea) WriteListing(subjects []string) error {
	return w.writeLines("subjects.txt", subjects)
}

// WritePlan records one part_<i>.txt file per planned part.
func (w *WorkArea) WritePlan(plan PlanResult) error {
	for _, part := range plan.Parts {
		name := fmt.Sprintf("part_%d.txt", part.Index)
		if err := w.writeLines(name, part.Subjects); err != nil {
			return err
		}
	}
	return nil
}

func (w *WorkArea) writeLines(name string, lines []string) error {
	path := filepath.Join(w.dir, name)
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// Close removes the working directory and everything in it.
func (w *WorkArea) Close() error {
	if w.dir == "" {
		return nil
	}
	err := os.RemoveAll(w.dir)
	w.dir = ""
	return err
}
