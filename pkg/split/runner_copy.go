package split

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// CopyRunner executes ExecutionStep values against a filesystem. The default
// filesystem is the local OS rooted at "/"; tests can substitute a
// memory-backed one.
type CopyRunner struct {
	FS       billy.Filesystem
	Progress ProgressFunc
}

func NewCopyRunner() *CopyRunner {
	return &CopyRunner{FS: NewOSFilesystem("/")}
}

func (r *CopyRunner) Run(step ExecutionStep) error {
	switch step.Operation {
	case "create-dest":
		if err := r.FS.MkdirAll(step.DestDir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDestinationUnwritable, step.DestDir, err)
		}
		return nil
	case "copy-subject":
		if strings.TrimSpace(step.Subject) == "" {
			logSink.Warnf("skipping blank subject name in part %d", step.PartIndex)
			return nil
		}
		src := r.FS.Join(step.SourceDir, step.Subject)
		dst := r.FS.Join(step.DestDir, step.Subject)
		return copyTree(r.FS, src, dst, step.Subject, r.Progress)
	case "verify-part":
		return VerifyPart(r.FS, step.SourceDir, step.DestDir, step.Subjects)
	default:
		logSink.Warnf("unknown operation %q for step: %s", step.Operation, step.Description)
		return nil
	}
}
