package split

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppendStateLog appends a human-readable state entry to the given path,
// describing the plan or apply phase, the source/destinations, and the
// per-part outcome. phase is typically "PLAN", "APPLY_SUCCESS" or
// "APPLY_FAILED".
func AppendStateLog(path string, plan PlanResult, opts PlanOptions, report Report, phase string, runErr error) error {
	f, openErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if openErr != nil {
		return openErr
	}
	defer f.Close()

	info, statErr := f.Stat()
	if statErr == nil && info.Size() == 0 {
		header := "# subsplit state log - each section describes a plan/apply run. Newest entries are at the bottom.\n\n"
		if _, err := f.WriteString(header); err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s %s ===\n", phase, now)
	fmt.Fprintf(&b, "run_id: %s\n", uuid.NewString())
	fmt.Fprintf(&b, "source: %s\n", plan.SourceDir)
	fmt.Fprintf(&b, "dest_base: %s\n", opts.DestBase)
	fmt.Fprintf(&b, "collection: %s\n", opts.CollectionName)
	fmt.Fprintf(&b, "subdir: %s\n", opts.SubdirName)
	fmt.Fprintf(&b, "subjects: %d\n", len(plan.Subjects))
	fmt.Fprintf(&b, "parts:\n")
	for _, part := range plan.Parts {
		fmt.Fprintf(&b, "- part %d: %d subjects -> %s\n", part.Index, len(part.Subjects), part.DestRoot)
	}
	if len(report.Parts) > 0 {
		fmt.Fprintf(&b, "timings:\n")
		for _, p := range report.Parts {
			fmt.Fprintf(&b, "- part %d: %s\n", p.Index, p.Duration.Round(time.Millisecond))
		}
	}

	switch phase {
	case "APPLY_SUCCESS":
		fmt.Fprintf(&b, "result: SUCCESS\n\n")
	case "APPLY_FAILED":
		fmt.Fprintf(&b, "result: FAILED: %v\n\n", runErr)
	default:
		fmt.Fprintf(&b, "result: PENDING APPLY\n\n")
	}

	_, writeErr := f.WriteString(b.String())
	return writeErr
}
