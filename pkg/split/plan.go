package split

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PlanOptions represents the inputs required to compute a split plan.
// It mirrors, at a high level, the user-facing options parsed by the CLI.
type PlanOptions struct {
	SourceDir       string
	DestBase        string
	Parts           int
	CollectionName  string
	SubdirName      string
	ContinueOnError bool
	Verify          bool
	Quiet           bool
	Verbose         bool
}

// System abstracts how we enumerate the subjects of a source collection.
// This allows tests to provide a fake implementation while the real
// implementation reads the local filesystem.
type System interface {
	ListSubjects(root string) ([]string, error)
}

// DefaultSystem is used by Plan. It can be replaced in tests if needed.
var DefaultSystem System = NewLocalSystem()

// PartPlan describes one destination tree and the subjects assigned to it.
type PartPlan struct {
	Index    int // 1-based
	DestRoot string
	Subjects []string
}

// PlanResult is a high-level description of what will be copied where.
type PlanResult struct {
	SourceDir string
	Subjects  []string
	Parts     []PartPlan
}

// Plan lists the source collection and builds the partition plan for the
// given options.
func Plan(opts PlanOptions) (PlanResult, error) {
	return PlanWithSystem(DefaultSystem, opts)
}

// PlanWithSystem is the underlying implementation used by Plan. It exists so
// that tests can inject a fake System without touching global state.
func PlanWithSystem(sys System, opts PlanOptions) (PlanResult, error) {
	if opts.SourceDir == "" {
		return PlanResult{}, fmt.Errorf("source directory cannot be empty")
	}
	if opts.DestBase == "" {
		return PlanResult{}, fmt.Errorf("destination base directory cannot be empty")
	}
	if opts.CollectionName == "" {
		return PlanResult{}, fmt.Errorf("collection name cannot be empty")
	}

	listed, err := sys.ListSubjects(opts.SourceDir)
	if err != nil {
		return PlanResult{}, fmt.Errorf("failed to list subjects: %w", err)
	}

	// Drop blank entries defensively; malformed listings must not become
	// empty destination paths.
	subjects := make([]string, 0, len(listed))
	for _, s := range listed {
		if strings.TrimSpace(s) == "" {
			continue
		}
		subjects = append(subjects, s)
	}

	if len(subjects) == 0 {
		return PlanResult{}, fmt.Errorf("%w: %s", ErrEmptySource, opts.SourceDir)
	}

	groups, err := PartitionSubjects(subjects, opts.Parts)
	if err != nil {
		return PlanResult{}, err
	}

	parts := make([]PartPlan, 0, len(groups))
	for i, g := range groups {
		parts = append(parts, PartPlan{
			Index:    i + 1,
			DestRoot: filepath.Join(opts.DestBase, fmt.Sprintf("%s_%d", opts.CollectionName, i+1), opts.SubdirName),
			Subjects: g,
		})
	}

	return PlanResult{
		SourceDir: opts.SourceDir,
		Subjects:  subjects,
		Parts:     parts,
	}, nil
}

// String renders a human-readable description of the plan.
func (p PlanResult) String() string {
	out := fmt.Sprintf("Split plan: %d subjects from %s into %d parts\n", len(p.Subjects), p.SourceDir, len(p.Parts))
	for _, part := range p.Parts {
		out += fmt.Sprintf("  - part %d: %d subjects -> %s\n", part.Index, len(part.Subjects), part.DestRoot)
	}
	return out
}
