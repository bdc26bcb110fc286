package split

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

type fakeSystem struct {
	subjects []string
	err      error
}

func (f fakeSystem) ListSubjects(root string) ([]string, error) {
	return f.subjects, f.err
}

func testOptions() PlanOptions {
	return PlanOptions{
		SourceDir:      "/data/dicom",
		DestBase:       "/out",
		Parts:          2,
		CollectionName: "adni",
		SubdirName:     "dicom",
	}
}

func TestPlan_RejectsEmptyOptions(t *testing.T) {
	_, err := Plan(PlanOptions{})
	if err == nil {
		t.Fatalf("expected error for empty options")
	}
}

func TestPlanWithSystem_BuildsParts(t *testing.T) {
	sys := fakeSystem{subjects: []string{"A", "B", "C", "D", "E"}}

	plan, err := PlanWithSystem(sys, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(plan.Parts))
	}
	if got := plan.Parts[0].DestRoot; got != filepath.Join("/out", "adni_1", "dicom") {
		t.Fatalf("unexpected dest root for part 1: %q", got)
	}
	if len(plan.Parts[0].Subjects) != 3 || len(plan.Parts[1].Subjects) != 2 {
		t.Fatalf("unexpected group sizes: %d and %d", len(plan.Parts[0].Subjects), len(plan.Parts[1].Subjects))
	}
	if plan.Parts[1].Index != 2 {
		t.Fatalf("expected 1-based part indices, got %d", plan.Parts[1].Index)
	}
}

func TestPlanWithSystem_EmptySource(t *testing.T) {
	sys := fakeSystem{}

	_, err := PlanWithSystem(sys, testOptions())
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestPlanWithSystem_DropsBlankSubjects(t *testing.T) {
	sys := fakeSystem{subjects: []string{"A", "", "  ", "B"}}
	opts := testOptions()
	opts.Parts = 1

	plan, err := PlanWithSystem(sys, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Subjects) != 2 {
		t.Fatalf("expected blank names to be dropped, got %v", plan.Subjects)
	}
}

func TestPlanWithSystem_PropagatesListError(t *testing.T) {
	sys := fakeSystem{err: fmt.Errorf("%w: /data/dicom", ErrSourceNotFound)}

	_, err := PlanWithSystem(sys, testOptions())
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestPlanWithSystem_InsufficientSubjects(t *testing.T) {
	sys := fakeSystem{subjects: []string{"A", "B"}}
	opts := testOptions()
	opts.Parts = 3

	_, err := PlanWithSystem(sys, opts)
	if !errors.Is(err, ErrInsufficientSubjects) {
		t.Fatalf("expected ErrInsufficientSubjects, got %v", err)
	}
}

func TestPlanResult_String(t *testing.T) {
	sys := fakeSystem{subjects: []string{"A", "B", "C"}}

	plan, err := PlanWithSystem(sys, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := plan.String()
	if !strings.Contains(out, "3 subjects") || !strings.Contains(out, "part 2") {
		t.Fatalf("unexpected plan rendering:\n%s", out)
	}
}
