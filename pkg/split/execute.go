package split

import (
	"fmt"
	"time"
)

// ExecutionStep is a high-level description of a concrete action that would
// be taken to perform a split. It is both structured (for automation) and has
// a human-readable description.
type ExecutionStep struct {
	Operation   string // "create-dest", "copy-subject" or "verify-part"
	Subject     string
	Subjects    []string // only set for verify-part
	PartIndex   int
	SourceDir   string
	DestDir     string
	Description string
}

// Runner abstracts how execution steps are performed. The real implementation
// copies files; NoopRunner just logs steps for dry validation.
type Runner interface {
	Run(step ExecutionStep) error
}

// PartReport records the outcome of one completed part. Subjects counts the
// subject copies that actually succeeded; Failed is non-zero only in
// continue-on-error mode.
type PartReport struct {
	Index    int
	DestRoot string
	Subjects int
	Failed   int
	Duration time.Duration
}

// Report summarizes a finished (or aborted) Apply run.
type Report struct {
	Parts    []PartReport
	Failures []*CopyError // only populated in continue-on-error mode
}

// DestRoots returns the destination tree roots of all completed parts, in
// order.
func (r Report) DestRoots() []string {
	roots := make([]string, 0, len(r.Parts))
	for _, p := range r.Parts {
		roots = append(roots, p.DestRoot)
	}
	return roots
}

// BuildPartSteps converts one PartPlan into its ordered execution steps:
// create the destination tree, copy each subject in group order, and
// optionally verify the part afterwards.
func BuildPartSteps(part PartPlan, sourceDir string, opts PlanOptions) []ExecutionStep {
	steps := []ExecutionStep{{
		Operation:   "create-dest",
		PartIndex:   part.Index,
		DestDir:     part.DestRoot,
		Description: fmt.Sprintf("create destination tree %s", part.DestRoot),
	}}

	for _, subject := range part.Subjects {
		steps = append(steps, ExecutionStep{
			Operation:   "copy-subject",
			Subject:     subject,
			PartIndex:   part.Index,
			SourceDir:   sourceDir,
			DestDir:     part.DestRoot,
			Description: fmt.Sprintf("copy subject %s to %s (part %d)", subject, part.DestRoot, part.Index),
		})
	}

	if opts.Verify {
		steps = append(steps, ExecutionStep{
			Operation:   "verify-part",
			Subjects:    part.Subjects,
			PartIndex:   part.Index,
			SourceDir:   sourceDir,
			DestDir:     part.DestRoot,
			Description: fmt.Sprintf("verify part %d at %s", part.Index, part.DestRoot),
		})
	}

	return steps
}

// BuildExecutionSteps flattens the whole plan into execution steps, mainly
// for display in dry-run mode.
func BuildExecutionSteps(plan PlanResult, opts PlanOptions) []ExecutionStep {
	var steps []ExecutionStep
	for _, part := range plan.Parts {
		steps = append(steps, BuildPartSteps(part, plan.SourceDir, opts)...)
	}
	return steps
}

// Apply runs the plan using the given runner, one part at a time, timing each
// part. The first failing step aborts the run (fail-fast), leaving earlier
// parts fully copied; in continue-on-error mode failed subject copies are
// recorded and the run presses on, but still ends in error.
func Apply(plan PlanResult, opts PlanOptions, runner Runner) (Report, error) {
	var report Report

	for _, part := range plan.Parts {
		steps := BuildPartSteps(part, plan.SourceDir, opts)
		start := time.Now()
		failed := 0

		for _, step := range steps {
			err := runner.Run(step)
			if err == nil {
				continue
			}
			if step.Operation == "copy-subject" {
				copyErr := &CopyError{Subject: step.Subject, Err: err}
				if opts.ContinueOnError {
					logSink.Warnf("continuing past failed subject %s: %v", step.Subject, err)
					report.Failures = append(report.Failures, copyErr)
					failed++
					continue
				}
				err = copyErr
			}
			return report, fmt.Errorf("apply failed on operation %q (part=%d): %w",
				step.Operation, step.PartIndex, err)
		}

		elapsed := time.Since(start)
		copied := len(part.Subjects) - failed
		report.Parts = append(report.Parts, PartReport{
			Index:    part.Index,
			DestRoot: part.DestRoot,
			Subjects: copied,
			Failed:   failed,
			Duration: elapsed,
		})
		if failed > 0 {
			logSink.Infof("part %d complete: %d subjects copied, %d failed, to %s in %s",
				part.Index, copied, failed, part.DestRoot, elapsed.Round(time.Millisecond))
		} else {
			logSink.Infof("part %d complete: %d subjects copied to %s in %s",
				part.Index, copied, part.DestRoot, elapsed.Round(time.Millisecond))
		}
	}

	if len(report.Failures) > 0 {
		return report, fmt.Errorf("%d subject copies failed", len(report.Failures))
	}
	return report, nil
}
