package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"subsplit/pkg/split"
)

// UI abstracts user interaction so we can support both interactive
// and non-interactive modes and keep things testable.
type UI interface {
	Println(a ...any)
	Printf(format string, a ...any)
	Ask(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
}

type stdUI struct {
	in  io.Reader
	out io.Writer
}

// NewStdUI returns a UI backed by stdin/stdout.
func NewStdUI() UI {
	return &stdUI{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (u *stdUI) Println(a ...any) {
	fmt.Fprintln(u.out, a...)
}

func (u *stdUI) Printf(format string, a ...any) {
	fmt.Fprintf(u.out, format, a...)
}

func (u *stdUI) Ask(prompt string) (string, error) {
	u.Printf("%s", prompt)
	reader := bufio.NewReader(u.in)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (u *stdUI) Confirm(prompt string) (bool, error) {
	ans, err := u.Ask(fmt.Sprintf("%s (yes/no): ", prompt))
	if err != nil {
		return false, err
	}
	ans = strings.ToLower(strings.TrimSpace(ans))
	return ans == "y" || ans == "yes", nil
}

// Run is the main entrypoint for the CLI.
//
// It validates arguments and, in dry-run mode, prints the planned split
// without touching the destination. When no source is given it starts an
// interactive wizard to collect the required options.
func Run(args []string) error {
	return run(args, NewStdUI())
}

// run is the internal implementation that allows injecting a custom UI
// (useful for tests and, later, different front-ends).
func run(args []string, ui UI) error {
	if len(args) == 0 {
		return fmt.Errorf("no arguments provided")
	}
	cmd := newRootCmd(ui)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(ui UI) *cobra.Command {
	var opts split.PlanOptions
	var dryRun bool
	var stateLog string

	cmd := &cobra.Command{
		Use:   "subsplit",
		Short: "Split an imaging collection into evenly sized destination trees",
		Long: `subsplit partitions a directory of per-subject imaging data (one
subdirectory per subject) into a fixed number of roughly equal destination
trees, copying files without mutating the source. Copies are idempotent:
re-running after a failure skips files that are already up to date.

Run without --source to start an interactive wizard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.SourceDir == "" {
				if err := interactiveWizard(ui, &opts); err != nil {
					return err
				}
			}
			return runSplit(ui, opts, dryRun, stateLog)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.SourceDir, "source", "s", "", "directory containing one subdirectory per subject")
	f.StringVarP(&opts.DestBase, "dest", "d", "", "base directory under which the destination trees are created")
	f.IntVarP(&opts.Parts, "parts", "n", 1, "number of destination trees to produce")
	f.StringVar(&opts.CollectionName, "name", "part", "prefix for each destination tree directory")
	f.StringVar(&opts.SubdirName, "subdir", "dicom", "subdirectory created under each destination tree")
	f.BoolVar(&dryRun, "dry-run", false, "show the planned split without copying anything")
	f.BoolVar(&opts.ContinueOnError, "continue-on-error", false, "keep copying remaining subjects after a copy failure (default is fail-fast)")
	f.BoolVar(&opts.Verify, "verify", false, "check file presence and sizes after each part is copied")
	f.StringVar(&stateLog, "state-log", "", "append a record of this run to the given file")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose mode")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "quiet mode (suppress progress and summary)")

	return cmd
}

func runSplit(ui UI, opts split.PlanOptions, dryRun bool, stateLog string) error {
	// The lister and copier resolve paths against the filesystem root, not the
	// working directory, so relative --source/--dest must be made absolute
	// before anything looks at them.
	var err error
	if opts.SourceDir, err = filepath.Abs(opts.SourceDir); err != nil {
		return fmt.Errorf("cannot resolve source directory: %w", err)
	}
	if opts.DestBase, err = filepath.Abs(opts.DestBase); err != nil {
		return fmt.Errorf("cannot resolve destination base: %w", err)
	}

	if err := split.CheckRunSafety(opts); err != nil {
		return err
	}

	plan, err := split.Plan(opts)
	if err != nil {
		return err
	}

	work, err := split.NewWorkArea()
	if err != nil {
		return err
	}
	defer work.Close()

	if err := work.WriteListing(plan.Subjects); err != nil {
		return err
	}
	if err := work.WritePlan(plan); err != nil {
		return err
	}
	if opts.Verbose {
		ui.Println("working area:", work.Dir())
	}

	if stateLog != "" {
		if err := split.AppendStateLog(stateLog, plan, opts, split.Report{}, "PLAN", nil); err != nil {
			ui.Println("WARNING: cannot write state log:", err)
		}
	}

	if dryRun {
		ui.Println(plan.String())
		if opts.Verbose {
			ui.Println("Planned execution steps:")
			for _, step := range split.BuildExecutionSteps(plan, opts) {
				ui.Println("  -", step.Description)
			}
		}
		return nil
	}

	runner := split.NewCopyRunner()
	var copied, skipped int
	var copiedBytes uint64
	if !opts.Quiet {
		runner.Progress = func(ev split.ProgressEvent) {
			if ev.Skipped {
				skipped++
				if opts.Verbose {
					ui.Printf("  = %s/%s (up to date)\n", ev.Subject, ev.Path)
				}
				return
			}
			copied++
			copiedBytes += uint64(ev.Bytes)
			if opts.Verbose {
				ui.Printf("  + %s/%s (%s)\n", ev.Subject, ev.Path, humanize.Bytes(uint64(ev.Bytes)))
			}
		}
	}

	report, applyErr := split.Apply(plan, opts, runner)

	if stateLog != "" {
		phase := "APPLY_SUCCESS"
		if applyErr != nil {
			phase = "APPLY_FAILED"
		}
		if err := split.AppendStateLog(stateLog, plan, opts, report, phase, applyErr); err != nil {
			ui.Println("WARNING: cannot write state log:", err)
		}
	}

	if !opts.Quiet {
		for _, p := range report.Parts {
			if p.Failed > 0 {
				ui.Printf("part %d: %d subjects copied, %d failed, in %s\n", p.Index, p.Subjects, p.Failed, p.Duration.Round(time.Millisecond))
			} else {
				ui.Printf("part %d: %d subjects copied in %s\n", p.Index, p.Subjects, p.Duration.Round(time.Millisecond))
			}
		}
	}
	if applyErr != nil {
		return applyErr
	}

	if !opts.Quiet {
		ui.Printf("copied %d files (%s), %d already up to date\n", copied, humanize.Bytes(copiedBytes), skipped)
		ui.Println("Destination trees:")
		for _, root := range report.DestRoots() {
			ui.Println("  -", root)
		}
	}
	return nil
}

// interactiveWizard asks a minimal set of questions to obtain the options a
// split run cannot do without: the source, the destination base, and the
// part count. Prefix and subdirectory names keep their flag defaults.
func interactiveWizard(ui UI, opts *split.PlanOptions) error {
	ui.Println("Welcome to subsplit interactive mode.")

	src, err := ui.Ask("Source directory (one subdirectory per subject): ")
	if err != nil {
		return err
	}
	if src == "" {
		return fmt.Errorf("no source directory selected")
	}

	dest, err := ui.Ask("Destination base directory: ")
	if err != nil {
		return err
	}
	if dest == "" {
		return fmt.Errorf("no destination base selected")
	}

	partsAns, err := ui.Ask(fmt.Sprintf("Number of parts (default %d): ", opts.Parts))
	if err != nil {
		return err
	}
	parts := opts.Parts
	if partsAns != "" {
		parts, err = strconv.Atoi(partsAns)
		if err != nil || parts < 1 {
			return fmt.Errorf("invalid part count %q", partsAns)
		}
	}

	ok, err := ui.Confirm(fmt.Sprintf("Split '%s' into %d parts under '%s'?", src, parts, dest))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("split cancelled by user")
	}

	opts.SourceDir = src
	opts.DestBase = dest
	opts.Parts = parts
	return nil
}
