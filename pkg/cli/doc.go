// Package cli provides the command-line interface used by subsplit.
//
// The CLI parses flags and builds a split plan, prints the plan for review
// in dry-run mode, and otherwise copies each group of subjects into its own
// destination tree. Use `Run` as the entry point when embedding the CLI in
// other tools.
//
// Example usage:
//
//	if err := cli.Run(os.Args); err != nil {
//	    log.Fatalf("subsplit: %v", err)
//	}
package cli
