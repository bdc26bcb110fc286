package split

// NoopRunner logs steps but does not touch the filesystem. Useful for CI or
// dry validation of plans.
type NoopRunner struct{}

func NewNoopRunner() *NoopRunner { return &NoopRunner{} }

func (n *NoopRunner) Run(step ExecutionStep) error {
	logSink.Infof("NOOP: %s (%s)", step.Operation, step.Description)
	return nil
}
