package split

// ProgressEvent describes one file handled by the replicator. Events are an
// observable side effect for operator visibility; they are never used for
// control flow.
type ProgressEvent struct {
	Subject string
	Path    string // relative to the subject directory
	Bytes   int64
	Skipped bool // true when the destination copy was already up to date
}

// ProgressFunc receives progress events during a copy. A nil ProgressFunc
// disables progress reporting.
type ProgressFunc func(ProgressEvent)

func (f ProgressFunc) emit(ev ProgressEvent) {
	if f != nil {
		f(ev)
	}
}
