package commands

// Outcomes reported to a WorkflowObserver.
const (
	OutcomeDone     = "done"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeDenied   = "denied"
	OutcomeConflict = "conflict"
	OutcomeFailed   = "failed"
)

// WorkflowObserver receives workflow counters. internal/pkg/metrics implements it.
type WorkflowObserver interface {
	WorkflowFinished(operation, outcome string)
	AuditWriteFailed(kind string)
}

type nopObserver struct{}

func (nopObserver) WorkflowFinished(string, string) {}
func (nopObserver) AuditWriteFailed(string) {}
